// Package postgres implements the store interfaces against a PostgreSQL
// database. It owns the query construction for the dynamic article
// listing, the existence and page-range validators, and the translation
// of PostgreSQL error codes into the store error vocabulary.
package postgres
