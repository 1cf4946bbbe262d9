// Package domain defines the core entities served by the API: topics,
// users, articles and comments. The structs mirror the wire format, so
// JSON tags use the snake_case column names of the underlying tables.
package domain
