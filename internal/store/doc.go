// Package store defines the persistence interfaces and the error
// vocabulary shared between the HTTP layer and the storage backends.
// Implementations live in internal/platform/postgres.
package store
