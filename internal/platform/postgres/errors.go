package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ncnews/news-api/internal/store"
)

// PostgreSQL error codes translated at the store boundary.
const (
	// invalidTextRepresentationCode covers values that cannot be coerced
	// to the column type, such as a non-numeric id.
	invalidTextRepresentationCode = "22P02"

	// notNullViolationCode is the error code for not null violations.
	notNullViolationCode = "23502"

	// foreignKeyViolationCode is the error code for foreign key violations.
	foreignKeyViolationCode = "23503"

	// uniqueViolationCode is the error code for unique constraint violations.
	uniqueViolationCode = "23505"

	// undefinedColumnCode is the error code for references to columns
	// that do not exist.
	undefinedColumnCode = "42703"
)

// MapError maps a database error to the store error vocabulary, wrapping
// the original error to preserve context. Every database operation in
// this package routes its errors through here so the HTTP boundary only
// ever matches store sentinels.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case invalidTextRepresentationCode:
			return fmt.Errorf("%w: %v", store.ErrInvalidInput, err)
		case notNullViolationCode:
			return fmt.Errorf("%w: not null violation (%s): %v",
				store.ErrMissingField, pgErr.ColumnName, err)
		case foreignKeyViolationCode:
			return fmt.Errorf("%w: foreign key violation (%s): %v",
				store.ErrInvalidEntity, pgErr.ConstraintName, err)
		case uniqueViolationCode:
			return fmt.Errorf("%w: %v", store.ErrDuplicate, err)
		case undefinedColumnCode:
			return fmt.Errorf("%w: %v", store.ErrUndefinedColumn, err)
		}
	}

	return err
}

// IsForeignKeyViolation checks if the given error is a PostgreSQL
// foreign key constraint violation.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode
}

// IsUniqueViolation checks if the given error is a PostgreSQL unique
// constraint violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// CheckRowsAffected returns notFound if the result affected no rows.
// UPDATE and DELETE statements use this as the redundant second line of
// defense behind the concurrent existence check.
func CheckRowsAffected(result sql.Result, notFound error) error {
	if result == nil {
		return fmt.Errorf("nil result provided to CheckRowsAffected")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return notFound
	}
	return nil
}
