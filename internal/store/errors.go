package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in
	// the store. Entity-specific variants below wrap it so callers can
	// match either the generic or the specific error.
	ErrNotFound = errors.New("entity not found")

	// ErrPageOutOfRange is returned when a requested page starts beyond
	// the last row of the filtered result set. A result set with no rows
	// at all is never out of range.
	ErrPageOutOfRange = errors.New("page out of range")

	// ErrInvalidBody is returned when a request body is missing a
	// required field, or the field is present but empty.
	ErrInvalidBody = errors.New("invalid request body")

	// ErrInvalidOrder is returned when a sort order does not resolve to
	// ASC or DESC.
	ErrInvalidOrder = errors.New("invalid sort order")

	// ErrUndefinedColumn is returned when a sort column is not in the
	// allow-list of sortable columns.
	ErrUndefinedColumn = errors.New("undefined column")

	// ErrInvalidInput is returned when a value cannot be coerced to the
	// column type, such as a non-numeric article id.
	ErrInvalidInput = errors.New("invalid input syntax")

	// ErrInvalidEntity is returned when an insert or update violates a
	// foreign key constraint.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrMissingField is returned when an insert or update violates a
	// not-null constraint.
	ErrMissingField = errors.New("missing required field")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g. a topic with the same slug).
	ErrDuplicate = errors.New("entity already exists")

	// ErrDeleteRestricted is returned by the restrict delete policy when
	// an article still has comments.
	ErrDeleteRestricted = errors.New("delete restricted")

	// Entity-specific "not found" errors

	// ErrTopicNotFound indicates that the requested topic does not exist.
	ErrTopicNotFound = fmt.Errorf("%w: topic", ErrNotFound)

	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrArticleNotFound indicates that the requested article does not exist.
	ErrArticleNotFound = fmt.Errorf("%w: article", ErrNotFound)

	// ErrCommentNotFound indicates that the requested comment does not exist.
	ErrCommentNotFound = fmt.Errorf("%w: comment", ErrNotFound)
)

// IsNotFoundError checks if the error is any kind of "not found" error,
// including the entity-specific variants.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
