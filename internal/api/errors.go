package api

import (
	"errors"
	"net/http"

	"github.com/ncnews/news-api/internal/api/shared"
	"github.com/ncnews/news-api/internal/store"
)

// MapErrorToStatusCode maps store errors to HTTP status codes. Anything
// without a specific mapping is an internal server error; raw error
// details never reach the client.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, store.ErrPageOutOfRange):
		return http.StatusNotFound

	case store.IsNotFoundError(err):
		return http.StatusNotFound

	case errors.Is(err, store.ErrInvalidBody),
		errors.Is(err, store.ErrInvalidOrder),
		errors.Is(err, store.ErrUndefinedColumn),
		errors.Is(err, store.ErrInvalidInput),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, store.ErrMissingField),
		errors.Is(err, store.ErrDeleteRestricted):
		return http.StatusBadRequest

	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the user-facing message for an error.
// The wording of the translated constraint violations is part of the
// API contract.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "Server error"
	}

	switch {
	case errors.Is(err, store.ErrPageOutOfRange):
		return "Page out of range"

	case store.IsNotFoundError(err):
		return "Resource not found"

	case errors.Is(err, store.ErrInvalidBody):
		return "Invalid request body"

	case errors.Is(err, store.ErrInvalidOrder):
		return "Invalid sort order"

	case errors.Is(err, store.ErrUndefinedColumn):
		return "The specified field is invalid. Please check your input and try again."

	case errors.Is(err, store.ErrInvalidInput):
		return "Invalid text representation"

	case errors.Is(err, store.ErrMissingField):
		return "A required field was not provided. Please ensure all necessary information is filled in and try again"

	case errors.Is(err, store.ErrInvalidEntity):
		return "The referenced data does not exist. Please check and try again"

	case errors.Is(err, store.ErrDuplicate):
		return "Resource already exists"

	case errors.Is(err, store.ErrDeleteRestricted):
		return "Article still has comments"

	default:
		return "Server error"
	}
}

// HandleAPIError maps err to a status and message and writes the error
// response, logging the raw error.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
