package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/ncnews/news-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "not found", err: store.ErrNotFound, want: http.StatusNotFound},
		{name: "article not found", err: store.ErrArticleNotFound, want: http.StatusNotFound},
		{name: "page out of range", err: store.ErrPageOutOfRange, want: http.StatusNotFound},
		{name: "invalid body", err: store.ErrInvalidBody, want: http.StatusBadRequest},
		{name: "invalid order", err: store.ErrInvalidOrder, want: http.StatusBadRequest},
		{name: "undefined column", err: store.ErrUndefinedColumn, want: http.StatusBadRequest},
		{name: "invalid input", err: store.ErrInvalidInput, want: http.StatusBadRequest},
		{name: "foreign key violation", err: store.ErrInvalidEntity, want: http.StatusBadRequest},
		{name: "not null violation", err: store.ErrMissingField, want: http.StatusBadRequest},
		{name: "delete restricted", err: store.ErrDeleteRestricted, want: http.StatusBadRequest},
		{name: "duplicate", err: store.ErrDuplicate, want: http.StatusConflict},
		{name: "unclassified", err: errors.New("boom"), want: http.StatusInternalServerError},
		{name: "nil", err: nil, want: http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "not found", err: store.ErrCommentNotFound, want: "Resource not found"},
		{name: "page out of range", err: store.ErrPageOutOfRange, want: "Page out of range"},
		{name: "invalid body", err: store.ErrInvalidBody, want: "Invalid request body"},
		{name: "invalid order", err: store.ErrInvalidOrder, want: "Invalid sort order"},
		{
			name: "undefined column",
			err:  store.ErrUndefinedColumn,
			want: "The specified field is invalid. Please check your input and try again.",
		},
		{name: "invalid input", err: store.ErrInvalidInput, want: "Invalid text representation"},
		{
			name: "not null violation",
			err:  store.ErrMissingField,
			want: "A required field was not provided. Please ensure all necessary information is filled in and try again",
		},
		{
			name: "foreign key violation",
			err:  store.ErrInvalidEntity,
			want: "The referenced data does not exist. Please check and try again",
		},
		{name: "unclassified", err: errors.New("pool exhausted"), want: "Server error"},
		{name: "nil", err: nil, want: "Server error"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, GetSafeErrorMessage(tc.err))
		})
	}
}

func TestGetSafeErrorMessage_WrappedSentinels(t *testing.T) {
	err := fmt.Errorf("listing articles: %w", store.ErrPageOutOfRange)
	assert.Equal(t, "Page out of range", GetSafeErrorMessage(err))
	assert.Equal(t, http.StatusNotFound, MapErrorToStatusCode(err))
}
