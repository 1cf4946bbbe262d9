package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ncnews/news-api/internal/store"
)

// requestBody is a decoded JSON object. Bodies are decoded untyped so
// required fields can be checked for truthiness before any type
// coercion happens.
type requestBody map[string]any

// decodeBody decodes the request body into a map. A body that is not a
// JSON object fails with ErrInvalidBody.
func decodeBody(r *http.Request) (requestBody, error) {
	var body requestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidBody, err)
	}
	return body, nil
}

// requireTruthy confirms every named field is present and truthy.
// Presence alone is not enough: empty strings, zero and null all fail,
// so a comment with body "" is invalid even though the field is there.
// Note this makes inc_votes of 0 an invalid body.
func (b requestBody) requireTruthy(fields ...string) error {
	for _, field := range fields {
		if !truthy(b[field]) {
			return fmt.Errorf("%w: missing or empty field %q", store.ErrInvalidBody, field)
		}
	}
	return nil
}

func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case float64:
		return x != 0
	default:
		return true
	}
}

// stringField extracts an optional string field, returning fallback when
// the field is absent. A value of another type fails with
// ErrInvalidInput, mirroring the store's type-coercion errors.
func (b requestBody) stringField(field, fallback string) (string, error) {
	v, ok := b[field]
	if !ok || v == nil {
		return fallback, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: field %q is not a string", store.ErrInvalidInput, field)
	}
	return s, nil
}

// intField extracts an integer field. JSON numbers arrive as float64;
// anything else, or a fractional value, fails with ErrInvalidInput.
func (b requestBody) intField(field string) (int, error) {
	v, ok := b[field]
	if !ok || v == nil {
		return 0, fmt.Errorf("%w: missing field %q", store.ErrInvalidBody, field)
	}
	f, ok := v.(float64)
	if !ok || f != float64(int(f)) {
		return 0, fmt.Errorf("%w: field %q is not an integer", store.ErrInvalidInput, field)
	}
	return int(f), nil
}
