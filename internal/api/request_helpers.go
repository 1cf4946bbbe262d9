package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/ncnews/news-api/internal/store"
)

// pathID extracts a numeric id from the URL path. A malformed id fails
// with ErrInvalidInput (400) before any store operation runs, so it
// never reaches the not-found check.
func pathID(r *http.Request, paramName string) (int64, error) {
	raw := chi.URLParam(r, paramName)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", store.ErrInvalidInput, paramName, raw)
	}
	return id, nil
}

// queryInt extracts an optional numeric query parameter, returning 0
// (meaning "use the default") when absent. Non-numeric values fail with
// ErrInvalidInput.
func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", store.ErrInvalidInput, name, raw)
	}
	return n, nil
}
