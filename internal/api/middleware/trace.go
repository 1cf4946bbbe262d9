// Package middleware provides HTTP middleware shared by all routes.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/ncnews/news-api/internal/api/shared"
	"github.com/ncnews/news-api/internal/platform/logger"
)

// NewTraceMiddleware returns middleware that assigns each request a
// trace ID and attaches a trace-scoped logger to the context. Apply it
// early in the chain so every handler and store sees the same trace ID.
func NewTraceMiddleware(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			traceID := uuid.NewString()
			ctx := shared.SetTraceID(r.Context(), traceID)

			reqLog := log.With(slog.String("trace_id", traceID))
			ctx = logger.WithLogger(ctx, reqLog)

			reqLog.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
