package middleware

import (
	"log/slog"
	"net/http"
	"time"
)

// responseWriter wraps http.ResponseWriter to capture status code and bytes written.
type responseWriter struct {
	http.ResponseWriter
	status  int
	written int64
}

func (w *responseWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *responseWriter) Write(b []byte) (n int, err error) {
	n, err = w.ResponseWriter.Write(b)
	w.written += int64(n)
	return n, err
}

// LoggingMiddleware logs each request with method, path, status, size, duration and
// request id. 5xx responses are logged at error level. Bodies are never logged.
func LoggingMiddleware(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(wrapped, r)

		level := slog.LevelInfo
		if wrapped.status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		requestID, _ := RequestIDFromContext(r.Context())
		logger.Log(r.Context(), level, "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", wrapped.status,
			"bytes", wrapped.written,
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", requestID,
		)
	})
}
