// Package observability provides request logging, tracing and metrics
// middleware for the web service.
package observability

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/foodgram/foodgram/internal/platform/logging"
	"github.com/foodgram/foodgram/internal/services/web/platform/httpx"
)

// RequestLogger attaches a request-scoped logger to the context and writes
// one access log entry per request.
func RequestLogger(logger *zap.Logger) httpx.Middleware {
	if logger == nil {
		logger = logging.Default()
	}
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := logging.WithFields(logging.WithLogger(r.Context(), logger),
				zap.String("request_id", httpx.RequestIDFromRequest(r)),
			)
			reqLogger := logging.Get(ctx)

			start := time.Now()
			rec := newStatusRecorder(w)
			next.ServeHTTP(rec, r.WithContext(ctx))

			reqLogger.Info("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", rec.statusCode()),
				zap.Int("bytes", rec.bytes),
				zap.Duration("latency", time.Since(start)),
				zap.String("user_agent", r.UserAgent()),
			)
		})
	}
}
