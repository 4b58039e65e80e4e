package observability

import (
	"net/http"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/foodgram/foodgram/internal/services/web/platform/httpx"
)

// Tracing starts one server span per request using the global tracer
// provider. The span is named after the method until RouteSpanName
// renames it to the matched route.
func Tracing(operation string) httpx.Middleware {
	return tracingWithProvider(operation, otel.GetTracerProvider())
}

func tracingWithProvider(operation string, provider trace.TracerProvider) httpx.Middleware {
	operation = strings.TrimSpace(operation)
	if operation == "" {
		operation = "web"
	}
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return otelhttp.NewHandler(next, operation,
			otelhttp.WithTracerProvider(provider),
			otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
				return methodLabel(r.Method)
			}),
		)
	}
}

// RouteSpanName renames the request span to "<method> <route>" once a
// ServeMux has matched the request. It must wrap the mux directly, since
// the mux records the pattern on the request it is handed.
func RouteSpanName() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)
			if name := routeSpanName(r); name != "" {
				trace.SpanFromContext(r.Context()).SetName(name)
			}
		})
	}
}

func routeSpanName(r *http.Request) string {
	pattern := strings.TrimSpace(r.Pattern)
	if pattern == "" {
		return ""
	}
	// Method patterns such as "GET /up" already lead with the method.
	if method, _, ok := strings.Cut(pattern, " "); ok && method != "" && !strings.HasPrefix(method, "/") {
		return pattern
	}
	return methodLabel(r.Method) + " " + pattern
}
