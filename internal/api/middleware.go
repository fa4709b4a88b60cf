package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shapeworks/geometry-service/internal/logging"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

const requestIDHeader = "X-Request-Id"

// RequestIDMiddleware ensures every request carries a request_id, sourcing
// it from the inbound header when provided, and attaches a per-request
// logger annotated with the ID and route to the context.
func RequestIDMiddleware(base logging.Logger) mux.MiddlewareFunc {
	if base == nil {
		base = logging.Noop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if incoming := r.Header.Get(requestIDHeader); incoming != "" {
				ctx = logging.ContextWithRequestID(ctx, incoming)
			}

			ctx, reqLog := logging.WithRequestLogger(ctx, base.With(
				logging.String("method", r.Method),
				logging.String("path", r.URL.Path),
			))
			ctx = logging.ContextWithLogger(ctx, reqLog)

			w.Header().Set(requestIDHeader, logging.RequestIDFromContext(ctx))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// TracingMiddleware opens a span per request, named after the matched
// route, on the globally configured tracer provider.
func TracingMiddleware() mux.MiddlewareFunc {
	tracer := otel.Tracer("geometry-service/api")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			name := r.URL.Path
			if route := mux.CurrentRoute(r); route != nil && route.GetName() != "" {
				name = route.GetName()
			}

			ctx, span := tracer.Start(r.Context(), name)
			span.SetAttributes(
				attribute.String("http.method", r.Method),
				attribute.String("http.target", r.URL.Path),
			)
			defer span.End()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
