package middleware

import (
	"net/http"

	"github.com/angelmondragon/salesboard/pkg/metrics"
	"github.com/go-chi/chi/v5"
)

// Metrics records request metrics labelled by the matched chi route pattern.
func Metrics(m *metrics.HTTPMetrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if m == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			done := m.Start()
			rec := &statusRecorder{ResponseWriter: w}

			next.ServeHTTP(rec, r)

			done(routeLabel(r), r.Method, rec.statusCode())
		})
	}
}

// routeLabel prefers the route template to keep label cardinality low.
func routeLabel(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unmatched"
}
