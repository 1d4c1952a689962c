package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/blogem/petition-desk/metrics"
)

// PrometheusMiddleware records request count and latency per route pattern.
// Unmatched paths share one label so scanners cannot grow the series count.
func PrometheusMiddleware(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			now := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			path := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					path = pattern
				}
			}

			statusCode := ww.Status()
			if statusCode == 0 {
				statusCode = http.StatusOK
			}
			code := strconv.Itoa(statusCode)
			elapsedSeconds := time.Since(now).Seconds()

			m.TotalRequests.WithLabelValues(path, code, r.Method).Inc()
			m.HttpDuration.WithLabelValues(path, code, r.Method).Observe(elapsedSeconds)
		})
	}
}
