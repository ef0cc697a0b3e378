package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/vfg2006/rank-api/pkg/metrics"
)

// MetricsMiddleware alimenta os contadores Prometheus de requisições HTTP
func MetricsMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lrw := newLoggingResponseWriter(w)
			startTime := time.Now()

			next.ServeHTTP(lrw, r)

			metrics.HTTPRequests.WithLabelValues(
				r.Method,
				r.URL.Path,
				strconv.Itoa(lrw.statusCode),
			).Inc()
			metrics.HTTPRequestDuration.WithLabelValues(r.Method, r.URL.Path).
				Observe(time.Since(startTime).Seconds())
		})
	}
}
