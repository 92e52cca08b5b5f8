package middleware

import (
	"net/http"
	"strconv"
	"time"

	"festival-scoreboard/pkg/logger"
	"festival-scoreboard/pkg/metrics"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// RequestLogger logs every request and records it in m. Metrics are labelled
// with the chi route pattern so path parameters do not explode cardinality.
func RequestLogger(logger *logger.Logger, m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			duration := time.Since(start)

			route := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					route = pattern
				}
			}
			m.RecordHTTPRequest(route, r.Method, strconv.Itoa(status), duration.Seconds())

			log := logger.WithFields(map[string]interface{}{
				"request_id":  GetRequestID(r.Context()),
				"method":      r.Method,
				"path":        r.URL.Path,
				"route":       route,
				"status":      status,
				"bytes":       ww.BytesWritten(),
				"duration_ms": duration.Milliseconds(),
			})
			switch {
			case status >= 500:
				log.Error("Request failed")
			case status >= 400:
				log.Info("Request completed with client error")
			default:
				log.Debug("Request completed")
			}
		})
	}
}
