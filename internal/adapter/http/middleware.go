package httpadapter

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"fundboard/internal/metrics"
)

// instrument records request latency labelled by the matched route pattern
// so session ids do not explode label cardinality.
func (h *Handler) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		metrics.RecordRequest(route, status, time.Since(start))
	})
}

// limitExports rejects export requests beyond the configured rate with 429.
func (h *Handler) limitExports(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.exportLimiter != nil && !h.exportLimiter.Allow() {
			w.Header().Set("Retry-After", "1")
			http.Error(w, "too many export requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
