package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"fundboard/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds a DashboardUseCase to execute business logic and a logger for
// structured logging. Routes are registered on a chi.Router for convenient
// method handling.
type Handler struct {
	svc           port.DashboardUseCase
	logger        *slog.Logger
	router        chi.Router
	exportLimiter *rate.Limiter
}

// Options tunes the HTTP adapter.
type Options struct {
	// ExportRPS and ExportBurst bound CSV export requests across all
	// clients. A non-positive ExportRPS disables the limit.
	ExportRPS   float64
	ExportBurst int
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.DashboardUseCase, logger *slog.Logger, opts Options) *Handler {
	h := &Handler{svc: svc, logger: logger}
	if opts.ExportRPS > 0 {
		h.exportLimiter = rate.NewLimiter(rate.Limit(opts.ExportRPS), max(opts.ExportBurst, 1))
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(h.instrument)

	r.Get("/healthz", h.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/meta", h.handleMeta)
		r.Get("/dashboard", h.handleDashboard)
		r.Get("/campaigns", h.handleCampaigns)
		r.With(h.limitExports).Get("/export.csv", h.handleExport)

		r.Post("/sessions", h.handleCreateSession)
		r.Route("/sessions/{id}", func(r chi.Router) {
			r.Get("/", h.handleGetSession)
			r.Delete("/", h.handleDeleteSession)
			r.Get("/dashboard", h.handleDashboard)
			r.Get("/campaigns", h.handleCampaigns)
			r.With(h.limitExports).Get("/export.csv", h.handleExport)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, map[string]string{"status": "ok"})
}

// sessionID returns the {id} path parameter, empty on default-session
// routes.
func sessionID(r *http.Request) string {
	return chi.URLParam(r, "id")
}
