package httpadapter

import (
	"net/http"
)

// handleDashboard returns every aggregation for the filtered view of a
// session (or the default session). Filter parameters are documented on
// parseFilter. Malformed dates and unknown enum values result in HTTP 400;
// unknown sessions in HTTP 404.
func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	spec, err := parseFilter(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	d, err := h.svc.Dashboard(r.Context(), sessionID(r), spec)
	if err != nil {
		h.writeError(w, "dashboard error", err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, d)
}

// handleCampaigns returns the filtered campaign rows as JSON.
func (h *Handler) handleCampaigns(w http.ResponseWriter, r *http.Request) {
	spec, err := parseFilter(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	rows, err := h.svc.Campaigns(r.Context(), sessionID(r), spec)
	if err != nil {
		h.writeError(w, "campaigns error", err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, rows)
}

// handleMeta lists the filter options and defaults.
func (h *Handler) handleMeta(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, h.svc.Meta(r.Context()))
}
