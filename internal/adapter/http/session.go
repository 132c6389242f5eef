package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
)

type createSessionRequest struct {
	Seed *int64 `json:"seed"`
}

// handleCreateSession generates a new dataset. The optional JSON body may
// carry a seed; an empty body uses the configured seed.
func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	info, err := h.svc.CreateSession(r.Context(), req.Seed)
	if err != nil {
		h.writeError(w, "create session error", err)
		return
	}
	h.logger.Info("session created", slog.String("id", info.ID), slog.Int64("seed", info.Seed))
	writeJSON(w, h.logger, http.StatusCreated, info)
}

func (h *Handler) handleGetSession(w http.ResponseWriter, r *http.Request) {
	info, err := h.svc.GetSession(r.Context(), sessionID(r))
	if err != nil {
		h.writeError(w, "get session error", err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, info)
}

func (h *Handler) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id := sessionID(r)
	if err := h.svc.DeleteSession(r.Context(), id); err != nil {
		h.writeError(w, "delete session error", err)
		return
	}
	h.logger.Info("session deleted", slog.String("id", id))
	w.WriteHeader(http.StatusNoContent)
}
