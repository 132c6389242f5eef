package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"fundboard/internal/core/port"
)

func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; headers are already sent
		logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps use case errors onto status codes. Unknown errors are
// logged and reported as 500 without detail.
func (h *Handler) writeError(w http.ResponseWriter, msg string, err error) {
	switch {
	case errors.Is(err, port.ErrSessionNotFound):
		http.Error(w, "session not found", http.StatusNotFound)
	case errors.Is(err, port.ErrSessionPinned):
		http.Error(w, "default session cannot be deleted", http.StatusConflict)
	case errors.Is(err, port.ErrInvalidFilter):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		h.logger.Error(msg, slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
