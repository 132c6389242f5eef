package httpadapter

import (
	"bytes"
	"log/slog"
	"net/http"
	"strconv"

	"fundboard/internal/report"
)

// handleExport streams the filtered campaigns as a CSV attachment. The body
// is rendered into memory first so a failure can still produce a clean
// error response.
func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	spec, err := parseFilter(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	rows, err := h.svc.Campaigns(r.Context(), sessionID(r), spec)
	if err != nil {
		h.writeError(w, "export error", err)
		return
	}

	var buf bytes.Buffer
	if err = report.WriteCSV(&buf, rows); err != nil {
		h.writeError(w, "export encode error", err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+report.CSVFilename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	if _, err = buf.WriteTo(w); err != nil {
		h.logger.Warn("export write error", slog.Any("error", err))
	}
}
