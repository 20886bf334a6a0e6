package handlers

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gymms/portal/internal/export"
	"github.com/gymms/portal/internal/portal"
)

// ExportHandler serves the member report downloads. Outcomes surface as
// toasts on the requesting client's view, like every other flow.
type ExportHandler struct {
	hub      *portal.Hub
	exporter *export.Exporter
}

func NewExportHandler(hub *portal.Hub, exporter *export.Exporter) *ExportHandler {
	return &ExportHandler{hub: hub, exporter: exporter}
}

// CSV handles GET /api/export/csv.
func (h *ExportHandler) CSV(w http.ResponseWriter, r *http.Request) {
	client, ok := clientFrom(h.hub, w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if _, err := h.exporter.WriteCSV(r.Context(), &buf); err != nil {
		if errors.Is(err, export.ErrNoMembers) {
			client.View.Toast("No members to export", portal.SeverityInfo)
			w.WriteHeader(http.StatusNoContent)
			return
		}
		client.View.Toast("Error exporting CSV", portal.SeverityError)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	client.View.Toast("CSV file downloaded", portal.SeveritySuccess)
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="gym_members.csv"`)
	_, _ = w.Write(buf.Bytes())
}

// PDF handles GET /api/export/pdf.
func (h *ExportHandler) PDF(w http.ResponseWriter, r *http.Request) {
	client, ok := clientFrom(h.hub, w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if _, err := h.exporter.WritePDF(r.Context(), &buf); err != nil {
		client.View.Toast("Error exporting PDF", portal.SeverityError)
		if errors.Is(err, export.ErrPDFUnavailable) {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	client.View.Toast("PDF file downloaded", portal.SeveritySuccess)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="gym_members.pdf"`)
	_, _ = w.Write(buf.Bytes())
}
