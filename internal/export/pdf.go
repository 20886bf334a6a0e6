package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"

	"github.com/gymms/portal/internal/models"
)

// ErrPDFUnavailable is returned when no PDF renderer was configured.
var ErrPDFUnavailable = errors.New("pdf renderer not available")

// PDFRenderer converts an HTML document into PDF bytes.
type PDFRenderer interface {
	Render(ctx context.Context, html string) ([]byte, error)
	Close() error
}

const reportTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
body { font-family: sans-serif; margin: 24px; }
h1 { font-size: 18px; }
table { width: 100%; border-collapse: collapse; }
th, td { border-bottom: 1px solid #ccc; padding: 6px 8px; text-align: left; font-size: 12px; }
.muted { color: #777; }
</style>
</head>
<body>
<h1>Gym Member Report</h1>
{{if .Members}}
<table>
<tr><th>Name</th><th>Phone</th><th>Package</th><th>Start Date</th></tr>
{{range .Members}}<tr><td>{{.Name}}</td><td>{{.Phone}}</td><td>{{.Package}}</td><td>{{.StartDate}}</td></tr>
{{end}}</table>
{{else}}
<p class="muted">No members found.</p>
{{end}}
</body>
</html>`

var reportTmpl = template.Must(template.New("report").Parse(reportTemplate))

// renderReportHTML fills the report template. A zero-member report is still
// a valid document with an empty note.
func renderReportHTML(members []models.Member) (string, error) {
	var buf bytes.Buffer
	err := reportTmpl.Execute(&buf, struct{ Members []models.Member }{members})
	if err != nil {
		return "", fmt.Errorf("report template: %w", err)
	}
	return buf.String(), nil
}

// WritePDF renders the member report to PDF and writes it out. It returns
// the number of members on the report.
func (e *Exporter) WritePDF(ctx context.Context, w io.Writer) (int, error) {
	if e.renderer == nil {
		return 0, ErrPDFUnavailable
	}

	members, err := e.data.ListMembers(ctx, "name", "asc")
	if err != nil {
		return 0, fmt.Errorf("pdf export: %w", err)
	}

	html, err := renderReportHTML(members)
	if err != nil {
		return 0, err
	}

	pdf, err := e.renderer.Render(ctx, html)
	if err != nil {
		return 0, fmt.Errorf("pdf export: %w", err)
	}
	if _, err := w.Write(pdf); err != nil {
		return 0, fmt.Errorf("pdf export: %w", err)
	}

	e.logger.Info("exported members to PDF", "count", len(members), "bytes", len(pdf))
	return len(members), nil
}
