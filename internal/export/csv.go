// Package export produces the downloadable member reports: a CSV of the
// member list and a printable PDF rendered from an HTML report.
package export

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/gymms/portal/internal/models"
)

// ErrNoMembers is returned when there is nothing to export; no output is
// written in that case.
var ErrNoMembers = errors.New("no members to export")

// MemberLister is the slice of the data gateway the exporter needs.
type MemberLister interface {
	ListMembers(ctx context.Context, sortField, sortDir string) ([]models.Member, error)
}

// Exporter builds member reports from the current member list.
type Exporter struct {
	data     MemberLister
	renderer PDFRenderer
	logger   *slog.Logger
}

// NewExporter creates an exporter. renderer may be nil, in which case PDF
// export reports ErrPDFUnavailable.
func NewExporter(data MemberLister, renderer PDFRenderer, logger *slog.Logger) *Exporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Exporter{data: data, renderer: renderer, logger: logger}
}

// WriteCSV writes the member list as CSV: a header line followed by one row
// per member, fields in the order Name, Phone, Package, Start Date. It
// returns the number of exported members.
func (e *Exporter) WriteCSV(ctx context.Context, w io.Writer) (int, error) {
	members, err := e.data.ListMembers(ctx, "name", "asc")
	if err != nil {
		return 0, fmt.Errorf("csv export: %w", err)
	}
	if len(members) == 0 {
		return 0, ErrNoMembers
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Name", "Phone", "Package", "Start Date"}); err != nil {
		return 0, fmt.Errorf("csv export: %w", err)
	}
	for _, m := range members {
		if err := cw.Write([]string{m.Name, m.Phone, m.Package, m.StartDate}); err != nil {
			return 0, fmt.Errorf("csv export: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, fmt.Errorf("csv export: %w", err)
	}

	e.logger.Info("exported members to CSV", "count", len(members))
	return len(members), nil
}
