package export

import (
	"bytes"
	"context"
	"testing"

	"github.com/gymms/portal/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRenderer struct {
	lastHTML string
	output   []byte
	err      error
}

func (f *fakeRenderer) Render(ctx context.Context, html string) ([]byte, error) {
	f.lastHTML = html
	if f.err != nil {
		return nil, f.err
	}
	return f.output, nil
}

func (f *fakeRenderer) Close() error { return nil }

func TestRenderReportHTML(t *testing.T) {
	html, err := renderReportHTML([]models.Member{
		{Name: "Alice", Phone: "123", Package: "Gold", StartDate: "2026-01-01"},
	})
	require.NoError(t, err)

	assert.Contains(t, html, "Gym Member Report")
	assert.Contains(t, html, "<td>Alice</td>")
	assert.Contains(t, html, "<td>Gold</td>")
	assert.NotContains(t, html, "No members found.")
}

func TestRenderReportHTMLEmpty(t *testing.T) {
	html, err := renderReportHTML(nil)
	require.NoError(t, err)

	assert.Contains(t, html, "No members found.")
	assert.NotContains(t, html, "<table>")
}

func TestRenderReportHTMLEscapesContent(t *testing.T) {
	html, err := renderReportHTML([]models.Member{
		{Name: "<script>alert(1)</script>", Phone: "123", Package: "Gold", StartDate: "2026-01-01"},
	})
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}

func TestWritePDF(t *testing.T) {
	renderer := &fakeRenderer{output: []byte("%PDF-1.4 fake")}
	exporter := NewExporter(&fakeLister{members: []models.Member{
		{Name: "Alice", Phone: "123", Package: "Gold", StartDate: "2026-01-01"},
	}}, renderer, nil)

	var buf bytes.Buffer
	count, err := exporter.WritePDF(context.Background(), &buf)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, "%PDF-1.4 fake", buf.String())
	assert.Contains(t, renderer.lastHTML, "<td>Alice</td>")
}

func TestWritePDFZeroMembersStillRenders(t *testing.T) {
	renderer := &fakeRenderer{output: []byte("pdf")}
	exporter := NewExporter(&fakeLister{}, renderer, nil)

	var buf bytes.Buffer
	count, err := exporter.WritePDF(context.Background(), &buf)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Contains(t, renderer.lastHTML, "No members found.")
}

func TestWritePDFWithoutRenderer(t *testing.T) {
	exporter := NewExporter(&fakeLister{}, nil, nil)

	var buf bytes.Buffer
	_, err := exporter.WritePDF(context.Background(), &buf)
	require.ErrorIs(t, err, ErrPDFUnavailable)
}
