package export

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

const defaultRenderTimeout = 30 * time.Second

// ChromedpRenderer renders HTML to PDF through a headless Chrome instance
// using the DevTools protocol.
type ChromedpRenderer struct {
	allocCtx    context.Context
	allocCancel context.CancelFunc
	timeout     time.Duration
}

// NewChromedpRenderer launches the browser allocator. Pass zero to use the
// default render timeout.
func NewChromedpRenderer(timeout time.Duration) *ChromedpRenderer {
	if timeout == 0 {
		timeout = defaultRenderTimeout
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("no-first-run", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	allocCtx, cancel := chromedp.NewExecAllocator(context.Background(), opts...)

	return &ChromedpRenderer{
		allocCtx:    allocCtx,
		allocCancel: cancel,
		timeout:     timeout,
	}
}

// Render loads the document into a fresh browser tab and prints it to PDF.
func (r *ChromedpRenderer) Render(ctx context.Context, html string) ([]byte, error) {
	browserCtx, browserCancel := chromedp.NewContext(r.allocCtx)
	defer browserCancel()

	runCtx, cancel := context.WithTimeout(browserCtx, r.timeout)
	defer cancel()

	var pdf []byte
	err := chromedp.Run(runCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			data, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = data
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	if len(pdf) == 0 {
		return nil, fmt.Errorf("render pdf: empty document")
	}
	return pdf, nil
}

// Close shuts the browser allocator down.
func (r *ChromedpRenderer) Close() error {
	r.allocCancel()
	return nil
}
