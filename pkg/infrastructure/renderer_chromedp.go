package infrastructure

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"resume-builder/internal/layout"
)

// browser starts a headless Chrome, honouring an explicit executable path.
func browser(ctx context.Context, chromePath string) (context.Context, context.CancelFunc) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	}
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	cctx, cancelCtx := chromedp.NewContext(allocCtx)
	return cctx, func() {
		cancelCtx()
		cancelAlloc()
	}
}

// writeTemp stores html in a fresh temporary directory and returns its
// file:// URL and a cleanup func.
func writeTemp(prefix string, html []byte) (string, func(), error) {
	tmpDir, err := os.MkdirTemp("", prefix)
	if err != nil {
		return "", nil, err
	}
	cleanup := func() { os.RemoveAll(tmpDir) }
	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, html, 0o644); err != nil {
		cleanup()
		return "", nil, err
	}
	return "file://" + htmlPath, cleanup, nil
}

// ChromedpExporter prints rendered page frames to an A4 PDF.
type ChromedpExporter struct {
	ChromePath string
	Timeout    time.Duration
}

func NewChromedpExporter(chromePath string) *ChromedpExporter {
	return &ChromedpExporter{ChromePath: chromePath, Timeout: 60 * time.Second}
}

func (r *ChromedpExporter) Name() string { return "chromedp" }

// ExportPDF prints html; every .a4-page section becomes one PDF page.
func (r *ChromedpExporter) ExportPDF(ctx context.Context, _ layout.Result, html []byte, _ string) ([]byte, error) {
	cctx, cancel := browser(ctx, r.ChromePath)
	defer cancel()

	ctx2, cancel2 := context.WithTimeout(cctx, r.Timeout)
	defer cancel2()

	htmlURL, cleanup, err := writeTemp("resume-", html)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	var pdfBuf []byte
	var fontsReady bool
	err = chromedp.Run(ctx2,
		chromedp.Navigate(htmlURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		// inlined faces must be decoded before printing or lines reflow
		chromedp.Evaluate(`document.fonts.ready.then(() => true)`, &fontsReady, awaitPromise),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4: 210mm x 297mm -> inches: 8.27 x 11.69
			pdfBuf, _, err = page.PrintToPDF().WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuf, nil
}
