package infrastructure

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"

	"resume-builder/internal/layout"
)

// ProbeMarkup renders the off-screen probe document for a column.
type ProbeMarkup interface {
	Probe(req layout.MeasureRequest) ([]byte, error)
}

// measureScript waits for web fonts, then reads each block's laid out
// height plus its vertical margins.
const measureScript = `document.fonts.ready.then(() =>
  Array.from(document.querySelectorAll('#probe > [data-key]')).map((el) => {
    const cs = getComputedStyle(el);
    return el.getBoundingClientRect().height + parseFloat(cs.marginTop) + parseFloat(cs.marginBottom);
  }))`

// ChromedpProbe measures blocks in a real browser layout engine using the
// same templates and stylesheet as the page renderer.
type ChromedpProbe struct {
	Markup     ProbeMarkup
	ChromePath string
	Timeout    time.Duration
}

func NewChromedpProbe(markup ProbeMarkup, chromePath string) *ChromedpProbe {
	return &ChromedpProbe{Markup: markup, ChromePath: chromePath, Timeout: 30 * time.Second}
}

func (p *ChromedpProbe) Measure(ctx context.Context, req layout.MeasureRequest) ([]float64, error) {
	html, err := p.Markup.Probe(req)
	if err != nil {
		return nil, err
	}
	htmlURL, cleanup, err := writeTemp("probe-", html)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	cctx, cancel := browser(ctx, p.ChromePath)
	defer cancel()
	ctx2, cancel2 := context.WithTimeout(cctx, p.Timeout)
	defer cancel2()

	var heights []float64
	err = chromedp.Run(ctx2,
		chromedp.Navigate(htmlURL),
		chromedp.WaitReady("#probe", chromedp.ByQuery),
		chromedp.Evaluate(measureScript, &heights, awaitPromise),
	)
	if err != nil {
		return nil, fmt.Errorf("chromedp probe: %w", err)
	}
	if len(heights) != len(req.Blocks) {
		return nil, fmt.Errorf("chromedp probe: read %d heights for %d blocks", len(heights), len(req.Blocks))
	}
	return heights, nil
}

func awaitPromise(ep *runtime.EvaluateParams) *runtime.EvaluateParams {
	return ep.WithAwaitPromise(true)
}
