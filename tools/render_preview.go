package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"resume-builder/internal/domain"
	"resume-builder/internal/layout"
	"resume-builder/internal/model"
	"resume-builder/internal/render"
	infra "resume-builder/pkg/infrastructure"
)

// Renders a document (or the sample) to a standalone preview page so the
// page frames can be inspected in a browser.
func main() {
	doc := model.SampleDocument()
	if len(os.Args) > 1 {
		b, err := os.ReadFile(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "read document: %v\n", err)
			os.Exit(2)
		}
		if doc, err = model.DecodeDocument(b); err != nil {
			fmt.Fprintf(os.Stderr, "decode document: %v\n", err)
			os.Exit(2)
		}
		doc = model.Normalize(doc, domain.NewSequenceGenerator("id").NewID)
	}

	ts, err := infra.NewCanvasTypesetter()
	if err != nil {
		fmt.Fprintf(os.Stderr, "fonts: %v\n", err)
		os.Exit(2)
	}
	renderer, err := render.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "templates: %v\n", err)
		os.Exit(2)
	}
	res, err := layout.NewPaginator(layout.NewMetricsProbe(ts), layout.DefaultGeometry(), nil).
		Paginate(context.Background(), doc, layout.DefaultLabels())
	if err != nil {
		fmt.Fprintf(os.Stderr, "paginate: %v\n", err)
		os.Exit(2)
	}
	html, err := renderer.Pages(res, doc.Personal.FullName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(2)
	}

	outFile := filepath.Join("resume-data", "preview", res.Theme.ID+".html")
	if err := os.MkdirAll(filepath.Dir(outFile), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "create dir: %v\n", err)
		os.Exit(2)
	}
	if err := os.WriteFile(outFile, html, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write: %v\n", err)
		os.Exit(2)
	}
	fmt.Printf("wrote %s (%d pages)\n", outFile, res.PageCount())
}
