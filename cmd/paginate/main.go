// Command paginate lays a resume document out into page frames and prints
// the frames as JSON. With -pdf it also exports the pages.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"resume-builder/internal/domain"
	"resume-builder/internal/layout"
	"resume-builder/internal/model"
	"resume-builder/internal/render"
	"resume-builder/internal/usecase"
	infra "resume-builder/pkg/infrastructure"
)

type summary struct {
	Theme string      `json:"theme"`
	Pages []pageDebug `json:"pages"`
}

type pageDebug struct {
	Index     int      `json:"index"`
	Marker    string   `json:"marker,omitempty"`
	Used      float64  `json:"used"`
	Main      []string `json:"main"`
	Secondary []string `json:"secondary,omitempty"`
}

func main() {
	in := flag.String("in", "", "document JSON (default: the sample document)")
	themeID := flag.String("theme", "", "override the document theme")
	labelsPath := flag.String("labels", "", "labels JSON")
	out := flag.String("out", "", "write the result here instead of stdout")
	full := flag.Bool("full", false, "print the complete result instead of block keys")
	pdfPath := flag.String("pdf", "", "also export a PDF to this path")
	exporterName := flag.String("exporter", "canvas", "PDF exporter: canvas or chromedp")
	probeName := flag.String("probe", "canvas", "measurement probe: canvas or chromedp")
	chromePath := flag.String("chrome", os.Getenv("CHROME_PATH"), "Chrome executable")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	doc := model.SampleDocument()
	if *in != "" {
		b, err := os.ReadFile(*in)
		if err != nil {
			log.Fatalf("read document: %v", err)
		}
		if doc, err = model.DecodeDocument(b); err != nil {
			log.Fatalf("decode document: %v", err)
		}
	}
	doc = model.Normalize(doc, domain.NewSequenceGenerator("id").NewID)
	if *themeID != "" {
		doc.Theme = *themeID
	}

	labels := layout.DefaultLabels()
	if *labelsPath != "" {
		b, err := os.ReadFile(*labelsPath)
		if err != nil {
			log.Fatalf("read labels: %v", err)
		}
		var m map[string]string
		if err := json.Unmarshal(b, &m); err != nil {
			log.Fatalf("decode labels: %v", err)
		}
		labels = layout.LabelsFromMap(m)
	}

	renderer, err := render.New()
	if err != nil {
		log.Fatalf("templates: %v", err)
	}
	ts, err := infra.NewCanvasTypesetter()
	if err != nil {
		log.Fatalf("fonts: %v", err)
	}
	var probe layout.Probe = layout.NewMetricsProbe(ts)
	if *probeName == "chromedp" {
		probe = infra.NewChromedpProbe(renderer, *chromePath)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	res, err := layout.NewPaginator(probe, layout.DefaultGeometry(), logger).Paginate(ctx, doc, labels)
	if err != nil {
		log.Fatalf("paginate: %v", err)
	}

	var v interface{} = res
	if !*full {
		s := summary{Theme: res.Theme.ID}
		for _, f := range res.Frames {
			p := pageDebug{Index: f.Index, Marker: f.Marker, Used: f.Used}
			for _, b := range f.Main {
				p.Main = append(p.Main, b.Key)
			}
			for _, b := range f.Secondary {
				p.Secondary = append(p.Secondary, b.Key)
			}
			s.Pages = append(s.Pages, p)
		}
		v = s
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("encode: %v", err)
	}
	if *out != "" {
		if err := os.WriteFile(*out, b, 0o644); err != nil {
			log.Fatalf("write: %v", err)
		}
	} else {
		fmt.Println(string(b))
	}

	if *pdfPath == "" {
		return
	}
	var exporter usecase.Exporter = infra.NewCanvasExporter(ts)
	if *exporterName == "chromedp" {
		exporter = infra.NewChromedpExporter(*chromePath)
	}
	html, err := renderer.Pages(res, doc.Personal.FullName)
	if err != nil {
		log.Fatalf("render: %v", err)
	}
	pdf, err := exporter.ExportPDF(ctx, res, html, doc.Personal.FullName)
	if err != nil {
		log.Fatalf("export: %v", err)
	}
	if err := os.WriteFile(*pdfPath, pdf, 0o644); err != nil {
		log.Fatalf("write pdf: %v", err)
	}
	fmt.Fprintf(os.Stderr, "wrote %s (%d pages, %d bytes)\n", *pdfPath, res.PageCount(), len(pdf))
}
