// Package render turns page frames and probe requests into HTML.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strconv"

	"resume-builder/internal/layout"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Renderer renders page frames and probe surfaces from the same block
// templates and stylesheet, so probe heights match what is painted.
type Renderer struct {
	tpl *template.Template
}

func New() (*Renderer, error) {
	tpl, err := template.New("render").Funcs(template.FuncMap{"px": px}).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tpl: tpl}, nil
}

// Pages renders every frame of res as a fixed-size A4 section.
func (r *Renderer) Pages(res layout.Result, title string) ([]byte, error) {
	data := struct {
		Title   string
		CSS     template.CSS
		Sidebar bool
		Frames  []layout.Frame
	}{
		Title:   title,
		CSS:     template.CSS(pageCSS(res.Theme, res.Geometry) + blockCSS(res.Theme)),
		Sidebar: res.Theme.HasSidebar(),
		Frames:  res.Frames,
	}
	var buf bytes.Buffer
	if err := r.tpl.ExecuteTemplate(&buf, "pages", data); err != nil {
		return nil, fmt.Errorf("render pages: %w", err)
	}
	return buf.Bytes(), nil
}

// Probe renders an unconstrained-height column of req.Blocks at req.Width.
func (r *Renderer) Probe(req layout.MeasureRequest) ([]byte, error) {
	scope := "probe-main"
	if req.Column == layout.ColumnSecondary {
		scope = "probe-secondary sidebar-scope"
	}
	data := struct {
		CSS    template.CSS
		Scope  string
		Width  float64
		Blocks []layout.Block
	}{
		CSS:    template.CSS(probeCSS() + blockCSS(req.Theme)),
		Scope:  scope,
		Width:  req.Width,
		Blocks: req.Blocks,
	}
	var buf bytes.Buffer
	if err := r.tpl.ExecuteTemplate(&buf, "probe", data); err != nil {
		return nil, fmt.Errorf("render probe: %w", err)
	}
	return buf.Bytes(), nil
}

func px(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) + "px" }
