package layout

import (
	"context"
	"fmt"
	"log/slog"

	"resume-builder/internal/model"
	"resume-builder/internal/theme"
)

// Result is a complete pagination of one document.
type Result struct {
	Theme          theme.Descriptor `json:"theme"`
	Geometry       PageGeometry     `json:"geometry"`
	MainWidth      float64          `json:"mainWidth"`
	SecondaryWidth float64          `json:"secondaryWidth,omitempty"`
	Labels         Labels           `json:"labels"`
	Frames         []Frame          `json:"frames"`
}

// PageCount is the number of frames.
func (r Result) PageCount() int { return len(r.Frames) }

// MainBlocks concatenates the main blocks of every frame in order.
func (r Result) MainBlocks() []Block {
	var out []Block
	for _, f := range r.Frames {
		out = append(out, f.Main...)
	}
	return out
}

// Paginator runs decompose, measure and pack for a document.
type Paginator struct {
	probe    Probe
	geometry PageGeometry
	logger   *slog.Logger
}

func NewPaginator(probe Probe, geometry PageGeometry, logger *slog.Logger) *Paginator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Paginator{probe: probe, geometry: geometry, logger: logger}
}

// Geometry returns the page geometry the paginator packs against.
func (p *Paginator) Geometry() PageGeometry { return p.geometry }

// Paginate lays doc out into page frames. The same document and labels
// always produce the same result. A probe failure is reported as
// ErrMeasurementIncomplete so callers can keep showing their last result.
func (p *Paginator) Paginate(ctx context.Context, doc model.Document, labels Labels) (Result, error) {
	desc := theme.Resolve(doc.Theme)
	labels = labels.WithDefaults()
	if err := p.geometry.Validate(desc); err != nil {
		return Result{}, newError("geometry", err)
	}

	cols := Decompose(doc, desc, labels)
	res := Result{
		Theme:     desc,
		Geometry:  p.geometry,
		MainWidth: p.geometry.MainWidth(desc),
		Labels:    labels,
	}
	p.logger.Debug("layout: decomposed", "theme", desc.ID, "main", len(cols.Main), "secondary", len(cols.Secondary))

	heights, err := p.measure(ctx, desc, ColumnMain, res.MainWidth, cols.Main)
	if err != nil {
		return Result{}, err
	}
	var secondaryHeights []float64
	if desc.HasSidebar() {
		res.SecondaryWidth = p.geometry.SecondaryWidth(desc)
		if len(cols.Secondary) > 0 {
			secondaryHeights, err = p.measure(ctx, desc, ColumnSecondary, res.SecondaryWidth, cols.Secondary)
			if err != nil {
				return Result{}, err
			}
		}
	}

	frames, err := BuildFrames(cols, heights, secondaryHeights, p.geometry.ContentHeight(), desc.HasSidebar(), labels)
	if err != nil {
		return Result{}, newError("pack", err)
	}
	res.Frames = frames
	p.logger.Debug("layout: packed", "theme", desc.ID, "pages", len(frames))
	return res, nil
}

// measure is the probe phase: it runs after decomposition and before
// packing, and validates what the probe read back.
func (p *Paginator) measure(ctx context.Context, desc theme.Descriptor, col Column, width float64, blocks []Block) ([]float64, error) {
	if len(blocks) == 0 {
		return []float64{}, nil
	}
	heights, err := p.probe.Measure(ctx, MeasureRequest{Theme: desc, Column: col, Width: width, Blocks: blocks})
	if err == nil {
		err = checkHeights(blocks, heights)
	}
	if err != nil {
		return nil, newError("measure", fmt.Errorf("%w: %s column: %w", ErrMeasurementIncomplete, col, err))
	}
	return heights, nil
}
