package layout

import (
	"context"
	"errors"
	"reflect"
	"strconv"
	"testing"

	"resume-builder/internal/model"
)

// fixedProbe answers every block with the same height and records widths.
type fixedProbe struct {
	height float64
	widths map[Column]float64
}

func (p *fixedProbe) Measure(_ context.Context, req MeasureRequest) ([]float64, error) {
	if p.widths == nil {
		p.widths = map[Column]float64{}
	}
	p.widths[req.Column] = req.Width
	out := make([]float64, len(req.Blocks))
	for i := range out {
		out[i] = p.height
	}
	return out, nil
}

func TestPaginateProbeWidthsFollowColumns(t *testing.T) {
	probe := &fixedProbe{height: 10}
	pg := NewPaginator(probe, DefaultGeometry(), nil)

	doc := model.SampleDocument()
	doc.Theme = "standard"
	res, err := pg.Paginate(context.Background(), doc, DefaultLabels())
	if err != nil {
		t.Fatalf("Paginate: %v", err)
	}
	if probe.widths[ColumnMain] != 458 || probe.widths[ColumnSecondary] != 192 {
		t.Fatalf("probe widths %v", probe.widths)
	}
	if res.MainWidth != 458 || res.SecondaryWidth != 192 {
		t.Fatalf("result widths %v / %v", res.MainWidth, res.SecondaryWidth)
	}

	doc.Theme = "executive"
	probe.widths = nil
	if _, err := pg.Paginate(context.Background(), doc, DefaultLabels()); err != nil {
		t.Fatalf("Paginate: %v", err)
	}
	if probe.widths[ColumnMain] != 698 {
		t.Fatalf("single column width %v", probe.widths[ColumnMain])
	}
	if _, ok := probe.widths[ColumnSecondary]; ok {
		t.Fatalf("single column themes have no secondary probe")
	}
}

func TestPaginateUnknownThemeFallsBack(t *testing.T) {
	doc := model.SampleDocument()
	doc.Theme = "does-not-exist"
	res, err := NewPaginator(&fixedProbe{height: 10}, DefaultGeometry(), nil).Paginate(context.Background(), doc, Labels{})
	if err != nil {
		t.Fatalf("Paginate: %v", err)
	}
	if res.Theme.ID != "standard" {
		t.Fatalf("theme %q", res.Theme.ID)
	}
}

func TestPaginateFramesAndMarkers(t *testing.T) {
	doc := model.SampleDocument()
	doc.Theme = "modern"
	res, err := NewPaginator(&fixedProbe{height: 300}, DefaultGeometry(), nil).Paginate(context.Background(), doc, DefaultLabels())
	if err != nil {
		t.Fatalf("Paginate: %v", err)
	}
	n := res.PageCount()
	if n < 2 {
		t.Fatalf("expected several pages, got %d", n)
	}
	for i, f := range res.Frames {
		if f.Index != i+1 || f.Total != n {
			t.Fatalf("frame %d numbered %d/%d", i, f.Index, f.Total)
		}
		if f.Marker == "" {
			t.Fatalf("frame %d missing marker", i)
		}
		if len(f.Main) != len(f.MainHeights) {
			t.Fatalf("frame %d heights misaligned", i)
		}
		if len(f.Main) > 1 && f.Used > res.Geometry.ContentHeight() {
			t.Fatalf("frame %d overfull: %v", i, f.Used)
		}
	}
	if res.Frames[0].Marker != "Page 1 of "+strconv.Itoa(n) {
		t.Fatalf("marker %q", res.Frames[0].Marker)
	}
	if len(res.Frames[0].Secondary) == 0 || res.Frames[0].Continuation != "" {
		t.Fatalf("first frame carries the full sidebar")
	}
	for _, f := range res.Frames[1:] {
		if len(f.Secondary) != 0 || f.Continuation != "continued" {
			t.Fatalf("frame %d should only carry the continuation marker", f.Index)
		}
	}

	var all []Block
	for _, f := range res.Frames {
		all = append(all, f.Main...)
	}
	cols := Decompose(doc, res.Theme, DefaultLabels())
	if !reflect.DeepEqual(keys(all), keys(cols.Main)) {
		t.Fatalf("frames do not cover the main column")
	}
}

func TestPaginateSinglePageHasNoMarker(t *testing.T) {
	res, err := NewPaginator(&fixedProbe{height: 10}, DefaultGeometry(), nil).Paginate(context.Background(), personalOnly(), DefaultLabels())
	if err != nil {
		t.Fatalf("Paginate: %v", err)
	}
	if res.PageCount() != 1 || res.Frames[0].Marker != "" {
		t.Fatalf("got %d frames, marker %q", res.PageCount(), res.Frames[0].Marker)
	}
}

func TestPaginateProbeFailureIsIncomplete(t *testing.T) {
	boom := errors.New("not mounted")
	probe := ProbeFunc(func(context.Context, MeasureRequest) ([]float64, error) { return nil, boom })
	_, err := NewPaginator(probe, DefaultGeometry(), nil).Paginate(context.Background(), model.SampleDocument(), DefaultLabels())
	if !errors.Is(err, ErrMeasurementIncomplete) || !errors.Is(err, boom) {
		t.Fatalf("expected incomplete measurement wrapping the cause, got %v", err)
	}
	var lerr *Error
	if !errors.As(err, &lerr) || lerr.Op != "measure" {
		t.Fatalf("expected a measure error, got %v", err)
	}

	short := ProbeFunc(func(_ context.Context, req MeasureRequest) ([]float64, error) {
		return make([]float64, len(req.Blocks)-1), nil
	})
	_, err = NewPaginator(short, DefaultGeometry(), nil).Paginate(context.Background(), model.SampleDocument(), DefaultLabels())
	if !errors.Is(err, ErrMeasurementIncomplete) || !errors.Is(err, ErrHeightsMismatch) {
		t.Fatalf("short measurement should be incomplete, got %v", err)
	}
}

func TestPaginateIsIdempotent(t *testing.T) {
	pg := NewPaginator(NewMetricsProbe(stubTypesetter{}), DefaultGeometry(), nil)
	doc := model.SampleDocument()
	a, err := pg.Paginate(context.Background(), doc, DefaultLabels())
	if err != nil {
		t.Fatalf("Paginate: %v", err)
	}
	b, _ := pg.Paginate(context.Background(), doc, DefaultLabels())
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("pagination differs between runs")
	}
}

func TestPaginateRejectsBadGeometry(t *testing.T) {
	g := DefaultGeometry()
	g.Padding = 600
	_, err := NewPaginator(&fixedProbe{height: 1}, g, nil).Paginate(context.Background(), model.SampleDocument(), DefaultLabels())
	if !errors.Is(err, ErrInvalidGeometry) {
		t.Fatalf("expected ErrInvalidGeometry, got %v", err)
	}
}
