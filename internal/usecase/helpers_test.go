package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"resume-builder/internal/domain"
	"resume-builder/internal/layout"
	"resume-builder/internal/model"
)

// switchProbe answers every block with 20 units until failing is set.
type switchProbe struct {
	failing atomic.Bool
	calls   atomic.Int32
}

func (p *switchProbe) Measure(_ context.Context, req layout.MeasureRequest) ([]float64, error) {
	p.calls.Add(1)
	if p.failing.Load() {
		return nil, errors.New("probe not mounted")
	}
	out := make([]float64, len(req.Blocks))
	for i := range out {
		out[i] = 20
	}
	return out, nil
}

func newSessions(t *testing.T) (*Sessions, *switchProbe) {
	t.Helper()
	probe := &switchProbe{}
	pg := layout.NewPaginator(probe, layout.DefaultGeometry(), nil)
	return NewSessions(pg, NewEditor(domain.NewSequenceGenerator("id")), nil), probe
}

func emptyDoc() model.Document {
	return model.Document{SectionOrder: []string{model.SectionPersonal, model.SectionExperience}, Theme: "executive"}
}
