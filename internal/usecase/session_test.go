package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"resume-builder/internal/layout"
	"resume-builder/internal/model"
)

func TestOpenSample(t *testing.T) {
	s, _ := newSessions(t)
	snap, p, err := s.Open(context.Background(), nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if snap.Document.Personal.FullName != model.SampleDocument().Personal.FullName {
		t.Fatalf("expected the sample document, got %+v", snap.Document.Personal)
	}
	if !p.HasResult() || p.Stale || p.Result.PageCount() < 1 {
		t.Fatalf("preview = %+v", p)
	}
	if s.Len() != 1 {
		t.Fatalf("Len = %d", s.Len())
	}
}

func TestOpenNormalizesDocument(t *testing.T) {
	s, _ := newSessions(t)
	doc := model.Document{
		Experience:   []model.Experience{{Role: "A"}, {Role: "B"}},
		SectionOrder: []string{"experience", "ghost", "experience"},
	}
	snap, _, err := s.Open(context.Background(), &doc)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	got := snap.Document
	if got.SectionOrder[0] != model.SectionPersonal || len(got.SectionOrder) != 2 {
		t.Fatalf("order = %v", got.SectionOrder)
	}
	if got.Experience[0].ID == "" || got.Experience[0].ID == got.Experience[1].ID {
		t.Fatalf("ids not assigned: %+v", got.Experience)
	}
}

func TestApplyRepaginates(t *testing.T) {
	s, _ := newSessions(t)
	ctx := context.Background()
	doc := emptyDoc()
	snap, first, _ := s.Open(ctx, &doc)

	next, p, id, err := s.Apply(ctx, snap.ID, Edit{Op: OpAddExperience})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if id == "" || len(next.Document.Experience) != 1 {
		t.Fatalf("edit not applied: %q %+v", id, next.Document.Experience)
	}
	if p.Generation <= first.Generation || p.Stale {
		t.Fatalf("preview not refreshed: %+v", p)
	}
	if len(p.Result.MainBlocks()) <= len(first.Result.MainBlocks()) {
		t.Fatalf("new entry missing from the pages")
	}
}

func TestApplyErrorLeavesDocument(t *testing.T) {
	s, _ := newSessions(t)
	ctx := context.Background()
	snap, _, _ := s.Open(ctx, nil)
	if _, _, _, err := s.Apply(ctx, snap.ID, Edit{Op: OpRemoveSection, SectionID: "personal"}); !errors.Is(err, ErrPersonalNotRemovable) {
		t.Fatalf("expected ErrPersonalNotRemovable, got %v", err)
	}
	after, _ := s.Snapshot(snap.ID)
	if after.Generation != snap.Generation {
		t.Fatalf("failed edit bumped the generation")
	}
}

func TestMeasurementFailureKeepsStalePages(t *testing.T) {
	s, probe := newSessions(t)
	ctx := context.Background()
	snap, good, _ := s.Open(ctx, nil)

	probe.failing.Store(true)
	_, p, err := s.Replace(ctx, snap.ID, emptyDoc())
	if err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if !p.Stale || p.Generation != good.Generation || p.Error == "" {
		t.Fatalf("expected stale pages, got %+v", p)
	}
	if p.Result.PageCount() != good.Result.PageCount() {
		t.Fatalf("stale pages changed")
	}

	probe.failing.Store(false)
	p, err = s.Preview(ctx, snap.ID)
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}
	if p.Stale || p.Error != "" || p.Generation != p.Current {
		t.Fatalf("preview not recovered: %+v", p)
	}
	if p.Result.Theme.ID != "executive" {
		t.Fatalf("recovered preview is for the old document")
	}
}

func TestOlderPassDoesNotOverwriteNewer(t *testing.T) {
	s, _ := newSessions(t)
	ctx := context.Background()
	snap, _, _ := s.Open(ctx, nil)
	old, _ := s.Snapshot(snap.ID)

	_, newer, _, err := s.Apply(ctx, snap.ID, Edit{Op: OpSetTheme, Value: "minimal"})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	sess, _ := s.get(snap.ID)
	p := s.refresh(ctx, sess, old)
	if p.Generation != newer.Generation || p.Result.Theme.ID != "minimal" {
		t.Fatalf("older pass overwrote the preview: %+v", p)
	}
}

func TestPreviewCachesCurrentGeneration(t *testing.T) {
	s, probe := newSessions(t)
	ctx := context.Background()
	snap, _, _ := s.Open(ctx, nil)
	calls := probe.calls.Load()
	if _, err := s.Preview(ctx, snap.ID); err != nil {
		t.Fatalf("Preview: %v", err)
	}
	if probe.calls.Load() != calls {
		t.Fatalf("preview re-measured an unchanged document")
	}
}

func TestSetLabels(t *testing.T) {
	s, _ := newSessions(t)
	ctx := context.Background()
	snap, _, _ := s.Open(ctx, nil)
	_, p, err := s.SetLabels(ctx, snap.ID, layout.Labels{Experience: "Experiência"})
	if err != nil {
		t.Fatalf("SetLabels: %v", err)
	}
	if p.Result.Labels.Experience != "Experiência" || p.Result.Labels.Summary != layout.DefaultLabels().Summary {
		t.Fatalf("labels = %+v", p.Result.Labels)
	}
}

func TestUnknownSession(t *testing.T) {
	s, _ := newSessions(t)
	id := uuid.New()
	if _, err := s.Snapshot(id); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("Snapshot: %v", err)
	}
	if _, _, _, err := s.Apply(context.Background(), id, Edit{Op: OpSetSummary}); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("Apply: %v", err)
	}
	if err := s.Close(id); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("Close: %v", err)
	}
}

func TestReplaceRejectsInvalidDocument(t *testing.T) {
	s, _ := newSessions(t)
	ctx := context.Background()
	snap, _, _ := s.Open(ctx, nil)
	doc := model.SampleDocument()
	doc.CustomSections = []model.CustomSection{{ID: "c1", Name: "awards"}, {ID: "c1", Name: "awards"}}
	// Normalize renames the duplicate, so the document is accepted.
	out, _, err := s.Replace(ctx, snap.ID, doc)
	if err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if out.Document.CustomSections[0].ID == out.Document.CustomSections[1].ID {
		t.Fatalf("duplicate section ids survived")
	}
}
