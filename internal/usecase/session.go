package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"resume-builder/internal/layout"
	"resume-builder/internal/model"
)

// Preview is the pagination currently shown for a session. Result is the
// last good result; when a later pass failed it is kept and Stale is set.
type Preview struct {
	Generation uint64        `json:"generation"`
	Current    uint64        `json:"current"`
	Stale      bool          `json:"stale"`
	Error      string        `json:"error,omitempty"`
	Result     layout.Result `json:"result"`
	UpdatedAt  time.Time     `json:"updatedAt"`
}

// HasResult reports whether any pass has succeeded yet.
func (p Preview) HasResult() bool { return p.Generation > 0 }

// Session is one document being edited.
type Session struct {
	ID        uuid.UUID
	CreatedAt time.Time

	mu      sync.Mutex
	doc     model.Document
	labels  layout.Labels
	gen     uint64
	preview Preview
}

// Snapshot is a consistent copy of a session's inputs.
type Snapshot struct {
	ID         uuid.UUID      `json:"id"`
	Document   model.Document `json:"document"`
	Labels     layout.Labels  `json:"labels"`
	Generation uint64         `json:"generation"`
}

func (s *Session) snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{ID: s.ID, Document: s.doc.Clone(), Labels: s.labels, Generation: s.gen}
}

// Sessions keeps editing sessions in memory and re-paginates every session
// synchronously after each change.
type Sessions struct {
	paginator *layout.Paginator
	editor    *Editor
	logger    *slog.Logger
	now       func() time.Time

	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

func NewSessions(paginator *layout.Paginator, editor *Editor, logger *slog.Logger) *Sessions {
	if logger == nil {
		logger = slog.Default()
	}
	return &Sessions{
		paginator: paginator,
		editor:    editor,
		logger:    logger,
		now:       time.Now,
		sessions:  map[uuid.UUID]*Session{},
	}
}

func (s *Sessions) Editor() *Editor { return s.editor }

func (s *Sessions) Paginator() *layout.Paginator { return s.paginator }

// Open starts a session. A nil document opens the sample document; any
// other document is normalized and checked first.
func (s *Sessions) Open(ctx context.Context, doc *model.Document) (Snapshot, Preview, error) {
	d := model.SampleDocument()
	if doc != nil {
		var err error
		if d, err = s.prepare(*doc); err != nil {
			return Snapshot{}, Preview{}, err
		}
	}
	sess := &Session{
		ID:        uuid.New(),
		CreatedAt: s.now(),
		doc:       d,
		labels:    layout.DefaultLabels(),
		gen:       1,
	}
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	s.logger.Info("session opened", "session", sess.ID, "theme", d.Theme)

	snap := sess.snapshot()
	return snap, s.refresh(ctx, sess, snap), nil
}

func (s *Sessions) prepare(d model.Document) (model.Document, error) {
	d = model.Normalize(d, s.editor.NewID)
	if err := model.CheckInvariants(d); err != nil {
		return model.Document{}, err
	}
	return d, nil
}

func (s *Sessions) get(id uuid.UUID) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// Snapshot returns the session's current document and labels.
func (s *Sessions) Snapshot(id uuid.UUID) (Snapshot, error) {
	sess, err := s.get(id)
	if err != nil {
		return Snapshot{}, err
	}
	return sess.snapshot(), nil
}

// Replace swaps the whole document.
func (s *Sessions) Replace(ctx context.Context, id uuid.UUID, doc model.Document) (Snapshot, Preview, error) {
	d, err := s.prepare(doc)
	if err != nil {
		return Snapshot{}, Preview{}, err
	}
	return s.update(ctx, id, func(model.Document) (model.Document, error) { return d, nil })
}

// Apply runs one editor operation. The returned string is the id of
// anything the edit created.
func (s *Sessions) Apply(ctx context.Context, id uuid.UUID, ed Edit) (Snapshot, Preview, string, error) {
	var created string
	snap, preview, err := s.update(ctx, id, func(d model.Document) (model.Document, error) {
		out, newID, err := s.editor.Apply(d, ed)
		created = newID
		return out, err
	})
	return snap, preview, created, err
}

// SetLabels changes the display labels and re-paginates.
func (s *Sessions) SetLabels(ctx context.Context, id uuid.UUID, labels layout.Labels) (Snapshot, Preview, error) {
	sess, err := s.get(id)
	if err != nil {
		return Snapshot{}, Preview{}, err
	}
	sess.mu.Lock()
	sess.labels = labels.WithDefaults()
	sess.gen++
	sess.mu.Unlock()
	snap := sess.snapshot()
	return snap, s.refresh(ctx, sess, snap), nil
}

func (s *Sessions) update(ctx context.Context, id uuid.UUID, fn func(model.Document) (model.Document, error)) (Snapshot, Preview, error) {
	sess, err := s.get(id)
	if err != nil {
		return Snapshot{}, Preview{}, err
	}
	sess.mu.Lock()
	next, err := fn(sess.doc)
	if err != nil {
		sess.mu.Unlock()
		return Snapshot{}, Preview{}, err
	}
	sess.doc = next
	sess.gen++
	sess.mu.Unlock()

	snap := sess.snapshot()
	return snap, s.refresh(ctx, sess, snap), nil
}

// Preview returns the session's pagination, computing it when no pass has
// succeeded yet.
func (s *Sessions) Preview(ctx context.Context, id uuid.UUID) (Preview, error) {
	sess, err := s.get(id)
	if err != nil {
		return Preview{}, err
	}
	sess.mu.Lock()
	p := sess.preview
	current := sess.gen
	sess.mu.Unlock()
	if p.HasResult() && p.Generation == current {
		return p, nil
	}
	return s.refresh(ctx, sess, sess.snapshot()), nil
}

// refresh paginates snap outside the session lock and commits the result
// unless a newer generation got there first. A failed pass keeps the last
// good pages and marks them stale.
func (s *Sessions) refresh(ctx context.Context, sess *Session, snap Snapshot) Preview {
	res, err := s.paginator.Paginate(ctx, snap.Document, snap.Labels)

	sess.mu.Lock()
	defer sess.mu.Unlock()
	p := sess.preview
	switch {
	case err != nil:
		if errors.Is(err, layout.ErrMeasurementIncomplete) {
			s.logger.Warn("measurement incomplete, keeping stale pages", "session", sess.ID, "generation", snap.Generation, "error", err)
		} else {
			s.logger.Error("pagination failed", "session", sess.ID, "generation", snap.Generation, "error", err)
		}
		if snap.Generation >= sess.gen {
			p.Error = err.Error()
		}
	case snap.Generation > p.Generation:
		p = Preview{Generation: snap.Generation, Result: res, UpdatedAt: s.now()}
		s.logger.Debug("preview updated", "session", sess.ID, "generation", snap.Generation, "pages", res.PageCount())
	}
	p.Current = sess.gen
	p.Stale = p.Generation < sess.gen
	if !p.Stale {
		p.Error = ""
	}
	sess.preview = p
	return p
}

// Close forgets a session.
func (s *Sessions) Close(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, id)
	return nil
}

// Len is the number of open sessions.
func (s *Sessions) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
