package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-builder/internal/domain"
	"resume-builder/internal/layout"
	"resume-builder/internal/render"
)

// Exporter turns paginated frames into a PDF. html is the rendered page
// frames for exporters that print markup; res is the same content for
// exporters that draw it themselves.
type Exporter interface {
	Name() string
	ExportPDF(ctx context.Context, res layout.Result, html []byte, title string) ([]byte, error)
}

// ExportRepository stores export job records.
type ExportRepository interface {
	Save(ctx context.Context, job domain.ExportJob) error
}

// Export is a finished PDF.
type Export struct {
	FileName string
	PDF      []byte
	Job      domain.ExportJob
}

var errNotPDF = errors.New("exporter output is not a PDF")

// ExportService renders a session's current document and exports it.
// The session itself is never modified.
type ExportService struct {
	sessions *Sessions
	renderer *render.Renderer
	exporter Exporter
	repo     ExportRepository
	logger   *slog.Logger

	Attempts int
	Backoff  time.Duration
	now      func() time.Time
}

func NewExportService(sessions *Sessions, renderer *render.Renderer, exporter Exporter, repo ExportRepository, logger *slog.Logger) *ExportService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportService{
		sessions: sessions,
		renderer: renderer,
		exporter: exporter,
		repo:     repo,
		logger:   logger,
		Attempts: 3,
		Backoff:  500 * time.Millisecond,
		now:      time.Now,
	}
}

var spaceRun = regexp.MustCompile(`\s+`)

// FileName is "<Full_Name>_CV.pdf", with whitespace runs replaced by
// underscores.
func FileName(fullName string) string {
	name := spaceRun.ReplaceAllString(strings.TrimSpace(fullName), "_")
	name = strings.NewReplacer("/", "_", "\\", "_", "\"", "").Replace(name)
	if name == "" {
		name = "Resume"
	}
	return name + "_CV.pdf"
}

func (s *ExportService) Export(ctx context.Context, sessionID uuid.UUID) (Export, error) {
	snap, err := s.sessions.Snapshot(sessionID)
	if err != nil {
		return Export{}, err
	}
	start := s.now()
	job := domain.ExportJob{
		ID:        uuid.New(),
		SessionID: sessionID,
		FileName:  FileName(snap.Document.Personal.FullName),
		Exporter:  s.exporter.Name(),
		Status:    domain.ExportPending,
		CreatedAt: start,
		UpdatedAt: start,
	}

	pdf, err := s.run(ctx, snap, &job)
	job.UpdatedAt = s.now()
	if err != nil {
		job.Status = domain.ExportFailed
		job.Error = err.Error()
		s.logger.Error("export failed", "session", sessionID, "job", job.ID, "attempts", job.Attempts, "error", err)
	} else {
		job.Status = domain.ExportCompleted
		job.Bytes = len(pdf)
		s.logger.Info("export completed", "session", sessionID, "job", job.ID, "pages", job.Pages, "bytes", job.Bytes, "elapsed", job.UpdatedAt.Sub(start))
	}
	s.save(ctx, job)
	if err != nil {
		return Export{Job: job}, err
	}
	return Export{FileName: job.FileName, PDF: pdf, Job: job}, nil
}

func (s *ExportService) run(ctx context.Context, snap Snapshot, job *domain.ExportJob) ([]byte, error) {
	res, err := s.sessions.Paginator().Paginate(ctx, snap.Document, snap.Labels)
	if err != nil {
		return nil, fmt.Errorf("paginate: %w", err)
	}
	job.Theme = res.Theme.ID
	job.Pages = res.PageCount()

	title := strings.TrimSpace(snap.Document.Personal.FullName)
	html, err := s.renderer.Pages(res, title)
	if err != nil {
		return nil, fmt.Errorf("render pages: %w", err)
	}

	attempts := s.Attempts
	if attempts < 1 {
		attempts = 1
	}
	var lastErr error
	for i := 0; i < attempts; i++ {
		job.Attempts = i + 1
		pdf, err := s.exporter.ExportPDF(ctx, res, html, title)
		if err == nil && !bytes.HasPrefix(pdf, []byte("%PDF")) {
			err = errNotPDF
		}
		if err == nil {
			return pdf, nil
		}
		lastErr = err
		s.logger.Warn("export attempt failed", "job", job.ID, "attempt", i+1, "error", err)
		if i < attempts-1 {
			backoff := time.Duration(1<<i) * s.Backoff
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, fmt.Errorf("export after %d attempts: %w", attempts, lastErr)
}

// save records the job. Failures are logged and otherwise ignored.
func (s *ExportService) save(ctx context.Context, job domain.ExportJob) {
	if s.repo == nil {
		return
	}
	if err := s.repo.Save(ctx, job); err != nil {
		s.logger.Warn("failed to save export job", "job", job.ID, "error", err)
	}
}
