package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"resume-builder/internal/domain"
	"resume-builder/internal/layout"
	"resume-builder/internal/model"
	"resume-builder/internal/render"
	"resume-builder/internal/theme"
	"resume-builder/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ExportHistory lists recorded export jobs of a session.
type ExportHistory interface {
	Recent(ctx context.Context, sessionID string, limit int) ([]domain.ExportJob, error)
}

type Handler struct {
	sessions  *usecase.Sessions
	exports   *usecase.ExportService
	assistant *usecase.Assistant
	renderer  *render.Renderer
	history   ExportHistory
	logger    *slog.Logger
}

func NewHandler(sessions *usecase.Sessions, exports *usecase.ExportService, assistant *usecase.Assistant, renderer *render.Renderer, history ExportHistory, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{sessions: sessions, exports: exports, assistant: assistant, renderer: renderer, history: history, logger: logger}
}

// Register mounts every route on app.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/themes", h.Themes)

	s := app.Group("/sessions")
	s.Post("/", h.CreateSession)
	s.Get("/:id", h.GetSession)
	s.Delete("/:id", h.CloseSession)
	s.Put("/:id/document", h.ReplaceDocument)
	s.Post("/:id/edits", h.ApplyEdit)
	s.Get("/:id/pages", h.Pages)
	s.Get("/:id/preview", h.PreviewHTML)
	s.Post("/:id/export", h.Export)
	s.Get("/:id/exports", h.Exports)
	s.Post("/:id/assist/summary", h.AssistSummary)
	s.Post("/:id/assist/improve", h.AssistImprove)
	s.Post("/:id/assist/review", h.AssistReview)
	s.Post("/:id/assist/labels", h.AssistLabels)
}

// status maps usecase and model errors onto HTTP status codes.
func status(err error) int {
	switch {
	case errors.Is(err, usecase.ErrSessionNotFound), errors.Is(err, usecase.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, usecase.ErrPersonalNotRemovable):
		return fiber.StatusConflict
	case errors.Is(err, usecase.ErrUnknownEdit), errors.Is(err, usecase.ErrInvalidEdit), errors.Is(err, model.ErrInvalidDocument):
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

func fail(c *fiber.Ctx, err error) error {
	return c.Status(status(err)).JSON(fiber.Map{"error": err.Error()})
}

func sessionID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q", usecase.ErrSessionNotFound, c.Params("id"))
	}
	return id, nil
}

type pagesSummary struct {
	Pages      int    `json:"pages"`
	Generation uint64 `json:"generation"`
	Stale      bool   `json:"stale"`
	Error      string `json:"error,omitempty"`
}

func summarize(p usecase.Preview) pagesSummary {
	return pagesSummary{Pages: p.Result.PageCount(), Generation: p.Generation, Stale: p.Stale, Error: p.Error}
}

func (h *Handler) Themes(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"default": theme.Default, "themes": theme.All()})
}

func (h *Handler) CreateSession(c *fiber.Ctx) error {
	var doc *model.Document
	if body := c.Body(); len(strings.TrimSpace(string(body))) > 0 {
		d, err := model.DecodeDocument(body)
		if err != nil {
			return fail(c, err)
		}
		doc = &d
	}
	snap, p, err := h.sessions.Open(c.UserContext(), doc)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": snap.ID.String(), "document": snap.Document, "preview": summarize(p)})
}

func (h *Handler) GetSession(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return fail(c, err)
	}
	snap, err := h.sessions.Snapshot(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(snap)
}

func (h *Handler) CloseSession(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return fail(c, err)
	}
	if err := h.sessions.Close(id); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) ReplaceDocument(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return fail(c, err)
	}
	doc, err := model.DecodeDocument(c.Body())
	if err != nil {
		return fail(c, err)
	}
	snap, p, err := h.sessions.Replace(c.UserContext(), id, doc)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"document": snap.Document, "preview": summarize(p)})
}

func (h *Handler) ApplyEdit(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return fail(c, err)
	}
	var ed usecase.Edit
	if err := c.BodyParser(&ed); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	snap, p, created, err := h.sessions.Apply(c.UserContext(), id, ed)
	if err != nil {
		return fail(c, err)
	}
	out := fiber.Map{"document": snap.Document, "preview": summarize(p)}
	if created != "" {
		out["id"] = created
	}
	return c.JSON(out)
}

func (h *Handler) Pages(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return fail(c, err)
	}
	p, err := h.sessions.Preview(c.UserContext(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(p)
}

func (h *Handler) PreviewHTML(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return fail(c, err)
	}
	p, err := h.sessions.Preview(c.UserContext(), id)
	if err != nil {
		return fail(c, err)
	}
	if !p.HasResult() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "pages are not measured yet", "detail": p.Error})
	}
	snap, err := h.sessions.Snapshot(id)
	if err != nil {
		return fail(c, err)
	}
	html, err := h.renderer.Pages(p.Result, snap.Document.Personal.FullName)
	if err != nil {
		return fail(c, err)
	}
	if p.Stale {
		c.Set("X-Preview-Stale", "true")
	}
	c.Type("html", "utf-8")
	return c.Send(html)
}

func (h *Handler) Export(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return fail(c, err)
	}
	out, err := h.exports.Export(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrSessionNotFound) {
			return fail(c, err)
		}
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to generate PDF. Please try again.", "jobId": out.Job.ID.String()})
	}
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", out.FileName))
	c.Set("X-Export-Job", out.Job.ID.String())
	c.Type("pdf")
	return c.Send(out.PDF)
}

func (h *Handler) Exports(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return fail(c, err)
	}
	if _, err := h.sessions.Snapshot(id); err != nil {
		return fail(c, err)
	}
	jobs := []domain.ExportJob{}
	if h.history != nil {
		recent, err := h.history.Recent(c.UserContext(), id.String(), c.QueryInt("limit", 20))
		if err != nil {
			h.logger.Warn("failed to list export jobs", "session", id, "error", err)
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "export history unavailable"})
		}
		if recent != nil {
			jobs = recent
		}
	}
	return c.JSON(fiber.Map{"jobs": jobs})
}

// AssistSummary generates a summary from the job title and skills and
// stores it in the document.
func (h *Handler) AssistSummary(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return fail(c, err)
	}
	snap, err := h.sessions.Snapshot(id)
	if err != nil {
		return fail(c, err)
	}
	text := h.assistant.Summary(c.UserContext(), snap.Document.Personal.JobTitle, snap.Document.Skills)
	next, p, _, err := h.sessions.Apply(c.UserContext(), id, usecase.Edit{Op: usecase.OpSetSummary, Value: text})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"text": text, "document": next.Document, "preview": summarize(p)})
}

type improveReq struct {
	ExperienceID string `json:"experienceId"`
}

// AssistImprove rewrites one experience description in place.
func (h *Handler) AssistImprove(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return fail(c, err)
	}
	var req improveReq
	if err := c.BodyParser(&req); err != nil || req.ExperienceID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "experienceId is required"})
	}
	snap, err := h.sessions.Snapshot(id)
	if err != nil {
		return fail(c, err)
	}
	var entry *model.Experience
	for i := range snap.Document.Experience {
		if snap.Document.Experience[i].ID == req.ExperienceID {
			entry = &snap.Document.Experience[i]
			break
		}
	}
	if entry == nil {
		return fail(c, fmt.Errorf("%w: experience %q", usecase.ErrNotFound, req.ExperienceID))
	}
	text := h.assistant.ImproveDescription(c.UserContext(), entry.Description, entry.Role)
	next, p, _, err := h.sessions.Apply(c.UserContext(), id, usecase.Edit{Op: usecase.OpUpdateExperience, ID: entry.ID, Field: "description", Value: text})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"text": text, "document": next.Document, "preview": summarize(p)})
}

func (h *Handler) AssistReview(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return fail(c, err)
	}
	snap, err := h.sessions.Snapshot(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"text": h.assistant.Review(c.UserContext(), snap.Document)})
}

type labelsReq struct {
	Language string         `json:"language"`
	Labels   *layout.Labels `json:"labels,omitempty"`
}

// AssistLabels translates the section labels, or sets them directly when
// the request carries labels.
func (h *Handler) AssistLabels(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return fail(c, err)
	}
	var req labelsReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if _, err := h.sessions.Snapshot(id); err != nil {
		return fail(c, err)
	}
	labels := layout.DefaultLabels()
	if req.Labels != nil {
		labels = req.Labels.WithDefaults()
	} else if req.Language != "" {
		labels = h.assistant.Labels(c.UserContext(), req.Language)
	}
	_, p, err := h.sessions.SetLabels(c.UserContext(), id, labels)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"labels": labels, "preview": summarize(p)})
}
