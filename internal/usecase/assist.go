package usecase

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"resume-builder/internal/layout"
	"resume-builder/internal/model"
	"resume-builder/pkg/ai"
)

// Messages shown in place of generated text.
const (
	SummaryFailed    = "Failed to generate summary. Please try again."
	ReviewFailed     = "Could not generate review."
	SummaryNoService = "AI service is not configured. Please check your environment configuration."
	ReviewNoService  = "AI service is not configured."
)

// Assistant wraps the text-generation client. Its methods never fail: a
// failed call is logged and replaced with a fallback.
type Assistant struct {
	client *ai.Client
	logger *slog.Logger
}

func NewAssistant(client *ai.Client, logger *slog.Logger) *Assistant {
	if logger == nil {
		logger = slog.Default()
	}
	return &Assistant{client: client, logger: logger}
}

// Summary writes a summary for jobTitle and skills.
func (a *Assistant) Summary(ctx context.Context, jobTitle string, skills []string) string {
	if !a.client.Configured() {
		return SummaryNoService
	}
	out, err := a.client.NewSummaryFormatter().Format(ctx, jobTitle, skills)
	if err != nil {
		a.logger.Error("error generating summary", "error", err)
		return SummaryFailed
	}
	return strings.TrimSpace(out)
}

// ImproveDescription rewrites text for role. The original text is returned
// whenever no better text is available.
func (a *Assistant) ImproveDescription(ctx context.Context, text, role string) string {
	if !a.client.Configured() || strings.TrimSpace(text) == "" {
		return text
	}
	out, err := a.client.NewDescriptionFormatter().Format(ctx, text, role)
	if err != nil {
		a.logger.Error("error improving text", "error", err)
		return text
	}
	if out = strings.TrimSpace(out); out == "" {
		return text
	}
	return out
}

// Review asks for improvement suggestions on the whole document.
func (a *Assistant) Review(ctx context.Context, doc model.Document) string {
	if !a.client.Configured() {
		return ReviewNoService
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return ReviewFailed
	}
	out, err := a.client.NewReviewFormatter().Format(ctx, b)
	if err != nil {
		a.logger.Error("error generating review", "error", err)
		return ReviewFailed
	}
	return strings.TrimSpace(out)
}

// Labels translates the display labels into language, falling back to the
// defaults for anything the service did not return.
func (a *Assistant) Labels(ctx context.Context, language string) layout.Labels {
	if !a.client.Configured() || strings.TrimSpace(language) == "" {
		return layout.DefaultLabels()
	}
	m, err := a.client.NewLabelsFormatter(language).Format(ctx)
	if err != nil {
		a.logger.Error("error translating labels", "language", language, "error", err)
		return layout.DefaultLabels()
	}
	return layout.LabelsFromMap(m)
}
