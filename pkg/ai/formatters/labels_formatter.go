package formatters

import (
	"context"
	"fmt"
	"strings"
)

type LabelsFormatter struct {
	chat     Chatter
	language string
}

func NewLabelsFormatter(chat Chatter, language string) *LabelsFormatter {
	return &LabelsFormatter{chat: chat, language: language}
}

// Format translates the section headings and page marker into the
// formatter's language. Missing keys are left out of the result.
func (lf *LabelsFormatter) Format(ctx context.Context) (map[string]string, error) {
	defaults := GetDefaultLabels()
	instr := fmt.Sprintf(`You are a professional resume label translator. Translate section headings to %s.

RULES:
1. Return ONLY valid JSON (no markdown, no code blocks, no explanation)
2. Translate VALUES to %s ONLY - do NOT change the KEY names
3. Each heading must be a professional heading (1-5 words)
4. "pageOf" MUST keep both %%d placeholders in order
5. MUST include ALL %d keys in the output

INPUT:
%s`, lf.language, lf.language, len(defaults), mustMarshal(defaults))

	output, err := lf.chat.Chat(ctx, "Translate UI labels to "+lf.language+":\n"+instr)
	if err != nil {
		return nil, err
	}

	var raw map[string]interface{}
	if err := extractJSON(output, &raw); err != nil {
		return nil, err
	}
	out := map[string]string{}
	for key := range defaults {
		if s, ok := raw[key].(string); ok && strings.TrimSpace(s) != "" {
			out[key] = strings.TrimSpace(s)
		}
	}
	return out, nil
}

// GetDefaultLabels returns English labels as fallback
func GetDefaultLabels() map[string]string {
	return map[string]string{
		"summary":    "Professional Summary",
		"experience": "Work Experience",
		"education":  "Education",
		"skills":     "Core Competencies",
		"pageOf":     "Page %d of %d",
		"continued":  "continued",
	}
}
