package formatters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Chatter sends one prompt to the text-generation service and returns its
// plain-text output.
type Chatter interface {
	Chat(ctx context.Context, input string) (string, error)
}

// mustMarshal is a tiny helper for embedding payloads in prompts.
func mustMarshal(v interface{}) string {
	b, _ := json.Marshal(v)
	return string(b)
}

func languageLine(language string) string {
	if language == "" {
		return ""
	}
	return fmt.Sprintf("\n\nLANGUAGE: write the whole answer in %s.", language)
}

// extractJSON decodes a JSON object from s, tolerating surrounding text or
// markdown fences by taking everything between the first '{' and last '}'.
func extractJSON(s string, out interface{}) error {
	err := json.Unmarshal([]byte(s), out)
	if err == nil {
		return nil
	}
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start >= 0 && end > start {
		if err2 := json.Unmarshal([]byte(s[start:end+1]), out); err2 == nil {
			return nil
		}
	}
	return fmt.Errorf("ai-service returned non-json content: %w", err)
}

// plain strips markdown fences and surrounding quotes from a text answer.
func plain(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```text")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	return s
}
