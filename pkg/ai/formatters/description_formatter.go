package formatters

import (
	"context"
	"fmt"
)

// DescriptionFormatter rewrites one experience description or bullet.
type DescriptionFormatter struct {
	chat     Chatter
	language string
}

func NewDescriptionFormatter(chat Chatter, language string) *DescriptionFormatter {
	return &DescriptionFormatter{chat: chat, language: language}
}

func (df *DescriptionFormatter) Format(ctx context.Context, text, role string) (string, error) {
	prompt := fmt.Sprintf("Rewrite the following resume bullet point or description to be more professional, action-oriented, and results-driven. It is for a %s role. Keep it concise. Keep one item per line and do not use markdown. Text: %q",
		role, text) + languageLine(df.language)

	out, err := df.chat.Chat(ctx, prompt)
	if err != nil {
		return "", err
	}
	return plain(out), nil
}
