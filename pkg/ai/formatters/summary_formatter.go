package formatters

import (
	"context"
	"fmt"
	"strings"
)

type SummaryFormatter struct {
	chat     Chatter
	language string
}

func NewSummaryFormatter(chat Chatter, language string) *SummaryFormatter {
	return &SummaryFormatter{chat: chat, language: language}
}

// Format writes a 50-70 word professional summary for jobTitle and skills.
func (sf *SummaryFormatter) Format(ctx context.Context, jobTitle string, skills []string) (string, error) {
	prompt := fmt.Sprintf("Write a professional, concise, and impactful resume summary (approx 50-70 words) for a %s with the following skills: %s. Do not use markdown formatting, just plain text.",
		jobTitle, strings.Join(skills, ", ")) + languageLine(sf.language)

	out, err := sf.chat.Chat(ctx, prompt)
	if err != nil {
		return "", err
	}
	return plain(out), nil
}
