package formatters

import (
	"context"
)

// ReviewFormatter asks for recruiter feedback on a whole document.
type ReviewFormatter struct {
	chat     Chatter
	language string
}

func NewReviewFormatter(chat Chatter, language string) *ReviewFormatter {
	return &ReviewFormatter{chat: chat, language: language}
}

// Format takes the document serialized as JSON.
func (rf *ReviewFormatter) Format(ctx context.Context, document []byte) (string, error) {
	prompt := "You are an expert technical recruiter. Review the following CV JSON data and provide 3 specific, actionable bullet points on how to improve it to stand out. Focus on impact and clarity." +
		languageLine(rf.language) + "\n\nCV Data: " + string(document)

	out, err := rf.chat.Chat(ctx, prompt)
	if err != nil {
		return "", err
	}
	return plain(out), nil
}
