package formatters

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeChat struct {
	prompt string
	output string
	err    error
}

func (f *fakeChat) Chat(_ context.Context, input string) (string, error) {
	f.prompt = input
	return f.output, f.err
}

func TestSummaryPrompt(t *testing.T) {
	chat := &fakeChat{output: "  \"Builds things.\"  "}
	out, err := NewSummaryFormatter(chat, "").Format(context.Background(), "Senior Engineer", []string{"Go", "SQL"})
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if out != "Builds things." {
		t.Fatalf("output = %q", out)
	}
	if !strings.Contains(chat.prompt, "Senior Engineer") || !strings.Contains(chat.prompt, "Go, SQL") {
		t.Fatalf("prompt missing inputs: %s", chat.prompt)
	}
	if strings.Contains(chat.prompt, "LANGUAGE") {
		t.Fatalf("unexpected language line: %s", chat.prompt)
	}
}

func TestDescriptionPromptCarriesLanguage(t *testing.T) {
	chat := &fakeChat{output: "```\nLed the team.\n```"}
	out, err := NewDescriptionFormatter(chat, "German").Format(context.Background(), "did stuff", "Lead")
	if err != nil || out != "Led the team." {
		t.Fatalf("Format = %q, %v", out, err)
	}
	if !strings.Contains(chat.prompt, "German") || !strings.Contains(chat.prompt, `"did stuff"`) {
		t.Fatalf("prompt = %s", chat.prompt)
	}
}

func TestReviewPassesErrors(t *testing.T) {
	boom := errors.New("boom")
	if _, err := NewReviewFormatter(&fakeChat{err: boom}, "").Format(context.Background(), []byte("{}")); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestLabelsRejectsNonJSON(t *testing.T) {
	if _, err := NewLabelsFormatter(&fakeChat{output: "no idea"}, "French").Format(context.Background()); err == nil {
		t.Fatalf("expected an error for non-json output")
	}
}

func TestExtractJSON(t *testing.T) {
	var out map[string]string
	if err := extractJSON("Here you go: {\"a\": \"b\"} enjoy", &out); err != nil {
		t.Fatalf("extractJSON: %v", err)
	}
	if out["a"] != "b" {
		t.Fatalf("out = %v", out)
	}
}
