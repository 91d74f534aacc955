package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"resume-builder/pkg/ai/formatters"
)

// ErrNotConfigured is returned by Chat when the client has no service URL.
var ErrNotConfigured = errors.New("ai-service url is not configured")

// Client calls the ai-service chat endpoint to generate resume text.
type Client struct {
	BaseURL         string
	HTTP            *http.Client
	DefaultLanguage string
	Logger          *slog.Logger
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: timeout},
		Logger:  slog.Default(),
	}
}

// WithLanguage returns a copy of c that asks for output in language.
func (c *Client) WithLanguage(language string) *Client {
	cp := *c
	cp.DefaultLanguage = language
	return &cp
}

// Configured reports whether the client has somewhere to send requests.
func (c *Client) Configured() bool { return c != nil && c.BaseURL != "" }

func (c *Client) NewSummaryFormatter() *formatters.SummaryFormatter {
	return formatters.NewSummaryFormatter(c, c.DefaultLanguage)
}

func (c *Client) NewDescriptionFormatter() *formatters.DescriptionFormatter {
	return formatters.NewDescriptionFormatter(c, c.DefaultLanguage)
}

func (c *Client) NewReviewFormatter() *formatters.ReviewFormatter {
	return formatters.NewReviewFormatter(c, c.DefaultLanguage)
}

func (c *Client) NewLabelsFormatter(language string) *formatters.LabelsFormatter {
	return formatters.NewLabelsFormatter(c, language)
}

type chatRequest struct {
	Agent string `json:"agent"`
	Input string `json:"input"`
}

type chatResponse struct {
	Agent  string `json:"agent"`
	Output string `json:"output"`
}

// Chat sends input to /v1/chat and returns the agent's output text.
func (c *Client) Chat(ctx context.Context, input string) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}
	b, err := json.Marshal(chatRequest{Agent: "auto", Input: input})
	if err != nil {
		return "", err
	}
	c.logger().Debug("ai.client: POST /v1/chat", "base_url", c.BaseURL, "input_bytes", len(input))

	resp, err := c.doPostWithRetry(ctx, "/v1/chat", b)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	rb, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	c.logger().Debug("ai.client: response", "status", resp.StatusCode, "bytes", len(rb))
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ai-service returned non-200 status: %d", resp.StatusCode)
	}

	var out chatResponse
	if err := json.Unmarshal(rb, &out); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}
	return out.Output, nil
}

func (c *Client) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}

// doPostWithRetry performs an HTTP POST to the given path with retry/backoff.
// Transport errors and 5xx responses are retried; anything else is returned.
func (c *Client) doPostWithRetry(ctx context.Context, path string, body []byte) (*http.Response, error) {
	attempts := 3
	var lastErr error
	for i := 0; i < attempts; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.HTTP.Do(req)
		switch {
		case err != nil:
			lastErr = err
		case resp.StatusCode >= 500 && i < attempts-1:
			resp.Body.Close()
			lastErr = fmt.Errorf("ai-service returned status %d", resp.StatusCode)
		default:
			return resp, nil
		}
		if i < attempts-1 {
			backoff := time.Duration(1<<i) * retryUnit
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, lastErr
}

// retryUnit is the first backoff step; tests shorten it.
var retryUnit = time.Second
