// Package openrouter implements the grading engine against the OpenRouter
// chat completions API (OpenAI-compatible), with PDF file parts attached as
// base64 data URLs.
package openrouter

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/silver-dev/resume-checker/internal/adapter/ai"
	"github.com/silver-dev/resume-checker/internal/adapter/observability"
	"github.com/silver-dev/resume-checker/internal/config"
	"github.com/silver-dev/resume-checker/internal/domain"
)

// Client implements domain.GradingEngine.
type Client struct {
	cfg config.Config
	hc  *http.Client
}

// New constructs a Client. Grading calls can take tens of seconds; the
// request timeout comes from configuration, not a hardcoded short value.
func New(cfg config.Config) *Client {
	return &Client{
		cfg: cfg,
		hc: &http.Client{
			Timeout:   cfg.AIRequestTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// wire types for the OpenAI-compatible content-part format

type filePayload struct {
	Filename string `json:"filename"`
	FileData string `json:"file_data"`
}

type contentPart struct {
	Type string       `json:"type"`
	Text string       `json:"text,omitempty"`
	File *filePayload `json:"file,omitempty"`
}

type wireMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

func toWire(msgs []domain.ChatMessage) []wireMessage {
	out := make([]wireMessage, 0, len(msgs))
	for _, m := range msgs {
		// Single text part collapses to a plain string content; file-bearing
		// messages use the content-part array form.
		if len(m.Parts) == 1 && m.Parts[0].File == nil {
			out = append(out, wireMessage{Role: m.Role, Content: m.Parts[0].Text})
			continue
		}
		parts := make([]contentPart, 0, len(m.Parts))
		for _, p := range m.Parts {
			if p.File != nil {
				parts = append(parts, contentPart{
					Type: "file",
					File: &filePayload{
						Filename: "resume.pdf",
						FileData: "data:application/pdf;base64," + base64.StdEncoding.EncodeToString(p.File),
					},
				})
				continue
			}
			parts = append(parts, contentPart{Type: "text", Text: p.Text})
		}
		out = append(out, wireMessage{Role: m.Role, Content: parts})
	}
	return out
}

func (c *Client) backoffConfig() *backoff.ExponentialBackOff {
	expo := backoff.NewExponentialBackOff()
	maxElapsed, initial, maxInterval, multiplier := c.cfg.GetAIBackoffConfig()
	expo.MaxElapsedTime = maxElapsed
	expo.InitialInterval = initial
	expo.MaxInterval = maxInterval
	expo.Multiplier = multiplier
	return expo
}

// Grade sends the assembled messages and returns a schema-valid result.
// Provider errors, timeouts and schema violations all collapse into
// domain.ErrGrading: a request either fully succeeds or fully fails.
func (c *Client) Grade(ctx domain.Context, msgs []domain.ChatMessage) (domain.GradeResult, error) {
	if c.cfg.OpenRouterAPIKey == "" {
		return domain.GradeResult{}, fmt.Errorf("%w: OPENROUTER_API_KEY missing", domain.ErrGrading)
	}

	body := map[string]any{
		"model":           c.cfg.OpenRouterModel,
		"temperature":     0.2,
		"max_tokens":      c.cfg.AIMaxTokens,
		"messages":        toWire(msgs),
		"response_format": map[string]string{"type": "json_object"},
	}
	b, err := json.Marshal(body)
	if err != nil {
		return domain.GradeResult{}, fmt.Errorf("%w: marshal request: %v", domain.ErrGrading, err)
	}

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	op := func() error {
		start := time.Now()
		// Recreate the request each attempt; bodies are consumed per try.
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.OpenRouterBaseURL+"/chat/completions", bytes.NewReader(b))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Authorization", "Bearer "+c.cfg.OpenRouterAPIKey)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Title", c.cfg.OpenRouterTitle)

		resp, err := c.hc.Do(req)
		observability.AIRequestDuration.WithLabelValues("openrouter").Observe(time.Since(start).Seconds())
		if err != nil {
			observability.AIRequestsTotal.WithLabelValues("openrouter", "transport_error").Inc()
			return err
		}
		defer func() { _ = resp.Body.Close() }()

		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		switch {
		case resp.StatusCode == http.StatusTooManyRequests:
			observability.AIRequestsTotal.WithLabelValues("openrouter", "rate_limited").Inc()
			slog.Warn("ai provider rate limited", slog.Int("status", resp.StatusCode),
				slog.String("x_request_id", resp.Header.Get("X-Request-Id")))
			return fmt.Errorf("rate limited: 429")
		case resp.StatusCode >= 500:
			observability.AIRequestsTotal.WithLabelValues("openrouter", "server_error").Inc()
			return fmt.Errorf("provider status %d", resp.StatusCode)
		case resp.StatusCode != http.StatusOK:
			observability.AIRequestsTotal.WithLabelValues("openrouter", "client_error").Inc()
			slog.Error("ai provider rejected request", slog.Int("status", resp.StatusCode),
				slog.String("body", snippet(respBody, 512)))
			return backoff.Permanent(fmt.Errorf("provider status %d", resp.StatusCode))
		}
		if err := json.Unmarshal(respBody, &out); err != nil {
			return backoff.Permanent(fmt.Errorf("decode response: %w", err))
		}
		observability.AIRequestsTotal.WithLabelValues("openrouter", "ok").Inc()
		return nil
	}

	if err := backoff.Retry(op, backoff.WithContext(c.backoffConfig(), ctx)); err != nil {
		return domain.GradeResult{}, fmt.Errorf("%w: %v", domain.ErrGrading, err)
	}
	if len(out.Choices) == 0 {
		return domain.GradeResult{}, fmt.Errorf("%w: no choices in response", domain.ErrGrading)
	}

	res, err := ai.ParseResult(out.Choices[0].Message.Content)
	if err != nil {
		observability.AIRequestsTotal.WithLabelValues("openrouter", "schema_invalid").Inc()
		return domain.GradeResult{}, fmt.Errorf("%w: %v", domain.ErrGrading, err)
	}
	return res, nil
}

func snippet(b []byte, n int) string {
	if len(b) > n {
		b = b[:n]
	}
	return string(b)
}
