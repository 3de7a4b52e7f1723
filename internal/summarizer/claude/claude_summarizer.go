package claude

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"landrecords/internal/config"
	"landrecords/internal/domain"
	"landrecords/internal/port"
	"landrecords/internal/summarizer"
)

const (
	apiURL      = "https://api.anthropic.com/v1/messages"
	apiVersion  = "2023-06-01"
	serviceName = "claude"
)

func init() {
	summarizer.RegisterProvider(serviceName, func(_ context.Context, cfg *config.SummarizerConfig) (port.Summarizer, error) {
		return NewSummarizer(cfg), nil
	})
}

// Summarizer implements port.Summarizer using the Anthropic Messages API.
type Summarizer struct {
	apiKey   string
	model    string
	endpoint string
	maxChars int
	client   *http.Client
}

// NewSummarizer creates a Claude-based summarizer.
func NewSummarizer(cfg *config.SummarizerConfig) *Summarizer {
	return newSummarizer(cfg, apiURL)
}

// NewSummarizerWithEndpoint creates a summarizer pointing at a custom API endpoint (for testing).
func NewSummarizerWithEndpoint(cfg *config.SummarizerConfig, endpoint string) *Summarizer {
	return newSummarizer(cfg, endpoint)
}

func newSummarizer(cfg *config.SummarizerConfig, endpoint string) *Summarizer {
	model := cfg.Model
	if model == "" {
		model = "claude-sonnet-4-20250514"
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return &Summarizer{
		apiKey:   cfg.APIKey,
		model:    model,
		endpoint: endpoint,
		maxChars: cfg.MaxInputChars,
		client:   &http.Client{Timeout: timeout},
	}
}

// Capability reports whether an API key is configured.
func (s *Summarizer) Capability() domain.Capability {
	c := domain.Capability{Name: "summarizer", Provider: serviceName, Available: s.apiKey != ""}
	if !c.Available {
		c.Reason = "anthropic API key is not set"
	}
	return c
}

func (s *Summarizer) Summarize(ctx context.Context, text string, kind domain.SummaryKind) (*port.SummaryOutput, error) {
	input := summarizer.Truncate(text, s.maxChars)
	return s.generate(ctx, summarizer.BuildSummaryPrompt(kind, input), summarizer.SummarySettings, input)
}

func (s *Summarizer) Ask(ctx context.Context, text, question string) (*port.SummaryOutput, error) {
	input := summarizer.Truncate(text, s.maxChars)
	return s.generate(ctx, summarizer.BuildQuestionPrompt(input, question), summarizer.QuestionSettings, input)
}

func (s *Summarizer) generate(ctx context.Context, prompt string, gen summarizer.GenerationSettings, input string) (*port.SummaryOutput, error) {
	if s.apiKey == "" {
		return nil, domain.NewConfigurationError(serviceName, "anthropic API key is not set")
	}

	reqBody := map[string]interface{}{
		"model":       s.model,
		"max_tokens":  gen.MaxOutputTokens,
		"temperature": gen.Temperature,
		"top_k":       gen.TopK,
		"messages": []map[string]interface{}{
			{
				"role":    "user",
				"content": prompt,
			},
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", s.apiKey)
	req.Header.Set("anthropic-version", apiVersion)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, domain.NewTransportError(serviceName, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewTransportError(serviceName, err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, domain.NewRateLimitError(serviceName,
			fmt.Errorf("status %d: %s", resp.StatusCode, truncate(string(respBody), 500)),
			summarizer.ParseRetryAfterHeader(resp.Header.Get("Retry-After")))
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, domain.NewTransportError(serviceName,
			fmt.Errorf("status %d: %s", resp.StatusCode, truncate(string(respBody), 500)))
	default:
		return nil, domain.NewAPIError(serviceName, resp.StatusCode, truncate(string(respBody), 500))
	}

	out, err := parseResponse(respBody)
	if err != nil {
		return nil, err
	}
	return &port.SummaryOutput{Text: out, Model: s.model, InputChars: utf8.RuneCountInString(input)}, nil
}

// apiResponse models the Anthropic Messages API response.
type apiResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	StopReason string `json:"stop_reason"`
}

func parseResponse(body []byte) (string, error) {
	var resp apiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", domain.NewAPIError(serviceName, http.StatusOK, "malformed response: "+err.Error())
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return "", domain.NewAPIError(serviceName, http.StatusOK,
			"empty response (stop reason "+resp.StopReason+")")
	}
	return strings.TrimSpace(sb.String()), nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
