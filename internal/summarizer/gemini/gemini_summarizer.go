package gemini

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
	apiBaseURL  = "https://generativelanguage.googleapis.com/v1beta/models"
	serviceName = "gemini"
)

func init() {
	summarizer.RegisterProvider(serviceName, func(_ context.Context, cfg *config.SummarizerConfig) (port.Summarizer, error) {
		return NewSummarizer(cfg), nil
	})
}

// Summarizer implements port.Summarizer using the Gemini generateContent REST API.
type Summarizer struct {
	apiKey   string
	model    string
	endpoint string
	maxChars int
	client   *http.Client
}

// NewSummarizer creates a Gemini-based summarizer.
func NewSummarizer(cfg *config.SummarizerConfig) *Summarizer {
	return newSummarizer(cfg, "")
}

// NewSummarizerWithEndpoint creates a summarizer pointing at a custom API endpoint (for testing).
func NewSummarizerWithEndpoint(cfg *config.SummarizerConfig, endpoint string) *Summarizer {
	return newSummarizer(cfg, endpoint)
}

func newSummarizer(cfg *config.SummarizerConfig, endpoint string) *Summarizer {
	model := cfg.Model
	if model == "" {
		model = "gemini-2.0-flash"
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	if endpoint == "" {
		endpoint = fmt.Sprintf("%s/%s:generateContent", apiBaseURL, model)
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
		c.Reason = "gemini API key is not set"
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
		return nil, domain.NewConfigurationError(serviceName, "gemini API key is not set")
	}

	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"role": "user",
				"parts": []map[string]interface{}{
					{"text": prompt},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature":     gen.Temperature,
			"topK":            gen.TopK,
			"topP":            gen.TopP,
			"maxOutputTokens": gen.MaxOutputTokens,
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
	req.Header.Set("x-goog-api-key", s.apiKey)

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
	case resp.StatusCode == http.StatusRequestTimeout, resp.StatusCode == http.StatusGatewayTimeout,
		resp.StatusCode == http.StatusServiceUnavailable:
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

// geminiResponse models the Gemini API response.
type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
}

func parseResponse(body []byte) (string, error) {
	var resp geminiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", domain.NewAPIError(serviceName, http.StatusOK, "malformed response: "+err.Error())
	}
	if len(resp.Candidates) == 0 {
		return "", domain.NewAPIError(serviceName, http.StatusOK, "empty response: no candidates")
	}
	parts := resp.Candidates[0].Content.Parts
	if len(parts) == 0 {
		return "", domain.NewAPIError(serviceName, http.StatusOK,
			"empty response: no parts (finish reason "+resp.Candidates[0].FinishReason+")")
	}

	var sb strings.Builder
	for _, p := range parts {
		sb.WriteString(p.Text)
	}
	return strings.TrimSpace(sb.String()), nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
