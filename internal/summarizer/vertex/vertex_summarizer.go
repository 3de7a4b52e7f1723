package vertex

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"cloud.google.com/go/vertexai/genai"
	log "github.com/sirupsen/logrus"

	"landrecords/internal/config"
	"landrecords/internal/domain"
	"landrecords/internal/port"
	"landrecords/internal/summarizer"
)

const serviceName = "vertex"

func init() {
	summarizer.RegisterProvider(serviceName, func(ctx context.Context, cfg *config.SummarizerConfig) (port.Summarizer, error) {
		return NewSummarizer(ctx, cfg)
	})
}

// Summarizer implements port.Summarizer using Gemini models on Vertex AI.
type Summarizer struct {
	client   *genai.Client
	model    string
	maxChars int
	reason   string
}

// NewSummarizer creates a Vertex AI client. Without a project the summarizer
// is returned unavailable instead of failing startup.
func NewSummarizer(ctx context.Context, cfg *config.SummarizerConfig) (*Summarizer, error) {
	s := &Summarizer{model: cfg.Model, maxChars: cfg.MaxInputChars}
	if s.model == "" {
		s.model = "gemini-2.0-flash"
	}
	if cfg.Project == "" {
		s.reason = "vertex project is not set"
		return s, nil
	}
	location := cfg.Location
	if location == "" {
		location = "us-central1"
	}

	client, err := genai.NewClient(ctx, cfg.Project, location)
	if err != nil {
		return nil, fmt.Errorf("creating vertex client: %w", err)
	}
	s.client = client
	log.WithFields(log.Fields{"project": cfg.Project, "location": location, "model": s.model}).
		Info("vertex summarizer initialized")
	return s, nil
}

// Close releases the underlying client.
func (s *Summarizer) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}

// Capability reports whether a Vertex project is configured.
func (s *Summarizer) Capability() domain.Capability {
	return domain.Capability{Name: "summarizer", Provider: serviceName, Available: s.client != nil, Reason: s.reason}
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
	if s.client == nil {
		return nil, domain.NewConfigurationError(serviceName, s.reason)
	}

	model := s.client.GenerativeModel(s.model)
	model.SetTemperature(gen.Temperature)
	model.SetTopK(gen.TopK)
	model.SetTopP(gen.TopP)
	model.SetMaxOutputTokens(gen.MaxOutputTokens)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return nil, domain.NewTransportError(serviceName, err)
		}
		return nil, domain.NewAPIError(serviceName, 0, err.Error())
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, domain.NewAPIError(serviceName, 0, "empty response: no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}
	return &port.SummaryOutput{
		Text:       strings.TrimSpace(sb.String()),
		Model:      s.model,
		InputChars: utf8.RuneCountInString(input),
	}, nil
}
