package port

import (
	"context"

	"landrecords/internal/domain"
)

// Translator is a single-call machine translation primitive with a practical
// input-size ceiling.
type Translator interface {
	Translate(ctx context.Context, text, srcLang, tgtLang string) (string, error)
	Capability() domain.Capability
}

// SummaryOutput is the text produced by a generative model.
type SummaryOutput struct {
	Text       string
	Model      string
	InputChars int
}

// Summarizer produces AI summaries and answers over document text.
type Summarizer interface {
	Summarize(ctx context.Context, text string, kind domain.SummaryKind) (*SummaryOutput, error)
	Ask(ctx context.Context, text, question string) (*SummaryOutput, error)
	Capability() domain.Capability
}
