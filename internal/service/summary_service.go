package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"landrecords/internal/domain"
	"landrecords/internal/port"
)

// SummaryResult is an AI summary of one document.
type SummaryResult struct {
	DocumentID uuid.UUID          `json:"document_id"`
	Kind       domain.SummaryKind `json:"kind"`
	Summary    string             `json:"summary"`
	Model      string             `json:"model"`
}

// AnswerResult is an AI answer to a question about one document.
type AnswerResult struct {
	DocumentID uuid.UUID `json:"document_id"`
	Question   string    `json:"question"`
	Answer     string    `json:"answer"`
	Model      string    `json:"model"`
}

// BackfillResult reports a summary backfill run.
type BackfillResult struct {
	Processed int `json:"processed"`
	Failed    int `json:"failed"`
}

// SummaryService produces and stores AI summaries of documents.
type SummaryService interface {
	Summarize(ctx context.Context, docID uuid.UUID, kind domain.SummaryKind) (*SummaryResult, error)
	Ask(ctx context.Context, docID uuid.UUID, question string) (*AnswerResult, error)
	Backfill(ctx context.Context, limit int) (*BackfillResult, error)
}

type summaryService struct {
	docRepo    port.DocumentRepository
	summarizer port.Summarizer
}

// NewSummaryService creates a new SummaryService implementation.
func NewSummaryService(docRepo port.DocumentRepository, summarizer port.Summarizer) SummaryService {
	return &summaryService{docRepo: docRepo, summarizer: summarizer}
}

// sourceText prefers the translation when one exists.
func sourceText(doc *domain.Document) string {
	if strings.TrimSpace(doc.TranslatedText) != "" {
		return doc.TranslatedText
	}
	return doc.OCRText
}

func (s *summaryService) loadText(ctx context.Context, docID uuid.UUID) (*domain.Document, string, error) {
	doc, err := s.docRepo.GetByID(ctx, docID)
	if err != nil {
		return nil, "", err
	}
	text := sourceText(doc)
	if strings.TrimSpace(text) == "" {
		return nil, "", domain.ErrNoText
	}
	return doc, text, nil
}

func (s *summaryService) Summarize(ctx context.Context, docID uuid.UUID, kind domain.SummaryKind) (*SummaryResult, error) {
	if kind == "" {
		kind = domain.SummaryGeneral
	}
	if !domain.ValidSummaryKinds[kind] {
		return nil, domain.ErrInvalidSummaryKind
	}

	doc, text, err := s.loadText(ctx, docID)
	if err != nil {
		return nil, err
	}

	out, err := s.summarizer.Summarize(ctx, text, kind)
	if err != nil {
		return nil, err
	}
	if err := s.docRepo.UpdateSummary(ctx, doc.ID, out.Text); err != nil {
		return nil, fmt.Errorf("saving summary: %w", err)
	}

	log.WithFields(log.Fields{
		"document_id": doc.ID,
		"kind":        kind,
		"input_chars": out.InputChars,
	}).Info("summaryService.Summarize: summary stored")

	return &SummaryResult{DocumentID: doc.ID, Kind: kind, Summary: out.Text, Model: out.Model}, nil
}

func (s *summaryService) Ask(ctx context.Context, docID uuid.UUID, question string) (*AnswerResult, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, domain.ErrMissingRequiredFields
	}

	doc, text, err := s.loadText(ctx, docID)
	if err != nil {
		return nil, err
	}

	out, err := s.summarizer.Ask(ctx, text, question)
	if err != nil {
		return nil, err
	}
	return &AnswerResult{DocumentID: doc.ID, Question: question, Answer: out.Text, Model: out.Model}, nil
}

// Backfill summarizes saved documents that have none yet. A document that
// fails is counted and skipped; a configuration error stops the run.
func (s *summaryService) Backfill(ctx context.Context, limit int) (*BackfillResult, error) {
	docs, err := s.docRepo.ListSavedWithoutSummary(ctx, limit)
	if err != nil {
		return nil, err
	}

	result := &BackfillResult{}
	for i := range docs {
		doc := &docs[i]
		out, err := s.summarizer.Summarize(ctx, sourceText(doc), domain.SummaryLandRecord)
		if err == nil {
			err = s.docRepo.UpdateSummary(ctx, doc.ID, out.Text)
		}
		if err != nil {
			var cfgErr *domain.ConfigurationError
			if errors.As(err, &cfgErr) {
				return result, err
			}
			log.Printf("summaryService.Backfill: document %s: %v", doc.ID, err)
			result.Failed++
			continue
		}
		result.Processed++
	}
	return result, nil
}
