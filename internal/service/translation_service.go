package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"landrecords/internal/domain"
	"landrecords/internal/port"
	"landrecords/internal/translation"
)

// TranslationResult is the outcome of translating text or a stored document.
type TranslationResult struct {
	DocumentID     *uuid.UUID         `json:"document_id,omitempty"`
	SourceLanguage string             `json:"source_language"`
	TargetLanguage string             `json:"target_language"`
	OriginalText   string             `json:"original_text"`
	TranslatedText string             `json:"translated_text"`
	DetectedTerms  []translation.Term `json:"detected_terms"`
}

// TranslationService translates OCR text and applies the land-record glossary.
type TranslationService interface {
	TranslateDocument(ctx context.Context, docID uuid.UUID) (*TranslationResult, error)
	TranslateText(ctx context.Context, text, srcLang, tgtLang string) (*TranslationResult, error)
	DetectedTerms(text string) []translation.Term
	Glossary() []translation.Category
}

type translationService struct {
	docRepo    port.DocumentRepository
	translator port.Translator
	glossary   *translation.Glossary
	targetLang string
}

// NewTranslationService creates a new TranslationService implementation.
// translator is expected to handle long input, typically a ChunkedTranslator.
func NewTranslationService(
	docRepo port.DocumentRepository,
	translator port.Translator,
	glossary *translation.Glossary,
	targetLang string,
) TranslationService {
	if targetLang == "" {
		targetLang = "en"
	}
	return &translationService{
		docRepo:    docRepo,
		translator: translator,
		glossary:   glossary,
		targetLang: targetLang,
	}
}

func (s *translationService) TranslateDocument(ctx context.Context, docID uuid.UUID) (*TranslationResult, error) {
	doc, err := s.docRepo.GetByID(ctx, docID)
	if err != nil {
		return nil, err
	}
	if doc.ProcessingStatus != domain.ProcessingStatusProcessed {
		return nil, domain.ErrDocumentNotProcessed
	}
	if strings.TrimSpace(doc.OCRText) == "" {
		return nil, domain.ErrNoText
	}

	result, err := s.translate(ctx, doc.OCRText, translation.SourceCode(doc.DetectedLanguage), s.targetLang)
	if err != nil {
		log.WithField("document_id", docID).Errorf("translationService.TranslateDocument: %v", err)
		return nil, err
	}
	result.DocumentID = &doc.ID

	if err := s.docRepo.UpdateTranslation(ctx, doc.ID, result.TranslatedText); err != nil {
		return nil, fmt.Errorf("saving translation: %w", err)
	}
	return result, nil
}

func (s *translationService) TranslateText(ctx context.Context, text, srcLang, tgtLang string) (*TranslationResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.ErrNoText
	}
	if tgtLang == "" {
		tgtLang = s.targetLang
	}
	return s.translate(ctx, text, translation.SourceCode(srcLang), tgtLang)
}

// translate runs the engine and then the glossary pass over its output.
// Text already in the target language skips the engine.
func (s *translationService) translate(ctx context.Context, text, src, tgt string) (*TranslationResult, error) {
	translated := text
	if src != tgt {
		out, err := s.translator.Translate(ctx, text, src, tgt)
		if err != nil {
			return nil, err
		}
		translated = out
	}

	return &TranslationResult{
		SourceLanguage: src,
		TargetLanguage: tgt,
		OriginalText:   text,
		TranslatedText: s.glossary.Apply(translated),
		DetectedTerms:  s.glossary.DetectedTerms(text),
	}, nil
}

func (s *translationService) DetectedTerms(text string) []translation.Term {
	return s.glossary.DetectedTerms(text)
}

func (s *translationService) Glossary() []translation.Category {
	return s.glossary.Categories()
}
