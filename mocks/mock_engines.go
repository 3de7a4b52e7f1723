package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"landrecords/internal/domain"
	"landrecords/internal/port"
)

// MockTextRecognizer is a mock implementation of port.TextRecognizer.
type MockTextRecognizer struct {
	mock.Mock
}

func (m *MockTextRecognizer) Recognize(ctx context.Context, image []byte, hints []string) (*port.Annotation, error) {
	args := m.Called(ctx, image, hints)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.Annotation), args.Error(1)
}

// MockImagePreprocessor is a mock implementation of port.ImagePreprocessor.
type MockImagePreprocessor struct {
	mock.Mock
}

func (m *MockImagePreprocessor) Process(raw []byte) ([]byte, error) {
	args := m.Called(raw)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockTranslator is a mock implementation of port.Translator.
type MockTranslator struct {
	mock.Mock
}

func (m *MockTranslator) Translate(ctx context.Context, text, srcLang, tgtLang string) (string, error) {
	args := m.Called(ctx, text, srcLang, tgtLang)
	return args.String(0), args.Error(1)
}

func (m *MockTranslator) Capability() domain.Capability {
	args := m.Called()
	return args.Get(0).(domain.Capability)
}

// MockSummarizer is a mock implementation of port.Summarizer.
type MockSummarizer struct {
	mock.Mock
}

func (m *MockSummarizer) Summarize(ctx context.Context, text string, kind domain.SummaryKind) (*port.SummaryOutput, error) {
	args := m.Called(ctx, text, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.SummaryOutput), args.Error(1)
}

func (m *MockSummarizer) Ask(ctx context.Context, text, question string) (*port.SummaryOutput, error) {
	args := m.Called(ctx, text, question)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.SummaryOutput), args.Error(1)
}

func (m *MockSummarizer) Capability() domain.Capability {
	args := m.Called()
	return args.Get(0).(domain.Capability)
}
