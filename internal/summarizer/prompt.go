package summarizer

import (
	"fmt"
	"unicode/utf8"

	"landrecords/internal/domain"
)

// DefaultMaxInputChars bounds the document text sent to the model.
const DefaultMaxInputChars = 15000

const truncationMarker = "\n\n[Text truncated due to length...]"

// GenerationSettings are the sampling parameters for one request.
type GenerationSettings struct {
	Temperature     float32
	TopK            int32
	TopP            float32
	MaxOutputTokens int32
}

// SummarySettings are used for every summary kind.
var SummarySettings = GenerationSettings{Temperature: 0.4, TopK: 32, TopP: 1, MaxOutputTokens: 2048}

// QuestionSettings are used for document Q&A.
var QuestionSettings = GenerationSettings{Temperature: 0.3, TopK: 32, TopP: 1, MaxOutputTokens: 1024}

var summaryTemplates = map[domain.SummaryKind]string{
	domain.SummaryGeneral:      "Please provide a concise summary of the following document:\n\n%s",
	domain.SummaryLandRecord:   "This is a land record document. Summarize the key information including owner name, land area, location, and any important details:\n\n%s",
	domain.SummaryLegal:        "Analyze this legal document and provide a summary highlighting key legal points, parties involved, and main clauses:\n\n%s",
	domain.SummaryBulletPoints: "Summarize the following text in bullet points, highlighting the most important information:\n\n%s",
	domain.SummaryExtractData:  "Extract structured data from this land record document. Identify: Owner Name, Khasra Number, Area (Kanal/Marla), Tehsil, District, and any other relevant fields:\n\n%s",
}

// BuildSummaryPrompt renders the prompt for kind. Unknown kinds use the general prompt.
func BuildSummaryPrompt(kind domain.SummaryKind, text string) string {
	tmpl, ok := summaryTemplates[kind]
	if !ok {
		tmpl = summaryTemplates[domain.SummaryGeneral]
	}
	return fmt.Sprintf(tmpl, text)
}

// BuildQuestionPrompt renders the document Q&A prompt.
func BuildQuestionPrompt(text, question string) string {
	return fmt.Sprintf("Based on the following document, please answer this question: %s\n\nDocument:\n%s\n\nAnswer:", question, text)
}

// Truncate cuts text to maxChars characters and appends a marker when it was cut.
func Truncate(text string, maxChars int) string {
	if maxChars <= 0 {
		maxChars = DefaultMaxInputChars
	}
	if utf8.RuneCountInString(text) <= maxChars {
		return text
	}
	return string([]rune(text)[:maxChars]) + truncationMarker
}
