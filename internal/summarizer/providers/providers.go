// Package providers registers every summarizer provider with the summarizer
// factory. Import it for side effects.
package providers

import (
	_ "landrecords/internal/summarizer/claude"
	_ "landrecords/internal/summarizer/gemini"
	_ "landrecords/internal/summarizer/openai"
	_ "landrecords/internal/summarizer/vertex"
)
