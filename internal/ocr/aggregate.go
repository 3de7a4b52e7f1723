package ocr

import (
	"math"
	"strings"

	"landrecords/internal/domain"
	"landrecords/internal/port"
)

// Result is the document-level reduction of block annotations.
type Result struct {
	Text         string
	Confidence   float64
	LanguageCode string
	Language     string
	Blocks       int
	ScoredBlocks int
}

// Aggregate reduces block-level annotations into one text, confidence and
// dominant language.
//
// Confidence is the mean of scored blocks as a 0-100 percentage rounded to
// two decimals, and 0 when no block was scored. The dominant language is the
// most frequent tag; ties go to the code seen first. Blocks are joined with
// newlines in page then block order, words within a block with single spaces.
func Aggregate(pages []port.OCRPage) Result {
	var (
		lines      []string
		sum        float64
		scored     int
		blockCount int
		counts     = map[string]int{}
		order      []string
	)

	for _, page := range pages {
		for _, block := range page.Blocks {
			blockCount++
			if block.Confidence != nil {
				sum += *block.Confidence
				scored++
			}
			for _, code := range block.Languages {
				if code == "" {
					continue
				}
				if _, seen := counts[code]; !seen {
					order = append(order, code)
				}
				counts[code]++
			}
			if text := strings.Join(block.Words, " "); text != "" {
				lines = append(lines, text)
			}
		}
	}

	res := Result{
		Text:         strings.TrimSpace(strings.Join(lines, "\n")),
		Blocks:       blockCount,
		ScoredBlocks: scored,
		LanguageCode: dominant(counts, order),
	}
	if scored > 0 {
		res.Confidence = clampPercent(math.Round(sum/float64(scored)*100*100) / 100)
	}
	res.Language = NormalizeLanguage(res.LanguageCode)
	return res
}

func dominant(counts map[string]int, order []string) string {
	best, bestCount := "", 0
	for _, code := range order {
		if counts[code] > bestCount {
			best, bestCount = code, counts[code]
		}
	}
	return best
}

func clampPercent(v float64) float64 {
	switch {
	case v < 0 || math.IsNaN(v):
		return 0
	case v > 100:
		return 100
	default:
		return v
	}
}

var languageNames = map[string]string{
	"ur": domain.LanguageUrdu,
	"hi": domain.LanguageHindi,
	"en": domain.LanguageEnglish,
	"pa": domain.LanguagePunjabi,
	"ks": domain.LanguageKashmiri,
	"ar": domain.LanguageArabic,
}

// NormalizeLanguage maps a two-letter code to its canonical name.
// Unrecognized codes pass through unchanged; an empty code is "unknown".
func NormalizeLanguage(code string) string {
	if code == "" {
		return domain.LanguageUnknown
	}
	if name, ok := languageNames[strings.ToLower(code)]; ok {
		return name
	}
	return code
}
