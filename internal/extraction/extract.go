// Package extraction pattern-matches land record fields out of OCR text.
package extraction

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"landrecords/internal/domain"
)

var (
	khasraPatterns = []*regexp.Regexp{
		regexp.MustCompile(`خسرہ\s*نمبر[:\s]*(\d+)`),
		regexp.MustCompile(`खसरा\s*(?:नंबर|न०)?[:\s]*(\d+)`),
		regexp.MustCompile(`(?i)khasra\s*(?:no\.?|number)?[:\s]*(\d+)`),
	}
	areaPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d+(?:\.\d+)?)\s*کنال\s*(\d+(?:\.\d+)?)\s*مرلہ`),
		regexp.MustCompile(`(\d+(?:\.\d+)?)\s*कनाल\s*(\d+(?:\.\d+)?)\s*मरला`),
		regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*kanal\s*(\d+(?:\.\d+)?)\s*marla`),
	}
	ownerPatterns    = labelPatterns(`مالک`, `मालिक`, `(?i)owner(?:\s*name)?`)
	mauzaPatterns    = labelPatterns(`موضع`, `मौजा`, `(?i)mauza`)
	tehsilPatterns   = labelPatterns(`تحصیل`, `तहसील`, `(?i)tehsil`)
	districtPatterns = labelPatterns(`ضلع`, `जिला`, `(?i)district`)
)

// labelPatterns matches "<label>: value" up to the end of the line.
func labelPatterns(labels ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(labels))
	for _, l := range labels {
		out = append(out, regexp.MustCompile(l+`\s*[:：]\s*([^\n:]+)`))
	}
	return out
}

// Extract returns the land record fields found in text. Fields not found are left empty.
func Extract(text string) domain.LandRecordExtraction {
	text = normalizeDigits(text)
	var ex domain.LandRecordExtraction
	ex.KhasraNumber = firstGroup(khasraPatterns, text)
	ex.OwnerName = firstGroup(ownerPatterns, text)
	ex.Mauza = firstGroup(mauzaPatterns, text)
	ex.Tehsil = firstGroup(tehsilPatterns, text)
	ex.District = firstGroup(districtPatterns, text)

	for _, re := range areaPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		kanal, err1 := strconv.ParseFloat(m[1], 64)
		marla, err2 := strconv.ParseFloat(m[2], 64)
		if err1 == nil && err2 == nil {
			ex.AreaKanal = &kanal
			ex.AreaMarla = &marla
			break
		}
	}
	return ex
}

// IsEmpty reports whether nothing was extracted.
func IsEmpty(ex domain.LandRecordExtraction) bool {
	return ex.KhasraNumber == "" && ex.OwnerName == "" && ex.Mauza == "" &&
		ex.Tehsil == "" && ex.District == "" && ex.AreaKanal == nil
}

func firstGroup(patterns []*regexp.Regexp, text string) string {
	for _, re := range patterns {
		if m := re.FindStringSubmatch(text); m != nil {
			if v := strings.TrimSpace(m[1]); v != "" {
				return v
			}
		}
	}
	return ""
}

// normalizeDigits maps Arabic-Indic, Extended Arabic-Indic and Devanagari digits to ASCII.
func normalizeDigits(text string) string {
	return strings.Map(func(r rune) rune {
		if r <= '9' || !unicode.IsDigit(r) {
			return r
		}
		for _, zero := range []rune{'\u0660', '\u06F0', '\u0966'} {
			if r >= zero && r <= zero+9 {
				return '0' + (r - zero)
			}
		}
		return r
	}, text)
}
