package translation

import "landrecords/internal/domain"

var languageCodes = map[string]string{
	domain.LanguageUrdu:     "ur",
	domain.LanguageHindi:    "hi",
	domain.LanguageEnglish:  "en",
	domain.LanguagePunjabi:  "pa",
	domain.LanguageKashmiri: "ks",
	domain.LanguageArabic:   "ar",
}

// SourceCode maps a stored document language to the code sent to the
// translation engine. Unknown languages map to "" so the engine detects.
func SourceCode(language string) string {
	if code, ok := languageCodes[language]; ok {
		return code
	}
	if len(language) == 2 {
		return language
	}
	return ""
}
