package extract

import "github.com/caralegal/cara/core"

// contractKind is the canonical contract category detected from raw text.
// Localized labels are looked up per language, so classification logic
// never compares display strings.
type contractKind int

const (
	kindUnknown contractKind = iota
	kindEmployment
	kindService
	kindNDA
	kindSale
)

// localeStrings holds every user-facing string the extractors produce,
// for one output language.
type localeStrings struct {
	contractTypes     map[contractKind]string
	noDates           string
	noAmounts         string
	genericClauseType string
	genericClauseText string
}

var locales = map[core.Language]localeStrings{
	core.LanguageEnglish: {
		contractTypes: map[contractKind]string{
			kindUnknown:    "Unknown",
			kindEmployment: "Employment Agreement",
			kindService:    "Service Agreement",
			kindNDA:        "Non-Disclosure Agreement",
			kindSale:       "Sale/Purchase Agreement",
		},
		noDates:           "No dates found",
		noAmounts:         "No financial terms found",
		genericClauseType: "General Contract Terms",
		genericClauseText: "Standard contractual terms detected. Review recommended to ensure fairness to both parties.",
	},
	core.LanguageHindi: {
		contractTypes: map[contractKind]string{
			kindUnknown:    "Unknown",
			kindEmployment: "रोजगार समझौता",
			kindService:    "सेवा समझौता",
			kindNDA:        "गोपनीयता समझौता",
			kindSale:       "बिक्री/खरीद समझौता",
		},
		noDates:           "कोई तिथि नहीं मिली",
		noAmounts:         "कोई राशि नहीं मिली",
		genericClauseType: "सामान्य अनुबंध शर्तें",
		genericClauseText: "अनुबंध में मानक शर्तें पाई गई हैं। दोनों पक्षों के लिए निष्पक्षता सुनिश्चित करने के लिए समीक्षा अनुशंसित है।",
	},
}

// localeFor returns the string table for a language, defaulting to English
// for unrecognized values.
func localeFor(lang core.Language) localeStrings {
	if loc, ok := locales[lang]; ok {
		return loc
	}
	return locales[core.LanguageEnglish]
}
