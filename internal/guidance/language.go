// Package guidance derives user-facing response guidance from a document's
// analysis record: routing signals, a required-action plan, a localized
// action instruction, and a response-letter outline.
//
// Every function in this package is pure. The wall clock is always an
// explicit parameter and all output is built fresh from the inputs, so the
// package is safe to call concurrently without coordination.
package guidance

import (
	"strings"

	"golang.org/x/text/language"
)

// Language selects the localization of generated guidance text.
type Language string

// Supported guidance languages.
const (
	LangEN Language = "en"
	LangES Language = "es"
)

var supportedLanguages = language.NewMatcher([]language.Tag{
	language.English, // first entry is the fallback
	language.Spanish,
})

// ParseLanguage normalizes an arbitrary language selector ("es", "es-MX",
// "EN-us", garbage) to a supported Language. Anything that does not match
// Spanish falls back to English.
func ParseLanguage(tag string) Language {
	parsed, err := language.Parse(strings.TrimSpace(tag))
	if err != nil {
		return LangEN
	}
	_, index, _ := supportedLanguages.Match(parsed)
	if index == 1 {
		return LangES
	}
	return LangEN
}

// text is a language-indexed localized string. Lookups fall back to English
// so a partially translated table degrades instead of producing blanks.
type text map[Language]string

func (t text) get(lang Language) string {
	if s, ok := t[lang]; ok {
		return s
	}
	return t[LangEN]
}
