// Package i18n provides the languages supported by NameNest and a
// per-language text value with English fallback.
package i18n

import "strings"

// Lang is a supported display language.
type Lang string

const (
	// EN is English, the fallback language.
	EN Lang = "en"
	// HI is Hindi.
	HI Lang = "hi"
)

// Supported lists languages in display order.
var Supported = []Lang{EN, HI}

// ParseLang converts a language code to Lang. Unknown or empty
// codes fall back to English.
func ParseLang(s string) Lang {
	switch Lang(strings.ToLower(strings.TrimSpace(s))) {
	case HI:
		return HI
	default:
		return EN
	}
}

// Text holds a localized string.
type Text struct {
	EN string `json:"en" yaml:"en"`
	HI string `json:"hi" yaml:"hi"`
}

// Get returns text in the given language, falling back to English
// when no translation is present.
func (t Text) Get(lang Lang) string {
	if lang == HI && t.HI != "" {
		return t.HI
	}
	return t.EN
}

// All returns every non-empty translation, English first.
func (t Text) All() []string {
	res := make([]string, 0, 2)
	if t.EN != "" {
		res = append(res, t.EN)
	}
	if t.HI != "" {
		res = append(res, t.HI)
	}
	return res
}
