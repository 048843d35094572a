package i18n

import (
	"golang.org/x/text/language"
)

// DefaultLanguage is the default language code used when no language is detected
const DefaultLanguage = "en"

// maxAcceptLanguageLength bounds the Accept-Language header handed to the parser.
const maxAcceptLanguageLength = 4096

// Matcher picks the best supported language for a client preference.
type Matcher struct {
	codes   []string
	matcher language.Matcher
}

// NewMatcher creates a matcher over supported language codes. The first code is
// the fallback; invalid codes are skipped.
func NewMatcher(supported ...string) *Matcher {
	m := &Matcher{}
	tags := make([]language.Tag, 0, len(supported))
	for _, code := range supported {
		tag, err := language.Parse(code)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		m.codes = append(m.codes, code)
	}
	if len(tags) == 0 {
		tags = append(tags, language.English)
		m.codes = append(m.codes, DefaultLanguage)
	}
	m.matcher = language.NewMatcher(tags)
	return m
}

// Default returns the fallback language code.
func (m *Matcher) Default() string {
	return m.codes[0]
}

// Supported returns the supported language codes in preference order.
func (m *Matcher) Supported() []string {
	return append([]string(nil), m.codes...)
}

// Match returns the supported code that best serves the given preferences.
// Each preference may be a language tag ("bn", "en-US") or a full
// Accept-Language header ("bn-BD,bn;q=0.9,en;q=0.8"). Preferences are tried in
// order; the first one with a confident match wins, otherwise the default is returned.
func (m *Matcher) Match(prefs ...string) string {
	for _, pref := range prefs {
		if pref == "" {
			continue
		}
		if len(pref) > maxAcceptLanguageLength {
			pref = pref[:maxAcceptLanguageLength]
		}
		tags, _, err := language.ParseAcceptLanguage(pref)
		if err != nil || len(tags) == 0 {
			continue
		}
		if _, idx, conf := m.matcher.Match(tags...); conf != language.No {
			return m.codes[idx]
		}
	}
	return m.Default()
}
