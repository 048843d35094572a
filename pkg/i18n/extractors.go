package i18n

import (
	"net/http"
	"strings"
)

// ExtractorConfig holds configuration for the language extractor
type ExtractorConfig struct {
	CookieName     string
	QueryParamName string
}

// ExtractorOption configures the language extractor
type ExtractorOption func(*ExtractorConfig)

// WithCookieName sets the cookie name to check for language preference
func WithCookieName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		c.CookieName = name
	}
}

// WithQueryParamName sets the query parameter name to check for language
func WithQueryParamName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.QueryParamName = name
		}
	}
}

// DefaultLangExtractor creates a language extractor that resolves the request
// language against m, checking sources in priority order:
//  1. Query parameter (default name: "lang")
//  2. Cookie (disabled unless WithCookieName is given)
//  3. Accept-Language header
//
// The extractor always returns a supported code, falling back to m.Default().
func DefaultLangExtractor(m *Matcher, opts ...ExtractorOption) LangExtractor {
	if m == nil {
		m = NewMatcher(DefaultLanguage)
	}
	config := &ExtractorConfig{
		QueryParamName: "lang",
	}
	for _, opt := range opts {
		opt(config)
	}

	return func(r *http.Request) string {
		var prefs []string

		if config.QueryParamName != "" {
			prefs = append(prefs, strings.TrimSpace(r.URL.Query().Get(config.QueryParamName)))
		}
		if config.CookieName != "" {
			if cookie, err := r.Cookie(config.CookieName); err == nil {
				prefs = append(prefs, strings.TrimSpace(cookie.Value))
			}
		}
		prefs = append(prefs, r.Header.Get("Accept-Language"))

		return m.Match(prefs...)
	}
}
