package i18n

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"sort"
	"strings"
	"sync"
)

// Translator resolves dot-separated keys against translations loaded from an adapter.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
	matcher        *Matcher
	mu             sync.RWMutex
}

// NewTranslator creates a new Translator instance with the given adapter and options.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.DiscardHandler),
	}
	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := t.validateTranslations(translations); err != nil {
		return nil, err
	}

	t.translations = translations
	t.matcher = NewMatcher(t.preferenceOrder()...)
	t.logger.InfoContext(ctx, "translations loaded", slog.Any("languages", t.supportedLanguages()))
	return t, nil
}

// validateTranslations ensures language codes are non-empty and maps are non-nil.
func (t *Translator) validateTranslations(trans map[string]map[string]any) error {
	if len(trans) == 0 {
		t.logger.Warn("no translations provided")
		return nil
	}

	for lang, translations := range trans {
		if lang == "" {
			return fmt.Errorf("empty language code found")
		}
		if translations == nil {
			return fmt.Errorf("nil translations map for language: %s", lang)
		}
	}
	return nil
}

func (t *Translator) supportedLanguages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// preferenceOrder lists the default language first, then the rest alphabetically.
func (t *Translator) preferenceOrder() []string {
	langs := t.supportedLanguages()
	if i := slices.Index(langs, t.defaultLang); i > 0 {
		langs = append([]string{t.defaultLang}, slices.Delete(langs, i, i+1)...)
	} else if i < 0 {
		langs = append([]string{t.defaultLang}, langs...)
	}
	return langs
}

// SupportedLanguages returns a list of language codes that have translations available.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.supportedLanguages()
}

// DefaultLanguage returns the language used when none is requested or matched.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// Matcher returns a matcher over the loaded languages, default language first.
func (t *Translator) Matcher() *Matcher {
	return t.matcher
}

// getTranslation traverses a nested map using dot-separated keys.
// For example, key "content.error.invalid_url_format" walks m["content"]["error"].
func (t *Translator) getTranslation(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m

	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return val, true
		}

		switch next := val.(type) {
		case map[string]any:
			current = next
		case map[any]any:
			current = make(map[string]any, len(next))
			for k, v := range next {
				if ks, ok := k.(string); ok {
					current[ks] = v
				}
			}
		default:
			return nil, false
		}
	}

	return nil, false
}

// lookup returns the string stored under key for lang, if any.
func (t *Translator) lookup(lang, key string) (string, bool) {
	langMap, ok := t.translations[lang]
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("language not supported", "lang", lang, "key", key)
		}
		return "", false
	}

	val, ok := t.getTranslation(langMap, key)
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("translation not found", "lang", lang, "key", key)
		}
		return "", false
	}

	switch v := val.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	default:
		if t.missingLogMode {
			t.logger.Warn("translation is not a string", "lang", lang, "key", key, "type", fmt.Sprintf("%T", v))
		}
		return "", false
	}
}

// HasTranslation checks if a translation exists for the given language and key.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.lookup(lang, key)
	return ok
}

// buildParams converts a slice of strings (expected as key, value, key, value, …)
// into a map. If the number of arguments is odd, the last one is ignored.
func buildParams(args []string) map[string]string {
	params := make(map[string]string, len(args)/2)
	for i := 0; i < len(args)-1; i += 2 {
		params[args[i]] = args[i+1]
	}
	return params
}

// Regex to find named parameters in the form %{name}
var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// sprintf substitutes "%{key}" placeholders; unknown placeholders are kept.
func sprintf(tmpl string, args []string) string {
	if len(args) < 2 {
		return tmpl
	}
	params := buildParams(args)
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}

// T translates a key for the given language. Arguments are key-value pairs
// substituted into "%{name}" placeholders:
//
//	// With translation "barcode.verdict": "This is a %{country} product"
//	msg := translator.T("en", "barcode.verdict", "country", "Bangladeshi")
//
// A missing language or key falls back to the default language, then to the
// key itself when FallbackToKey is enabled (the default), otherwise to "".
func (t *Translator) T(lang, key string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if v, ok := t.lookup(lang, key); ok {
		return sprintf(v, args)
	}
	if lang != t.defaultLang {
		if v, ok := t.lookup(t.defaultLang, key); ok {
			return sprintf(v, args)
		}
	}
	if t.fallbackToKey {
		return sprintf(key, args)
	}
	return ""
}

// Td translates a key with an explicit default used when the key is missing
// in both the requested and the default language.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if v, ok := t.lookup(lang, key); ok {
		return sprintf(v, args)
	}
	if lang != t.defaultLang {
		if v, ok := t.lookup(t.defaultLang, key); ok {
			return sprintf(v, args)
		}
	}
	return sprintf(defaultValue, args)
}

// Tc translates a key using language from context
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(Language(ctx), key, args...)
}

// Tdc is Td with the language taken from context.
func (t *Translator) Tdc(ctx context.Context, key, defaultValue string, args ...string) string {
	return t.Td(Language(ctx), key, defaultValue, args...)
}
