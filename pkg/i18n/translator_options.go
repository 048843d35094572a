package i18n

import "log/slog"

type Option func(*Translator)

// WithDefaultLanguage sets the language used for unknown or missing languages.
// Empty keeps DefaultLanguage.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = lang
		}
	}
}

// WithFallbackToKey makes T return the key itself when nothing matches (default on).
// With it off, T returns "".
func WithFallbackToKey(on bool) Option {
	return func(t *Translator) { t.fallbackToKey = on }
}

func WithLogger(l *slog.Logger) Option {
	return func(t *Translator) {
		if l != nil {
			t.logger = l
		}
	}
}

// WithMissingTranslationsLogging logs every lookup that falls back at debug level.
func WithMissingTranslationsLogging(on bool) Option {
	return func(t *Translator) { t.missingLogMode = on }
}
