package i18n

import "context"

type langKey struct{}

// WithLanguage returns a copy of ctx carrying lang for Tc and Tdc.
func WithLanguage(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, langKey{}, lang)
}

// Language reports the language stored in ctx, or DefaultLanguage.
func Language(ctx context.Context) string {
	if lang, ok := ctx.Value(langKey{}).(string); ok && lang != "" {
		return lang
	}
	return DefaultLanguage
}
