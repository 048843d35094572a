// Package i18n translates user-facing messages and negotiates the language
// to serve them in.
//
// Translations are nested maps keyed by language code and loaded through a
// TranslationAdapter: MapAdapter for in-memory data and EmbeddedFsAdapter for
// YAML locale files shipped with the binary. Keys are dot-separated paths into
// the nested map ("content.error.invalid_url_format") and values may contain
// named placeholders written as %{name}.
//
// # Usage
//
//	//go:embed *.yaml
//	var files embed.FS
//
//	translator, err := i18n.NewTranslator(ctx,
//		i18n.NewEmbeddedFsAdapter(i18n.NewYAMLParser(), files, "."),
//		i18n.WithDefaultLanguage("en"),
//	)
//	if err != nil {
//		return err
//	}
//
//	msg := translator.T("bn", "barcode.category.bangladesh")
//
// A key missing in the requested language is looked up in the default
// language before falling back to the key itself.
//
// # Language negotiation
//
// Matcher wraps golang.org/x/text/language and maps tags or full
// Accept-Language headers onto the supported languages, so "bn-BD" resolves
// to "bn" and unsupported preferences resolve to the default. Middleware
// stores the negotiated language in the request context, where Tc reads it:
//
//	router.Use(i18n.Middleware(i18n.DefaultLangExtractor(translator.Matcher())))
//
// # Error Handling
//
// Loading errors are sentinel values joined with their cause, compare with
// errors.Is (ErrParse, ErrRead, ErrCancelled, ...).
package i18n
