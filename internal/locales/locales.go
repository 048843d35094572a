// Package locales ships the translations for every user-facing message.
package locales

import (
	"context"
	"embed"

	"github.com/nesaranaeem/qr-box/pkg/i18n"
)

//go:embed *.yaml
var files embed.FS

// NewTranslator loads the embedded locale files.
func NewTranslator(ctx context.Context, opts ...i18n.Option) (*i18n.Translator, error) {
	return i18n.NewTranslator(ctx, i18n.NewEmbeddedFsAdapter(i18n.NewYAMLParser(), files, "."), opts...)
}
