package i18n

import "errors"

var (
	ErrNilAdapter         = errors.New("i18n: nil translation adapter")
	ErrCancelled          = errors.New("i18n: loading cancelled")
	ErrRead               = errors.New("i18n: cannot read translations")
	ErrParse              = errors.New("i18n: malformed translations")
	ErrNoTranslationFiles = errors.New("i18n: no translation files")
)
