package qrcode

import "errors"

var (
	// ErrEmptyContent is returned for an empty payload. Whitespace is content.
	ErrEmptyContent = errors.New("content cannot be empty")
	// ErrFailedToGenerate is returned when the QR code generation fails.
	ErrFailedToGenerate = errors.New("failed to generate QR code")
	ErrInvalidSize      = errors.New("qr code size out of range")
	ErrInvalidColor     = errors.New("color must be in #RRGGBB format")
	ErrInvalidLogo      = errors.New("logo must be a PNG, JPEG or GIF image")
)
