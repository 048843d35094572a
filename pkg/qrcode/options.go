package qrcode

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	// Logo decoders
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/nesaranaeem/qr-box/pkg/validator"
)

const (
	MinSize     = 128
	MaxSize     = 512
	DefaultSize = 256

	DefaultForeground = "#000000"
	DefaultBackground = "#FFFFFF"

	// MaxLogoBytes bounds the decoded logo image.
	MaxLogoBytes = 1 << 20
)

// Options describes a QR code image: the encoded payload and its styling.
type Options struct {
	Payload    string `json:"payload"`
	Size       int    `json:"size"`
	Foreground string `json:"foreground"`
	Background string `json:"background"`
	Logo       []byte `json:"-"`
}

// DefaultOptions returns options with default styling and no payload.
func DefaultOptions() Options {
	return Options{
		Size:       DefaultSize,
		Foreground: DefaultForeground,
		Background: DefaultBackground,
	}
}

// HasLogo reports whether a logo is attached.
func (o Options) HasLogo() bool {
	return len(o.Logo) > 0
}

// Validate checks the styling fields. The payload is checked at render time.
func (o Options) Validate() error {
	if err := ValidateSize(o.Size); err != nil {
		return err
	}
	if _, err := ParseHexColor(o.Foreground); err != nil {
		return err
	}
	if _, err := ParseHexColor(o.Background); err != nil {
		return err
	}
	if o.HasLogo() {
		if err := ValidateLogo(o.Logo); err != nil {
			return err
		}
	}
	return nil
}

// ValidateSize returns ErrInvalidSize when size is outside [MinSize, MaxSize].
func ValidateSize(size int) error {
	if err := validator.Apply(validator.RangeNum("size", size, MinSize, MaxSize)); err != nil {
		return errors.Join(ErrInvalidSize, err)
	}
	return nil
}

// ParseHexColor converts a #RRGGBB string into an opaque color.
func ParseHexColor(s string) (color.RGBA, error) {
	if err := validator.Apply(validator.ValidHexColor("color", s)); err != nil {
		return color.RGBA{}, errors.Join(ErrInvalidColor, err)
	}

	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, errors.Join(ErrInvalidColor, err)
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}

// ValidateLogo checks that logo is a decodable PNG, JPEG or GIF within MaxLogoBytes.
func ValidateLogo(logo []byte) error {
	_, err := decodeLogo(logo)
	return err
}

func decodeLogo(logo []byte) (image.Image, error) {
	if err := validator.Apply(validator.MaxLenBytes("logo", logo, MaxLogoBytes)); err != nil {
		return nil, errors.Join(ErrInvalidLogo, err)
	}
	img, _, err := image.Decode(bytes.NewReader(logo))
	if err != nil {
		return nil, errors.Join(ErrInvalidLogo, err)
	}
	return img, nil
}

// ParseDataURI decodes a base64 "data:image/...;base64," URI into raw bytes.
// A bare base64 string without the data: prefix is accepted too.
func ParseDataURI(uri string) ([]byte, error) {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return nil, ErrInvalidLogo
	}

	data := uri
	if strings.HasPrefix(uri, "data:") {
		meta, payload, ok := strings.Cut(uri, ",")
		if !ok || !strings.HasSuffix(meta, ";base64") || !strings.HasPrefix(meta, "data:image/") {
			return nil, errors.Join(ErrInvalidLogo, fmt.Errorf("unsupported data uri %q", truncate(meta, 32)))
		}
		data = payload
	}

	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, errors.Join(ErrInvalidLogo, err)
	}
	return raw, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
