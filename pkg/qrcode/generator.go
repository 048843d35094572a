package qrcode

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	stddraw "image/draw"
	"image/png"

	skipqrcode "github.com/skip2/go-qrcode"
	xdraw "golang.org/x/image/draw"
)

// logoRatio is the share of the image side covered by a logo.
const logoRatio = 5

// Render draws the QR code described by opts.
// Error correction is High so that a centered logo does not break decoding.
func Render(opts Options) (image.Image, error) {
	if opts.Payload == "" {
		return nil, ErrEmptyContent
	}
	if opts.Size == 0 {
		opts.Size = DefaultSize
	}
	if opts.Foreground == "" {
		opts.Foreground = DefaultForeground
	}
	if opts.Background == "" {
		opts.Background = DefaultBackground
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	fg, _ := ParseHexColor(opts.Foreground)
	bg, _ := ParseHexColor(opts.Background)

	q, err := skipqrcode.New(opts.Payload, skipqrcode.High)
	if err != nil {
		return nil, errors.Join(ErrFailedToGenerate, err)
	}
	q.ForegroundColor = fg
	q.BackgroundColor = bg

	img := fitSize(q.Image(opts.Size), opts.Size)
	if !opts.HasLogo() {
		return img, nil
	}

	logo, err := decodeLogo(opts.Logo)
	if err != nil {
		return nil, err
	}
	return overlayLogo(img, logo, bg), nil
}

// fitSize scales img down to size x size. skip2 never draws a module smaller
// than one pixel, so dense symbols come back larger than requested.
func fitSize(img image.Image, size int) image.Image {
	if img.Bounds().Dx() == size && img.Bounds().Dy() == size {
		return img
	}
	out := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(out, out.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return out
}

// overlayLogo clears a square in the center of img with bg and draws logo scaled into it.
func overlayLogo(img, logo image.Image, bg color.Color) image.Image {
	b := img.Bounds()
	out := image.NewRGBA(b)
	stddraw.Draw(out, b, img, b.Min, stddraw.Src)

	side := b.Dx() / logoRatio
	pad := side / 10
	c := image.Pt(b.Min.X+b.Dx()/2, b.Min.Y+b.Dy()/2)
	area := image.Rect(c.X-side/2-pad, c.Y-side/2-pad, c.X+side/2+pad, c.Y+side/2+pad)
	stddraw.Draw(out, area, image.NewUniform(bg), image.Point{}, stddraw.Src)

	dst := image.Rect(c.X-side/2, c.Y-side/2, c.X+side/2, c.Y+side/2)
	xdraw.CatmullRom.Scale(out, dst, logo, logo.Bounds(), xdraw.Over, nil)
	return out
}

// PNG renders opts and encodes the result as PNG.
func PNG(opts Options) ([]byte, error) {
	img, err := Render(opts)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Join(ErrFailedToGenerate, err)
	}
	return buf.Bytes(), nil
}

// DataURI renders opts as a base64 PNG data URI, suitable for an <img src>.
func DataURI(opts Options) (string, error) {
	data, err := PNG(opts)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("data:image/png;base64,%s", base64.StdEncoding.EncodeToString(data)), nil
}

// Generate creates a black-on-white QR code PNG with the given content.
// A non-positive size falls back to DefaultSize.
func Generate(content string, size int) ([]byte, error) {
	opts := DefaultOptions()
	opts.Payload = content
	if size > 0 {
		opts.Size = size
	}
	return PNG(opts)
}
