// Package qrcode renders QR code images from a payload and styling options.
//
// The package wraps github.com/skip2/go-qrcode and adds the styling the
// generator UI exposes: image size, foreground and background colors and an
// optional centered logo. Logos are scaled with golang.org/x/image/draw and
// placed on a cleared square of background color; codes are always encoded
// with High error correction so a logo does not prevent decoding.
//
// # Usage
//
//	opts := qrcode.DefaultOptions()
//	opts.Payload = "https://example.com"
//	opts.Foreground = "#112233"
//
//	png, err := qrcode.PNG(opts)
//	if err != nil {
//		// handle error
//	}
//
//	// or as a data URI for an <img> tag
//	uri, err := qrcode.DataURI(opts)
//
// Logos uploaded as data URIs are converted with ParseDataURI before being
// assigned to Options.Logo.
//
// # Error Handling
//
// The functions return sentinel errors, joined with the underlying cause
// where there is one:
//
//   - ErrEmptyContent: the payload was empty.
//   - ErrInvalidSize: size outside [MinSize, MaxSize].
//   - ErrInvalidColor: a color is not #RRGGBB.
//   - ErrInvalidLogo: the logo is not a decodable image or too large.
//   - ErrFailedToGenerate: the payload does not fit into a QR code.
//
// Compare with errors.Is.
package qrcode
