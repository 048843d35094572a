package scan

import (
	"bytes"
	"errors"
	"image"
	"io"

	// Supported upload formats
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/oned"
	"github.com/makiuchi-d/gozxing/qrcode"

	"github.com/nesaranaeem/qr-box/pkg/barcode"
)

var (
	ErrInvalidImage = errors.New("scan: unsupported or corrupt image")
	ErrNoCode       = errors.New("scan: no code found in image")
)

// Decoder extracts the text of a single code from an image.
type Decoder interface {
	Decode(img image.Image) (string, error)
}

// DecoderFunc adapts a function to the Decoder interface.
type DecoderFunc func(img image.Image) (string, error)

func (f DecoderFunc) Decode(img image.Image) (string, error) { return f(img) }

type readerDecoder struct {
	newReader func() gozxing.Reader
	hints     map[gozxing.DecodeHintType]any
}

func (d readerDecoder) Decode(img image.Image) (string, error) {
	if img == nil {
		return "", ErrInvalidImage
	}
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", errors.Join(ErrInvalidImage, err)
	}
	res, err := d.newReader().Decode(bmp, d.hints)
	if err != nil {
		return "", errors.Join(ErrNoCode, err)
	}
	return res.GetText(), nil
}

// NewBarcodeDecoder returns a decoder for EAN-13, EAN-8, UPC-A and UPC-E symbols.
func NewBarcodeDecoder() Decoder {
	hints := map[gozxing.DecodeHintType]any{
		gozxing.DecodeHintType_TRY_HARDER: true,
	}
	return readerDecoder{
		newReader: func() gozxing.Reader { return oned.NewMultiFormatUPCEANReader(hints) },
		hints:     hints,
	}
}

// NewQRDecoder returns a decoder for QR codes.
func NewQRDecoder() Decoder {
	return readerDecoder{
		newReader: func() gozxing.Reader { return qrcode.NewQRCodeReader() },
		hints: map[gozxing.DecodeHintType]any{
			gozxing.DecodeHintType_TRY_HARDER: true,
		},
	}
}

// DecodeImage reads a PNG, JPEG or GIF image.
func DecodeImage(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, errors.Join(ErrInvalidImage, err)
	}
	return img, nil
}

// DecodeBytes decodes data as an image and runs d over it.
func DecodeBytes(d Decoder, data []byte) (string, error) {
	img, err := DecodeImage(bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	return d.Decode(img)
}

// Classify decodes a barcode from img and classifies it.
// Any decode failure yields barcode.NoBarcode; the error is returned for logging.
func Classify(d Decoder, img image.Image) (barcode.Result, error) {
	code, err := d.Decode(img)
	if err != nil {
		return barcode.Inspect(""), err
	}
	return barcode.Inspect(code), nil
}
