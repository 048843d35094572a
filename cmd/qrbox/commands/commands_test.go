package commands_test

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nesaranaeem/qr-box/cmd/qrbox/commands"
	"github.com/nesaranaeem/qr-box/pkg/scan"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := commands.NewRootCommand()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(io.Discard)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestClassify(t *testing.T) {
	t.Parallel()

	t.Run("english", func(t *testing.T) {
		t.Parallel()
		out, err := run(t, "classify", "--lang", "en", "8901234567890", "4901234567894")
		require.NoError(t, err)
		assert.Contains(t, out, "Barcode text: 8901234567890\nThis is an Indian product\n")
		assert.Contains(t, out, "This is a Japanese product")
	})

	t.Run("bengali", func(t *testing.T) {
		t.Parallel()
		out, err := run(t, "classify", "--lang", "bn-BD", "8801234567890")
		require.NoError(t, err)
		assert.Contains(t, out, "এটি একটি বাংলাদেশি পণ্য")
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()
		out, err := run(t, "classify", "--json", "--lang", "en", "123")
		require.NoError(t, err)

		var got []map[string]string
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "unknown", got[0]["category"])
		assert.Equal(t, "Unknown product origin", got[0]["message"])
	})

	t.Run("requires a code", func(t *testing.T) {
		t.Parallel()
		_, err := run(t, "classify")
		require.Error(t, err)
	})
}

func TestScanBlankImage(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "blank.png")
	img := image.NewGray(image.Rect(0, 0, 120, 80))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	out, err := run(t, "scan", "--lang", "en", path)
	require.NoError(t, err)
	assert.Equal(t, "No barcode found\n", out)
}

func TestEncodeDecode(t *testing.T) {
	t.Parallel()

	t.Run("png round trip", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "qr.png")
		_, err := run(t, "encode", "--type", "email", "--value", "user@example.com", "--size", "300", "--out", path)
		require.NoError(t, err)

		f, err := os.Open(path)
		require.NoError(t, err)
		defer f.Close()
		img, err := png.Decode(f)
		require.NoError(t, err)
		assert.Equal(t, 300, img.Bounds().Dx())
		payload, err := scan.NewQRDecoder().Decode(img)
		require.NoError(t, err)
		assert.Equal(t, "user@example.com", payload)

		out, err := run(t, "decode", "--lang", "en", path)
		require.NoError(t, err)
		assert.Equal(t, "Email\nuser@example.com\n", out)
	})

	t.Run("contact fields", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "card.png")
		_, err := run(t, "encode", "--type", "contact",
			"--name", "Jane", "--phone", "+15550100", "--email", "jane@example.com", "--address", "1 Loop",
			"--out", path)
		require.NoError(t, err)

		out, err := run(t, "decode", "--lang", "en", path)
		require.NoError(t, err)
		assert.Contains(t, out, "Contact\nBEGIN:VCARD\n")
		assert.Contains(t, out, "FN:Jane\n")
	})

	t.Run("terminal output with sample content", func(t *testing.T) {
		t.Parallel()
		out, err := run(t, "encode", "--type", "url")
		require.NoError(t, err)
		assert.NotEmpty(t, out)
	})

	t.Run("invalid content is localized", func(t *testing.T) {
		t.Parallel()
		_, err := run(t, "encode", "--lang", "en", "--type", "email", "--value", "not-an-email")
		require.Error(t, err)
		assert.Equal(t, "Invalid email format", err.Error())
	})

	t.Run("invalid style", func(t *testing.T) {
		t.Parallel()
		_, err := run(t, "encode", "--size", "64")
		require.Error(t, err)
	})

	t.Run("unknown type", func(t *testing.T) {
		t.Parallel()
		_, err := run(t, "encode", "--type", "fax")
		require.Error(t, err)
	})
}

func TestDecodeWithoutCode(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "black.png")
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, 64, 64))))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))

	_, err := run(t, "decode", "--lang", "en", path)
	require.Error(t, err)
	assert.Equal(t, "No QR code found in the image.", err.Error())
}
