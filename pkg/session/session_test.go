package session_test

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nesaranaeem/qr-box/pkg/content"
	"github.com/nesaranaeem/qr-box/pkg/qrcode"
	"github.com/nesaranaeem/qr-box/pkg/session"
)

func TestNew(t *testing.T) {
	t.Parallel()

	s := session.New()
	assert.Equal(t, session.Editing, s.State())
	assert.Equal(t, content.URL, s.Type())
	assert.Equal(t, "https://github.com/nesaranaeem", s.Value())
	assert.Equal(t, content.ErrorNone, s.Err())
	assert.False(t, s.Ready())

	opts := s.Options()
	assert.Empty(t, opts.Payload)
	assert.Equal(t, qrcode.DefaultSize, opts.Size)
	assert.Equal(t, qrcode.DefaultForeground, opts.Foreground)
	assert.Equal(t, qrcode.DefaultBackground, opts.Background)
}

func TestSessionGenerate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("valid input becomes payload", func(t *testing.T) {
		t.Parallel()
		s := session.New()
		require.NoError(t, s.SetType(ctx, content.Email))
		require.NoError(t, s.SetValue(ctx, "a@b.com"))

		res, err := s.Generate(ctx)
		require.NoError(t, err)
		assert.True(t, res.OK())
		assert.Equal(t, session.Ready, s.State())
		assert.True(t, s.Ready())
		assert.Equal(t, "a@b.com", s.Options().Payload)
	})

	t.Run("invalid input keeps previous payload", func(t *testing.T) {
		t.Parallel()
		s := session.New()
		_, err := s.Generate(ctx)
		require.NoError(t, err)
		require.Equal(t, "https://github.com/nesaranaeem", s.Options().Payload)

		require.NoError(t, s.SetValue(ctx, "not a url"))
		res, err := s.Generate(ctx)
		require.NoError(t, err)
		assert.Equal(t, content.ErrorInvalidURL, res.Kind)
		assert.Equal(t, session.Error, s.State())
		assert.Equal(t, content.ErrorInvalidURL, s.Err())
		assert.Equal(t, "https://github.com/nesaranaeem", s.Options().Payload)
	})

	t.Run("generate again from error and ready", func(t *testing.T) {
		t.Parallel()
		s := session.New()
		require.NoError(t, s.SetType(ctx, content.Phone))
		require.NoError(t, s.SetValue(ctx, "123"))

		res, err := s.Generate(ctx)
		require.NoError(t, err)
		assert.Equal(t, content.ErrorInvalidPhone, res.Kind)

		res, err = s.Generate(ctx)
		require.NoError(t, err)
		assert.Equal(t, content.ErrorInvalidPhone, res.Kind)

		require.NoError(t, s.SetValue(ctx, "+1234567890"))
		_, err = s.Generate(ctx)
		require.NoError(t, err)
		_, err = s.Generate(ctx)
		require.NoError(t, err)
		assert.Equal(t, session.Ready, s.State())
	})

	t.Run("whitespace text payload", func(t *testing.T) {
		t.Parallel()
		s := session.New()
		require.NoError(t, s.SetType(ctx, content.Text))
		require.NoError(t, s.SetValue(ctx, "  \t"))

		res, err := s.Generate(ctx)
		require.NoError(t, err)
		require.True(t, res.OK())
		assert.Equal(t, session.Ready, s.State())
		assert.Equal(t, "  \t", s.Options().Payload)

		_, err = qrcode.PNG(s.Options())
		assert.NoError(t, err)
	})

	t.Run("empty text payload", func(t *testing.T) {
		t.Parallel()
		s := session.New()
		require.NoError(t, s.SetType(ctx, content.Text))
		require.NoError(t, s.SetValue(ctx, ""))

		res, err := s.Generate(ctx)
		require.NoError(t, err)
		assert.Equal(t, content.ErrorEmptyPayload, res.Kind)
		assert.Equal(t, session.Error, s.State())
		assert.Empty(t, s.Options().Payload)
	})

	t.Run("contact", func(t *testing.T) {
		t.Parallel()
		s := session.New()
		require.NoError(t, s.SetType(ctx, content.Contact))

		c := content.ContactFields{Name: "", Phone: "x", Email: "a@b.com", Address: "y"}
		require.NoError(t, s.SetContact(ctx, c))
		res, err := s.Generate(ctx)
		require.NoError(t, err)
		assert.Equal(t, content.ErrorMissingContact, res.Kind)

		c.Name = "John Doe"
		require.NoError(t, s.SetContact(ctx, c))
		res, err = s.Generate(ctx)
		require.NoError(t, err)
		require.True(t, res.OK())
		assert.True(t, strings.HasPrefix(s.Options().Payload, "BEGIN:VCARD\nVERSION:3.0\nFN:John Doe\n"))
	})
}

func TestSessionEditsReturnToEditing(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	edits := map[string]func(*session.Session) error{
		"set value": func(s *session.Session) error { return s.SetValue(ctx, "https://example.com") },
		"set type":  func(s *session.Session) error { return s.SetType(ctx, content.Text) },
	}

	for name, edit := range edits {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			s := session.New()
			_, err := s.Generate(ctx)
			require.NoError(t, err)
			require.True(t, s.Ready())

			require.NoError(t, edit(s))
			assert.Equal(t, session.Editing, s.State())

			require.NoError(t, s.SetValue(ctx, "not a url"))
			if s.Type() == content.URL {
				_, err = s.Generate(ctx)
				require.NoError(t, err)
				require.Equal(t, session.Error, s.State())
				require.NoError(t, edit(s))
				assert.Equal(t, session.Editing, s.State())
				assert.Equal(t, content.ErrorNone, s.Err())
			}
		})
	}
}

func TestSessionTypeSwitchResetsDefaults(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	for _, typ := range content.Types() {
		t.Run(typ.String(), func(t *testing.T) {
			t.Parallel()
			s := session.New()
			require.NoError(t, s.SetType(ctx, typ))
			want := s.Input()
			assert.Equal(t, session.DefaultInput(typ), want)

			if typ == content.Contact {
				require.NoError(t, s.SetContact(ctx, content.ContactFields{Name: "changed"}))
			} else {
				require.NoError(t, s.SetValue(ctx, "changed"))
			}

			require.NoError(t, s.SetType(ctx, content.URL))
			require.NoError(t, s.SetType(ctx, typ))
			assert.Equal(t, want, s.Input())

			// Defaults are valid payloads.
			res, err := s.Generate(ctx)
			require.NoError(t, err)
			assert.True(t, res.OK(), "default input of %s must validate", typ)
		})
	}
}

func TestSessionWrongInputType(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := session.New()
	assert.ErrorIs(t, s.SetContact(ctx, content.ContactFields{Name: "x"}), session.ErrWrongType)

	require.NoError(t, s.SetType(ctx, content.Contact))
	assert.ErrorIs(t, s.SetValue(ctx, "x"), session.ErrWrongType)

	assert.ErrorIs(t, s.SetType(ctx, content.Type("sms")), content.ErrUnknownType)
	assert.Equal(t, content.Contact, s.Type())
}

func TestSessionStyle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := session.New()
	_, err := s.Generate(ctx)
	require.NoError(t, err)

	require.NoError(t, s.SetSize(300))
	require.NoError(t, s.SetForeground("#112233"))
	require.NoError(t, s.SetBackground("#ffeedd"))
	assert.ErrorIs(t, s.SetSize(1000), qrcode.ErrInvalidSize)
	assert.ErrorIs(t, s.SetForeground("blue"), qrcode.ErrInvalidColor)
	assert.ErrorIs(t, s.SetLogo([]byte("nope")), qrcode.ErrInvalidLogo)

	var logo bytes.Buffer
	require.NoError(t, png.Encode(&logo, image.NewRGBA(image.Rect(0, 0, 8, 8))))
	require.NoError(t, s.SetLogo(logo.Bytes()))

	assert.Equal(t, session.Ready, s.State(), "styling must not change state")
	opts := s.Options()
	assert.Equal(t, 300, opts.Size)
	assert.Equal(t, "#112233", opts.Foreground)
	assert.Equal(t, "#ffeedd", opts.Background)
	assert.True(t, opts.HasLogo())
	assert.Equal(t, "https://github.com/nesaranaeem", opts.Payload)

	opts.Logo[0] = 0
	assert.NotEqual(t, byte(0), s.Options().Logo[0], "options must be a copy")

	s.ResetStyle()
	opts = s.Options()
	assert.Equal(t, qrcode.DefaultSize, opts.Size)
	assert.False(t, opts.HasLogo())
	assert.Equal(t, "https://github.com/nesaranaeem", opts.Payload)

	require.NoError(t, s.SetLogo(logo.Bytes()))
	require.NoError(t, s.SetLogo(nil))
	assert.False(t, s.Options().HasLogo())
}

func TestSessionPreview(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := session.New()
	require.NoError(t, s.SetValue(ctx, ""))
	assert.Equal(t, "Preview", s.Preview())
	assert.Equal(t, "Preview", s.PreviewOptions().Payload)

	require.NoError(t, s.SetType(ctx, content.Text))
	for _, blank := range []string{" ", "   ", "\t\n"} {
		require.NoError(t, s.SetValue(ctx, blank))
		assert.Equal(t, "Preview", s.Preview(), "%q", blank)
		_, err := qrcode.PNG(s.PreviewOptions())
		assert.NoError(t, err, "%q preview renders", blank)
	}

	require.NoError(t, s.SetType(ctx, content.URL))
	require.NoError(t, s.SetValue(ctx, "not a url"))
	assert.Equal(t, "not a url", s.Preview(), "preview skips validation")
	assert.Empty(t, s.Options().Payload)
}

func TestSessionOnReady(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var calls []string
	s := session.New(
		session.WithType(content.Phone),
		session.WithLogger(slog.New(slog.DiscardHandler)),
		session.WithOnReady(func(_ context.Context, o qrcode.Options) { calls = append(calls, o.Payload) }),
	)
	assert.Equal(t, content.Phone, s.Type())
	assert.Equal(t, "+1234567890", s.Value())

	_, err := s.Generate(ctx)
	require.NoError(t, err)
	require.NoError(t, s.SetValue(ctx, "12"))
	_, err = s.Generate(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{"+1234567890"}, calls)
}

func TestSessionSnapshot(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := session.New()
	require.NoError(t, s.SetValue(ctx, "bad"))
	_, err := s.Generate(ctx)
	require.NoError(t, err)

	snap := s.Snapshot()
	assert.Equal(t, content.URL, snap.Type)
	assert.Equal(t, session.Error, snap.State)
	assert.Equal(t, content.ErrorInvalidURL, snap.Error)
	assert.Equal(t, "bad", snap.Input.Value)
	assert.Equal(t, "bad", snap.Preview)
	assert.Empty(t, snap.Payload)
	assert.Equal(t, qrcode.DefaultSize, snap.Style.Size)
}
