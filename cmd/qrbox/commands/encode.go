package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mdp/qrterminal/v3"
	"github.com/spf13/cobra"

	"github.com/nesaranaeem/qr-box/pkg/content"
	"github.com/nesaranaeem/qr-box/pkg/logger"
	"github.com/nesaranaeem/qr-box/pkg/qrcode"
	"github.com/nesaranaeem/qr-box/pkg/session"
)

type encodeFlags struct {
	typ      string
	value    string
	contact  content.ContactFields
	size     int
	fg, bg   string
	logo     string
	out      string
	terminal bool
}

func (a *app) encodeCmd() *cobra.Command {
	var f encodeFlags
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Validate content and render it as a QR code",
		Long: "Validate content of the chosen type and render it as a QR code.\n" +
			"Without --value or contact flags the type's sample content is encoded.\n" +
			"The code is written to --out as PNG, or printed to the terminal.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.encode(cmd, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.typ, "type", "t", content.URL.String(), "content type: url, text, contact, email or phone")
	fl.StringVarP(&f.value, "value", "v", "", "content for url, text, email and phone")
	fl.StringVar(&f.contact.Name, "name", "", "contact name")
	fl.StringVar(&f.contact.Phone, "phone", "", "contact phone")
	fl.StringVar(&f.contact.Email, "email", "", "contact email")
	fl.StringVar(&f.contact.Address, "address", "", "contact address")
	fl.IntVar(&f.size, "size", qrcode.DefaultSize, "image side in pixels")
	fl.StringVar(&f.fg, "fg", qrcode.DefaultForeground, "module color as #RRGGBB")
	fl.StringVar(&f.bg, "bg", qrcode.DefaultBackground, "background color as #RRGGBB")
	fl.StringVar(&f.logo, "logo", "", "PNG, JPEG or GIF image placed in the center")
	fl.StringVarP(&f.out, "out", "o", "", "write the PNG to this file")
	fl.BoolVar(&f.terminal, "terminal", false, "print the code to the terminal (default when --out is empty)")
	return cmd
}

func (a *app) encode(cmd *cobra.Command, f encodeFlags) error {
	ctx := cmd.Context()
	t, err := content.ParseType(f.typ)
	if err != nil {
		return err
	}

	s := session.New(
		session.WithLogger(a.log),
		session.WithType(t),
		session.WithOnReady(func(ctx context.Context, opts qrcode.Options) {
			a.log.DebugContext(ctx, "qr payload ready", logger.ContentType(t), logger.Event("ready"))
		}),
	)

	if err := a.applyInput(cmd, s, f); err != nil {
		return err
	}
	if err := a.applyStyle(s, f); err != nil {
		return err
	}

	res, err := s.Generate(ctx)
	if err != nil {
		return err
	}
	if !res.OK() {
		return errors.New(a.tr.Td(a.lang, res.Kind.TranslationKey(), res.Kind.Message()))
	}

	opts := s.Options()
	if f.out != "" {
		png, err := qrcode.PNG(opts)
		if err != nil {
			return err
		}
		if err := os.WriteFile(f.out, png, 0o644); err != nil {
			return err
		}
		a.log.InfoContext(ctx, "qr code written", logger.ContentType(t), logger.Component("encode"))
	}
	if f.terminal || f.out == "" {
		qrterminal.GenerateHalfBlock(opts.Payload, qrterminal.M, cmd.OutOrStdout())
	}
	return nil
}

func (a *app) applyInput(cmd *cobra.Command, s *session.Session, f encodeFlags) error {
	ctx := cmd.Context()
	if s.Type() == content.Contact {
		if cmd.Flags().Changed("value") {
			return fmt.Errorf("--value cannot be used with type %s", content.Contact)
		}
		for _, name := range []string{"name", "phone", "email", "address"} {
			if cmd.Flags().Changed(name) {
				return s.SetContact(ctx, f.contact)
			}
		}
		return nil
	}
	if cmd.Flags().Changed("value") {
		return s.SetValue(ctx, f.value)
	}
	return nil
}

func (a *app) applyStyle(s *session.Session, f encodeFlags) error {
	if err := s.SetSize(f.size); err != nil {
		return err
	}
	if err := s.SetForeground(f.fg); err != nil {
		return err
	}
	if err := s.SetBackground(f.bg); err != nil {
		return err
	}
	if f.logo == "" {
		return nil
	}
	logo, err := os.ReadFile(f.logo)
	if err != nil {
		return err
	}
	return s.SetLogo(logo)
}
