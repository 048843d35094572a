package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nesaranaeem/qr-box/pkg/content"
	"github.com/nesaranaeem/qr-box/pkg/scan"
)

func (a *app) decodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <image>",
		Short: "Read a QR code from an image and print its content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			payload, err := scan.DecodeBytes(scan.NewQRDecoder(), data)
			if errors.Is(err, scan.ErrNoCode) {
				return errors.New(a.t("scan.no_qr_code"))
			}
			if err != nil {
				return err
			}

			t, _ := content.Detect(payload)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", a.t("content.type."+t.String()), payload)
			return err
		},
	}
}
