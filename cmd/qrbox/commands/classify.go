package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/nesaranaeem/qr-box/pkg/barcode"
	"github.com/nesaranaeem/qr-box/pkg/logger"
	"github.com/nesaranaeem/qr-box/pkg/scan"
)

type verdict struct {
	barcode.Result
	Message string `json:"message"`
}

func (a *app) classifyCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "classify <code>...",
		Short: "Print the country of origin of product barcodes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := make([]verdict, 0, len(args))
			for _, code := range args {
				out = append(out, a.verdict(barcode.Inspect(code)))
			}
			return a.printVerdicts(cmd.OutOrStdout(), out, asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print results as JSON")
	return cmd
}

func (a *app) scanCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "scan <image>",
		Short: "Decode a product barcode from an image and classify it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			img, err := scan.DecodeImage(f)
			if err != nil {
				return err
			}
			res, err := scan.Classify(scan.NewBarcodeDecoder(), img)
			if err != nil {
				a.log.DebugContext(cmd.Context(), "no barcode decoded", logger.Error(err))
			}
			return a.printVerdicts(cmd.OutOrStdout(), []verdict{a.verdict(res)}, asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}

func (a *app) verdict(res barcode.Result) verdict {
	return verdict{Result: res, Message: a.t(res.Category.TranslationKey())}
}

func (a *app) printVerdicts(w io.Writer, vs []verdict, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(vs)
	}
	for _, v := range vs {
		if v.Code != "" {
			if _, err := fmt.Fprintf(w, "%s: %s\n", a.t("barcode.code_label"), v.Code); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, v.Message); err != nil {
			return err
		}
	}
	return nil
}
