package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/nesaranaeem/qr-box/internal/api"
	"github.com/nesaranaeem/qr-box/internal/locales"
	"github.com/nesaranaeem/qr-box/pkg/config"
	"github.com/nesaranaeem/qr-box/pkg/httpserver"
	"github.com/nesaranaeem/qr-box/pkg/i18n"
	"github.com/nesaranaeem/qr-box/pkg/logger"
)

// Config is the process configuration read from the environment.
type Config struct {
	Log             logger.Config
	HTTP            httpserver.Config
	API             api.Config
	Session         SessionConfig
	DefaultLanguage string `env:"DEFAULT_LANGUAGE" envDefault:"en"`
}

type SessionConfig struct {
	TTL             time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	CleanupInterval time.Duration `env:"SESSION_CLEANUP_INTERVAL" envDefault:"1m"`
}

// app is the state shared by every subcommand once the root pre-run has loaded it.
type app struct {
	envFile string
	lang    string

	cfg Config
	log *slog.Logger
	tr  *i18n.Translator
}

// Execute runs the command line with os.Args.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// NewRootCommand builds the qrbox command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "qrbox",
		Short:        "Generate, decode and inspect QR codes and product barcodes",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.envFile, "env-file", "", "load environment variables from this file")
	root.PersistentFlags().StringVar(&a.lang, "lang", "", "language of user-facing messages (default DEFAULT_LANGUAGE)")

	root.AddCommand(a.classifyCmd(), a.scanCmd(), a.encodeCmd(), a.decodeCmd(), a.serveCmd())
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	if a.envFile != "" {
		if err := config.LoadEnv(a.envFile); err != nil {
			return err
		}
	}
	if err := config.Load(&a.cfg); err != nil {
		return err
	}

	log, err := logger.NewFromConfig(a.cfg.Log, logger.WithOutput(cmd.ErrOrStderr()))
	if err != nil {
		return err
	}
	a.log = log

	a.tr, err = locales.NewTranslator(cmd.Context(),
		i18n.WithDefaultLanguage(a.cfg.DefaultLanguage),
		i18n.WithLogger(log),
		i18n.WithMissingTranslationsLogging(true),
	)
	if err != nil {
		return errors.Join(errors.New("load translations"), err)
	}

	if a.lang == "" {
		a.lang = a.tr.DefaultLanguage()
	} else {
		a.lang = a.tr.Matcher().Match(a.lang)
	}
	return nil
}

// t translates key into the language selected for this run.
func (a *app) t(key string, args ...string) string {
	return a.tr.T(a.lang, key, args...)
}
