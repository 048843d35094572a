package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/nesaranaeem/qr-box/internal/api"
	"github.com/nesaranaeem/qr-box/pkg/httpserver"
	"github.com/nesaranaeem/qr-box/pkg/logger"
	"github.com/nesaranaeem/qr-box/pkg/ratelimiter"
	"github.com/nesaranaeem/qr-box/pkg/session"
)

func (a *app) serveCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store := session.NewMemoryStore(a.cfg.Session.TTL, a.cfg.Session.CleanupInterval)
			defer func() { _ = store.Close() }()

			apiOpts := []api.Option{
				api.WithLogger(a.log),
				api.WithMaxUploadBytes(a.cfg.API.MaxUploadBytes),
			}
			if cfg, ok := a.cfg.API.RateLimit(); ok {
				limits := ratelimiter.NewMemoryStore()
				defer limits.Close()
				bucket, err := ratelimiter.NewBucket(limits, cfg)
				if err != nil {
					return err
				}
				apiOpts = append(apiOpts, api.WithRateLimiter(bucket))
			}
			handler := api.New(store, a.tr, apiOpts...)

			opts := []httpserver.Option{
				httpserver.WithLogger(a.log),
				httpserver.WithStopHook(func(l *slog.Logger) {
					if err := store.Close(); err != nil {
						l.Error("close session store", logger.Error(err))
					}
				}),
			}
			if addr != "" {
				opts = append(opts, httpserver.WithAddr(addr))
			}
			return httpserver.NewFromConfig(a.cfg.HTTP, opts...).Run(cmd.Context(), handler.Routes())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default HTTP_ADDR)")
	return cmd
}
