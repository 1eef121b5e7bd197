package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"wardregistry/internal/app"
	"wardregistry/internal/platform/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the registry HTTP server",
	Long: `Run the registry HTTP server.

The API listens on server.addr and Prometheus metrics on server.metrics_addr.
Case numbers are sequenced in Redis when redis.url is set, and export uploads
are enabled when export.bucket is set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		log := logger.New(cfg.Log.Level, cfg.Log.Format)

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		a, err := app.New(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer a.Close()

		log.Info("starting ward registry", "addr", cfg.Server.Addr, "metrics_addr", cfg.Server.MetricsAddr)
		return a.Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
