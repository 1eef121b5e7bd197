package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"wardregistry/internal/app"
	"wardregistry/internal/platform/config"
	"wardregistry/internal/platform/logger"
)

func main() {
	cfg, err := config.Load(os.Getenv("WARD_CONFIG"))
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Log.Level, cfg.Log.Format)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Error("failed to start registry", "error", err)
		os.Exit(1)
	}
	defer a.Close()

	log.Info("starting ward registry", "addr", cfg.Server.Addr, "metrics_addr", cfg.Server.MetricsAddr)
	if err := a.Run(ctx); err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}
