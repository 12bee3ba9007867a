package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"cancer_api/internal/application"
	"cancer_api/internal/config"
	"cancer_api/pkg/contextx"
	"cancer_api/pkg/logx"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config.Load:", err)
		cancel()
		os.Exit(1) //nolint:gocritic
	}

	log := logx.NewLogger(os.Stdout, logx.ParseLevel(cfg.App.LogLevel), cfg.App.LogNoColor).With(
		slog.String(logx.FieldAppName, cfg.App.Name),
		slog.String(logx.FieldAppVersion, cfg.App.Version),
	)
	slog.SetDefault(log)

	ctx = contextx.WithLogger(ctx, log)

	log.Info("application starting", slog.String(logx.FieldDatasetSource, cfg.Model.DatasetSource))

	if err := application.Run(ctx, cfg); err != nil {
		log.Error("application failed", logx.Error(err))
		cancel()
		os.Exit(1)
	}

	log.Info("application stopped")
}
