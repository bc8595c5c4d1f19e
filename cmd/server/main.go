package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/nfrund/demosite/internal/app"
	"github.com/nfrund/demosite/internal/config"
	"github.com/nfrund/demosite/internal/logging"
	"github.com/spf13/afero"
)

func main() {
	cfg := config.New()
	logging.New()

	slog.Info("Starting demo site", "app", cfg.GetAppName(), "env", cfg.GetAppEnv())
	if err := app.New(cfg, afero.NewOsFs()).Run(context.Background()); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}
