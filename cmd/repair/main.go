// Command repair is the offline content repair job: it rewrites the
// plain-text description columns from the rich-text documents in the
// content store. Not part of the request-serving path; run it by hand
// or from a scheduled task.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/livingword/site/internal/app"
	"github.com/livingword/site/internal/config"
	"github.com/livingword/site/internal/logger"
)

func main() {
	cfg := config.Load()

	logger.Init(cfg.IsDevelopment(), cfg.SentryDSN)

	app, err := app.New(cfg)
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	err = app.ContentService.RepairDescriptions(context.Background())
	if err != nil {
		slog.Error("repair job failed", "error", err)
		os.Exit(1)
	}
}
