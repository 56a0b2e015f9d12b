package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dkovacevic/newsdata-sync/internal/newsdata"
	"github.com/dkovacevic/newsdata-sync/internal/storage/factory"
	syncjob "github.com/dkovacevic/newsdata-sync/internal/sync"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	os.Exit(run())
}

// run returns the process exit code. Only missing or unusable configuration
// exits nonzero; API and storage failures are logged and the run ends with
// fewer or no rows persisted.
func run() int {
	appSettings := NewAppConfig()

	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		return 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storer, err := factory.NewStorer(ctx, cfg.Storage)
	if err != nil {
		slog.Error("failed to create storer", "storageType", cfg.Storage.Type, "error", err)
		return 0
	}

	client := newsdata.NewClient(cfg.APIKey)

	job := syncjob.NewJob(client, storer, cfg.Profile)

	report, err := job.Run(ctx)
	if err != nil {
		slog.Error("sync run ended with error",
			"run_id", report.RunID,
			"outcome", report.Outcome,
			"fetched", report.Fetched,
			"stored", report.Stored,
			"error", err)
		return 0
	}

	slog.Info("sync run report",
		"run_id", report.RunID,
		"outcome", report.Outcome,
		"fetched", report.Fetched,
		"stored", report.Stored)

	return 0
}
