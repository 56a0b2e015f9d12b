package main

import (
	"log/slog"
	"os"

	"github.com/dkovacevic/newsdata-sync/internal/apperr"
	"github.com/dkovacevic/newsdata-sync/internal/storage/factory"
	"github.com/dkovacevic/newsdata-sync/pkg/config/env"
)

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type AppConfig struct {
	ENV string
}

type FeedConfig struct {
	Storage *factory.StorageConfig
}

func (as *AppConfig) Load() (*FeedConfig, error) {
	if err := env.LoadDotEnv(as.ENV, "cmd/feed_api/.env"); err != nil {
		slog.Info("skipping .env environment variables", "error", err)
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		return nil, apperr.NewConfigWrap("failed to load storage configuration", err)
	}

	return &FeedConfig{Storage: storageCfg}, nil
}
