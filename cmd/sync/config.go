package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dkovacevic/newsdata-sync/internal/apperr"
	"github.com/dkovacevic/newsdata-sync/internal/storage/factory"
	syncjob "github.com/dkovacevic/newsdata-sync/internal/sync"
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

type SyncConfig struct {
	APIKey  string
	Profile *syncjob.Profile
	Storage *factory.StorageConfig
}

func (as *AppConfig) Load() (*SyncConfig, error) {
	if err := env.LoadDotEnv(as.ENV, "cmd/sync/.env"); err != nil {
		slog.Info("skipping .env environment variables", "error", err)
	}

	apiKey := os.Getenv("NEWSDATA_API_KEY")
	if apiKey == "" {
		return nil, apperr.NewConfig("NEWSDATA_API_KEY environment variable is not set")
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		return nil, apperr.NewConfigWrap("failed to load storage configuration", err)
	}

	profile, err := loadProfile()
	if err != nil {
		return nil, apperr.NewConfigWrap("failed to load sync profile", err)
	}

	return &SyncConfig{
		APIKey:  apiKey,
		Profile: profile,
		Storage: storageCfg,
	}, nil
}

// loadProfile reads the YAML profile when SYNC_PROFILE_PATH is set;
// otherwise builds the default, with the query and language optionally
// overridden from the environment.
func loadProfile() (*syncjob.Profile, error) {
	if path := os.Getenv("SYNC_PROFILE_PATH"); path != "" {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open profile %s: %w", path, err)
		}
		defer file.Close()

		return syncjob.NewProfileLoader(file).Load(true)
	}

	profile := syncjob.DefaultProfile()
	if q := os.Getenv("NEWSDATA_QUERY"); q != "" {
		profile.Query = q
	}
	if lang := os.Getenv("NEWSDATA_LANGUAGE"); lang != "" {
		profile.Language = lang
	}
	return profile, nil
}
