package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dkovacevic/newsdata-sync/internal/router"
	"github.com/dkovacevic/newsdata-sync/internal/server"
	"github.com/dkovacevic/newsdata-sync/internal/storage/factory"
	pkgserver "github.com/dkovacevic/newsdata-sync/pkg/server"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	serverCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("failed to load server configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	reader, err := factory.NewReader(ctx, cfg.Storage)
	if err != nil {
		slog.Error("failed to create storage reader", "storageType", cfg.Storage.Type, "error", err)
		os.Exit(1)
	}

	var hc pkgserver.HealthChecker = pkgserver.NewOkHealthChecker()
	if pinger, ok := reader.(pkgserver.Pinger); ok {
		hc = pkgserver.NewPingHealthChecker(pinger)
	}

	s := server.New(serverCfg)
	s.RegisterHealth("/health", hc)
	router.NewFeedRouter(reader).Register(s.Echo)

	slog.Info("feed api listening", "port", serverCfg.Port, "storageType", cfg.Storage.Type)

	if err := s.Start(); err != nil {
		slog.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}
