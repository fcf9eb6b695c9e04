// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.
package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	account "celestialbay/contexts/identity-access/account-service"
	accountpostgres "celestialbay/contexts/identity-access/account-service/adapters/postgres"
	"celestialbay/contexts/identity-access/account-service/adapters/token"
	catalog "celestialbay/contexts/sky-catalog/catalog-service"
	catalogpostgres "celestialbay/contexts/sky-catalog/catalog-service/adapters/postgres"
	"celestialbay/internal/platform/config"
	"celestialbay/internal/platform/db"
	"celestialbay/internal/platform/httpserver"
)

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}
	if err := pg.Migrate(); err != nil {
		_ = pg.Close()
		return nil, err
	}

	catalogRepo := catalogpostgres.NewRepository(pg.DB, logger)
	catalogModule := catalog.NewModule(catalog.Dependencies{
		Repository: catalogRepo,
		Clock:      accountpostgres.SystemClock{},
		Logger:     logger,
	})

	tokens, err := token.NewManager(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	if err != nil {
		_ = pg.Close()
		return nil, err
	}

	accountRepo := accountpostgres.NewRepository(pg.DB, logger)
	accountModule := account.NewModule(account.Dependencies{
		Repository:        accountRepo,
		Blacklist:         accountRepo,
		Tokens:            tokens,
		Galaxies:          catalogModule.Service,
		Clock:             accountpostgres.SystemClock{},
		PasswordMinLength: cfg.PasswordMinLength,
		Logger:            logger,
	})

	server := httpserver.New(accountModule, catalogModule, logger, normalizeAddr(cfg.HTTPPort))
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
