package account

import (
	"log/slog"
	"time"

	httpadapter "celestialbay/contexts/identity-access/account-service/adapters/http"
	"celestialbay/contexts/identity-access/account-service/adapters/memory"
	"celestialbay/contexts/identity-access/account-service/adapters/token"
	"celestialbay/contexts/identity-access/account-service/application"
	"celestialbay/contexts/identity-access/account-service/ports"
)

// Module is the account-service composition root exposed to runtime wiring.
// Tokens is shared with the HTTP layer for bearer-token authentication.
type Module struct {
	Handler httpadapter.Handler
	Tokens  ports.TokenManager
	Store   *memory.Store
}

// Dependencies captures all runtime ports/config required by NewModule.
type Dependencies struct {
	Repository        ports.Repository
	Blacklist         ports.TokenBlacklist
	Tokens            ports.TokenManager
	Galaxies          ports.GalaxyDirectory
	Clock             ports.Clock
	PasswordMinLength int
	Logger            *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo:              deps.Repository,
		Tokens:            deps.Tokens,
		Blacklist:         deps.Blacklist,
		Galaxies:          deps.Galaxies,
		Clock:             deps.Clock,
		Logger:            deps.Logger,
		PasswordMinLength: deps.PasswordMinLength,
	}
	return Module{
		Handler: httpadapter.Handler{Service: service, Logger: deps.Logger},
		Tokens:  deps.Tokens,
	}
}

// NewInMemoryModule builds a development/testing module with in-memory
// adapters and short token lifetimes.
func NewInMemoryModule(logger *slog.Logger, galaxies ports.GalaxyDirectory) Module {
	store := memory.NewStore()
	tokens, err := token.NewManager("celestialbay-in-memory-signing-key", 30*time.Minute, 24*time.Hour)
	if err != nil {
		panic(err)
	}
	module := NewModule(Dependencies{
		Repository:        store,
		Blacklist:         store,
		Tokens:            tokens,
		Galaxies:          galaxies,
		Clock:             store,
		PasswordMinLength: 8,
		Logger:            logger,
	})
	module.Store = store
	return module
}
