package catalog

import (
	"log/slog"

	httpadapter "celestialbay/contexts/sky-catalog/catalog-service/adapters/http"
	"celestialbay/contexts/sky-catalog/catalog-service/adapters/memory"
	"celestialbay/contexts/sky-catalog/catalog-service/application"
	"celestialbay/contexts/sky-catalog/catalog-service/ports"
)

// Module is the catalog-service composition root. Service is exported so
// other contexts can consume the catalog through its application ports,
// such as the user galaxies expansion.
type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

// Dependencies captures all runtime ports/config required by NewModule.
type Dependencies struct {
	Repository ports.Repository
	Clock      ports.Clock
	Logger     *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo:   deps.Repository,
		Clock:  deps.Clock,
		Logger: deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{Service: service, Logger: deps.Logger},
		Service: service,
	}
}

// NewInMemoryModule builds a development/testing module backed by the
// in-memory store.
func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Repository: store,
		Clock:      store,
		Logger:     logger,
	})
	module.Store = store
	return module
}
