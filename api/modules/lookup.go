package modules

import (
	"github.com/cjsystem/bgg-navigator/api/handlers"
	lookupservice "github.com/cjsystem/bgg-navigator/api/services/lookup"
)

func initializeLookupHandler(deps *ModuleDependencies) *handlers.LookupHandler {
	// Initialize the lookup service and handler.
	lookupDeps := &lookupservice.LookupServiceDeps{
		DB:       deps.DB,
		MemCache: deps.LookupMemCache,
		Redis:    deps.Redis,
	}

	lookupService := lookupservice.NewLookupService(lookupDeps)

	lookupHandlerDeps := &handlers.LookupHandlerDependencies{
		LookupService: lookupService,
	}

	return handlers.NewLookupHandler(lookupHandlerDeps)
}
