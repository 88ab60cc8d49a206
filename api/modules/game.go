package modules

import (
	"github.com/cjsystem/bgg-navigator/api/handlers"
	gameservice "github.com/cjsystem/bgg-navigator/api/services/game"
)

func initializeGameHandler(deps *ModuleDependencies) *handlers.GameHandler {
	// Initialize the game service and handler.
	gameDeps := &gameservice.GameServiceDeps{
		DB: deps.DB,
	}

	gameService := gameservice.NewGameService(gameDeps)

	gameHandlerDeps := &handlers.GameHandlerDependencies{
		GameService: gameService,
	}

	return handlers.NewGameHandler(gameHandlerDeps)
}
