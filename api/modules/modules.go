package modules

import (
	"github.com/cjsystem/bgg-navigator/api/cache"
	"github.com/cjsystem/bgg-navigator/api/handlers"
	"github.com/cjsystem/bgg-navigator/pkg/redis"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Module containing the necessary handlers.
type Module struct {
	Router        *gin.Engine
	GameHandler   *handlers.GameHandler
	LookupHandler *handlers.LookupHandler
}

// ModuleDependencies holds everything the handlers need, created once in main.
type ModuleDependencies struct {
	DB             *gorm.DB
	Redis          *redis.RedisClient
	LookupMemCache cache.MemCache
}

// NewModule creates a new module with all the necessary handlers initialized.
func NewModule(deps *ModuleDependencies) *Module {
	router := gin.Default()

	return &Module{
		Router:        router,
		GameHandler:   initializeGameHandler(deps),
		LookupHandler: initializeLookupHandler(deps),
	}
}
