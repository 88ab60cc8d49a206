package routes

import (
	"github.com/cjsystem/bgg-navigator/api/handlers"

	"github.com/gin-gonic/gin"
)

type Router struct {
	Engine *gin.Engine
	api    *gin.RouterGroup
}

func NewRouter(engine *gin.Engine) *Router {
	return &Router{
		api:    engine.Group(""),
		Engine: engine,
	}
}

func (r *Router) SetupRoutes(handlerList ...any) {
	for _, h := range handlerList {
		switch handler := h.(type) {
		case *handlers.GameHandler:
			r.registerGameHandler(handler)
		case *handlers.LookupHandler:
			r.registerLookupHandler(handler)
		}
	}
}

// Register the game handler.
func (r *Router) registerGameHandler(handler *handlers.GameHandler) {
	games := r.api.Group("/games")
	{
		games.GET("/names", handler.GetGameNames)
		games.GET("/search", handler.SearchGames)
		games.GET("/bgg/:bggId", handler.GetGameByBggId)
		games.GET("/:id", handler.GetGameById)
	}
}

// Register the lookup handler.
func (r *Router) registerLookupHandler(handler *handlers.LookupHandler) {
	r.api.GET("/designers", handler.GetDesigners)
	r.api.GET("/artists", handler.GetArtists)
	r.api.GET("/publishers", handler.GetPublishers)
	r.api.GET("/mechanics", handler.GetMechanics)
	r.api.GET("/categories", handler.GetCategories)
	r.api.GET("/genres", handler.GetGenres)

	awards := r.api.Group("/awards")
	{
		awards.GET("/names", handler.GetAwardNames)
		awards.GET("/types", handler.GetAwardTypes)
	}
}

// Start the router.
func (r *Router) Run(addr string) error {
	return r.Engine.Run(addr)
}
