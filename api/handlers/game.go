package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/cjsystem/bgg-navigator/api/filters"
	gameservice "github.com/cjsystem/bgg-navigator/api/services/game"
	"github.com/cjsystem/bgg-navigator/pkg/messages"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GameHandler is the handler for the game endpoints.
type GameHandler struct {
	gameService *gameservice.GameService
}

// GameHandlerDependencies is the dependency list for the game handler.
type GameHandlerDependencies struct {
	GameService *gameservice.GameService
}

// NewGameHandler creates a new instance of the game handler.
func NewGameHandler(deps *GameHandlerDependencies) *GameHandler {
	return &GameHandler{
		gameService: deps.GameService,
	}
}

// SearchGames handles the parameterized game search.
func (h *GameHandler) SearchGames(c *gin.Context) {
	var qp filters.GameSearchParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.gameService.SearchGames(c.Request.Context(), qp.AsFilter())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   messages.GameSearchError,
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetGameNames handles the name suggestion requests.
func (h *GameHandler) GetGameNames(c *gin.Context) {
	var qp filters.GameNameParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.gameService.GetGameNames(c.Request.Context(), qp.Search)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": messages.GameNameFetchError})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetGameById handles the single game detail requests.
func (h *GameHandler) GetGameById(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.gameService.GetGameById(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": messages.GameNotFoundError})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   messages.GameSearchError,
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetGameByBggId handles the single game detail requests by external reference id.
func (h *GameHandler) GetGameByBggId(c *gin.Context) {
	bggId, err := strconv.Atoi(c.Param("bggId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.gameService.GetGameByBggId(c.Request.Context(), bggId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": messages.GameNotFoundError})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   messages.GameSearchError,
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}
