package handlers

import (
	"net/http"

	"github.com/cjsystem/bgg-navigator/api/filters"
	lookupservice "github.com/cjsystem/bgg-navigator/api/services/lookup"
	"github.com/cjsystem/bgg-navigator/pkg/messages"

	"github.com/gin-gonic/gin"
)

// LookupHandler is the handler for the reference entity lookups.
type LookupHandler struct {
	lookupService *lookupservice.LookupService
}

// LookupHandlerDependencies is the dependency list for the lookup handler.
type LookupHandlerDependencies struct {
	LookupService *lookupservice.LookupService
}

// NewLookupHandler creates a new instance of the lookup handler.
func NewLookupHandler(deps *LookupHandlerDependencies) *LookupHandler {
	return &LookupHandler{
		lookupService: deps.LookupService,
	}
}

// GetDesigners handles the designer lookup.
func (h *LookupHandler) GetDesigners(c *gin.Context) {
	var qp filters.LookupParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.lookupService.GetDesigners(c.Request.Context(), qp.Search)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": messages.DesignerFetchError})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetArtists handles the artist lookup.
func (h *LookupHandler) GetArtists(c *gin.Context) {
	var qp filters.LookupParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.lookupService.GetArtists(c.Request.Context(), qp.Search)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": messages.ArtistFetchError})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetPublishers handles the publisher lookup.
func (h *LookupHandler) GetPublishers(c *gin.Context) {
	var qp filters.LookupParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.lookupService.GetPublishers(c.Request.Context(), qp.Search)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": messages.PublisherFetchError})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetMechanics handles the mechanic vocabulary lookup.
func (h *LookupHandler) GetMechanics(c *gin.Context) {
	result, err := h.lookupService.GetMechanics(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": messages.MechanicFetchError})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetCategories handles the category vocabulary lookup.
func (h *LookupHandler) GetCategories(c *gin.Context) {
	result, err := h.lookupService.GetCategories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": messages.CategoryFetchError})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetGenres handles the genre vocabulary lookup.
func (h *LookupHandler) GetGenres(c *gin.Context) {
	result, err := h.lookupService.GetGenres(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": messages.GenreFetchError})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetAwardNames handles the distinct award name lookup.
func (h *LookupHandler) GetAwardNames(c *gin.Context) {
	var qp filters.LookupParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.lookupService.GetAwardNames(c.Request.Context(), qp.Search)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": messages.AwardNameFetchError})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetAwardTypes handles the distinct award type lookup.
func (h *LookupHandler) GetAwardTypes(c *gin.Context) {
	result, err := h.lookupService.GetAwardTypes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": messages.AwardTypeFetchError})
		return
	}

	c.JSON(http.StatusOK, result)
}
