package gameservice

import (
	"context"
	"fmt"
	"strings"

	"github.com/cjsystem/bgg-navigator/api/dto"
	"github.com/cjsystem/bgg-navigator/api/filters"
	gamerepo "github.com/cjsystem/bgg-navigator/api/repositories/game"
	"github.com/cjsystem/bgg-navigator/pkg/messages"

	"gorm.io/gorm"
)

const (
	defaultPage  = 1
	defaultLimit = 20
)

// GameService runs the game search and the name suggestions.
type GameService struct {
	db             *gorm.DB
	GameRepository gamerepo.GameRepository
}

// GameServiceDeps is the dependency list for the game service.
type GameServiceDeps struct {
	DB *gorm.DB
}

// NewGameService creates a game service.
func NewGameService(deps *GameServiceDeps) *GameService {
	return &GameService{
		db:             deps.DB,
		GameRepository: gamerepo.NewGameRepository(deps.DB),
	}
}

// SearchGames executes the composed filter and shapes the paginated response.
func (gs *GameService) SearchGames(ctx context.Context, filter *filters.GameSearchFilter) (*dto.GameSearchResponse, error) {
	if filter == nil {
		return nil, fmt.Errorf(messages.FiltersNotNil)
	}

	if filter.Page < 1 {
		filter.Page = defaultPage
	}
	if filter.Limit < 1 {
		filter.Limit = defaultLimit
	}

	games, totalCount, err := gs.GameRepository.SearchGames(ctx, filter)
	if err != nil {
		return nil, err
	}

	totalPages := int((totalCount + int64(filter.Limit) - 1) / int64(filter.Limit))

	var resultHelper dto.GameResult
	return &dto.GameSearchResponse{
		Games:           resultHelper.FromModelSlice(games),
		TotalCount:      totalCount,
		CurrentPage:     filter.Page,
		TotalPages:      totalPages,
		HasNextPage:     filter.Page < totalPages,
		HasPreviousPage: filter.Page > 1,
	}, nil
}

// GetGameNames returns the name suggestions for the autocomplete.
// An empty or whitespace-only query short-circuits without touching the store.
func (gs *GameService) GetGameNames(ctx context.Context, search string) ([]*dto.GameNameSuggestion, error) {
	trimmed := strings.TrimSpace(search)
	if trimmed == "" {
		return []*dto.GameNameSuggestion{}, nil
	}

	games, err := gs.GameRepository.GetGameNames(ctx, trimmed)
	if err != nil {
		return nil, err
	}

	var suggestionHelper dto.GameNameSuggestion
	return suggestionHelper.FromModelSlice(games), nil
}

// GetGameById returns the fully shaped result for a single game.
func (gs *GameService) GetGameById(ctx context.Context, id uint) (*dto.GameResult, error) {
	game, err := gs.GameRepository.GetGameById(ctx, id)
	if err != nil {
		return nil, err
	}

	var resultHelper dto.GameResult
	return resultHelper.FromModel(game), nil
}

// GetGameByBggId returns the fully shaped result keyed by the external reference id.
func (gs *GameService) GetGameByBggId(ctx context.Context, bggId int) (*dto.GameResult, error) {
	game, err := gs.GameRepository.GetGameByBggId(ctx, bggId)
	if err != nil {
		return nil, err
	}

	var resultHelper dto.GameResult
	return resultHelper.FromModel(game), nil
}
