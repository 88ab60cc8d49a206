package gameservice

import (
	"github.com/cjsystem/bgg-navigator/api/services/testutil"
	"github.com/cjsystem/bgg-navigator/pkg/database/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupTestService() (*GameService, *testutil.MockGameRepository) {
	deps := &GameServiceDeps{
		DB: new(gorm.DB),
	}

	service := NewGameService(deps)

	mockGameRepository := new(testutil.MockGameRepository)
	service.GameRepository = mockGameRepository

	return service, mockGameRepository
}

func intPtr(v int) *int {
	return &v
}

func strPtr(v string) *string {
	return &v
}

func decPtr(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

// createSearchResultGames builds a small, fully associated repository page.
func createSearchResultGames() []*models.Game {
	return []*models.Game{
		{
			ID:           1,
			BggId:        342942,
			PrimaryName:  "Ark Nova",
			JapaneseName: strPtr("アークノヴァ"),
			YearReleased: intPtr(2021),
			AvgRating:    decPtr("8.53"),
			RatingsCount: intPtr(50000),
			MinPlayers:   intPtr(1),
			MaxPlayers:   intPtr(4),
			Weight:       decPtr("3.77"),
			RankOverall:  intPtr(4),
			Designers: []models.Designer{
				{ID: 10, Name: "Mathias Wigge"},
			},
			BestPlayerCounts: []models.GameBestPlayerCount{
				{GameId: 1, PlayerCount: 2},
			},
		},
		{
			ID:          2,
			BggId:       224517,
			PrimaryName: "Brass: Birmingham",
			AvgRating:   decPtr("8.59"),
			RankOverall: intPtr(1),
		},
	}
}

// createNameSuggestionGames builds the reduced projection rows.
func createNameSuggestionGames() []*models.Game {
	return []*models.Game{
		{
			ID:           7,
			PrimaryName:  "Catan",
			JapaneseName: strPtr("カタン"),
			YearReleased: intPtr(1995),
			ImageUrl:     strPtr("https://example.com/catan.jpg"),
		},
		{
			ID:          8,
			PrimaryName: "Catan: Seafarers",
		},
	}
}
