package dto

import (
	"encoding/json"
	"testing"

	"github.com/cjsystem/bgg-navigator/pkg/database/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

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

func createLoadedGame() *models.Game {
	return &models.Game{
		ID:           1,
		BggId:        342942,
		PrimaryName:  "Ark Nova",
		JapaneseName: strPtr("アークノヴァ"),
		YearReleased: intPtr(2021),
		ImageUrl:     strPtr("https://example.com/arknova.jpg"),
		AvgRating:    decPtr("8.53"),
		RatingsCount: intPtr(50000),
		MinPlayers:   intPtr(1),
		MaxPlayers:   intPtr(4),
		MinPlaytime:  intPtr(90),
		MaxPlaytime:  intPtr(150),
		MinAge:       intPtr(14),
		Weight:       decPtr("3.77"),
		RankOverall:  intPtr(4),
		Designers: []models.Designer{
			{ID: 10, Name: "Mathias Wigge", Url: strPtr("https://example.com/wigge")},
		},
		Artists: []models.Artist{
			{ID: 20, Name: "Loïc Billiau"},
		},
		Awards: []models.Award{
			{ID: 30, AwardName: "Deutscher Spiele Preis", AwardYear: 2022, AwardType: "Winner"},
		},
		GenreRanks: []models.GameGenreRank{
			{
				GameId:      1,
				GenreId:     40,
				RankInGenre: intPtr(2),
				Genre:       models.Genre{ID: 40, Name: "Strategy"},
			},
		},
		// Deliberately unordered, the shaper must sort ascending.
		BestPlayerCounts: []models.GameBestPlayerCount{
			{GameId: 1, PlayerCount: 3},
			{GameId: 1, PlayerCount: 2},
		},
	}
}

func TestGameResultFromModel(t *testing.T) {
	var helper GameResult
	result := helper.FromModel(createLoadedGame())

	assert.Equal(t, uint(1), result.ID)
	assert.Equal(t, 342942, result.BggId)
	assert.Equal(t, "Ark Nova", result.PrimaryName)
	assert.Equal(t, "アークノヴァ", *result.JapaneseName)

	// Decimal columns coerce to plain numbers.
	require.NotNil(t, result.AvgRating)
	assert.InDelta(t, 8.53, *result.AvgRating, 0.0001)
	require.NotNil(t, result.Weight)
	assert.InDelta(t, 3.77, *result.Weight, 0.0001)

	// Join rows flatten to the related entity projection.
	require.Len(t, result.Designers, 1)
	assert.Equal(t, RelatedEntity{ID: 10, Name: "Mathias Wigge", ExternalUrl: strPtr("https://example.com/wigge")}, result.Designers[0])
	require.Len(t, result.Artists, 1)
	assert.Nil(t, result.Artists[0].ExternalUrl)

	require.Len(t, result.Awards, 1)
	assert.Equal(t, GameAward{ID: 30, AwardName: "Deutscher Spiele Preis", AwardYear: 2022, AwardType: "Winner"}, result.Awards[0])

	require.Len(t, result.GenreRankings, 1)
	assert.Equal(t, uint(40), result.GenreRankings[0].Genre.ID)
	assert.Equal(t, "Strategy", result.GenreRankings[0].Genre.Name)
	assert.Equal(t, 2, *result.GenreRankings[0].RankInGenre)

	assert.Equal(t, []int{2, 3}, result.BestPlayerCounts)
}

// A matching game with no associations renders empty lists, not null.
func TestGameResultFromModelEmptyAssociations(t *testing.T) {
	game := &models.Game{
		ID:          2,
		BggId:       999,
		PrimaryName: "Obscure Game",
	}

	var helper GameResult
	result := helper.FromModel(game)

	assert.Nil(t, result.AvgRating)
	assert.Nil(t, result.Weight)
	assert.Nil(t, result.RankOverall)

	payload, err := json.Marshal(result)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(payload, &decoded))

	for _, field := range []string{"designers", "artists", "publishers", "mechanics", "categories", "awards", "genreRankings", "bestPlayerCounts"} {
		value, exists := decoded[field]
		require.True(t, exists, field)
		assert.Equal(t, []any{}, value, field)
	}

	assert.Nil(t, decoded["avgRating"])
	assert.Nil(t, decoded["rankOverall"])
}

func TestGameResultFromModelSlice(t *testing.T) {
	var helper GameResult

	results := helper.FromModelSlice(nil)
	assert.NotNil(t, results)
	assert.Empty(t, results)

	results = helper.FromModelSlice([]*models.Game{createLoadedGame(), createLoadedGame()})
	assert.Len(t, results, 2)
}

func TestGameNameSuggestionFromModel(t *testing.T) {
	var helper GameNameSuggestion
	suggestion := helper.FromModel(createLoadedGame())

	assert.Equal(t, uint(1), suggestion.ID)
	assert.Equal(t, "Ark Nova", suggestion.PrimaryName)
	assert.Equal(t, "アークノヴァ", *suggestion.JapaneseName)
	assert.Equal(t, 2021, *suggestion.YearReleased)
	assert.Equal(t, "https://example.com/arknova.jpg", *suggestion.ImageUrl)
}
