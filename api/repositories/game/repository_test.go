package repositories

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/cjsystem/bgg-navigator/api/filters"
	"github.com/cjsystem/bgg-navigator/api/repositories/testutil"
	"github.com/cjsystem/bgg-navigator/pkg/database/models"
	"github.com/cjsystem/bgg-navigator/pkg/messages"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// searchFilter fills in the paging defaults the service layer normally applies.
func searchFilter(f filters.GameSearchFilter) *filters.GameSearchFilter {
	if f.Page == 0 {
		f.Page = 1
	}
	if f.Limit == 0 {
		f.Limit = 20
	}
	return &f
}

func TestNewGameRepository(t *testing.T) {
	repository := NewGameRepository(&gorm.DB{})
	assert.NotNil(t, repository)
}

func TestSearchGames(t *testing.T) {
	db, cleanup := testutil.NewTestConnection(t)
	defer cleanup()

	repository := NewGameRepository(db)

	seedGameTestData(t, db)

	tests := []struct {
		name          string
		filters       *filters.GameSearchFilter
		expectedIds   []uint
		expectedTotal int64
		expectedError error
		setupFunc     func(db *gorm.DB)
	}{
		{
			name:          "nilfilter",
			filters:       nil,
			expectedError: fmt.Errorf(messages.FiltersNotNil),
		},
		{
			// Ranked games first by rank, the unranked one last.
			name:          "nofilters",
			filters:       searchFilter(filters.GameSearchFilter{}),
			expectedIds:   []uint{4, 2, 3, 1, 5},
			expectedTotal: 5,
		},
		{
			name:          "primarynamematch",
			filters:       searchFilter(filters.GameSearchFilter{Name: "catan"}),
			expectedIds:   []uint{1},
			expectedTotal: 1,
		},
		{
			name:          "japanesenamematch",
			filters:       searchFilter(filters.GameSearchFilter{Name: "チグリス"}),
			expectedIds:   []uint{3},
			expectedTotal: 1,
		},
		{
			name:          "playercountcontained",
			filters:       searchFilter(filters.GameSearchFilter{PlayerCount: intPtr(4)}),
			expectedIds:   []uint{4, 2, 3, 1},
			expectedTotal: 4,
		},
		{
			name:          "playercountupperbound",
			filters:       searchFilter(filters.GameSearchFilter{PlayerCount: intPtr(5)}),
			expectedIds:   []uint{2},
			expectedTotal: 1,
		},
		{
			name:          "bestplayercount",
			filters:       searchFilter(filters.GameSearchFilter{BestPlayerCount: intPtr(3)}),
			expectedIds:   []uint{2, 1},
			expectedTotal: 2,
		},
		{
			name:          "yearrange",
			filters:       searchFilter(filters.GameSearchFilter{YearMin: intPtr(1996), YearMax: intPtr(2010)}),
			expectedIds:   []uint{2, 3},
			expectedTotal: 2,
		},
		{
			// A zero is a real bound, not an absent parameter: games
			// without a min age stay excluded.
			name:          "minagezero",
			filters:       searchFilter(filters.GameSearchFilter{MinAge: intPtr(0)}),
			expectedIds:   []uint{4, 2, 1},
			expectedTotal: 3,
		},
		{
			name:          "minrating",
			filters:       searchFilter(filters.GameSearchFilter{MinRating: floatPtr(7.8)}),
			expectedIds:   []uint{4, 2},
			expectedTotal: 2,
		},
		{
			name:          "maxrank",
			filters:       searchFilter(filters.GameSearchFilter{MaxRank: intPtr(100)}),
			expectedIds:   []uint{4, 2, 3},
			expectedTotal: 3,
		},
		{
			name:          "weightband",
			filters:       searchFilter(filters.GameSearchFilter{WeightMin: floatPtr(3.5), WeightMax: floatPtr(3.7)}),
			expectedIds:   []uint{2, 3},
			expectedTotal: 2,
		},
		{
			// Any of the listed designers qualifies.
			name:          "designermembership",
			filters:       searchFilter(filters.GameSearchFilter{DesignerNames: []string{"Reiner Knizia", "Uwe Rosenberg"}}),
			expectedIds:   []uint{2, 3},
			expectedTotal: 2,
		},
		{
			name:          "mechanicmembership",
			filters:       searchFilter(filters.GameSearchFilter{MechanicNames: []string{"Worker Placement"}}),
			expectedIds:   []uint{4, 2},
			expectedTotal: 2,
		},
		{
			name:          "publishermembership",
			filters:       searchFilter(filters.GameSearchFilter{PublisherNames: []string{"Kosmos"}}),
			expectedIds:   []uint{3, 1},
			expectedTotal: 2,
		},
		{
			name:          "genre",
			filters:       searchFilter(filters.GameSearchFilter{GenreName: "Strategy"}),
			expectedIds:   []uint{4, 2, 3},
			expectedTotal: 3,
		},
		{
			name:          "awardnamelist",
			filters:       searchFilter(filters.GameSearchFilter{AwardNames: []string{"Spiel des Jahres"}}),
			expectedIds:   []uint{3, 1},
			expectedTotal: 2,
		},
		{
			name:          "compoundaward",
			filters:       searchFilter(filters.GameSearchFilter{AwardYear: intPtr(1998), AwardName: "Jahres", AwardType: "Winner"}),
			expectedIds:   []uint{3},
			expectedTotal: 1,
		},
		{
			// The name list and the compound filter are separate
			// conjuncts: no single award needs to satisfy both.
			name:          "compoundawardwithnamelist",
			filters:       searchFilter(filters.GameSearchFilter{AwardNames: []string{"Spiel des Jahres"}, AwardYear: intPtr(2022)}),
			expectedIds:   []uint{},
			expectedTotal: 0,
		},
		{
			name:          "combinedfilters",
			filters:       searchFilter(filters.GameSearchFilter{Name: "a", MinRating: floatPtr(7.8)}),
			expectedIds:   []uint{4, 2},
			expectedTotal: 2,
		},
		{
			name:          "dbconnectionerr",
			filters:       searchFilter(filters.GameSearchFilter{Name: "catan"}),
			expectedError: errors.New("sql: database is closed"),
			setupFunc: func(db *gorm.DB) {
				sqlDB, _ := db.DB()
				sqlDB.Close()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setupFunc != nil {
				tt.setupFunc(db)
			}

			games, totalCount, err := repository.SearchGames(context.Background(), tt.filters)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError.Error())
				assert.Nil(t, games)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedIds, gameIds(games))
			assert.Equal(t, tt.expectedTotal, totalCount)
		})
	}
}

func TestSearchGamesPagination(t *testing.T) {
	db, cleanup := testutil.NewTestConnection(t)
	defer cleanup()

	repository := NewGameRepository(db)

	seedGameTestData(t, db)

	tests := []struct {
		name        string
		page        int
		expectedIds []uint
	}{
		{name: "firstpage", page: 1, expectedIds: []uint{4, 2}},
		{name: "middlepage", page: 2, expectedIds: []uint{3, 1}},
		{name: "lastpage", page: 3, expectedIds: []uint{5}},
		{name: "pastend", page: 4, expectedIds: []uint{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := searchFilter(filters.GameSearchFilter{Page: tt.page, Limit: 2})

			games, totalCount, err := repository.SearchGames(context.Background(), filter)

			require.NoError(t, err)
			assert.Equal(t, tt.expectedIds, gameIds(games))
			// The total ignores the paging window.
			assert.Equal(t, int64(5), totalCount)
		})
	}
}

func TestSearchGamesPreloading(t *testing.T) {
	db, cleanup := testutil.NewTestConnection(t)
	defer cleanup()

	repository := NewGameRepository(db)

	seedGameTestData(t, db)

	games, totalCount, err := repository.SearchGames(
		context.Background(),
		searchFilter(filters.GameSearchFilter{Name: "Ark Nova"}),
	)

	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, int64(1), totalCount)

	game := games[0]
	require.Len(t, game.Designers, 1)
	assert.Equal(t, "Mathias Wigge", game.Designers[0].Name)

	require.Len(t, game.Mechanics, 1)
	assert.Equal(t, "Worker Placement", game.Mechanics[0].Name)

	require.Len(t, game.Publishers, 1)
	assert.Equal(t, "Feuerland Spiele", game.Publishers[0].Name)

	assert.Len(t, game.Awards, 2)

	require.Len(t, game.GenreRanks, 1)
	assert.Equal(t, "Strategy", game.GenreRanks[0].Genre.Name)
	assert.Equal(t, intPtr(1), game.GenreRanks[0].RankInGenre)

	require.Len(t, game.BestPlayerCounts, 1)
	assert.Equal(t, 2, game.BestPlayerCounts[0].PlayerCount)
}

func TestGetGameNames(t *testing.T) {
	db, cleanup := testutil.NewTestConnection(t)
	defer cleanup()

	repository := NewGameRepository(db)

	seedGameTestData(t, db)

	tests := []struct {
		name          string
		search        string
		expectedNames []string
	}{
		{
			// Popularity ordering, the game without ratings coming last.
			name:          "popularityordering",
			search:        "a",
			expectedNames: []string{"Catan", "Agricola", "Ark Nova", "Tigris & Euphrates", "Prototype Alpha"},
		},
		{
			name:          "japanesesearch",
			search:        "カタン",
			expectedNames: []string{"Catan"},
		},
		{
			name:          "caseinsensitive",
			search:        "AGRI",
			expectedNames: []string{"Agricola"},
		},
		{
			name:          "nomatch",
			search:        "zzz",
			expectedNames: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			games, err := repository.GetGameNames(context.Background(), tt.search)

			require.NoError(t, err)
			assert.Equal(t, tt.expectedNames, gameNames(games))
		})
	}
}

func TestGetGameNamesProjection(t *testing.T) {
	db, cleanup := testutil.NewTestConnection(t)
	defer cleanup()

	repository := NewGameRepository(db)

	seedGameTestData(t, db)

	games, err := repository.GetGameNames(context.Background(), "Catan")

	require.NoError(t, err)
	require.Len(t, games, 1)

	// The suggestion query selects the reduced column set only.
	game := games[0]
	assert.Equal(t, uint(1), game.ID)
	assert.Equal(t, "Catan", game.PrimaryName)
	assert.Equal(t, strPtr("カタン"), game.JapaneseName)
	assert.Equal(t, intPtr(1995), game.YearReleased)
	assert.NotNil(t, game.ImageUrl)
	assert.Nil(t, game.AvgRating)
	assert.Nil(t, game.RankOverall)
}

func TestGetGameById(t *testing.T) {
	db, cleanup := testutil.NewTestConnection(t)
	defer cleanup()

	repository := NewGameRepository(db)

	seedGameTestData(t, db)

	game, err := repository.GetGameById(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "Catan", game.PrimaryName)
	assert.Equal(t, 13, game.BggId)
	require.Len(t, game.Designers, 1)
	assert.Equal(t, "Klaus Teuber", game.Designers[0].Name)
	assert.Equal(t, []int{3, 4}, lo.Map(game.BestPlayerCounts, func(b models.GameBestPlayerCount, _ int) int {
		return b.PlayerCount
	}))

	game, err = repository.GetGameById(context.Background(), 999)

	assert.Nil(t, game)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGetGameByBggId(t *testing.T) {
	db, cleanup := testutil.NewTestConnection(t)
	defer cleanup()

	repository := NewGameRepository(db)

	seedGameTestData(t, db)

	game, err := repository.GetGameByBggId(context.Background(), 342942)

	require.NoError(t, err)
	assert.Equal(t, uint(4), game.ID)
	assert.Equal(t, "Ark Nova", game.PrimaryName)

	game, err = repository.GetGameByBggId(context.Background(), 123456)

	assert.Nil(t, game)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
