package repositories

import (
	"testing"

	"github.com/cjsystem/bgg-navigator/pkg/database/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedGameTestData(t *testing.T, db *gorm.DB) {
	t.Helper()

	// Clean up existing data
	db.Exec("TRUNCATE TABLE games RESTART IDENTITY CASCADE")
	db.Exec("TRUNCATE TABLE designers, artists, publishers, mechanics, categories, genres, awards RESTART IDENTITY CASCADE")

	games := []*models.Game{
		{ID: 1, BggId: 13, PrimaryName: "Catan", JapaneseName: strPtr("カタン"), YearReleased: intPtr(1995), ImageUrl: strPtr("https://img.example.com/catan.jpg"), AvgRating: decPtr("7.10"), RatingsCount: intPtr(120000), CommentsCount: intPtr(30000), RankOverall: intPtr(500), MinPlayers: intPtr(2), MaxPlayers: intPtr(4), MinPlaytime: intPtr(60), MaxPlaytime: intPtr(120), MinAge: intPtr(10), Weight: decPtr("2.30")},
		{ID: 2, BggId: 31260, PrimaryName: "Agricola", YearReleased: intPtr(2007), AvgRating: decPtr("7.90"), RatingsCount: intPtr(80000), CommentsCount: intPtr(20000), RankOverall: intPtr(40), MinPlayers: intPtr(1), MaxPlayers: intPtr(5), MinPlaytime: intPtr(30), MaxPlaytime: intPtr(150), MinAge: intPtr(12), Weight: decPtr("3.60")},
		{ID: 3, BggId: 42, PrimaryName: "Tigris & Euphrates", JapaneseName: strPtr("チグリス・ユーフラテス"), YearReleased: intPtr(1997), AvgRating: decPtr("7.50"), RatingsCount: intPtr(40000), CommentsCount: intPtr(9000), RankOverall: intPtr(100), MinPlayers: intPtr(3), MaxPlayers: intPtr(4), MinPlaytime: intPtr(90), MaxPlaytime: intPtr(90), Weight: decPtr("3.50")},
		{ID: 4, BggId: 342942, PrimaryName: "Ark Nova", YearReleased: intPtr(2021), AvgRating: decPtr("8.50"), RatingsCount: intPtr(60000), CommentsCount: intPtr(15000), RankOverall: intPtr(4), MinPlayers: intPtr(1), MaxPlayers: intPtr(4), MinPlaytime: intPtr(90), MaxPlaytime: intPtr(150), MinAge: intPtr(14), Weight: decPtr("3.77")},
		{ID: 5, BggId: 99999, PrimaryName: "Prototype Alpha"},
	}

	for _, game := range games {
		require.NoError(t, db.Create(game).Error)
	}

	designers := []*models.Designer{
		{ID: 1, Name: "Klaus Teuber"},
		{ID: 2, Name: "Uwe Rosenberg"},
		{ID: 3, Name: "Reiner Knizia"},
		{ID: 4, Name: "Mathias Wigge"},
	}
	artists := []*models.Artist{
		{ID: 1, Name: "Volkan Baga"},
		{ID: 2, Name: "Klemens Franz"},
	}
	publishers := []*models.Publisher{
		{ID: 1, Name: "Kosmos"},
		{ID: 2, Name: "Lookout Games"},
		{ID: 3, Name: "Feuerland Spiele"},
	}
	mechanics := []*models.Mechanic{
		{ID: 1, Name: "Dice Rolling"},
		{ID: 2, Name: "Worker Placement"},
		{ID: 3, Name: "Tile Placement"},
	}
	categories := []*models.Category{
		{ID: 1, Name: "Negotiation"},
		{ID: 2, Name: "Economic"},
		{ID: 3, Name: "Animals"},
	}
	genres := []*models.Genre{
		{ID: 1, Name: "Family"},
		{ID: 2, Name: "Strategy"},
	}
	awards := []*models.Award{
		{ID: 1, AwardName: "Spiel des Jahres", AwardYear: 1995, AwardType: "Winner"},
		{ID: 2, AwardName: "Spiel des Jahres", AwardYear: 1998, AwardType: "Winner"},
		{ID: 3, AwardName: "Deutscher Spiele Preis", AwardYear: 1998, AwardType: "Winner"},
		{ID: 4, AwardName: "Deutscher Spiele Preis", AwardYear: 2022, AwardType: "Winner", AwardCategory: strPtr("Expert Game")},
		{ID: 5, AwardName: "Golden Geek", AwardYear: 2021, AwardType: "Nominee"},
	}

	require.NoError(t, db.Create(designers).Error)
	require.NoError(t, db.Create(artists).Error)
	require.NoError(t, db.Create(publishers).Error)
	require.NoError(t, db.Create(mechanics).Error)
	require.NoError(t, db.Create(categories).Error)
	require.NoError(t, db.Create(genres).Error)
	require.NoError(t, db.Create(awards).Error)

	joinRows := []string{
		"INSERT INTO game_designers (game_id, designer_id) VALUES (1, 1), (2, 2), (3, 3), (4, 4)",
		"INSERT INTO game_artists (game_id, artist_id) VALUES (1, 1), (2, 2)",
		"INSERT INTO game_publishers (game_id, publisher_id) VALUES (1, 1), (3, 1), (2, 2), (4, 3)",
		"INSERT INTO game_mechanics (game_id, mechanic_id) VALUES (1, 1), (2, 2), (4, 2), (3, 3)",
		"INSERT INTO game_categories (game_id, category_id) VALUES (1, 1), (2, 2), (4, 3)",
		"INSERT INTO game_awards (game_id, award_id) VALUES (1, 1), (3, 2), (2, 3), (4, 4), (4, 5)",
	}
	for _, stmt := range joinRows {
		require.NoError(t, db.Exec(stmt).Error)
	}

	genreRanks := []*models.GameGenreRank{
		{GameId: 1, GenreId: 1, RankInGenre: intPtr(10)},
		{GameId: 2, GenreId: 2, RankInGenre: intPtr(5)},
		{GameId: 3, GenreId: 2, RankInGenre: intPtr(20)},
		{GameId: 4, GenreId: 2, RankInGenre: intPtr(1)},
	}
	require.NoError(t, db.Create(genreRanks).Error)

	bestPlayerCounts := []*models.GameBestPlayerCount{
		{GameId: 1, PlayerCount: 3},
		{GameId: 1, PlayerCount: 4},
		{GameId: 2, PlayerCount: 3},
		{GameId: 4, PlayerCount: 2},
	}
	require.NoError(t, db.Create(bestPlayerCounts).Error)
}
