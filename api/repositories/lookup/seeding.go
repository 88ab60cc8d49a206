package repositories

import (
	"fmt"
	"testing"

	"github.com/cjsystem/bgg-navigator/pkg/database/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedLookupTestData(t *testing.T, db *gorm.DB) {
	t.Helper()

	// Clean up existing data
	db.Exec("TRUNCATE TABLE designers, artists, publishers, mechanics, categories, genres, awards RESTART IDENTITY CASCADE")

	designers := []*models.Designer{
		{ID: 1, Name: "Klaus Teuber", Url: strPtr("https://boardgamegeek.com/boardgamedesigner/11")},
		{ID: 2, Name: "Uwe Rosenberg"},
		{ID: 3, Name: "Reiner Knizia"},
		{ID: 4, Name: "Vital Lacerda"},
	}
	require.NoError(t, db.Create(designers).Error)

	// More artists than the lookup cap, with names that sort in
	// generation order.
	artists := make([]*models.Artist, 0, 55)
	for i := 1; i <= 55; i++ {
		artists = append(artists, &models.Artist{ID: uint(i), Name: fmt.Sprintf("Catalog Artist %02d", i)})
	}
	require.NoError(t, db.Create(artists).Error)

	publishers := []*models.Publisher{
		{ID: 1, Name: "Kosmos"},
		{ID: 2, Name: "Lookout Games"},
		{ID: 3, Name: "Feuerland Spiele"},
	}
	require.NoError(t, db.Create(publishers).Error)

	mechanics := []*models.Mechanic{
		{ID: 1, Name: "Worker Placement"},
		{ID: 2, Name: "Dice Rolling"},
		{ID: 3, Name: "Set Collection"},
	}
	require.NoError(t, db.Create(mechanics).Error)

	categories := []*models.Category{
		{ID: 1, Name: "Negotiation"},
		{ID: 2, Name: "Economic"},
	}
	require.NoError(t, db.Create(categories).Error)

	genres := []*models.Genre{
		{ID: 1, Name: "Strategy"},
		{ID: 2, Name: "Family"},
		{ID: 3, Name: "Party"},
		{ID: 4, Name: "Thematic"},
	}
	require.NoError(t, db.Create(genres).Error)

	awards := []*models.Award{
		{ID: 1, AwardName: "Spiel des Jahres", AwardYear: 1995, AwardType: "Winner"},
		{ID: 2, AwardName: "Spiel des Jahres", AwardYear: 1996, AwardType: "Nominee"},
		{ID: 3, AwardName: "Deutscher Spiele Preis", AwardYear: 1998, AwardType: "Winner"},
		{ID: 4, AwardName: "Golden Geek", AwardYear: 2021, AwardType: "Winner"},
		{ID: 5, AwardName: "Golden Geek", AwardYear: 2020, AwardType: "Nominee"},
	}
	require.NoError(t, db.Create(awards).Error)
}

func strPtr(v string) *string {
	return &v
}
