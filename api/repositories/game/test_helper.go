package repositories

import (
	"github.com/cjsystem/bgg-navigator/pkg/database/models"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

func intPtr(v int) *int {
	return &v
}

func floatPtr(v float64) *float64 {
	return &v
}

func strPtr(v string) *string {
	return &v
}

func decPtr(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

// gameIds extracts the ids in result order, which is what most
// search assertions care about.
func gameIds(games []*models.Game) []uint {
	return lo.Map(games, func(g *models.Game, _ int) uint {
		return g.ID
	})
}

func gameNames(games []*models.Game) []string {
	return lo.Map(games, func(g *models.Game, _ int) string {
		return g.PrimaryName
	})
}
