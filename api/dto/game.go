package dto

import (
	"slices"
	"time"

	"github.com/cjsystem/bgg-navigator/pkg/database/models"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// RelatedEntity is the flattened many-to-many association entry.
type RelatedEntity struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	ExternalUrl *string `json:"externalUrl"`
}

// GameAward is the flattened award association entry.
type GameAward struct {
	ID            uint    `json:"id"`
	AwardName     string  `json:"awardName"`
	AwardYear     int     `json:"awardYear"`
	AwardType     string  `json:"awardType"`
	AwardCategory *string `json:"awardCategory"`
}

// GenreRanking is the flattened genre rank entry.
type GenreRanking struct {
	Genre       RelatedEntity `json:"genre"`
	RankInGenre *int          `json:"rankInGenre"`
}

// GameResult is the flat, client-facing shape of one game with its associations.
type GameResult struct {
	ID           uint    `json:"id"`
	BggId        int     `json:"bggId"`
	PrimaryName  string  `json:"primaryName"`
	JapaneseName *string `json:"japaneseName"`
	YearReleased *int    `json:"yearReleased"`
	ImageUrl     *string `json:"imageUrl"`

	AvgRating     *float64 `json:"avgRating"`
	RatingsCount  *int     `json:"ratingsCount"`
	CommentsCount *int     `json:"commentsCount"`

	MinPlayers  *int     `json:"minPlayers"`
	MaxPlayers  *int     `json:"maxPlayers"`
	MinPlaytime *int     `json:"minPlaytime"`
	MaxPlaytime *int     `json:"maxPlaytime"`
	MinAge      *int     `json:"minAge"`
	Weight      *float64 `json:"weight"`
	RankOverall *int     `json:"rankOverall"`

	Designers        []RelatedEntity `json:"designers"`
	Artists          []RelatedEntity `json:"artists"`
	Publishers       []RelatedEntity `json:"publishers"`
	Mechanics        []RelatedEntity `json:"mechanics"`
	Categories       []RelatedEntity `json:"categories"`
	Awards           []GameAward     `json:"awards"`
	GenreRankings    []GenreRanking  `json:"genreRankings"`
	BestPlayerCounts []int           `json:"bestPlayerCounts"`

	CreatedAt *time.Time `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt"`
}

// GameSearchResponse is the paginated search payload.
type GameSearchResponse struct {
	Games           []*GameResult `json:"games"`
	TotalCount      int64         `json:"totalCount"`
	CurrentPage     int           `json:"currentPage"`
	TotalPages      int           `json:"totalPages"`
	HasNextPage     bool          `json:"hasNextPage"`
	HasPreviousPage bool          `json:"hasPreviousPage"`
}

// GameNameSuggestion is the reduced projection for the name autocomplete.
type GameNameSuggestion struct {
	ID           uint    `json:"id"`
	PrimaryName  string  `json:"primaryName"`
	JapaneseName *string `json:"japaneseName"`
	YearReleased *int    `json:"yearReleased"`
	ImageUrl     *string `json:"imageUrl"`
}

// FromModel flattens a fully loaded game model into the result shape.
// Missing associations render as empty lists, never null.
func (GameResult) FromModel(game *models.Game) *GameResult {
	bestPlayerCounts := lo.Map(game.BestPlayerCounts, func(bpc models.GameBestPlayerCount, _ int) int {
		return bpc.PlayerCount
	})
	slices.Sort(bestPlayerCounts)

	return &GameResult{
		ID:           game.ID,
		BggId:        game.BggId,
		PrimaryName:  game.PrimaryName,
		JapaneseName: game.JapaneseName,
		YearReleased: game.YearReleased,
		ImageUrl:     game.ImageUrl,

		AvgRating:     decimalToFloat(game.AvgRating),
		RatingsCount:  game.RatingsCount,
		CommentsCount: game.CommentsCount,

		MinPlayers:  game.MinPlayers,
		MaxPlayers:  game.MaxPlayers,
		MinPlaytime: game.MinPlaytime,
		MaxPlaytime: game.MaxPlaytime,
		MinAge:      game.MinAge,
		Weight:      decimalToFloat(game.Weight),
		RankOverall: game.RankOverall,

		Designers: lo.Map(game.Designers, func(d models.Designer, _ int) RelatedEntity {
			return RelatedEntity{ID: d.ID, Name: d.Name, ExternalUrl: d.Url}
		}),
		Artists: lo.Map(game.Artists, func(a models.Artist, _ int) RelatedEntity {
			return RelatedEntity{ID: a.ID, Name: a.Name, ExternalUrl: a.Url}
		}),
		Publishers: lo.Map(game.Publishers, func(p models.Publisher, _ int) RelatedEntity {
			return RelatedEntity{ID: p.ID, Name: p.Name, ExternalUrl: p.Url}
		}),
		Mechanics: lo.Map(game.Mechanics, func(m models.Mechanic, _ int) RelatedEntity {
			return RelatedEntity{ID: m.ID, Name: m.Name, ExternalUrl: m.Url}
		}),
		Categories: lo.Map(game.Categories, func(c models.Category, _ int) RelatedEntity {
			return RelatedEntity{ID: c.ID, Name: c.Name, ExternalUrl: c.Url}
		}),
		Awards: lo.Map(game.Awards, func(a models.Award, _ int) GameAward {
			return GameAward{
				ID:            a.ID,
				AwardName:     a.AwardName,
				AwardYear:     a.AwardYear,
				AwardType:     a.AwardType,
				AwardCategory: a.AwardCategory,
			}
		}),
		GenreRankings: lo.Map(game.GenreRanks, func(ggr models.GameGenreRank, _ int) GenreRanking {
			return GenreRanking{
				Genre: RelatedEntity{
					ID:          ggr.Genre.ID,
					Name:        ggr.Genre.Name,
					ExternalUrl: ggr.Genre.Url,
				},
				RankInGenre: ggr.RankInGenre,
			}
		}),
		BestPlayerCounts: bestPlayerCounts,

		CreatedAt: game.CreatedAt,
		UpdatedAt: game.UpdatedAt,
	}
}

// FromModelSlice flattens a page of game models.
func (g GameResult) FromModelSlice(games []*models.Game) []*GameResult {
	return lo.Map(games, func(game *models.Game, _ int) *GameResult {
		return g.FromModel(game)
	})
}

// FromModel projects a game model into the suggestion shape.
func (GameNameSuggestion) FromModel(game *models.Game) *GameNameSuggestion {
	return &GameNameSuggestion{
		ID:           game.ID,
		PrimaryName:  game.PrimaryName,
		JapaneseName: game.JapaneseName,
		YearReleased: game.YearReleased,
		ImageUrl:     game.ImageUrl,
	}
}

// FromModelSlice projects the suggestion list.
func (s GameNameSuggestion) FromModelSlice(games []*models.Game) []*GameNameSuggestion {
	return lo.Map(games, func(game *models.Game, _ int) *GameNameSuggestion {
		return s.FromModel(game)
	})
}

// decimalToFloat coerces a nullable decimal column to a plain number.
func decimalToFloat(d *decimal.Decimal) *float64 {
	if d == nil {
		return nil
	}

	f := d.InexactFloat64()
	return &f
}
