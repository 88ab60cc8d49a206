package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/cjsystem/bgg-navigator/api/filters"
	"github.com/cjsystem/bgg-navigator/pkg/database/models"
	"github.com/cjsystem/bgg-navigator/pkg/messages"

	"gorm.io/gorm"
)

const nameSuggestionLimit = 20

// GameRepository is the public interface for accessing the game repository.
type GameRepository interface {
	SearchGames(ctx context.Context, filter *filters.GameSearchFilter) ([]*models.Game, int64, error)
	GetGameNames(ctx context.Context, search string) ([]*models.Game, error)
	GetGameById(ctx context.Context, id uint) (*models.Game, error)
	GetGameByBggId(ctx context.Context, bggId int) (*models.Game, error)
}

// gameRepository repository structure.
type gameRepository struct {
	db *gorm.DB
}

// NewGameRepository creates a game repository.
func NewGameRepository(db *gorm.DB) GameRepository {
	return &gameRepository{db: db}
}

// SearchGames runs the count and the paginated fetch for the composed filter.
// Returns the page of games and the total count of matches.
func (gr *gameRepository) SearchGames(ctx context.Context, filter *filters.GameSearchFilter) ([]*models.Game, int64, error) {
	if filter == nil {
		return nil, 0, fmt.Errorf(messages.FiltersNotNil)
	}

	// The count and the fetch are two independent reads sharing the
	// same conjuncts. No snapshot is held between them.
	var totalCount int64
	countQuery := applyGameFilter(gr.db.WithContext(ctx).Model(&models.Game{}), filter)
	if err := countQuery.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit

	var games []*models.Game
	query := applyGameFilter(gr.db.WithContext(ctx).Model(&models.Game{}), filter)
	query = preloadGameAssociations(query).
		Order("rank_overall asc").
		Order("avg_rating desc NULLS LAST").
		Order("primary_name asc").
		Offset(offset).
		Limit(filter.Limit)

	if err := query.Find(&games).Error; err != nil {
		return nil, 0, err
	}

	return games, totalCount, nil
}

// GetGameNames returns the reduced name suggestion projection,
// popularity first among the string matches.
func (gr *gameRepository) GetGameNames(ctx context.Context, search string) ([]*models.Game, error) {
	var games []*models.Game

	pattern := "%" + search + "%"
	query := gr.db.WithContext(ctx).Model(&models.Game{}).
		Select("id, primary_name, japanese_name, year_released, image_url").
		Where("primary_name ILIKE ? OR japanese_name ILIKE ?", pattern, pattern).
		Order("ratings_count desc NULLS LAST").
		Order("avg_rating desc NULLS LAST").
		Order("primary_name asc").
		Limit(nameSuggestionLimit)

	if err := query.Find(&games).Error; err != nil {
		return nil, err
	}

	return games, nil
}

// GetGameById returns a single fully loaded game.
func (gr *gameRepository) GetGameById(ctx context.Context, id uint) (*models.Game, error) {
	var game models.Game

	query := preloadGameAssociations(gr.db.WithContext(ctx))
	if err := query.First(&game, id).Error; err != nil {
		return nil, err
	}

	return &game, nil
}

// GetGameByBggId returns a single fully loaded game by the external reference id.
func (gr *gameRepository) GetGameByBggId(ctx context.Context, bggId int) (*models.Game, error) {
	var game models.Game

	query := preloadGameAssociations(gr.db.WithContext(ctx))
	if err := query.Where("bgg_id = ?", bggId).First(&game).Error; err != nil {
		return nil, err
	}

	return &game, nil
}

// preloadGameAssociations eager loads every association the result shaper needs.
func preloadGameAssociations(query *gorm.DB) *gorm.DB {
	return query.
		Preload("Designers").
		Preload("Artists").
		Preload("Publishers").
		Preload("Mechanics").
		Preload("Categories").
		Preload("Awards").
		Preload("GenreRanks.Genre").
		Preload("BestPlayerCounts", func(db *gorm.DB) *gorm.DB {
			return db.Order("player_count asc")
		})
}

// applyGameFilter translates the typed filter into the conjunct list.
// Each present field adds exactly one WHERE conjunct, absent fields add nothing.
func applyGameFilter(query *gorm.DB, filter *filters.GameSearchFilter) *gorm.DB {
	if filter.Name != "" {
		pattern := "%" + filter.Name + "%"
		query = query.Where("(primary_name ILIKE ? OR japanese_name ILIKE ?)", pattern, pattern)
	}

	if filter.YearMin != nil {
		query = query.Where("year_released >= ?", *filter.YearMin)
	}
	if filter.YearMax != nil {
		query = query.Where("year_released <= ?", *filter.YearMax)
	}

	// Containment test: the supported player range includes the given count.
	if filter.PlayerCount != nil {
		query = query.Where("min_players <= ? AND max_players >= ?", *filter.PlayerCount, *filter.PlayerCount)
	}

	if filter.MinPlaytime != nil {
		query = query.Where("min_playtime >= ?", *filter.MinPlaytime)
	}
	if filter.MaxPlaytime != nil {
		query = query.Where("max_playtime <= ?", *filter.MaxPlaytime)
	}
	if filter.MinAge != nil {
		query = query.Where("min_age >= ?", *filter.MinAge)
	}

	if filter.MinRating != nil {
		query = query.Where("avg_rating >= ?", *filter.MinRating)
	}
	if filter.MaxRank != nil {
		query = query.Where("rank_overall <= ?", *filter.MaxRank)
	}

	if filter.WeightMin != nil {
		query = query.Where("weight >= ?", *filter.WeightMin)
	}
	if filter.WeightMax != nil {
		query = query.Where("weight <= ?", *filter.WeightMax)
	}

	if filter.RatingsCountMin != nil {
		query = query.Where("ratings_count >= ?", *filter.RatingsCountMin)
	}
	if filter.RatingsCountMax != nil {
		query = query.Where("ratings_count <= ?", *filter.RatingsCountMax)
	}
	if filter.CommentsCountMin != nil {
		query = query.Where("comments_count >= ?", *filter.CommentsCountMin)
	}
	if filter.CommentsCountMax != nil {
		query = query.Where("comments_count <= ?", *filter.CommentsCountMax)
	}

	if filter.BestPlayerCount != nil {
		query = query.Where(
			"EXISTS (SELECT 1 FROM game_best_player_counts bpc WHERE bpc.game_id = games.id AND bpc.player_count = ?)",
			*filter.BestPlayerCount,
		)
	}

	// Membership tests: the game has at least one related entity whose
	// name is in the given set.
	query = whereRelatedNameIn(query, filter.DesignerNames, "game_designers", "designer_id", "designers")
	query = whereRelatedNameIn(query, filter.ArtistNames, "game_artists", "artist_id", "artists")
	query = whereRelatedNameIn(query, filter.PublisherNames, "game_publishers", "publisher_id", "publishers")
	query = whereRelatedNameIn(query, filter.MechanicNames, "game_mechanics", "mechanic_id", "mechanics")
	query = whereRelatedNameIn(query, filter.CategoryNames, "game_categories", "category_id", "categories")

	if len(filter.AwardNames) > 0 {
		query = query.Where(
			"EXISTS (SELECT 1 FROM game_awards ga JOIN awards a ON a.id = ga.award_id WHERE ga.game_id = games.id AND a.award_name IN ?)",
			filter.AwardNames,
		)
	}

	if filter.GenreName != "" {
		query = query.Where(
			"EXISTS (SELECT 1 FROM game_genre_ranks ggr JOIN genres g ON g.id = ggr.genre_id WHERE ggr.game_id = games.id AND g.name = ?)",
			filter.GenreName,
		)
	}

	// The compound award filter is a single nested conjunct over the
	// award entity, evaluated independently from the AwardNames list.
	if filter.AwardYear != nil || filter.AwardName != "" || filter.AwardType != "" {
		conditions := []string{"ga.game_id = games.id"}
		args := []any{}

		if filter.AwardYear != nil {
			conditions = append(conditions, "a.award_year = ?")
			args = append(args, *filter.AwardYear)
		}
		if filter.AwardName != "" {
			conditions = append(conditions, "a.award_name ILIKE ?")
			args = append(args, "%"+filter.AwardName+"%")
		}
		if filter.AwardType != "" {
			conditions = append(conditions, "a.award_type = ?")
			args = append(args, filter.AwardType)
		}

		query = query.Where(
			"EXISTS (SELECT 1 FROM game_awards ga JOIN awards a ON a.id = ga.award_id WHERE "+strings.Join(conditions, " AND ")+")",
			args...,
		)
	}

	return query
}

// whereRelatedNameIn adds the membership conjunct for one join relation.
func whereRelatedNameIn(query *gorm.DB, names []string, joinTable, joinColumn, entityTable string) *gorm.DB {
	if len(names) == 0 {
		return query
	}

	subquery := fmt.Sprintf(
		"EXISTS (SELECT 1 FROM %s jt JOIN %s e ON e.id = jt.%s WHERE jt.game_id = games.id AND e.name IN ?)",
		joinTable, entityTable, joinColumn,
	)

	return query.Where(subquery, names)
}
