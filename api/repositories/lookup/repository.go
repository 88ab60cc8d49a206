package repositories

import (
	"context"

	"github.com/cjsystem/bgg-navigator/pkg/database/models"

	"gorm.io/gorm"
)

const lookupLimit = 50

// LookupRepository is the public interface for the reference entity lookups.
type LookupRepository interface {
	SearchDesigners(ctx context.Context, search string) ([]*models.Designer, error)
	SearchArtists(ctx context.Context, search string) ([]*models.Artist, error)
	SearchPublishers(ctx context.Context, search string) ([]*models.Publisher, error)
	ListMechanics(ctx context.Context) ([]*models.Mechanic, error)
	ListCategories(ctx context.Context) ([]*models.Category, error)
	ListGenres(ctx context.Context) ([]*models.Genre, error)
	SearchAwardNames(ctx context.Context, search string) ([]string, error)
	ListAwardTypes(ctx context.Context) ([]string, error)
}

// lookupRepository repository structure.
type lookupRepository struct {
	db *gorm.DB
}

// NewLookupRepository creates a lookup repository.
func NewLookupRepository(db *gorm.DB) LookupRepository {
	return &lookupRepository{db: db}
}

// searchByName is the shared lookup query over the named entity tables.
// A zero limit means unbounded, used by the small fixed vocabularies.
func searchByName[T any](ctx context.Context, db *gorm.DB, search string, limit int) ([]*T, error) {
	var entities []*T

	query := db.WithContext(ctx).Model(new(T)).Select("id, name")
	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	query = query.Order("name asc")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&entities).Error; err != nil {
		return nil, err
	}

	return entities, nil
}

// SearchDesigners returns designers matching the substring, capped.
func (lr *lookupRepository) SearchDesigners(ctx context.Context, search string) ([]*models.Designer, error) {
	return searchByName[models.Designer](ctx, lr.db, search, lookupLimit)
}

// SearchArtists returns artists matching the substring, capped.
func (lr *lookupRepository) SearchArtists(ctx context.Context, search string) ([]*models.Artist, error) {
	return searchByName[models.Artist](ctx, lr.db, search, lookupLimit)
}

// SearchPublishers returns publishers matching the substring, capped.
func (lr *lookupRepository) SearchPublishers(ctx context.Context, search string) ([]*models.Publisher, error) {
	return searchByName[models.Publisher](ctx, lr.db, search, lookupLimit)
}

// ListMechanics returns the full mechanic vocabulary.
func (lr *lookupRepository) ListMechanics(ctx context.Context) ([]*models.Mechanic, error) {
	return searchByName[models.Mechanic](ctx, lr.db, "", 0)
}

// ListCategories returns the full category vocabulary.
func (lr *lookupRepository) ListCategories(ctx context.Context) ([]*models.Category, error) {
	return searchByName[models.Category](ctx, lr.db, "", 0)
}

// ListGenres returns the full genre vocabulary.
func (lr *lookupRepository) ListGenres(ctx context.Context) ([]*models.Genre, error) {
	return searchByName[models.Genre](ctx, lr.db, "", 0)
}

// SearchAwardNames returns the distinct award names matching the substring, capped.
func (lr *lookupRepository) SearchAwardNames(ctx context.Context, search string) ([]string, error) {
	var names []string

	query := lr.db.WithContext(ctx).Model(&models.Award{}).Distinct("award_name")
	if search != "" {
		query = query.Where("award_name ILIKE ?", "%"+search+"%")
	}

	query = query.Order("award_name asc").Limit(lookupLimit)
	if err := query.Pluck("award_name", &names).Error; err != nil {
		return nil, err
	}

	return names, nil
}

// ListAwardTypes returns the full distinct set of award types.
func (lr *lookupRepository) ListAwardTypes(ctx context.Context) ([]string, error) {
	var types []string

	query := lr.db.WithContext(ctx).Model(&models.Award{}).
		Distinct("award_type").
		Order("award_type asc")
	if err := query.Pluck("award_type", &types).Error; err != nil {
		return nil, err
	}

	return types, nil
}
