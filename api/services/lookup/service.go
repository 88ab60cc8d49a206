package lookupservice

import (
	"context"
	"encoding/json"
	"time"

	"github.com/cjsystem/bgg-navigator/api/cache"
	"github.com/cjsystem/bgg-navigator/api/dto"
	lookuprepo "github.com/cjsystem/bgg-navigator/api/repositories/lookup"
	"github.com/cjsystem/bgg-navigator/pkg/database/models"

	"gorm.io/gorm"
)

const (
	LookupMemoryCacheDuration = 15 * time.Minute
	LookupRedisCacheDuration  = time.Hour

	redisReadTimeout = 200 * time.Millisecond
)

// LookupRedisClient is the narrow Redis surface the lookup service needs.
type LookupRedisClient interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

// LookupService serves the reference entity lookups. The small fixed
// vocabularies are cached; substring searches always hit the store.
type LookupService struct {
	db               *gorm.DB
	memCache         cache.MemCache
	redis            LookupRedisClient
	LookupRepository lookuprepo.LookupRepository
}

// LookupServiceDeps is the dependency list for the lookup service.
type LookupServiceDeps struct {
	DB       *gorm.DB
	MemCache cache.MemCache
	Redis    LookupRedisClient
}

// NewLookupService creates a lookup service.
func NewLookupService(deps *LookupServiceDeps) *LookupService {
	return &LookupService{
		db:               deps.DB,
		memCache:         deps.MemCache,
		redis:            deps.Redis,
		LookupRepository: lookuprepo.NewLookupRepository(deps.DB),
	}
}

// GetDesigners returns designers matching the optional substring.
func (ls *LookupService) GetDesigners(ctx context.Context, search string) ([]dto.NamedEntity, error) {
	designers, err := ls.LookupRepository.SearchDesigners(ctx, search)
	if err != nil {
		return nil, err
	}

	return dto.NamedEntitiesFromModels(designers, func(d *models.Designer) dto.NamedEntity {
		return dto.NamedEntity{ID: d.ID, Name: d.Name}
	}), nil
}

// GetArtists returns artists matching the optional substring.
func (ls *LookupService) GetArtists(ctx context.Context, search string) ([]dto.NamedEntity, error) {
	artists, err := ls.LookupRepository.SearchArtists(ctx, search)
	if err != nil {
		return nil, err
	}

	return dto.NamedEntitiesFromModels(artists, func(a *models.Artist) dto.NamedEntity {
		return dto.NamedEntity{ID: a.ID, Name: a.Name}
	}), nil
}

// GetPublishers returns publishers matching the optional substring.
func (ls *LookupService) GetPublishers(ctx context.Context, search string) ([]dto.NamedEntity, error) {
	publishers, err := ls.LookupRepository.SearchPublishers(ctx, search)
	if err != nil {
		return nil, err
	}

	return dto.NamedEntitiesFromModels(publishers, func(p *models.Publisher) dto.NamedEntity {
		return dto.NamedEntity{ID: p.ID, Name: p.Name}
	}), nil
}

// GetMechanics returns the full mechanic vocabulary, cached.
func (ls *LookupService) GetMechanics(ctx context.Context) ([]dto.NamedEntity, error) {
	return getCached(ls, ctx, "lookup:mechanics", func() ([]dto.NamedEntity, error) {
		mechanics, err := ls.LookupRepository.ListMechanics(ctx)
		if err != nil {
			return nil, err
		}

		return dto.NamedEntitiesFromModels(mechanics, func(m *models.Mechanic) dto.NamedEntity {
			return dto.NamedEntity{ID: m.ID, Name: m.Name}
		}), nil
	})
}

// GetCategories returns the full category vocabulary, cached.
func (ls *LookupService) GetCategories(ctx context.Context) ([]dto.NamedEntity, error) {
	return getCached(ls, ctx, "lookup:categories", func() ([]dto.NamedEntity, error) {
		categories, err := ls.LookupRepository.ListCategories(ctx)
		if err != nil {
			return nil, err
		}

		return dto.NamedEntitiesFromModels(categories, func(c *models.Category) dto.NamedEntity {
			return dto.NamedEntity{ID: c.ID, Name: c.Name}
		}), nil
	})
}

// GetGenres returns the full genre vocabulary, cached.
func (ls *LookupService) GetGenres(ctx context.Context) ([]dto.NamedEntity, error) {
	return getCached(ls, ctx, "lookup:genres", func() ([]dto.NamedEntity, error) {
		genres, err := ls.LookupRepository.ListGenres(ctx)
		if err != nil {
			return nil, err
		}

		return dto.NamedEntitiesFromModels(genres, func(g *models.Genre) dto.NamedEntity {
			return dto.NamedEntity{ID: g.ID, Name: g.Name}
		}), nil
	})
}

// GetAwardNames returns the distinct award names matching the optional substring.
func (ls *LookupService) GetAwardNames(ctx context.Context, search string) ([]dto.AwardName, error) {
	names, err := ls.LookupRepository.SearchAwardNames(ctx, search)
	if err != nil {
		return nil, err
	}

	return dto.AwardNamesFromStrings(names), nil
}

// GetAwardTypes returns the full distinct set of award types, cached.
func (ls *LookupService) GetAwardTypes(ctx context.Context) ([]dto.AwardType, error) {
	return getCached(ls, ctx, "lookup:award_types", func() ([]dto.AwardType, error) {
		types, err := ls.LookupRepository.ListAwardTypes(ctx)
		if err != nil {
			return nil, err
		}

		return dto.AwardTypesFromStrings(types), nil
	})
}

// getCached reads through memory, then Redis, then the fetch function.
// Cache failures are never surfaced: the store result wins.
func getCached[T any](ls *LookupService, ctx context.Context, key string, fetch func() (T, error)) (T, error) {
	if memCached := ls.memCache.Get(key); memCached != nil {
		if value, ok := memCached.(T); ok {
			return value, nil
		}
	}

	if redisCached := getFromRedis[T](ls, key); redisCached != nil {
		ls.memCache.Set(key, *redisCached, LookupMemoryCacheDuration)
		return *redisCached, nil
	}

	value, err := fetch()
	if err != nil {
		var zero T
		return zero, err
	}

	ls.memCache.Set(key, value, LookupMemoryCacheDuration)
	if j, err := json.Marshal(value); err == nil {
		ls.redis.Set(ctx, key, string(j), LookupRedisCacheDuration)
	}

	return value, nil
}

// getFromRedis retrieves the data from the redis.
func getFromRedis[T any](ls *LookupService, key string) *T {
	ctx, cancel := context.WithTimeout(context.Background(), redisReadTimeout)
	defer cancel()

	redisCached, err := ls.redis.Get(ctx, key)
	if err != nil || redisCached == "" {
		return nil
	}

	var value T
	if err := json.Unmarshal([]byte(redisCached), &value); err != nil {
		return nil
	}

	return &value
}
