package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/cjsystem/bgg-navigator/api/filters"
	"github.com/cjsystem/bgg-navigator/pkg/database/models"

	"github.com/stretchr/testify/mock"
)

// Shared test constants.
const (
	DatabaseError = "database error"

	// Type name of the context created by context.WithTimeout, used on
	// mock expectations for the Redis reads.
	DefaultTimerCtx = "*context.timerCtx"
)

// Assert the expectations of all mocks.
func VerifyAllMocks(t *testing.T, mocks ...any) {
	t.Helper()

	for _, m := range mocks {
		if mockObj, ok := m.(interface{ AssertExpectations(*testing.T) bool }); ok {
			mockObj.AssertExpectations(t)
		}
	}
}

// ============================================================================
// Mock implementations used on the game service tests.
// ============================================================================

type MockGameRepository struct {
	mock.Mock
}

func (m *MockGameRepository) SearchGames(ctx context.Context, filter *filters.GameSearchFilter) ([]*models.Game, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*models.Game), args.Get(1).(int64), args.Error(2)
}

func (m *MockGameRepository) GetGameNames(ctx context.Context, search string) ([]*models.Game, error) {
	args := m.Called(ctx, search)
	return args.Get(0).([]*models.Game), args.Error(1)
}

func (m *MockGameRepository) GetGameById(ctx context.Context, id uint) (*models.Game, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*models.Game), args.Error(1)
}

func (m *MockGameRepository) GetGameByBggId(ctx context.Context, bggId int) (*models.Game, error) {
	args := m.Called(ctx, bggId)
	return args.Get(0).(*models.Game), args.Error(1)
}

// ============================================================================
// Mock implementations used on the lookup service tests.
// ============================================================================

type MockLookupRepository struct {
	mock.Mock
}

func (m *MockLookupRepository) SearchDesigners(ctx context.Context, search string) ([]*models.Designer, error) {
	args := m.Called(ctx, search)
	return args.Get(0).([]*models.Designer), args.Error(1)
}

func (m *MockLookupRepository) SearchArtists(ctx context.Context, search string) ([]*models.Artist, error) {
	args := m.Called(ctx, search)
	return args.Get(0).([]*models.Artist), args.Error(1)
}

func (m *MockLookupRepository) SearchPublishers(ctx context.Context, search string) ([]*models.Publisher, error) {
	args := m.Called(ctx, search)
	return args.Get(0).([]*models.Publisher), args.Error(1)
}

func (m *MockLookupRepository) ListMechanics(ctx context.Context) ([]*models.Mechanic, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.Mechanic), args.Error(1)
}

func (m *MockLookupRepository) ListCategories(ctx context.Context) ([]*models.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.Category), args.Error(1)
}

func (m *MockLookupRepository) ListGenres(ctx context.Context) ([]*models.Genre, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.Genre), args.Error(1)
}

func (m *MockLookupRepository) SearchAwardNames(ctx context.Context, search string) ([]string, error) {
	args := m.Called(ctx, search)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockLookupRepository) ListAwardTypes(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

// ============================================================================
// Cache mock implementations.
// ============================================================================

type MockMemCache struct {
	mock.Mock
}

func (m *MockMemCache) Get(key string) any {
	args := m.Called(key)
	return args.Get(0)
}

func (m *MockMemCache) Set(key string, value any, ttl time.Duration) {
	m.Called(key, value, ttl)
}

func (m *MockMemCache) Close() {
	m.Called()
}

type MockRedisClient struct {
	mock.Mock
}

func (m *MockRedisClient) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisClient) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}
