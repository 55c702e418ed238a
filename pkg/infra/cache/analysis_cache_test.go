package cache_test

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/euisuk-chung/gemini-hak-creator-hub/pkg/domain"
	"github.com/euisuk-chung/gemini-hak-creator-hub/pkg/domain/analysis"
	"github.com/euisuk-chung/gemini-hak-creator-hub/pkg/infra/cache"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCacheClient struct {
	mock.Mock
}

func (m *mockCacheClient) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *mockCacheClient) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *mockCacheClient) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

type mockInnerRepo struct {
	mock.Mock
}

func (m *mockInnerRepo) Save(ctx context.Context, stored *analysis.StoredResult) error {
	args := m.Called(ctx, stored)
	return args.Error(0)
}

func (m *mockInnerRepo) Get(ctx context.Context, id string) (*analysis.StoredResult, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*analysis.StoredResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestCachedRepository_GetFallsThroughOnMiss(t *testing.T) {
	inner := new(mockInnerRepo)
	cacheClient := new(mockCacheClient)

	stored := &analysis.StoredResult{ID: "id-1", Result: analysis.Result{VideoID: "vid-1"}}
	cacheClient.On("Get", mock.Anything, "analysis:id-1").Return("", redis.Nil)
	inner.On("Get", mock.Anything, "id-1").Return(stored, nil)
	cacheClient.On("Set", mock.Anything, "analysis:id-1", mock.Anything, mock.Anything).Return(nil)

	repo := cache.NewCachedAnalysisRepository(inner, cacheClient, quietLogger(), time.Hour)

	got, err := repo.Get(context.Background(), "id-1")
	require.NoError(t, err)
	assert.Equal(t, "vid-1", got.Result.VideoID)
	inner.AssertExpectations(t)
	cacheClient.AssertExpectations(t)
}

func TestCachedRepository_GetServesFromCache(t *testing.T) {
	inner := new(mockInnerRepo)
	cacheClient := new(mockCacheClient)

	cacheClient.On("Get", mock.Anything, "analysis:id-1").
		Return(`{"id":"id-1","result":{"videoId":"vid-1"}}`, nil)

	repo := cache.NewCachedAnalysisRepository(inner, cacheClient, quietLogger(), time.Hour)

	got, err := repo.Get(context.Background(), "id-1")
	require.NoError(t, err)
	assert.Equal(t, "vid-1", got.Result.VideoID)
	inner.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestCachedRepository_CorruptEntryDropped(t *testing.T) {
	inner := new(mockInnerRepo)
	cacheClient := new(mockCacheClient)

	stored := &analysis.StoredResult{ID: "id-1"}
	cacheClient.On("Get", mock.Anything, "analysis:id-1").Return("{not json", nil)
	cacheClient.On("Delete", mock.Anything, "analysis:id-1").Return(nil)
	inner.On("Get", mock.Anything, "id-1").Return(stored, nil)
	cacheClient.On("Set", mock.Anything, "analysis:id-1", mock.Anything, mock.Anything).Return(nil)

	repo := cache.NewCachedAnalysisRepository(inner, cacheClient, quietLogger(), time.Hour)

	got, err := repo.Get(context.Background(), "id-1")
	require.NoError(t, err)
	assert.Equal(t, "id-1", got.ID)
	cacheClient.AssertExpectations(t)
}

func TestCachedRepository_NotFoundPropagates(t *testing.T) {
	inner := new(mockInnerRepo)
	cacheClient := new(mockCacheClient)

	cacheClient.On("Get", mock.Anything, "analysis:missing").Return("", redis.Nil)
	inner.On("Get", mock.Anything, "missing").Return(nil, domain.NewNotFoundError("analysis", "missing"))

	repo := cache.NewCachedAnalysisRepository(inner, cacheClient, quietLogger(), time.Hour)

	_, err := repo.Get(context.Background(), "missing")
	assert.True(t, domain.IsNotFoundError(err))
}

func TestCachedRepository_SaveWritesThrough(t *testing.T) {
	inner := new(mockInnerRepo)
	cacheClient := new(mockCacheClient)

	stored := &analysis.StoredResult{ID: "id-1"}
	inner.On("Save", mock.Anything, stored).Return(nil)
	cacheClient.On("Set", mock.Anything, "analysis:id-1", mock.Anything, time.Hour).Return(nil)

	repo := cache.NewCachedAnalysisRepository(inner, cacheClient, quietLogger(), time.Hour)

	require.NoError(t, repo.Save(context.Background(), stored))
	inner.AssertExpectations(t)
	cacheClient.AssertExpectations(t)
}
