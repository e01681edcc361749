package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/image_display_service/constant"
)

func TestStyleRegistry_ReadThrough(t *testing.T) {
	repo := &fakeStyleRepo{styles: testStyles()}
	registry, mr := newTestRegistry(t, repo)
	ctx := context.Background()

	style, err := registry.Load(ctx, "large")
	require.NoError(t, err)
	require.NotNil(t, style)
	assert.Equal(t, []string{"config:image.style.large"}, style.CacheTags())
	assert.True(t, mr.Exists(constant.ImageStyleCacheKeyPrefix+"large"))

	_, err = registry.Load(ctx, "large")
	require.NoError(t, err)
	assert.Equal(t, 1, repo.calls, "second load should be served from redis")
}

func TestStyleRegistry_MissingStyle(t *testing.T) {
	repo := &fakeStyleRepo{styles: testStyles()}
	registry, mr := newTestRegistry(t, repo)
	ctx := context.Background()

	style, err := registry.Load(ctx, "gone")
	require.NoError(t, err)
	assert.True(t, style == nil, "missing style must be an untyped nil")

	got, _ := mr.Get(constant.ImageStyleCacheKeyPrefix + "gone")
	assert.Equal(t, constant.ImageStyleMissingMarker, got)

	style, err = registry.Load(ctx, "gone")
	require.NoError(t, err)
	assert.True(t, style == nil)
	assert.Equal(t, 1, repo.calls)
}

func TestStyleRegistry_EmptyID(t *testing.T) {
	repo := &fakeStyleRepo{styles: testStyles()}
	registry, _ := newTestRegistry(t, repo)

	style, err := registry.Load(context.Background(), "")
	require.NoError(t, err)
	assert.True(t, style == nil)
	assert.Zero(t, repo.calls)
}

func TestStyleRegistry_RepoError(t *testing.T) {
	boom := errors.New("mysql down")
	registry, _ := newTestRegistry(t, &fakeStyleRepo{err: boom})

	_, err := registry.Load(context.Background(), "large")
	assert.ErrorIs(t, err, boom)
}

func TestStyleRegistry_RedisDownFallsBackToRepo(t *testing.T) {
	repo := &fakeStyleRepo{styles: testStyles()}
	registry, mr := newTestRegistry(t, repo)
	mr.Close()

	style, err := registry.GetStyle(context.Background(), "small")
	require.NoError(t, err)
	require.NotNil(t, style)
	assert.Equal(t, "Small (100x100)", style.Label)
}

func TestStyleRegistry_EvictAndWarm(t *testing.T) {
	repo := &fakeStyleRepo{styles: testStyles()}
	registry, mr := newTestRegistry(t, repo)
	ctx := context.Background()

	n, err := registry.Warm(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.True(t, mr.Exists(constant.ImageStyleCacheKeyPrefix+"large"))
	assert.True(t, mr.Exists(constant.ImageStyleCacheKeyPrefix+"small"))

	_, err = registry.GetStyle(ctx, "large")
	require.NoError(t, err)
	assert.Zero(t, repo.calls, "warmed style should not hit mysql")

	require.NoError(t, registry.Evict(ctx, "large"))
	assert.False(t, mr.Exists(constant.ImageStyleCacheKeyPrefix+"large"))

	_, err = registry.GetStyle(ctx, "large")
	require.NoError(t, err)
	assert.Equal(t, 1, repo.calls)
}
