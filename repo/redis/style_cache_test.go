package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Xushengqwer/image_display_service/constant"
	"github.com/Xushengqwer/image_display_service/models/vo"
	"github.com/Xushengqwer/image_display_service/myErrors"
)

func newTestStyleCache(t *testing.T) (StyleCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewStyleCache(client, zap.NewNop()), mr
}

func TestStyleCache_MissThenHit(t *testing.T) {
	cache, mr := newTestStyleCache(t)
	ctx := context.Background()

	_, err := cache.GetStyle(ctx, "thumb")
	assert.ErrorIs(t, err, myErrors.ErrCacheMiss)

	style := vo.ImageStyleVO{StyleID: "thumb", Label: "Thumbnail", Width: 100, Height: 100, CacheTags: []string{"config:image.style.thumb"}}
	require.NoError(t, cache.SetStyle(ctx, style, 5*time.Minute))

	got, err := cache.GetStyle(ctx, "thumb")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, style, *got)
	assert.Equal(t, 5*time.Minute, mr.TTL(constant.ImageStyleCacheKeyPrefix+"thumb"))
}

func TestStyleCache_DefaultTTL(t *testing.T) {
	cache, mr := newTestStyleCache(t)
	require.NoError(t, cache.SetStyles(context.Background(), []vo.ImageStyleVO{{StyleID: "a"}, {StyleID: "b"}}, 0))

	assert.Equal(t, constant.DefaultImageStyleCacheTTL, mr.TTL(constant.ImageStyleCacheKeyPrefix+"a"))
	assert.True(t, mr.Exists(constant.ImageStyleCacheKeyPrefix+"b"))
}

func TestStyleCache_MissingMarker(t *testing.T) {
	cache, mr := newTestStyleCache(t)
	ctx := context.Background()

	require.NoError(t, cache.SetMissing(ctx, "gone"))

	got, err := cache.GetStyle(ctx, "gone")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Equal(t, constant.ImageStyleMissingTTL, mr.TTL(constant.ImageStyleCacheKeyPrefix+"gone"))
}

func TestStyleCache_CorruptValueIsMiss(t *testing.T) {
	cache, mr := newTestStyleCache(t)
	require.NoError(t, mr.Set(constant.ImageStyleCacheKeyPrefix+"bad", "{not json"))

	_, err := cache.GetStyle(context.Background(), "bad")
	assert.ErrorIs(t, err, myErrors.ErrCacheMiss)
}

func TestStyleCache_DeleteStyles(t *testing.T) {
	cache, mr := newTestStyleCache(t)
	ctx := context.Background()

	require.NoError(t, cache.SetStyle(ctx, vo.ImageStyleVO{StyleID: "a"}, time.Minute))
	require.NoError(t, cache.SetMissing(ctx, "b"))

	require.NoError(t, cache.DeleteStyles(ctx, "a", "b", "never_cached"))
	assert.False(t, mr.Exists(constant.ImageStyleCacheKeyPrefix+"a"))
	assert.False(t, mr.Exists(constant.ImageStyleCacheKeyPrefix+"b"))

	require.NoError(t, cache.DeleteStyles(ctx))
}
