package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Xushengqwer/image_display_service/constant"
	"github.com/Xushengqwer/image_display_service/models/vo"
	"github.com/Xushengqwer/image_display_service/myErrors"
)

// StyleCache 定义了图片样式的缓存操作接口。
// - Key: constant.ImageStyleCacheKeyPrefix + style_id
// - Value: JSON 序列化的 vo.ImageStyleVO，或 constant.ImageStyleMissingMarker (样式不存在)
type StyleCache interface {
	// GetStyle 读取样式缓存。
	// - 未命中返回 myErrors.ErrCacheMiss。
	// - 命中占位值时返回 (nil, nil)，表示已确认样式不存在。
	GetStyle(ctx context.Context, styleID string) (*vo.ImageStyleVO, error)

	// SetStyle 写入样式缓存，ttl <= 0 时使用 constant.DefaultImageStyleCacheTTL。
	SetStyle(ctx context.Context, style vo.ImageStyleVO, ttl time.Duration) error

	// SetStyles 用 pipeline 批量写入，用于预热。
	SetStyles(ctx context.Context, styles []vo.ImageStyleVO, ttl time.Duration) error

	// SetMissing 写入"样式不存在"的占位值，过期时间为 constant.ImageStyleMissingTTL。
	SetMissing(ctx context.Context, styleID string) error

	// DeleteStyles 删除若干样式的缓存，key 不存在不算错误。
	DeleteStyles(ctx context.Context, styleIDs ...string) error
}

type styleCache struct {
	redisClient *redis.Client
	logger      *zap.Logger
}

// NewStyleCache 是 styleCache 的构造函数
func NewStyleCache(redisClient *redis.Client, logger *zap.Logger) StyleCache {
	return &styleCache{redisClient: redisClient, logger: logger}
}

func styleKey(styleID string) string {
	return constant.ImageStyleCacheKeyPrefix + styleID
}

func (c *styleCache) GetStyle(ctx context.Context, styleID string) (*vo.ImageStyleVO, error) {
	key := styleKey(styleID)
	raw, err := c.redisClient.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, myErrors.ErrCacheMiss
		}
		c.logger.Error("从 Redis 读取样式缓存失败", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("读取样式缓存 (key: %s) 失败: %w", key, err)
	}

	if raw == constant.ImageStyleMissingMarker {
		return nil, nil
	}

	var style vo.ImageStyleVO
	if err := json.Unmarshal([]byte(raw), &style); err != nil {
		// 缓存内容损坏时当作未命中处理，由上层回源后覆盖
		c.logger.Warn("样式缓存反序列化失败，按未命中处理", zap.String("key", key), zap.Error(err))
		return nil, myErrors.ErrCacheMiss
	}
	return &style, nil
}

func (c *styleCache) SetStyle(ctx context.Context, style vo.ImageStyleVO, ttl time.Duration) error {
	return c.SetStyles(ctx, []vo.ImageStyleVO{style}, ttl)
}

func (c *styleCache) SetStyles(ctx context.Context, styles []vo.ImageStyleVO, ttl time.Duration) error {
	if len(styles) == 0 {
		return nil
	}
	if ttl <= 0 {
		ttl = constant.DefaultImageStyleCacheTTL
	}

	pipe := c.redisClient.Pipeline()
	for _, style := range styles {
		data, err := json.Marshal(style)
		if err != nil {
			return fmt.Errorf("序列化样式 %s 失败: %w", style.StyleID, err)
		}
		pipe.Set(ctx, styleKey(style.StyleID), data, ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		c.logger.Error("批量写入样式缓存失败", zap.Int("count", len(styles)), zap.Error(err))
		return fmt.Errorf("写入样式缓存失败: %w", err)
	}
	return nil
}

func (c *styleCache) SetMissing(ctx context.Context, styleID string) error {
	key := styleKey(styleID)
	if err := c.redisClient.Set(ctx, key, constant.ImageStyleMissingMarker, constant.ImageStyleMissingTTL).Err(); err != nil {
		c.logger.Error("写入样式占位缓存失败", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("写入样式占位缓存 (key: %s) 失败: %w", key, err)
	}
	return nil
}

func (c *styleCache) DeleteStyles(ctx context.Context, styleIDs ...string) error {
	if len(styleIDs) == 0 {
		return nil
	}
	keys := make([]string, 0, len(styleIDs))
	for _, id := range styleIDs {
		keys = append(keys, styleKey(id))
	}
	if err := c.redisClient.Del(ctx, keys...).Err(); err != nil {
		c.logger.Error("删除样式缓存失败", zap.Strings("keys", keys), zap.Error(err))
		return fmt.Errorf("删除样式缓存失败: %w", err)
	}
	c.logger.Debug("已删除样式缓存", zap.Strings("keys", keys))
	return nil
}
