package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"go.uber.org/zap"

	"github.com/Xushengqwer/image_display_service/formatter"
	"github.com/Xushengqwer/image_display_service/models/vo"
	"github.com/Xushengqwer/image_display_service/myErrors"
	"github.com/Xushengqwer/image_display_service/repo/mysql"
	"github.com/Xushengqwer/image_display_service/repo/redis"
)

// StyleRegistry 图片样式注册表，Redis 读穿透缓存在 MySQL 之前。
type StyleRegistry interface {
	formatter.StyleRegistry

	// GetStyle 获取单个样式，样式不存在时返回 (nil, nil)。
	GetStyle(ctx context.Context, styleID string) (*vo.ImageStyleVO, error)

	// ListStyles 列出全部样式，直接读 MySQL。
	ListStyles(ctx context.Context) ([]vo.ImageStyleVO, error)

	// Evict 删除样式缓存，下次读取时回源。
	Evict(ctx context.Context, styleIDs ...string) error

	// Warm 把全部样式重新写入缓存，返回写入数量。
	Warm(ctx context.Context) (int, error)
}

type styleRegistry struct {
	styleRepo mysql.ImageStyleRepository
	cache     redis.StyleCache
	ttl       time.Duration
	logger    *zap.Logger
}

// NewStyleRegistry 创建样式注册表，ttl <= 0 时由缓存层使用默认值
func NewStyleRegistry(styleRepo mysql.ImageStyleRepository, cache redis.StyleCache, ttl time.Duration, logger *zap.Logger) StyleRegistry {
	return &styleRegistry{styleRepo: styleRepo, cache: cache, ttl: ttl, logger: logger}
}

// Load 实现 formatter.StyleRegistry
func (r *styleRegistry) Load(ctx context.Context, styleID string) (formatter.Style, error) {
	style, err := r.GetStyle(ctx, styleID)
	if err != nil {
		return nil, err
	}
	// 必须返回无类型的 nil，否则调用方拿到的是非 nil 接口
	if style == nil {
		return nil, nil
	}
	return style.ToEntity(), nil
}

func (r *styleRegistry) GetStyle(ctx context.Context, styleID string) (*vo.ImageStyleVO, error) {
	if styleID == "" {
		return nil, nil
	}

	// 1. 读缓存
	cached, err := r.cache.GetStyle(ctx, styleID)
	switch {
	case err == nil:
		return cached, nil
	case errors.Is(err, myErrors.ErrCacheMiss):
		r.logger.Debug("样式缓存未命中，回源 MySQL", zap.String("styleID", styleID))
	default:
		// Redis 故障不影响渲染，直接回源
		r.logger.Warn("读取样式缓存出错，回源 MySQL", zap.String("styleID", styleID), zap.Error(err))
	}

	// 2. 回源
	entity, err := r.styleRepo.GetByStyleID(ctx, styleID)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			if cacheErr := r.cache.SetMissing(ctx, styleID); cacheErr != nil {
				r.logger.Warn("写入样式占位缓存失败", zap.String("styleID", styleID), zap.Error(cacheErr))
			}
			return nil, nil
		}
		return nil, fmt.Errorf("查询图片样式 %s 失败: %w", styleID, err)
	}

	// 3. 回填缓存
	style := vo.NewImageStyleVOFromEntity(entity)
	if cacheErr := r.cache.SetStyle(ctx, style, r.ttl); cacheErr != nil {
		r.logger.Warn("回填样式缓存失败", zap.String("styleID", styleID), zap.Error(cacheErr))
	}
	return &style, nil
}

func (r *styleRegistry) ListStyles(ctx context.Context) ([]vo.ImageStyleVO, error) {
	list, err := r.styleRepo.ListStyles(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询图片样式列表失败: %w", err)
	}
	return vo.NewImageStyleVOsFromEntities(list), nil
}

func (r *styleRegistry) Evict(ctx context.Context, styleIDs ...string) error {
	if err := r.cache.DeleteStyles(ctx, styleIDs...); err != nil {
		return fmt.Errorf("失效样式缓存失败: %w", err)
	}
	r.logger.Info("已失效样式缓存", zap.Strings("styleIDs", styleIDs))
	return nil
}

func (r *styleRegistry) Warm(ctx context.Context) (int, error) {
	styles, err := r.ListStyles(ctx)
	if err != nil {
		return 0, err
	}
	if err := r.cache.SetStyles(ctx, styles, r.ttl); err != nil {
		return 0, fmt.Errorf("预热样式缓存失败: %w", err)
	}
	return len(styles), nil
}
