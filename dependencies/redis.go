package dependencies

import (
	"context"
	"fmt"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	appConfig "github.com/Xushengqwer/image_display_service/config"
)

// InitRedis 创建 Redis 客户端并 Ping 一次确认可用
func InitRedis(cfg *appConfig.RedisConfig, logger *core.ZapLogger) (*redis.Client, error) {
	if cfg == nil || cfg.Address == "" {
		return nil, fmt.Errorf("redis 地址 (redisConfig.address) 未配置")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("Redis Ping 失败", zap.String("address", cfg.Address), zap.Error(err))
		_ = client.Close()
		return nil, fmt.Errorf("连接 Redis %s 失败: %w", cfg.Address, err)
	}

	logger.Info("Redis 客户端初始化成功", zap.String("address", cfg.Address), zap.Int("db", cfg.DB))
	return client, nil
}
