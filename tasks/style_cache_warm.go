package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Xushengqwer/image_display_service/constant"
)

// StyleWarmer 预热样式缓存，service.StyleRegistry 满足该接口
type StyleWarmer interface {
	Warm(ctx context.Context) (int, error)
}

// StyleCacheWarmTask 定时把全部图片样式写入 Redis。
// 样式变更由 Kafka 事件主动失效，这个任务负责在失效或过期后尽快补齐缓存。
type StyleCacheWarmTask struct {
	warmer StyleWarmer
	cron   *cron.Cron
	logger *zap.Logger
}

// NewStyleCacheWarmTask 注册并启动预热任务，schedule 为空时使用 constant.StyleCacheWarmCronSpec
func NewStyleCacheWarmTask(warmer StyleWarmer, schedule string, logger *zap.Logger) (*StyleCacheWarmTask, error) {
	if schedule == "" {
		schedule = constant.StyleCacheWarmCronSpec
	}
	task := &StyleCacheWarmTask{warmer: warmer, cron: cron.New(), logger: logger}

	entryID, err := task.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		task.RunOnce(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("添加样式缓存预热 cron 作业失败 (schedule: %s): %w", schedule, err)
	}

	task.cron.Start()
	logger.Info("样式缓存预热定时任务已启动", zap.String("schedule", schedule), zap.Int("cronEntryID", int(entryID)))
	return task, nil
}

// RunOnce 执行一次预热，失败只记录日志
func (t *StyleCacheWarmTask) RunOnce(ctx context.Context) {
	start := time.Now()
	n, err := t.warmer.Warm(ctx)
	if err != nil {
		t.logger.Error("样式缓存预热失败", zap.Error(err))
		return
	}
	t.logger.Info("样式缓存预热完成", zap.Int("count", n), zap.Duration("duration", time.Since(start)))
}

// Stop 停止调度，返回的 context 在正在执行的任务结束后 Done
func (t *StyleCacheWarmTask) Stop() context.Context {
	t.logger.Info("正在停止样式缓存预热定时任务...")
	return t.cron.Stop()
}
