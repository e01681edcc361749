package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Xushengqwer/image_display_service/models/events"
)

// StyleEvictor 失效样式缓存，service.StyleRegistry 满足该接口
type StyleEvictor interface {
	Evict(ctx context.Context, styleIDs ...string) error
}

// ImageStyleChangedHandler 样式被修改或删除后失效对应的 Redis 缓存
type ImageStyleChangedHandler struct {
	styles StyleEvictor
	logger *zap.Logger
}

func NewImageStyleChangedHandler(styles StyleEvictor, logger *zap.Logger) *ImageStyleChangedHandler {
	return &ImageStyleChangedHandler{styles: styles, logger: logger}
}

func (h *ImageStyleChangedHandler) Handle(ctx context.Context, msg kafka.Message) error {
	var event events.ImageStyleChangedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		h.logger.Error("反序列化样式变更消息失败", zap.Error(err), zap.ByteString("value", msg.Value))
		return nil // 无法解析的消息重试也没有意义
	}
	if event.StyleID == "" {
		h.logger.Warn("样式变更消息缺少 style_id，已忽略", zap.String("event_id", event.EventID))
		return nil
	}

	// 更新和删除都只需要失效缓存：删除后回源会写入不存在占位
	if err := h.styles.Evict(ctx, event.StyleID); err != nil {
		return fmt.Errorf("处理样式变更事件 %s 失败: %w", event.EventID, err)
	}
	h.logger.Info("已处理样式变更事件",
		zap.String("event_id", event.EventID),
		zap.String("style_id", event.StyleID),
		zap.String("action", event.Action))
	return nil
}
