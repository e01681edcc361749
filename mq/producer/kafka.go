package producer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Xushengqwer/image_display_service/config"
	"github.com/Xushengqwer/image_display_service/formatter"
	"github.com/Xushengqwer/image_display_service/models/events"
)

// messageWriter 是 kafka.Writer 中本包用到的部分
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaProducer Kafka 消息生产者
type KafkaProducer struct {
	writer messageWriter
	logger *zap.Logger
	topics config.Topics
}

// NewKafkaProducer 创建一个新的 Kafka 生产者实例
func NewKafkaProducer(cfg config.KafkaConfig, logger *zap.Logger) *KafkaProducer {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}
	return &KafkaProducer{writer: writer, logger: logger, topics: cfg.Topics}
}

// SendEvent 序列化事件并发送到指定主题，key 决定分区
func (p *KafkaProducer) SendEvent(ctx context.Context, topic, key string, event interface{}) error {
	eventBytes, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("序列化 Kafka 事件失败", zap.Error(err), zap.String("topic", topic))
		return err
	}

	p.logger.Debug("发送 Kafka 消息", zap.String("topic", topic), zap.ByteString("payload", eventBytes))
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: eventBytes,
	})
	if err != nil {
		p.logger.Error("写入 Kafka 消息失败", zap.Error(err), zap.String("topic", topic))
		return err
	}
	p.logger.Info("成功发送 Kafka 消息", zap.String("topic", topic), zap.String("key", key))
	return nil
}

// SendDisplaySettingsUpdatedEvent 发送展示设置更新事件
//   - 同一套设置 (bundle/field/view_mode) 的事件落在同一分区，保证顺序
func (p *KafkaProducer) SendDisplaySettingsUpdatedEvent(ctx context.Context, bundle, fieldName, viewMode string, s formatter.Settings) error {
	event := events.DisplaySettingsUpdatedEvent{
		EventID:        uuid.New().String(),
		Timestamp:      time.Now(),
		Bundle:         bundle,
		FieldName:      fieldName,
		ViewMode:       viewMode,
		ImageStyle:     s.ImageStyle,
		ThumbStyle:     s.ThumbStyle,
		ImagesTemplate: s.Template,
		ImageLink:      string(s.Link),
		ImageClass:     s.ImageClass,
		LinkClass:      s.LinkClass,
	}
	key := bundle + "." + fieldName + "." + viewMode
	return p.SendEvent(ctx, p.topics.DisplaySettingsUpdated, key, event)
}

// Close 关闭底层 writer
func (p *KafkaProducer) Close() error {
	return p.writer.Close()
}
