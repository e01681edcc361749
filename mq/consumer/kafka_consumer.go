package consumer

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	appConfig "github.com/Xushengqwer/image_display_service/config"
)

// MessageHandler 处理单条 Kafka 消息。返回错误只记录日志，不阻塞后续消息。
type MessageHandler interface {
	Handle(ctx context.Context, msg kafka.Message) error
}

// messageReader 是 kafka.Reader 中本包用到的部分
type messageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

// Consumer 一个主题一个消费者，每个消费者在独立的 goroutine 中运行 Start
type Consumer struct {
	reader  messageReader
	handler MessageHandler
	logger  *zap.Logger
	topic   string
}

// NewConsumer 创建 Kafka Consumer 实例
func NewConsumer(cfg *appConfig.KafkaConfig, groupID string, topicName string, handler MessageHandler, logger *zap.Logger) (*Consumer, error) {
	if topicName == "" {
		return nil, errors.New("kafka topic 名称不能为空")
	}
	if len(cfg.Brokers) == 0 {
		return nil, errors.New("kafka brokers 配置不能为空")
	}

	logger.Info("初始化 Kafka 消费者",
		zap.Strings("brokers", cfg.Brokers),
		zap.String("topic", topicName),
		zap.String("group_id", groupID))

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        cfg.Brokers,
		Topic:          topicName,
		GroupID:        groupID,
		MinBytes:       1,
		MaxBytes:       1e6,
		CommitInterval: time.Second,
		MaxWait:        time.Second,
	})

	return &Consumer{reader: reader, handler: handler, logger: logger, topic: topicName}, nil
}

// Start 读取并处理消息，直到 ctx 取消或 reader 被关闭
func (c *Consumer) Start(ctx context.Context) {
	c.logger.Info("Kafka 消费者已启动", zap.String("topic", c.topic))
	defer c.logger.Info("Kafka 消费者已停止", zap.String("topic", c.topic))

	for {
		if ctx.Err() != nil {
			return
		}

		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) || errors.Is(err, os.ErrClosed) {
				c.logger.Warn("消费者读取循环退出", zap.String("topic", c.topic), zap.Error(err))
				return
			}
			c.logger.Error("读取 Kafka 消息失败", zap.String("topic", c.topic), zap.Error(err))
			select {
			case <-ctx.Done():
				return
			case <-time.After(time.Second):
			}
			continue
		}

		handleCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		handleErr := c.handler.Handle(handleCtx, msg)
		cancel()

		if handleErr != nil {
			c.logger.Error("处理 Kafka 消息时发生错误",
				zap.Error(handleErr),
				zap.String("topic", msg.Topic),
				zap.Int64("offset", msg.Offset))
		}
	}
}

// Close 关闭 Kafka Reader
func (c *Consumer) Close() error {
	if err := c.reader.Close(); err != nil {
		c.logger.Error("关闭 Kafka Reader 失败", zap.Error(err), zap.String("topic", c.topic))
		return err
	}
	c.logger.Info("Kafka 消费者已关闭", zap.String("topic", c.topic))
	return nil
}
