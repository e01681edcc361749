package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	sharedCore "github.com/Xushengqwer/go-common/core"
	sharedTracing "github.com/Xushengqwer/go-common/core/tracing"
	"go.uber.org/zap"

	appConfig "github.com/Xushengqwer/image_display_service/config"
	"github.com/Xushengqwer/image_display_service/constant"
	"github.com/Xushengqwer/image_display_service/controller"
	"github.com/Xushengqwer/image_display_service/dependencies"
	_ "github.com/Xushengqwer/image_display_service/docs"
	"github.com/Xushengqwer/image_display_service/mq/consumer"
	"github.com/Xushengqwer/image_display_service/mq/producer"
	"github.com/Xushengqwer/image_display_service/repo/mysql"
	redisrepo "github.com/Xushengqwer/image_display_service/repo/redis"
	"github.com/Xushengqwer/image_display_service/router"
	"github.com/Xushengqwer/image_display_service/service"
	"github.com/Xushengqwer/image_display_service/tasks"
)

// @title           Image Display Service API
// @version         1.0
// @description     图片展示服务：把内容的图片字段按展示设置投影为渲染描述，并管理展示设置。

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8085
// @schemes http https
func main() {
	var configFile string
	flag.StringVar(&configFile, "config", "config/config.development.yaml", "Path to configuration file")
	flag.Parse()

	// 1. 加载配置
	var cfg appConfig.DisplayConfig
	if err := sharedCore.LoadConfig(configFile, &cfg); err != nil {
		log.Fatalf("FATAL: 加载配置失败 (%s): %v", configFile, err)
	}

	// 2. 初始化 Logger
	logger, loggerErr := sharedCore.NewZapLogger(cfg.ZapConfig)
	if loggerErr != nil {
		log.Fatalf("FATAL: 初始化 ZapLogger 失败: %v", loggerErr)
	}
	defer func() {
		if err := logger.Logger().Sync(); err != nil {
			log.Printf("WARN: ZapLogger Sync 失败: %v\n", err)
		}
	}()
	baseLogger := logger.Logger()

	// 3. 分布式追踪
	if cfg.TracerConfig.Enabled {
		tracerShutdown, err := sharedTracing.InitTracerProvider(constant.ServiceName, constant.ServiceVersion, cfg.TracerConfig)
		if err != nil {
			logger.Fatal("初始化 TracerProvider 失败", zap.Error(err))
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracerShutdown(ctx); err != nil {
				logger.Error("关闭 TracerProvider 失败", zap.Error(err))
			}
		}()
		logger.Info("分布式追踪已初始化")
	} else {
		logger.Info("分布式追踪已禁用")
	}

	// 4. 核心依赖
	db, err := dependencies.InitMySQL(&cfg, logger)
	if err != nil {
		logger.Fatal("初始化 MySQL 数据库失败", zap.Error(err))
	}
	rdb, err := dependencies.InitRedis(&cfg.RedisConfig, logger)
	if err != nil {
		logger.Fatal("初始化 Redis 失败", zap.Error(err))
	}

	// COS 可选，未配置时 cos:// 地址无法解析
	var objects service.ObjectURLBuilder
	if cfg.COSConfig.BucketName != "" {
		cosClient, err := dependencies.InitCOS(&cfg.COSConfig, logger)
		if err != nil {
			logger.Fatal("初始化 COS 客户端失败", zap.Error(err))
		}
		objects = cosClient
	} else {
		logger.Warn("未配置 COS，cos:// 文件链接将不可用")
	}

	// Kafka 可选，未配置时不发送设置更新事件
	var kafkaProducer *producer.KafkaProducer
	var publisher service.SettingsPublisher
	if len(cfg.KafkaConfig.Brokers) > 0 {
		kafkaProducer = producer.NewKafkaProducer(cfg.KafkaConfig, baseLogger)
		publisher = kafkaProducer
	} else {
		logger.Warn("未配置 Kafka brokers，不会发送展示设置更新事件")
	}

	// 5. 仓库层
	contentRepo := mysql.NewContentRepository(db)
	itemRepo := mysql.NewMediaItemRepository(db)
	styleRepo := mysql.NewImageStyleRepository(db)
	settingRepo := mysql.NewDisplaySettingRepository(db)
	styleCache := redisrepo.NewStyleCache(rdb, baseLogger)

	// 6. 服务层
	styleTTL := time.Duration(cfg.StyleCacheConfig.TTLSeconds) * time.Second
	styleRegistry := service.NewStyleRegistry(styleRepo, styleCache, styleTTL, baseLogger)
	fileURLs, err := service.NewFileURLGenerator(objects, cfg.SiteConfig)
	if err != nil {
		logger.Fatal("初始化文件地址生成器失败", zap.Error(err))
	}
	displayService := service.NewDisplayService(
		contentRepo, itemRepo, settingRepo,
		styleRegistry, fileURLs, publisher,
		cfg.SiteConfig, db, baseLogger,
	)

	// 7. 控制器
	displayController := controller.NewDisplayController(displayService)
	settingsController := controller.NewSettingsController(displayService)

	// 8. Kafka 消费者：样式变更后失效缓存
	var consumers []*consumer.Consumer
	var consumerWg sync.WaitGroup
	consumerCtx, consumerCancel := context.WithCancel(context.Background())
	defer consumerCancel()

	if topic := cfg.KafkaConfig.Topics.ImageStyleChanged; len(cfg.KafkaConfig.Brokers) > 0 && topic != "" {
		groupID := cfg.KafkaConfig.ConsumerGroupID
		if groupID == "" {
			groupID = constant.DefaultConsumerGroupID
		}
		styleConsumer, err := consumer.NewConsumer(&cfg.KafkaConfig, groupID, topic,
			consumer.NewImageStyleChangedHandler(styleRegistry, baseLogger), baseLogger)
		if err != nil {
			logger.Fatal("初始化样式变更消费者失败", zap.Error(err))
		}
		consumers = append(consumers, styleConsumer)
	} else {
		logger.Warn("未配置 Kafka brokers 或 imageStyleChanged 主题，跳过消费者初始化")
	}
	for _, c := range consumers {
		consumerWg.Add(1)
		go func(cons *consumer.Consumer) {
			defer consumerWg.Done()
			cons.Start(consumerCtx)
		}(c)
	}

	// 9. 定时任务：启动时先预热一次
	warmTask, err := tasks.NewStyleCacheWarmTask(styleRegistry, cfg.StyleCacheConfig.WarmCronSpec, baseLogger)
	if err != nil {
		logger.Fatal("初始化样式缓存预热任务失败", zap.Error(err))
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		warmTask.RunOnce(ctx)
	}()

	// 10. HTTP 服务器
	ginRouter := router.SetupRouter(logger, &cfg, displayController, settingsController)
	serverAddr := fmt.Sprintf(":%s", cfg.ServerConfig.Port)
	httpServer := &http.Server{Addr: serverAddr, Handler: ginRouter}

	go func() {
		logger.Info("HTTP 服务器开始监听", zap.String("address", serverAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP 服务器启动失败", zap.Error(err))
		}
	}()

	// 11. 优雅关停
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	receivedSignal := <-quit
	logger.Info("收到关停信号，开始优雅退出...", zap.String("signal", receivedSignal.String()))

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	// a. HTTP
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("关闭 HTTP 服务器失败", zap.Error(err))
	}

	// b. 消费者
	consumerCancel()
	consumerWg.Wait()
	for _, c := range consumers {
		if err := c.Close(); err != nil {
			logger.Error("关闭 Kafka 消费者时出错", zap.Error(err))
		}
	}

	// c. 定时任务
	select {
	case <-warmTask.Stop().Done():
		logger.Info("样式缓存预热任务已停止")
	case <-shutdownCtx.Done():
		logger.Error("等待定时任务停止超时", zap.Error(shutdownCtx.Err()))
	}

	// d. 生产者和 Redis
	if kafkaProducer != nil {
		if err := kafkaProducer.Close(); err != nil {
			logger.Error("关闭 Kafka 生产者失败", zap.Error(err))
		}
	}
	if err := rdb.Close(); err != nil {
		logger.Error("关闭 Redis 客户端失败", zap.Error(err))
	}

	logger.Info("服务已成功关闭")
}
