package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	appConfig "github.com/Xushengqwer/image_display_service/config"
	"github.com/Xushengqwer/image_display_service/dependencies"
	"github.com/Xushengqwer/image_display_service/repo/mysql"
)

func main() {
	var configFile string
	var numContents int
	flag.StringVar(&configFile, "config", "config/config.development.yaml", "配置文件路径")
	flag.IntVar(&numContents, "n", 20, "要生成的内容数量 (默认: 20)")
	flag.Parse()

	if numContents < 0 {
		fmt.Println("错误: 生成的内容数量不能为负")
		os.Exit(1)
	}

	// 1. 配置
	var cfg appConfig.DisplayConfig
	if err := core.LoadConfig(configFile, &cfg); err != nil {
		fmt.Printf("加载配置失败 (%s): %v\n", configFile, err)
		os.Exit(1)
	}

	// 2. 日志
	logger, err := core.NewZapLogger(cfg.ZapConfig)
	if err != nil {
		fmt.Printf("初始化 ZapLogger 失败: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Logger().Sync() }()

	// 3. MySQL (会执行自动迁移)
	db, err := dependencies.InitMySQL(&cfg, logger)
	if err != nil {
		logger.Fatal("初始化 MySQL 失败 (Seeder)", zap.Error(err))
	}

	s := &seeder{
		db:          db,
		styleRepo:   mysql.NewImageStyleRepository(db),
		contentRepo: mysql.NewContentRepository(db),
		itemRepo:    mysql.NewMediaItemRepository(db),
		settingRepo: mysql.NewDisplaySettingRepository(db),
		logger:      logger,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	if err := s.SeedStyles(ctx); err != nil {
		logger.Fatal("写入样式失败", zap.Error(err))
	}
	s.SeedContents(ctx, numContents)

	// 样式缓存由服务的预热任务负责，这里只提示
	logger.Info("数据填充完成，启动服务后样式缓存会在下一次预热时写入 Redis")
}
