package dependencies

import (
	"fmt"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"

	appConfig "github.com/Xushengqwer/image_display_service/config"
	"github.com/Xushengqwer/image_display_service/models/entities"
)

const (
	mysqlConnectRetries       = 5
	mysqlConnectRetryInterval = 2 * time.Second
)

// InitMySQL 初始化 MySQL 连接：连接主库 (带重试)、按需启用读写分离、配置连接池、自动迁移。
func InitMySQL(cfg *appConfig.DisplayConfig, logger *core.ZapLogger) (*gorm.DB, error) {
	mysqlCfg := cfg.MySQLConfig
	if mysqlCfg.Write.DSN == "" {
		return nil, fmt.Errorf("主数据库 DSN (mysqlConfig.write.dsn) 未配置")
	}
	gormConfig := &gorm.Config{
		Logger: core.NewGormLogger(logger, cfg.GormLogConfig),
	}

	// 1. 连接主库
	db, err := openWithRetry(mysqlCfg.Write.DSN, gormConfig, logger)
	if err != nil {
		return nil, err
	}

	// 2. 读写分离 (只有配置了有效从库时才启用)
	if err := registerReplicas(db, mysqlCfg, logger); err != nil {
		return nil, err
	}

	// 3. 连接池
	if err := configurePool(db, mysqlCfg, logger); err != nil {
		return nil, err
	}

	// 4. 自动迁移，默认发送到主库
	logger.Info("开始执行数据库自动迁移...")
	if err := db.AutoMigrate(
		&entities.Content{},
		&entities.MediaItem{},
		&entities.ImageStyle{},
		&entities.DisplaySetting{},
	); err != nil {
		logger.Error("数据库自动迁移失败", zap.Error(err))
		return nil, fmt.Errorf("数据库自动迁移失败: %w", err)
	}

	logger.Info("成功初始化 MySQL 连接 (包括读写分离和自动迁移)")
	return db, nil
}

// openWithRetry 打开主库连接并 Ping，失败时按固定间隔重试。
func openWithRetry(dsn string, gormConfig *gorm.Config, logger *core.ZapLogger) (*gorm.DB, error) {
	var lastErr error
	for attempt := 1; attempt <= mysqlConnectRetries; attempt++ {
		db, err := gorm.Open(mysql.Open(dsn), gormConfig)
		if err == nil {
			sqlDB, dbErr := db.DB()
			if dbErr == nil {
				if err = sqlDB.Ping(); err == nil {
					logger.Info("成功连接到主数据库", zap.Int("attempt", attempt))
					return db, nil
				}
			} else {
				err = dbErr
			}
		}
		lastErr = err
		logger.Warn("无法连接到主数据库，准备重试",
			zap.Int("attempt", attempt),
			zap.Int("maxRetries", mysqlConnectRetries),
			zap.Error(err))
		if attempt < mysqlConnectRetries {
			time.Sleep(mysqlConnectRetryInterval)
		}
	}
	logger.Error("无法连接到主数据库", zap.Error(lastErr))
	return nil, fmt.Errorf("无法连接到主数据库: %w", lastErr)
}

// registerReplicas 注册 dbresolver 插件，读请求轮询分配到从库。
func registerReplicas(db *gorm.DB, mysqlCfg appConfig.MySQLConfig, logger *core.ZapLogger) error {
	replicas := make([]gorm.Dialector, 0, len(mysqlCfg.Read))
	for i, replica := range mysqlCfg.Read {
		if replica.DSN == "" {
			logger.Warn("发现空的从库 DSN 配置，已跳过", zap.Int("index", i))
			continue
		}
		replicas = append(replicas, mysql.Open(replica.DSN))
	}
	if len(replicas) == 0 {
		logger.Info("未配置有效的从数据库，不启用读写分离")
		return nil
	}

	err := db.Use(dbresolver.Register(dbresolver.Config{
		Sources:  []gorm.Dialector{mysql.Open(mysqlCfg.Write.DSN)},
		Replicas: replicas,
		Policy:   dbresolver.StrictRoundRobinPolicy(),
	}))
	if err != nil {
		logger.Error("配置 GORM 读写分离插件失败", zap.Error(err))
		return fmt.Errorf("配置 GORM 读写分离失败: %w", err)
	}
	logger.Info("成功配置 GORM 读写分离插件", zap.Int("从库数量", len(replicas)))
	return nil
}

// configurePool 以共享设置为基础，主库的独立设置优先。
func configurePool(db *gorm.DB, mysqlCfg appConfig.MySQLConfig, logger *core.ZapLogger) error {
	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("无法获取数据库对象以配置连接池", zap.Error(err))
		return fmt.Errorf("无法获取数据库对象: %w", err)
	}

	maxIdle := mysqlCfg.SharedMaxIdleConns
	maxOpen := mysqlCfg.SharedMaxOpenConns
	maxLife := mysqlCfg.SharedConnMaxLifetime
	if v := mysqlCfg.Write.MaxIdleConns; v != nil {
		maxIdle = *v
	}
	if v := mysqlCfg.Write.MaxOpenConns; v != nil {
		maxOpen = *v
	}
	if v := mysqlCfg.Write.ConnMaxLifetime; v != nil {
		maxLife = *v
	}

	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetConnMaxLifetime(time.Duration(maxLife) * time.Second)
	logger.Info("配置数据库连接池",
		zap.Int("最大空闲连接数", maxIdle),
		zap.Int("最大打开连接数", maxOpen),
		zap.Int("连接最大生命周期(秒)", maxLife),
	)

	if err := sqlDB.Ping(); err != nil {
		logger.Error("配置连接池后 Ping 数据库失败", zap.Error(err))
		return fmt.Errorf("配置连接池后 Ping 失败: %w", err)
	}
	return nil
}
