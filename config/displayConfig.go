package config

import "github.com/Xushengqwer/go-common/config"

// DisplayConfig 图片展示服务的完整配置，由 core.LoadConfig 从 yaml 加载。
type DisplayConfig struct {
	ZapConfig        config.ZapConfig     `mapstructure:"zapConfig" json:"zapConfig" yaml:"zapConfig"`
	GormLogConfig    config.GormLogConfig `mapstructure:"gormLogConfig" json:"gormLogConfig" yaml:"gormLogConfig"`
	ServerConfig     config.ServerConfig  `mapstructure:"serverConfig" json:"serverConfig" yaml:"serverConfig"`
	TracerConfig     config.TracerConfig  `mapstructure:"tracerConfig" json:"tracerConfig" yaml:"tracerConfig"`
	MySQLConfig      MySQLConfig          `mapstructure:"mysqlConfig" json:"mysqlConfig" yaml:"mysqlConfig"`
	RedisConfig      RedisConfig          `mapstructure:"redisConfig" json:"redisConfig" yaml:"redisConfig"`
	KafkaConfig      KafkaConfig          `mapstructure:"kafkaConfig" json:"kafkaConfig" yaml:"kafkaConfig"`
	COSConfig        COSConfig            `mapstructure:"mediaCosConfig" json:"mediaCosConfig" yaml:"mediaCosConfig"`
	SiteConfig       SiteConfig           `mapstructure:"siteConfig" json:"siteConfig" yaml:"siteConfig"`
	StyleCacheConfig StyleCacheConfig     `mapstructure:"styleCacheConfig" json:"styleCacheConfig" yaml:"styleCacheConfig"`
}
