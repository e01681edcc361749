package config

// RedisConfig Redis 连接配置
type RedisConfig struct {
	Address  string `mapstructure:"address" json:"address" yaml:"address"`    // host:port
	Password string `mapstructure:"password" json:"-" yaml:"password"`        // 打印配置时不输出
	DB       int    `mapstructure:"db" json:"db" yaml:"db"`                   // 库编号
	PoolSize int    `mapstructure:"poolSize" json:"poolSize" yaml:"poolSize"` // 连接池大小，0 使用 go-redis 默认值
}

// StyleCacheConfig 图片样式缓存相关配置
type StyleCacheConfig struct {
	// TTLSeconds 单个样式在 Redis 中的过期时间 (秒)。
	// 样式变更时会通过 Kafka 事件主动失效，TTL 只是兜底。
	TTLSeconds int `mapstructure:"ttlSeconds" json:"ttlSeconds" yaml:"ttlSeconds"`

	// WarmCronSpec 预热任务的 cron 表达式，为空时使用 constant.StyleCacheWarmCronSpec。
	WarmCronSpec string `mapstructure:"warmCronSpec" json:"warmCronSpec" yaml:"warmCronSpec"`
}
