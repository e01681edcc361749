package config

// COSConfig 腾讯云 COS 配置，用于把 cos:// 存储 URI 转换为公开访问地址
type COSConfig struct {
	SecretID   string `mapstructure:"secret_id" json:"-" yaml:"secret_id"`
	SecretKey  string `mapstructure:"secret_key" json:"-" yaml:"secret_key"`
	BucketName string `mapstructure:"bucket_name" json:"bucket_name" yaml:"bucket_name"`
	AppID      string `mapstructure:"app_id" json:"app_id" yaml:"app_id"`
	Region     string `mapstructure:"region" json:"region" yaml:"region"`
	// BaseURL 可选，CDN 或自定义域名；为空时使用存储桶默认域名
	BaseURL string `mapstructure:"base_url" json:"base_url" yaml:"base_url"`
}
