package config

// SiteConfig 站点配置，决定内容链接和 public:// 文件链接的域名
type SiteConfig struct {
	// BaseURL 站点根地址，例如 https://www.example.com
	BaseURL string `mapstructure:"baseURL" json:"baseURL" yaml:"baseURL"`
	// ContentPathPrefix 内容详情页路径前缀，完整路径为 前缀 + slug (无 slug 时用 ID)
	ContentPathPrefix string `mapstructure:"contentPathPrefix" json:"contentPathPrefix" yaml:"contentPathPrefix"`
	// PublicFilesPath public:// 文件在站点下的路径前缀
	PublicFilesPath string `mapstructure:"publicFilesPath" json:"publicFilesPath" yaml:"publicFilesPath"`
}
