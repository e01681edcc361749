package dependencies

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/Xushengqwer/go-common/core"
	"github.com/tencentyun/cos-go-sdk-v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/Xushengqwer/image_display_service/config"
)

// COSClientInterface 定义了本服务需要的 COS 能力
type COSClientInterface interface {
	GetClient() *cos.Client // 获取原始的 COS 客户端
	// PublicObjectURL 返回对象的公开访问地址
	PublicObjectURL(objectKey string) string
}

type cosClient struct {
	client              *cos.Client
	publicAccessURLBase *url.URL // 拼接对象公开访问 URL 的基础部分
}

// InitCOS 初始化腾讯云 COS 客户端，出站请求通过 otelhttp 记录追踪
func InitCOS(cfg *config.COSConfig, logger *core.ZapLogger) (COSClientInterface, error) {
	if cfg == nil {
		return nil, fmt.Errorf("COS 配置不能为nil")
	}
	if cfg.SecretID == "" || cfg.SecretKey == "" || cfg.BucketName == "" || cfg.AppID == "" || cfg.Region == "" {
		logger.Error("COS 配置不完整", zap.String("bucket", cfg.BucketName), zap.String("region", cfg.Region))
		return nil, fmt.Errorf("COS 配置不完整，缺少关键字段 (SecretID, SecretKey, BucketName, AppID, Region)")
	}

	bucketURLStr := fmt.Sprintf("https://%s-%s.cos.%s.myqcloud.com", cfg.BucketName, cfg.AppID, cfg.Region)
	bucketURL, err := url.Parse(bucketURLStr)
	if err != nil {
		return nil, fmt.Errorf("解析 COS 存储桶 URL '%s' 失败: %w", bucketURLStr, err)
	}

	// 配置了 BaseURL (CDN/自定义域名) 时用它拼接公开地址，否则用存储桶默认域名
	publicBase := bucketURL
	if cfg.BaseURL != "" {
		publicBase, err = url.Parse(cfg.BaseURL)
		if err != nil {
			logger.Error("解析 COS 公共访问 BaseURL 失败", zap.String("baseURL", cfg.BaseURL), zap.Error(err))
			return nil, fmt.Errorf("解析 COS 公共访问 BaseURL '%s' 失败: %w", cfg.BaseURL, err)
		}
	}

	client := cos.NewClient(&cos.BaseURL{BucketURL: bucketURL}, &http.Client{
		Transport: &cos.AuthorizationTransport{
			SecretID:  cfg.SecretID,
			SecretKey: cfg.SecretKey,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	})

	logger.Info("COS 客户端初始化成功",
		zap.String("存储桶名称", cfg.BucketName),
		zap.String("地域", cfg.Region),
		zap.String("公共访问基础URL", publicBase.String()),
	)
	return &cosClient{client: client, publicAccessURLBase: publicBase}, nil
}

func (c *cosClient) GetClient() *cos.Client {
	return c.client
}

// PublicObjectURL 构建对象的完整公共访问URL
func (c *cosClient) PublicObjectURL(objectKey string) string {
	return JoinURLPath(c.publicAccessURLBase, objectKey)
}

// JoinURLPath 在 base 的路径后追加 p，保证中间只有一个 "/"
func JoinURLPath(base *url.URL, p string) string {
	basePath := base.Path
	if !strings.HasSuffix(basePath, "/") {
		basePath += "/"
	}
	u := *base
	u.Path = basePath + strings.TrimPrefix(p, "/")
	return u.String()
}
