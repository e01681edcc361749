package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/Xushengqwer/image_display_service/config"
	"github.com/Xushengqwer/image_display_service/dependencies"
	"github.com/Xushengqwer/image_display_service/formatter"
	"github.com/Xushengqwer/image_display_service/myErrors"
)

// 支持的存储 URI 协议
const (
	SchemeCOS    = "cos"
	SchemePublic = "public"
)

// ObjectURLBuilder 根据对象 Key 生成公开地址，dependencies.COSClientInterface 满足该接口
type ObjectURLBuilder interface {
	PublicObjectURL(objectKey string) string
}

type fileURLGenerator struct {
	objects    ObjectURLBuilder // 可为 nil，此时 cos:// 不可用
	publicBase *url.URL
}

// NewFileURLGenerator 创建文件 URL 生成器
//   - cos://<key>    -> COS 公共地址 (BaseURL 或存储桶域名)
//   - public://<path> -> site.baseURL + site.publicFilesPath + path
//   - http(s)://...  -> 原样返回
func NewFileURLGenerator(objects ObjectURLBuilder, site config.SiteConfig) (formatter.FileURLGenerator, error) {
	base, err := url.Parse(site.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("解析站点地址 '%s' 失败: %w", site.BaseURL, err)
	}
	publicPath := site.PublicFilesPath
	if publicPath == "" {
		publicPath = "/files"
	}
	publicBase := *base
	publicBase.Path = strings.TrimSuffix(base.Path, "/") + "/" + strings.Trim(publicPath, "/")
	return &fileURLGenerator{objects: objects, publicBase: &publicBase}, nil
}

func (g *fileURLGenerator) ToAbsoluteURL(_ context.Context, uri string) (string, error) {
	scheme, target, ok := strings.Cut(uri, "://")
	if !ok {
		return "", fmt.Errorf("%w: %q", myErrors.ErrUnsupportedURI, uri)
	}
	switch strings.ToLower(scheme) {
	case SchemeCOS:
		if g.objects == nil {
			return "", fmt.Errorf("%w: 未配置 COS，无法解析 %q", myErrors.ErrUnsupportedURI, uri)
		}
		return g.objects.PublicObjectURL(target), nil
	case SchemePublic:
		return dependencies.JoinURLPath(g.publicBase, target), nil
	case "http", "https":
		return uri, nil
	default:
		return "", fmt.Errorf("%w: %q", myErrors.ErrUnsupportedURI, uri)
	}
}
