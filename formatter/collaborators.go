package formatter

import "context"

// Style 图片样式 (衍生图配方)，只关心它的缓存标签。
type Style interface {
	CacheTags() []string
}

// StyleRegistry 样式注册表。样式不存在时返回 (nil, nil)。
type StyleRegistry interface {
	Load(ctx context.Context, styleID string) (Style, error)
}

// Content 图片字段所属的内容。
type Content interface {
	// IsPersisted 内容是否已保存 (新建/草稿内容返回 false)。
	IsPersisted() bool
	// CanonicalURL 内容的规范访问地址。
	CanonicalURL(ctx context.Context) (string, error)
}

// FileURLGenerator 把存储 URI (例如 cos://...) 转换为可访问的绝对 URL。
type FileURLGenerator interface {
	ToAbsoluteURL(ctx context.Context, uri string) (string, error)
}
