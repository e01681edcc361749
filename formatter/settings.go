// Package formatter 把图片字段的取值投影为交给模板层的渲染描述 (RenderDescriptor)。
// 包内不做任何 I/O：样式查询、内容 URL、文件 URL 都通过注入的接口完成。
package formatter

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSettings 表示展示设置中存在无法识别的取值。
var ErrInvalidSettings = errors.New("formatter: invalid display settings")

// ErrNoFileURLGenerator 设置要求链接到文件，但 Projector 没有文件地址生成器。
var ErrNoFileURLGenerator = errors.New("formatter: file url generator not configured")

// LinkMode 图片链接方式
type LinkMode string

const (
	LinkNone    LinkMode = ""        // 不加链接
	LinkContent LinkMode = "content" // 链接到所属内容
	LinkFile    LinkMode = "file"    // 链接到原始文件
)

// 可选的轮播模板 ID。为空表示不包裹模板，只输出单张图片描述。
const (
	TemplateNone      = ""
	TemplateBxSlider  = "bxslider-carousel"
	TemplateBootstrap = "bootstrap-carousel"
)

// Settings 一次渲染使用的展示设置，读取后即不可变。
type Settings struct {
	ImageStyle string   `json:"image_style"`       // 主图样式 ID，空表示原图
	ThumbStyle string   `json:"image_thumb_style"` // 缩略图样式 ID，空表示原图
	Template   string   `json:"images_template"`   // 包裹模板 ID，空表示不包裹
	Link       LinkMode `json:"image_link"`        // 链接方式
	ImageClass string   `json:"image_class"`       // 追加到 img 标签的 class
	LinkClass  string   `json:"link_class"`        // 追加到 a 标签的 class
}

// NewSettings 校验并规整设置。class 两端空白会被去掉，链接和模板取 "none" 时视为不设置。
func NewSettings(s Settings) (Settings, error) {
	s.ImageStyle = strings.TrimSpace(s.ImageStyle)
	s.ThumbStyle = strings.TrimSpace(s.ThumbStyle)
	s.Template = strings.TrimSpace(s.Template)
	if strings.EqualFold(s.Template, "none") {
		s.Template = TemplateNone
	}
	s.ImageClass = strings.TrimSpace(s.ImageClass)
	s.LinkClass = strings.TrimSpace(s.LinkClass)

	link, err := ParseLinkMode(string(s.Link))
	if err != nil {
		return Settings{}, err
	}
	s.Link = link

	if !IsKnownTemplate(s.Template) {
		return Settings{}, fmt.Errorf("%w: unknown template %q", ErrInvalidSettings, s.Template)
	}
	return s, nil
}

// ParseLinkMode 解析链接方式，空串和 "none" 都表示不链接。
func ParseLinkMode(v string) (LinkMode, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "none":
		return LinkNone, nil
	case string(LinkContent):
		return LinkContent, nil
	case string(LinkFile):
		return LinkFile, nil
	default:
		return LinkNone, fmt.Errorf("%w: unknown link mode %q", ErrInvalidSettings, v)
	}
}

// IsKnownTemplate 判断模板 ID 是否可用 (空串表示不使用模板，也是合法的)。
func IsKnownTemplate(id string) bool {
	switch id {
	case TemplateNone, TemplateBxSlider, TemplateBootstrap:
		return true
	}
	return false
}

// Wrapped 是否配置了包裹模板。
func (s Settings) Wrapped() bool {
	return s.Template != TemplateNone
}
