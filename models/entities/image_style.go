package entities

import "github.com/Xushengqwer/go-common/models/entities"

// ImageStyle 图片样式 (衍生图配方)
//   - 表名: image_styles
//   - 衍生图的生成由图片处理服务负责，这里只保存展示需要的元数据。
type ImageStyle struct {
	entities.BaseModel

	// 样式机器名，例如 thumb_100x100，展示设置中引用的就是它
	StyleID string `gorm:"type:varchar(64);not null;uniqueIndex"`

	// 后台展示名称
	Label string `gorm:"type:varchar(255);not null"`

	// 处理方式，例如 scale、scale_and_crop
	Effect string `gorm:"type:varchar(64);not null;default:'scale'"`

	Width  int `gorm:"default:0"`
	Height int `gorm:"default:0"`
}

// StyleCacheTag 样式对应的缓存标签
func StyleCacheTag(styleID string) string {
	return "config:image.style." + styleID
}

// CacheTags 实现 formatter.Style
func (s *ImageStyle) CacheTags() []string {
	return []string{StyleCacheTag(s.StyleID)}
}
