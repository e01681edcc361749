package entities

import (
	"fmt"
	"strings"

	"github.com/Xushengqwer/go-common/models/entities"

	"github.com/Xushengqwer/image_display_service/formatter"
)

// MediaItem 图片字段中的一个取值
//   - 表名: media_items
//   - 关系: 与 Content 为多对一，同一内容的同一字段下按 Delta 排序
type MediaItem struct {
	entities.BaseModel

	// 所属内容 ID
	// - GORM 标签: 与 FieldName、Delta 组成联合索引，按字段取值时直接走索引排序
	ContentID uint64 `gorm:"not null;index:idx_content_field_delta,priority:1"`

	// 字段名，例如 field_gallery
	FieldName string `gorm:"type:varchar(64);not null;index:idx_content_field_delta,priority:2"`

	// 取值在多值字段中的位置 (0, 1, 2 ...)
	Delta int `gorm:"not null;default:0;index:idx_content_field_delta,priority:3"`

	// 存储 URI，例如 cos://media/2024/a.jpg 或 public://gallery/a.jpg
	URI string `gorm:"type:varchar(1023);not null"`

	// 图片在 COS 中的 ObjectKey，非 COS 存储时为空
	ObjectKey string `gorm:"type:varchar(255);index"`

	Alt    string `gorm:"type:varchar(512)"`
	Title  string `gorm:"type:varchar(1024)"`
	Width  int    `gorm:"default:0"`
	Height int    `gorm:"default:0"`

	// 该取值自带的 class，空格分隔
	Classes string `gorm:"type:varchar(255)"`
}

// CacheTags 文件级缓存标签
func (m *MediaItem) CacheTags() []string {
	return []string{fmt.Sprintf("file:%d", m.ID)}
}

// ToFormatterItem 转换为投影使用的只读取值
func (m *MediaItem) ToFormatterItem() formatter.MediaItem {
	attrs := formatter.Attributes{}
	if classes := strings.Fields(m.Classes); len(classes) > 0 {
		attrs[formatter.ClassAttribute] = classes
	}
	return formatter.MediaItem{
		FileID:     m.ID,
		URI:        m.URI,
		Alt:        m.Alt,
		Title:      m.Title,
		Width:      m.Width,
		Height:     m.Height,
		Attributes: attrs,
		CacheTags:  m.CacheTags(),
	}
}
