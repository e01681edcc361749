package entities

import (
	"github.com/Xushengqwer/go-common/models/entities"

	"github.com/Xushengqwer/image_display_service/formatter"
)

// DisplaySetting 某个内容类型的某个图片字段在某个展示模式下的设置
//   - 表名: display_settings
//   - (Bundle, FieldName, ViewMode) 唯一
type DisplaySetting struct {
	entities.BaseModel

	Bundle    string `gorm:"type:varchar(64);not null;uniqueIndex:idx_display_key,priority:1"`
	FieldName string `gorm:"type:varchar(64);not null;uniqueIndex:idx_display_key,priority:2"`
	ViewMode  string `gorm:"type:varchar(64);not null;uniqueIndex:idx_display_key,priority:3"`

	ImageStyle     string `gorm:"type:varchar(64)"`
	ThumbStyle     string `gorm:"type:varchar(64)"`
	ImagesTemplate string `gorm:"type:varchar(64)"`
	ImageLink      string `gorm:"type:varchar(16)"`
	ImageClass     string `gorm:"type:varchar(255)"`
	LinkClass      string `gorm:"type:varchar(255)"`
}

// Settings 转换为 formatter 的设置 (未校验)
func (d *DisplaySetting) Settings() formatter.Settings {
	return formatter.Settings{
		ImageStyle: d.ImageStyle,
		ThumbStyle: d.ThumbStyle,
		Template:   d.ImagesTemplate,
		Link:       formatter.LinkMode(d.ImageLink),
		ImageClass: d.ImageClass,
		LinkClass:  d.LinkClass,
	}
}

// ApplySettings 用已校验的设置覆盖当前记录
func (d *DisplaySetting) ApplySettings(s formatter.Settings) {
	d.ImageStyle = s.ImageStyle
	d.ThumbStyle = s.ThumbStyle
	d.ImagesTemplate = s.Template
	d.ImageLink = string(s.Link)
	d.ImageClass = s.ImageClass
	d.LinkClass = s.LinkClass
}
