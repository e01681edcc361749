package entities

import "github.com/Xushengqwer/go-common/models/entities"

// Content 图片字段所属的内容
//   - 表名: contents
//   - 本服务只读取内容用于生成链接；内容本身由上游服务维护。
type Content struct {
	entities.BaseModel // 包含 ID, CreatedAt, UpdatedAt, DeletedAt，支持软删除

	// 标题
	Title string `gorm:"type:varchar(255);not null"`

	// 内容类型 (例如 article、product)，与 FieldName、ViewMode 一起决定使用哪一套展示设置
	// - GORM 标签: index 便于按类型查询
	Bundle string `gorm:"type:varchar(64);not null;index"`

	// 详情页路径中的 slug，可为空，为空时使用 ID 生成链接
	Slug string `gorm:"type:varchar(255);index"`
}

// IsPersisted 内容是否已经落库。预览时传入的未保存内容 ID 为 0。
func (c *Content) IsPersisted() bool {
	return c != nil && c.ID != 0
}
