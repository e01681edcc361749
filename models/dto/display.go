package dto

import "github.com/Xushengqwer/image_display_service/formatter"

// DisplayKeyURI 定位一套展示设置的路径参数
type DisplayKeyURI struct {
	Bundle    string `uri:"bundle" binding:"required,max=64"`
	FieldName string `uri:"field_name" binding:"required,max=64"`
}

// RenderFieldURI 渲染字段接口的路径参数
type RenderFieldURI struct {
	ContentID uint64 `uri:"content_id" binding:"required,gt=0"`
	FieldName string `uri:"field_name" binding:"required,max=64"`
}

// ViewModeQuery 展示模式查询参数，可选，默认 default
type ViewModeQuery struct {
	ViewMode string `form:"view_mode" binding:"omitempty,max=64"`
}

// DisplaySettingsDTO 展示设置的六个字段
type DisplaySettingsDTO struct {
	ImageStyle     string `json:"image_style" binding:"omitempty,max=64"`                                              // 主图样式 ID，空为原图
	ThumbStyle     string `json:"image_thumb_style" binding:"omitempty,max=64"`                                        // 缩略图样式 ID，空为原图
	ImagesTemplate string `json:"images_template" binding:"omitempty,oneof=none bxslider-carousel bootstrap-carousel"` // 包裹模板，none 为不包裹
	ImageLink      string `json:"image_link" binding:"omitempty,oneof=none content file"`                              // 链接方式
	ImageClass     string `json:"image_class" binding:"omitempty,max=255"`                                             // img 标签 class
	LinkClass      string `json:"link_class" binding:"omitempty,max=255"`                                              // a 标签 class
}

// ToSettings 转换为 formatter 设置 (未校验)
func (d DisplaySettingsDTO) ToSettings() formatter.Settings {
	return formatter.Settings{
		ImageStyle: d.ImageStyle,
		ThumbStyle: d.ThumbStyle,
		Template:   d.ImagesTemplate,
		Link:       formatter.LinkMode(d.ImageLink),
		ImageClass: d.ImageClass,
		LinkClass:  d.LinkClass,
	}
}

// UpdateDisplaySettingsRequest 更新展示设置的请求体
type UpdateDisplaySettingsRequest struct {
	ViewMode string `json:"view_mode" binding:"omitempty,max=64"`
	DisplaySettingsDTO
}

// PreviewItemDTO 预览时提交的单个图片取值
type PreviewItemDTO struct {
	URI     string `json:"uri" binding:"required,max=1023"`
	Alt     string `json:"alt" binding:"omitempty,max=512"`
	Title   string `json:"title" binding:"omitempty,max=1024"`
	Width   int    `json:"width" binding:"omitempty,gte=0"`
	Height  int    `json:"height" binding:"omitempty,gte=0"`
	Classes string `json:"classes" binding:"omitempty,max=255"`
}

// PreviewFieldRequest 预览未保存内容的图片字段
//   - Settings 为空时使用 (Bundle, FieldName, ViewMode) 已保存的设置
type PreviewFieldRequest struct {
	Bundle    string              `json:"bundle" binding:"required,max=64"`
	FieldName string              `json:"field_name" binding:"required,max=64"`
	ViewMode  string              `json:"view_mode" binding:"omitempty,max=64"`
	Settings  *DisplaySettingsDTO `json:"settings"`
	Items     []PreviewItemDTO    `json:"items" binding:"omitempty,max=100,dive"`
}
