package vo

import (
	"time"

	"github.com/Xushengqwer/image_display_service/formatter"
	"github.com/Xushengqwer/image_display_service/models/entities"
)

// RenderFieldVO 字段渲染结果
type RenderFieldVO struct {
	ContentID uint64                      `json:"content_id"` // 预览时为 0
	Bundle    string                      `json:"bundle"`
	FieldName string                      `json:"field_name"`
	ViewMode  string                      `json:"view_mode"`
	Result    *formatter.ProjectionResult `json:"result"`
}

// DisplaySettingsVO 一套展示设置
type DisplaySettingsVO struct {
	Bundle    string             `json:"bundle"`
	FieldName string             `json:"field_name"`
	ViewMode  string             `json:"view_mode"`
	Settings  formatter.Settings `json:"settings"`
	Stored    bool               `json:"stored"` // false 表示尚未保存，返回的是默认设置
	UpdatedAt *time.Time         `json:"updated_at,omitempty"`
}

// NewDisplaySettingsVO 由实体构建设置 VO
func NewDisplaySettingsVO(entity *entities.DisplaySetting) DisplaySettingsVO {
	v := DisplaySettingsVO{
		Bundle:    entity.Bundle,
		FieldName: entity.FieldName,
		ViewMode:  entity.ViewMode,
		Settings:  entity.Settings(),
		Stored:    entity.ID != 0,
	}
	if v.Stored {
		updatedAt := entity.UpdatedAt
		v.UpdatedAt = &updatedAt
	}
	return v
}

// SettingsSummaryVO 后台列表展示的设置摘要
type SettingsSummaryVO struct {
	Summary []string `json:"summary"`
}

// SettingsFormVO 设置表单结构
type SettingsFormVO struct {
	Bundle    string         `json:"bundle"`
	FieldName string         `json:"field_name"`
	ViewMode  string         `json:"view_mode"`
	Form      formatter.Form `json:"form"`
}
