// Package events 定义本服务收发的 Kafka 事件结构。
package events

import "time"

// 样式变更动作
const (
	StyleActionUpdated = "updated"
	StyleActionDeleted = "deleted"
)

// ImageStyleChangedEvent 图片处理服务在样式变更后发出，本服务据此失效样式缓存
type ImageStyleChangedEvent struct {
	EventID   string    `json:"event_id"`
	Timestamp time.Time `json:"timestamp"`
	StyleID   string    `json:"style_id"`
	Action    string    `json:"action"`
}

// DisplaySettingsUpdatedEvent 展示设置更新后发出，下游页面缓存据此刷新
type DisplaySettingsUpdatedEvent struct {
	EventID        string    `json:"event_id"`
	Timestamp      time.Time `json:"timestamp"`
	Bundle         string    `json:"bundle"`
	FieldName      string    `json:"field_name"`
	ViewMode       string    `json:"view_mode"`
	ImageStyle     string    `json:"image_style"`
	ThumbStyle     string    `json:"image_thumb_style"`
	ImagesTemplate string    `json:"images_template"`
	ImageLink      string    `json:"image_link"`
	ImageClass     string    `json:"image_class"`
	LinkClass      string    `json:"link_class"`
}
