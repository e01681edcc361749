package vo

import "github.com/Xushengqwer/image_display_service/models/entities"

// ImageStyleVO 图片样式视图对象，同时也是 Redis 中缓存的结构
type ImageStyleVO struct {
	StyleID   string   `json:"style_id"`
	Label     string   `json:"label"`
	Effect    string   `json:"effect"`
	Width     int      `json:"width"`
	Height    int      `json:"height"`
	CacheTags []string `json:"cache_tags"`
}

// NewImageStyleVOFromEntity 实体转 VO，nil 返回零值
func NewImageStyleVOFromEntity(entity *entities.ImageStyle) ImageStyleVO {
	if entity == nil {
		return ImageStyleVO{}
	}
	return ImageStyleVO{
		StyleID:   entity.StyleID,
		Label:     entity.Label,
		Effect:    entity.Effect,
		Width:     entity.Width,
		Height:    entity.Height,
		CacheTags: entity.CacheTags(),
	}
}

// NewImageStyleVOsFromEntities 批量转换，返回非 nil 切片以便序列化为 []
func NewImageStyleVOsFromEntities(list []*entities.ImageStyle) []ImageStyleVO {
	vos := make([]ImageStyleVO, 0, len(list))
	for _, entity := range list {
		if entity != nil {
			vos = append(vos, NewImageStyleVOFromEntity(entity))
		}
	}
	return vos
}

// ToEntity VO 还原为实体 (只包含展示需要的字段)
func (v ImageStyleVO) ToEntity() *entities.ImageStyle {
	return &entities.ImageStyle{
		StyleID: v.StyleID,
		Label:   v.Label,
		Effect:  v.Effect,
		Width:   v.Width,
		Height:  v.Height,
	}
}
