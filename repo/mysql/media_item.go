package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/Xushengqwer/image_display_service/models/entities"
)

// MediaItemRepository 图片字段取值的访问
type MediaItemRepository interface {
	// GetItemsByContentField 获取某个内容某个字段下的全部取值，按 delta 升序
	// - 原生 SQL: SELECT * FROM media_items WHERE content_id = ? AND field_name = ? AND deleted_at IS NULL ORDER BY delta ASC, id ASC
	// - 注意事项: 字段没有取值时返回空切片而不是错误
	GetItemsByContentField(ctx context.Context, contentID uint64, fieldName string) ([]*entities.MediaItem, error)

	// CreateItemsBatch 批量创建取值，仅供数据填充工具使用
	CreateItemsBatch(ctx context.Context, db *gorm.DB, items []*entities.MediaItem) error
}

type mediaItemRepository struct {
	db *gorm.DB
}

// NewMediaItemRepository 创建 MediaItemRepository 实例
func NewMediaItemRepository(db *gorm.DB) MediaItemRepository {
	return &mediaItemRepository{db: db}
}

func (r *mediaItemRepository) GetItemsByContentField(ctx context.Context, contentID uint64, fieldName string) ([]*entities.MediaItem, error) {
	items := make([]*entities.MediaItem, 0)
	err := r.db.WithContext(ctx).
		Where("content_id = ? AND field_name = ?", contentID, fieldName).
		Order("delta ASC").
		Order("id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *mediaItemRepository) CreateItemsBatch(ctx context.Context, db *gorm.DB, items []*entities.MediaItem) error {
	if len(items) == 0 {
		return nil
	}
	return db.WithContext(ctx).CreateInBatches(items, 100).Error
}
