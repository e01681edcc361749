package mysql

import (
	"context"
	"errors"

	"github.com/Xushengqwer/go-common/commonerrors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Xushengqwer/image_display_service/models/entities"
)

// ImageStyleRepository 图片样式的访问
type ImageStyleRepository interface {
	// GetByStyleID 根据样式机器名获取样式
	// - 原生 SQL: SELECT * FROM image_styles WHERE style_id = ? AND deleted_at IS NULL LIMIT 1
	// - 注意事项: 不存在时返回 commonerrors.ErrRepoNotFound
	GetByStyleID(ctx context.Context, styleID string) (*entities.ImageStyle, error)

	// ListStyles 列出全部样式，按 style_id 升序
	ListStyles(ctx context.Context) ([]*entities.ImageStyle, error)

	// UpsertStyle 按 style_id 新建或覆盖样式，仅供数据填充工具使用
	UpsertStyle(ctx context.Context, db *gorm.DB, style *entities.ImageStyle) error
}

type imageStyleRepository struct {
	db *gorm.DB
}

// NewImageStyleRepository 创建 ImageStyleRepository 实例
func NewImageStyleRepository(db *gorm.DB) ImageStyleRepository {
	return &imageStyleRepository{db: db}
}

func (r *imageStyleRepository) GetByStyleID(ctx context.Context, styleID string) (*entities.ImageStyle, error) {
	var style entities.ImageStyle
	err := r.db.WithContext(ctx).Where("style_id = ?", styleID).First(&style).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		return nil, err
	}
	return &style, nil
}

func (r *imageStyleRepository) ListStyles(ctx context.Context) ([]*entities.ImageStyle, error) {
	styles := make([]*entities.ImageStyle, 0)
	if err := r.db.WithContext(ctx).Order("style_id ASC").Find(&styles).Error; err != nil {
		return nil, err
	}
	return styles, nil
}

func (r *imageStyleRepository) UpsertStyle(ctx context.Context, db *gorm.DB, style *entities.ImageStyle) error {
	return db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "style_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"label", "effect", "width", "height", "updated_at"}),
	}).Create(style).Error
}
