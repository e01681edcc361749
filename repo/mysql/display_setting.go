package mysql

import (
	"context"
	"errors"

	"github.com/Xushengqwer/go-common/commonerrors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Xushengqwer/image_display_service/models/entities"
)

// DisplaySettingRepository 展示设置的访问
type DisplaySettingRepository interface {
	// GetSetting 获取 (bundle, field_name, view_mode) 对应的设置
	// - 原生 SQL: SELECT * FROM display_settings WHERE bundle = ? AND field_name = ? AND view_mode = ? AND deleted_at IS NULL LIMIT 1
	// - 注意事项: 不存在时返回 commonerrors.ErrRepoNotFound，由服务层回退到默认设置
	GetSetting(ctx context.Context, bundle, fieldName, viewMode string) (*entities.DisplaySetting, error)

	// UpsertSetting 按唯一键 idx_display_key 新建或覆盖设置
	// - 原生 SQL: INSERT ... ON DUPLICATE KEY UPDATE image_style = VALUES(image_style), ...
	UpsertSetting(ctx context.Context, db *gorm.DB, setting *entities.DisplaySetting) error
}

type displaySettingRepository struct {
	db *gorm.DB
}

// NewDisplaySettingRepository 创建 DisplaySettingRepository 实例
func NewDisplaySettingRepository(db *gorm.DB) DisplaySettingRepository {
	return &displaySettingRepository{db: db}
}

func (r *displaySettingRepository) GetSetting(ctx context.Context, bundle, fieldName, viewMode string) (*entities.DisplaySetting, error) {
	var setting entities.DisplaySetting
	err := r.db.WithContext(ctx).
		Where("bundle = ? AND field_name = ? AND view_mode = ?", bundle, fieldName, viewMode).
		First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		return nil, err
	}
	return &setting, nil
}

func (r *displaySettingRepository) UpsertSetting(ctx context.Context, db *gorm.DB, setting *entities.DisplaySetting) error {
	return db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "bundle"}, {Name: "field_name"}, {Name: "view_mode"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"image_style", "thumb_style", "images_template",
			"image_link", "image_class", "link_class", "updated_at",
		}),
	}).Create(setting).Error
}
