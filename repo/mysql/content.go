package mysql

import (
	"context"
	"errors"

	"github.com/Xushengqwer/go-common/commonerrors"
	"gorm.io/gorm"

	"github.com/Xushengqwer/image_display_service/models/entities"
)

// ContentRepository 内容的只读访问
type ContentRepository interface {
	// GetContentByID 根据 ID 获取内容
	// - 原生 SQL: SELECT * FROM contents WHERE id = ? AND deleted_at IS NULL LIMIT 1
	// - 注意事项: 不存在时返回 commonerrors.ErrRepoNotFound
	GetContentByID(ctx context.Context, id uint64) (*entities.Content, error)

	// CreateContent 创建内容，仅供数据填充工具使用
	CreateContent(ctx context.Context, db *gorm.DB, content *entities.Content) error
}

type contentRepository struct {
	db *gorm.DB
}

// NewContentRepository 创建 ContentRepository 实例
func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) GetContentByID(ctx context.Context, id uint64) (*entities.Content, error) {
	var content entities.Content
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&content).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		return nil, err
	}
	return &content, nil
}

func (r *contentRepository) CreateContent(ctx context.Context, db *gorm.DB, content *entities.Content) error {
	return db.WithContext(ctx).Create(content).Error
}
