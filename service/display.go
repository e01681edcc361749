package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/image_display_service/config"
	"github.com/Xushengqwer/image_display_service/constant"
	"github.com/Xushengqwer/image_display_service/formatter"
	"github.com/Xushengqwer/image_display_service/models/dto"
	"github.com/Xushengqwer/image_display_service/models/entities"
	"github.com/Xushengqwer/image_display_service/models/vo"
	"github.com/Xushengqwer/image_display_service/myErrors"
	"github.com/Xushengqwer/image_display_service/repo/mysql"
)

// SettingsPublisher 发布展示设置变更事件，*producer.KafkaProducer 满足该接口
type SettingsPublisher interface {
	SendDisplaySettingsUpdatedEvent(ctx context.Context, bundle, fieldName, viewMode string, s formatter.Settings) error
}

// DisplayService 图片字段的渲染与展示设置管理
type DisplayService interface {
	// RenderField 渲染已保存内容的一个图片字段。
	// - 内容不存在时返回包装后的 commonerrors.ErrRepoNotFound。
	// - 没有保存过展示设置时使用默认设置 (原图、不链接、不包裹)。
	RenderField(ctx context.Context, contentID uint64, fieldName, viewMode string) (*vo.RenderFieldVO, error)

	// PreviewField 渲染未保存内容，内容链接因此不会生成。
	PreviewField(ctx context.Context, req *dto.PreviewFieldRequest) (*vo.RenderFieldVO, error)

	// GetSettings 读取展示设置，不存在时返回默认设置且 Stored=false。
	GetSettings(ctx context.Context, bundle, fieldName, viewMode string) (*vo.DisplaySettingsVO, error)

	// UpdateSettings 校验并保存展示设置，成功后异步发送 Kafka 事件。
	// - 设置非法返回 myErrors.ErrInvalidSettings，引用的样式不存在返回 myErrors.ErrStyleNotFound。
	UpdateSettings(ctx context.Context, bundle, fieldName string, req *dto.UpdateDisplaySettingsRequest) (*vo.DisplaySettingsVO, error)

	// SettingsForm 设置表单结构
	SettingsForm(ctx context.Context, bundle, fieldName, viewMode string) (*vo.SettingsFormVO, error)

	// SettingsSummary 后台列表中的设置摘要
	SettingsSummary(ctx context.Context, bundle, fieldName, viewMode string) (*vo.SettingsSummaryVO, error)

	// ListStyles 可选的图片样式
	ListStyles(ctx context.Context) ([]vo.ImageStyleVO, error)
}

type displayService struct {
	contentRepo mysql.ContentRepository
	itemRepo    mysql.MediaItemRepository
	settingRepo mysql.DisplaySettingRepository
	styles      StyleRegistry
	projector   *formatter.Projector
	publisher   SettingsPublisher
	site        config.SiteConfig
	db          *gorm.DB
	logger      *zap.Logger
}

// NewDisplayService 初始化展示服务
func NewDisplayService(
	contentRepo mysql.ContentRepository,
	itemRepo mysql.MediaItemRepository,
	settingRepo mysql.DisplaySettingRepository,
	styles StyleRegistry,
	files formatter.FileURLGenerator,
	publisher SettingsPublisher,
	site config.SiteConfig,
	db *gorm.DB,
	logger *zap.Logger,
) DisplayService {
	return &displayService{
		contentRepo: contentRepo,
		itemRepo:    itemRepo,
		settingRepo: settingRepo,
		styles:      styles,
		projector:   formatter.NewProjector(styles, files),
		publisher:   publisher,
		site:        site,
		db:          db,
		logger:      logger,
	}
}

func normalizeViewMode(viewMode string) string {
	viewMode = strings.TrimSpace(viewMode)
	if viewMode == "" {
		return constant.DefaultViewMode
	}
	return viewMode
}

// loadSetting 读取已保存的设置，不存在时返回只带主键字段的默认记录 (ID 为 0)
func (s *displayService) loadSetting(ctx context.Context, bundle, fieldName, viewMode string) (*entities.DisplaySetting, error) {
	setting, err := s.settingRepo.GetSetting(ctx, bundle, fieldName, viewMode)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			return &entities.DisplaySetting{Bundle: bundle, FieldName: fieldName, ViewMode: viewMode}, nil
		}
		return nil, fmt.Errorf("查询展示设置失败: %w", err)
	}
	return setting, nil
}

// effectiveSettings 规整已保存的设置。历史数据不合法时按默认设置渲染，不让页面报错。
func (s *displayService) effectiveSettings(setting *entities.DisplaySetting) formatter.Settings {
	settings, err := formatter.NewSettings(setting.Settings())
	if err != nil {
		s.logger.Warn("已保存的展示设置不合法，使用默认设置",
			zap.String("bundle", setting.Bundle),
			zap.String("fieldName", setting.FieldName),
			zap.String("viewMode", setting.ViewMode),
			zap.Error(err))
		return formatter.Settings{}
	}
	return settings
}

func (s *displayService) RenderField(ctx context.Context, contentID uint64, fieldName, viewMode string) (*vo.RenderFieldVO, error) {
	viewMode = normalizeViewMode(viewMode)

	// 1. 内容
	content, err := s.contentRepo.GetContentByID(ctx, contentID)
	if err != nil {
		return nil, fmt.Errorf("获取内容 %d 失败: %w", contentID, err)
	}

	// 2. 设置
	setting, err := s.loadSetting(ctx, content.Bundle, fieldName, viewMode)
	if err != nil {
		return nil, err
	}
	settings := s.effectiveSettings(setting)

	// 3. 字段取值
	entityItems, err := s.itemRepo.GetItemsByContentField(ctx, contentID, fieldName)
	if err != nil {
		return nil, fmt.Errorf("获取内容 %d 字段 %s 的图片失败: %w", contentID, fieldName, err)
	}
	items := make([]formatter.MediaItem, 0, len(entityItems))
	for _, item := range entityItems {
		items = append(items, item.ToFormatterItem())
	}

	// 4. 投影
	result, err := s.projector.Project(ctx, newContentLink(content, s.site), items, settings)
	if err != nil {
		s.logger.Error("渲染图片字段失败",
			zap.Uint64("contentID", contentID),
			zap.String("fieldName", fieldName),
			zap.Error(err))
		return nil, fmt.Errorf("渲染图片字段失败: %w", err)
	}

	return &vo.RenderFieldVO{
		ContentID: contentID,
		Bundle:    content.Bundle,
		FieldName: fieldName,
		ViewMode:  viewMode,
		Result:    result,
	}, nil
}

func (s *displayService) PreviewField(ctx context.Context, req *dto.PreviewFieldRequest) (*vo.RenderFieldVO, error) {
	viewMode := normalizeViewMode(req.ViewMode)

	var settings formatter.Settings
	if req.Settings != nil {
		validated, err := formatter.NewSettings(req.Settings.ToSettings())
		if err != nil {
			return nil, err
		}
		settings = validated
	} else {
		setting, err := s.loadSetting(ctx, req.Bundle, req.FieldName, viewMode)
		if err != nil {
			return nil, err
		}
		settings = s.effectiveSettings(setting)
	}

	items := make([]formatter.MediaItem, 0, len(req.Items))
	for _, it := range req.Items {
		attrs := formatter.Attributes{}
		if classes := strings.Fields(it.Classes); len(classes) > 0 {
			attrs[formatter.ClassAttribute] = classes
		}
		items = append(items, formatter.MediaItem{
			URI:        it.URI,
			Alt:        it.Alt,
			Title:      it.Title,
			Width:      it.Width,
			Height:     it.Height,
			Attributes: attrs,
		})
	}

	// 未保存的内容，ID 为 0
	draft := &entities.Content{Bundle: req.Bundle}
	result, err := s.projector.Project(ctx, newContentLink(draft, s.site), items, settings)
	if err != nil {
		return nil, fmt.Errorf("预览图片字段失败: %w", err)
	}

	return &vo.RenderFieldVO{
		Bundle:    req.Bundle,
		FieldName: req.FieldName,
		ViewMode:  viewMode,
		Result:    result,
	}, nil
}

func (s *displayService) GetSettings(ctx context.Context, bundle, fieldName, viewMode string) (*vo.DisplaySettingsVO, error) {
	setting, err := s.loadSetting(ctx, bundle, fieldName, normalizeViewMode(viewMode))
	if err != nil {
		return nil, err
	}
	v := vo.NewDisplaySettingsVO(setting)
	return &v, nil
}

func (s *displayService) UpdateSettings(ctx context.Context, bundle, fieldName string, req *dto.UpdateDisplaySettingsRequest) (*vo.DisplaySettingsVO, error) {
	viewMode := normalizeViewMode(req.ViewMode)

	// 1. 校验
	settings, err := formatter.NewSettings(req.ToSettings())
	if err != nil {
		return nil, err
	}
	for _, styleID := range []string{settings.ImageStyle, settings.ThumbStyle} {
		if styleID == "" {
			continue
		}
		style, err := s.styles.GetStyle(ctx, styleID)
		if err != nil {
			return nil, err
		}
		if style == nil {
			return nil, fmt.Errorf("%w: %s", myErrors.ErrStyleNotFound, styleID)
		}
	}

	// 2. 保存
	setting := &entities.DisplaySetting{Bundle: bundle, FieldName: fieldName, ViewMode: viewMode}
	setting.ApplySettings(settings)
	if err := s.settingRepo.UpsertSetting(ctx, s.db, setting); err != nil {
		s.logger.Error("保存展示设置失败",
			zap.String("bundle", bundle),
			zap.String("fieldName", fieldName),
			zap.String("viewMode", viewMode),
			zap.Error(err))
		return nil, fmt.Errorf("保存展示设置失败: %w", err)
	}

	// 3. 异步通知下游，不阻塞请求。未配置 Kafka 时 publisher 为 nil
	if s.publisher != nil {
		s.publishUpdated(bundle, fieldName, viewMode, settings)
	}

	// 4. 重新读取，拿到数据库生成的 ID 和更新时间
	stored, err := s.settingRepo.GetSetting(ctx, bundle, fieldName, viewMode)
	if err != nil {
		s.logger.Warn("保存后读取展示设置失败，返回提交的设置", zap.Error(err))
		stored = setting
	}
	v := vo.NewDisplaySettingsVO(stored)
	return &v, nil
}

// publishUpdated 在后台 goroutine 中发送设置更新事件
func (s *displayService) publishUpdated(bundle, fieldName, viewMode string, settings formatter.Settings) {
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.publisher.SendDisplaySettingsUpdatedEvent(bgCtx, bundle, fieldName, viewMode, settings); err != nil {
			s.logger.Error("发送展示设置更新事件失败",
				zap.String("bundle", bundle),
				zap.String("fieldName", fieldName),
				zap.String("viewMode", viewMode),
				zap.Error(err))
		}
	}()
}

func (s *displayService) SettingsForm(ctx context.Context, bundle, fieldName, viewMode string) (*vo.SettingsFormVO, error) {
	viewMode = normalizeViewMode(viewMode)
	setting, err := s.loadSetting(ctx, bundle, fieldName, viewMode)
	if err != nil {
		return nil, err
	}
	styles, err := s.styles.ListStyles(ctx)
	if err != nil {
		return nil, err
	}
	options := make([]formatter.Option, 0, len(styles))
	for _, style := range styles {
		options = append(options, formatter.Option{Value: style.StyleID, Label: style.Label})
	}

	return &vo.SettingsFormVO{
		Bundle:    bundle,
		FieldName: fieldName,
		ViewMode:  viewMode,
		Form:      formatter.BuildForm(s.effectiveSettings(setting), options),
	}, nil
}

func (s *displayService) SettingsSummary(ctx context.Context, bundle, fieldName, viewMode string) (*vo.SettingsSummaryVO, error) {
	setting, err := s.loadSetting(ctx, bundle, fieldName, normalizeViewMode(viewMode))
	if err != nil {
		return nil, err
	}
	styles, err := s.styles.ListStyles(ctx)
	if err != nil {
		return nil, err
	}
	labels := make(map[string]string, len(styles))
	for _, style := range styles {
		labels[style.StyleID] = style.Label
	}
	return &vo.SettingsSummaryVO{Summary: formatter.Summary(s.effectiveSettings(setting), labels)}, nil
}

func (s *displayService) ListStyles(ctx context.Context) ([]vo.ImageStyleVO, error) {
	return s.styles.ListStyles(ctx)
}
