package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/Xushengqwer/go-common/core"
	"github.com/brianvoe/gofakeit/v6"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/image_display_service/constant"
	"github.com/Xushengqwer/image_display_service/formatter"
	"github.com/Xushengqwer/image_display_service/models/entities"
	"github.com/Xushengqwer/image_display_service/repo/mysql"
)

// 演示数据使用的内容类型和字段
const (
	seedBundle    = "article"
	seedFieldName = "field_gallery"
)

// seedStyles 常用的几种图片样式
var seedStyles = []*entities.ImageStyle{
	{StyleID: "thumbnail", Label: "Thumbnail (100×100)", Effect: "scale", Width: 100, Height: 100},
	{StyleID: "medium", Label: "Medium (220×220)", Effect: "scale", Width: 220, Height: 220},
	{StyleID: "large", Label: "Large (480×480)", Effect: "scale", Width: 480, Height: 480},
	{StyleID: "wide", Label: "Wide (1090)", Effect: "scale_and_crop", Width: 1090, Height: 0},
}

type seeder struct {
	db          *gorm.DB
	styleRepo   mysql.ImageStyleRepository
	contentRepo mysql.ContentRepository
	itemRepo    mysql.MediaItemRepository
	settingRepo mysql.DisplaySettingRepository
	logger      *core.ZapLogger
}

// SeedStyles 写入样式并为演示字段保存两套展示设置 (default 平铺链接到文件，full 使用轮播)
func (s *seeder) SeedStyles(ctx context.Context) error {
	for _, style := range seedStyles {
		if err := s.styleRepo.UpsertStyle(ctx, s.db, style); err != nil {
			return fmt.Errorf("写入样式 %s 失败: %w", style.StyleID, err)
		}
	}

	defaults := map[string]formatter.Settings{
		constant.DefaultViewMode: {ImageStyle: "medium", Link: formatter.LinkFile, LinkClass: "colorbox"},
		"full": {
			ImageStyle: "wide",
			ThumbStyle: "thumbnail",
			Template:   formatter.TemplateBxSlider,
			Link:       formatter.LinkContent,
			ImageClass: "img-responsive",
		},
	}
	for viewMode, settings := range defaults {
		setting := &entities.DisplaySetting{Bundle: seedBundle, FieldName: seedFieldName, ViewMode: viewMode}
		setting.ApplySettings(settings)
		if err := s.settingRepo.UpsertSetting(ctx, s.db, setting); err != nil {
			return fmt.Errorf("写入展示设置 %s 失败: %w", viewMode, err)
		}
	}
	s.logger.Info("样式和展示设置写入完成", zap.Int("styles", len(seedStyles)))
	return nil
}

// SeedContents 并发创建内容，每个内容带 1~6 张图片
func (s *seeder) SeedContents(ctx context.Context, numContents int) {
	s.logger.Info("开始填充内容...", zap.Int("数量", numContents))

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, 10)

	for i := 0; i < numContents; i++ {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(index int) {
			defer wg.Done()
			defer func() { <-semaphore }()

			content, err := s.createContent(ctx)
			if err != nil {
				s.logger.Error(fmt.Sprintf("创建内容 %d/%d 失败", index+1, numContents), zap.Error(err))
				return
			}
			s.logger.Info(fmt.Sprintf("成功创建内容 %d/%d", index+1, numContents),
				zap.Uint64("content_id", content.ID),
				zap.String("title", content.Title))
		}(i)
	}

	wg.Wait()
	s.logger.Info("内容填充完毕")
}

// createContent 在一个事务中写入内容和它的图片
func (s *seeder) createContent(ctx context.Context) (*entities.Content, error) {
	content := &entities.Content{
		Title:  gofakeit.Sentence(gofakeit.Number(3, 8)),
		Bundle: seedBundle,
		Slug:   gofakeit.UUID(),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.contentRepo.CreateContent(ctx, tx, content); err != nil {
			return err
		}
		n := gofakeit.Number(1, 6)
		items := make([]*entities.MediaItem, 0, n)
		for delta := 0; delta < n; delta++ {
			width, height := gofakeit.Number(320, 1920), gofakeit.Number(240, 1080)
			key := fmt.Sprintf("media/%d/%s.jpg", content.ID, gofakeit.UUID())
			uri := "cos://" + key
			if gofakeit.Bool() {
				key = ""
				uri = fmt.Sprintf("public://gallery/%d-%d.jpg", content.ID, delta)
			}
			items = append(items, &entities.MediaItem{
				ContentID: content.ID,
				FieldName: seedFieldName,
				Delta:     delta,
				URI:       uri,
				ObjectKey: key,
				Alt:       gofakeit.HipsterSentence(4),
				Title:     gofakeit.Word(),
				Width:     width,
				Height:    height,
			})
		}
		return s.itemRepo.CreateItemsBatch(ctx, tx, items)
	})
	if err != nil {
		return nil, err
	}
	return content, nil
}
