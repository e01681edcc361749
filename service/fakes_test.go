package service

import (
	"context"
	"testing"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	commonEntities "github.com/Xushengqwer/go-common/models/entities"
	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/image_display_service/formatter"
	"github.com/Xushengqwer/image_display_service/models/entities"
	"github.com/Xushengqwer/image_display_service/repo/redis"
)

type fakeStyleRepo struct {
	styles map[string]*entities.ImageStyle
	err    error
	calls  int
}

func (f *fakeStyleRepo) GetByStyleID(_ context.Context, styleID string) (*entities.ImageStyle, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	s, ok := f.styles[styleID]
	if !ok {
		return nil, commonerrors.ErrRepoNotFound
	}
	return s, nil
}

func (f *fakeStyleRepo) ListStyles(context.Context) ([]*entities.ImageStyle, error) {
	if f.err != nil {
		return nil, f.err
	}
	list := make([]*entities.ImageStyle, 0, len(f.styles))
	for _, id := range []string{"large", "small", "thumb"} {
		if s, ok := f.styles[id]; ok {
			list = append(list, s)
		}
	}
	return list, nil
}

func (f *fakeStyleRepo) UpsertStyle(context.Context, *gorm.DB, *entities.ImageStyle) error {
	return nil
}

type fakeContentRepo struct {
	contents map[uint64]*entities.Content
}

func (f *fakeContentRepo) GetContentByID(_ context.Context, id uint64) (*entities.Content, error) {
	c, ok := f.contents[id]
	if !ok {
		return nil, commonerrors.ErrRepoNotFound
	}
	return c, nil
}

func (f *fakeContentRepo) CreateContent(context.Context, *gorm.DB, *entities.Content) error {
	return nil
}

type fakeItemRepo struct {
	items map[string][]*entities.MediaItem
}

func (f *fakeItemRepo) GetItemsByContentField(_ context.Context, _ uint64, fieldName string) ([]*entities.MediaItem, error) {
	return f.items[fieldName], nil
}

func (f *fakeItemRepo) CreateItemsBatch(context.Context, *gorm.DB, []*entities.MediaItem) error {
	return nil
}

type fakeSettingRepo struct {
	settings map[string]*entities.DisplaySetting
	upserts  int
	nextID   uint64
}

func settingKey(bundle, fieldName, viewMode string) string {
	return bundle + "/" + fieldName + "/" + viewMode
}

func (f *fakeSettingRepo) GetSetting(_ context.Context, bundle, fieldName, viewMode string) (*entities.DisplaySetting, error) {
	s, ok := f.settings[settingKey(bundle, fieldName, viewMode)]
	if !ok {
		return nil, commonerrors.ErrRepoNotFound
	}
	return s, nil
}

func (f *fakeSettingRepo) UpsertSetting(_ context.Context, _ *gorm.DB, setting *entities.DisplaySetting) error {
	f.upserts++
	f.nextID++
	stored := *setting
	stored.BaseModel = commonEntities.BaseModel{ID: f.nextID, UpdatedAt: time.Now()}
	if f.settings == nil {
		f.settings = map[string]*entities.DisplaySetting{}
	}
	f.settings[settingKey(setting.Bundle, setting.FieldName, setting.ViewMode)] = &stored
	return nil
}

type publishedEvent struct {
	bundle, fieldName, viewMode string
	settings                    formatter.Settings
}

type fakePublisher struct {
	events chan publishedEvent
}

func newFakePublisher() *fakePublisher {
	return &fakePublisher{events: make(chan publishedEvent, 4)}
}

func (p *fakePublisher) SendDisplaySettingsUpdatedEvent(_ context.Context, bundle, fieldName, viewMode string, s formatter.Settings) error {
	p.events <- publishedEvent{bundle: bundle, fieldName: fieldName, viewMode: viewMode, settings: s}
	return nil
}

type fakeObjects struct{}

func (fakeObjects) PublicObjectURL(key string) string {
	return "https://cdn.example.com/" + key
}

func testStyles() map[string]*entities.ImageStyle {
	return map[string]*entities.ImageStyle{
		"large": {StyleID: "large", Label: "Large (480x480)", Effect: "scale", Width: 480, Height: 480},
		"small": {StyleID: "small", Label: "Small (100x100)", Effect: "scale_and_crop", Width: 100, Height: 100},
	}
}

func newTestRegistry(t *testing.T, repo *fakeStyleRepo) (StyleRegistry, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	cache := redis.NewStyleCache(client, zap.NewNop())
	return NewStyleRegistry(repo, cache, time.Minute, zap.NewNop()), mr
}
