package service

import (
	"context"
	"testing"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	commonEntities "github.com/Xushengqwer/go-common/models/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Xushengqwer/image_display_service/formatter"
	"github.com/Xushengqwer/image_display_service/models/dto"
	"github.com/Xushengqwer/image_display_service/models/entities"
	"github.com/Xushengqwer/image_display_service/myErrors"
)

type displayFixture struct {
	svc       DisplayService
	settings  *fakeSettingRepo
	publisher *fakePublisher
}

func newDisplayFixture(t *testing.T) *displayFixture {
	t.Helper()
	registry, _ := newTestRegistry(t, &fakeStyleRepo{styles: testStyles()})
	files, err := NewFileURLGenerator(fakeObjects{}, testSite)
	require.NoError(t, err)

	contents := &fakeContentRepo{contents: map[uint64]*entities.Content{
		7: {BaseModel: commonEntities.BaseModel{ID: 7}, Title: "Gallery", Bundle: "article", Slug: "gallery"},
	}}
	items := &fakeItemRepo{items: map[string][]*entities.MediaItem{
		"field_gallery": {
			{BaseModel: commonEntities.BaseModel{ID: 1}, ContentID: 7, FieldName: "field_gallery", Delta: 0, URI: "cos://media/a.jpg", Alt: "a", Classes: "rounded"},
			{BaseModel: commonEntities.BaseModel{ID: 2}, ContentID: 7, FieldName: "field_gallery", Delta: 1, URI: "public://b.jpg", Alt: "b"},
		},
	}}
	settings := &fakeSettingRepo{settings: map[string]*entities.DisplaySetting{}}
	publisher := newFakePublisher()

	svc := NewDisplayService(contents, items, settings, registry, files, publisher, testSite, nil, zap.NewNop())
	return &displayFixture{svc: svc, settings: settings, publisher: publisher}
}

func (f *displayFixture) store(bundle, fieldName, viewMode string, s formatter.Settings) {
	setting := &entities.DisplaySetting{Bundle: bundle, FieldName: fieldName, ViewMode: viewMode}
	setting.ApplySettings(s)
	_ = f.settings.UpsertSetting(context.Background(), nil, setting)
}

func TestRenderField_WrappedWithContentLink(t *testing.T) {
	f := newDisplayFixture(t)
	f.store("article", "field_gallery", "default", formatter.Settings{
		ImageStyle: "large",
		ThumbStyle: "small",
		Template:   formatter.TemplateBxSlider,
		Link:       formatter.LinkContent,
		ImageClass: "img-responsive",
		LinkClass:  "colorbox",
	})

	out, err := f.svc.RenderField(context.Background(), 7, "field_gallery", "")
	require.NoError(t, err)
	assert.Equal(t, "default", out.ViewMode)
	assert.Equal(t, "article", out.Bundle)

	res := out.Result
	require.Len(t, res.Items, 2)
	assert.Equal(t, formatter.TemplateBxSlider, res.Theme)

	first := res.Items[0]
	assert.Equal(t, 0, first.Delta)
	assert.Equal(t, "https://www.example.com/node/gallery", first.Image.URL)
	assert.Equal(t, "colorbox", first.Image.Class)
	assert.Equal(t, "large", first.Image.ImageStyle)
	assert.Equal(t, []string{"rounded", "img-responsive"}, first.Image.ItemAttributes.Classes())
	assert.Equal(t, []string{"config:image.style.large", "file:1"}, first.Image.Cache.Tags)
	assert.Empty(t, first.Image.Cache.Contexts)
	require.NotNil(t, first.Thumb)
	assert.Equal(t, "small", first.Thumb.ImageStyle)

	assert.Equal(t, []string{"config:image.style.large", "file:2"}, res.Items[1].Image.Cache.Tags)
}

func TestRenderField_DefaultSettings(t *testing.T) {
	f := newDisplayFixture(t)

	out, err := f.svc.RenderField(context.Background(), 7, "field_gallery", "teaser")
	require.NoError(t, err)
	assert.Equal(t, "teaser", out.ViewMode)
	assert.False(t, out.Result.Wrapped())
	require.Len(t, out.Result.Items, 2)
	for _, el := range out.Result.Items {
		assert.Empty(t, el.Image.URL)
		assert.Empty(t, el.Image.ImageStyle)
		assert.Nil(t, el.Thumb)
	}
}

func TestRenderField_FileLink(t *testing.T) {
	f := newDisplayFixture(t)
	f.store("article", "field_gallery", "default", formatter.Settings{Link: formatter.LinkFile})

	out, err := f.svc.RenderField(context.Background(), 7, "field_gallery", "default")
	require.NoError(t, err)
	require.Len(t, out.Result.Items, 2)
	assert.Equal(t, "https://cdn.example.com/media/a.jpg", out.Result.Items[0].Image.URL)
	assert.Equal(t, "https://www.example.com/sites/files/b.jpg", out.Result.Items[1].Image.URL)
	assert.Equal(t, []string{formatter.CacheContextURLSite}, out.Result.Items[0].Image.Cache.Contexts)
}

func TestRenderField_EmptyField(t *testing.T) {
	f := newDisplayFixture(t)

	out, err := f.svc.RenderField(context.Background(), 7, "field_none", "default")
	require.NoError(t, err)
	assert.True(t, out.Result.Empty())
	assert.NotNil(t, out.Result.Items)
}

func TestRenderField_ContentNotFound(t *testing.T) {
	f := newDisplayFixture(t)

	_, err := f.svc.RenderField(context.Background(), 404, "field_gallery", "default")
	assert.ErrorIs(t, err, commonerrors.ErrRepoNotFound)
}

func TestRenderField_InvalidStoredSettingsFallBack(t *testing.T) {
	f := newDisplayFixture(t)
	f.settings.settings[settingKey("article", "field_gallery", "default")] = &entities.DisplaySetting{
		Bundle: "article", FieldName: "field_gallery", ViewMode: "default",
		ImagesTemplate: "removed-template",
	}

	out, err := f.svc.RenderField(context.Background(), 7, "field_gallery", "default")
	require.NoError(t, err)
	assert.False(t, out.Result.Wrapped())
}

func TestPreviewField(t *testing.T) {
	f := newDisplayFixture(t)
	req := &dto.PreviewFieldRequest{
		Bundle:    "article",
		FieldName: "field_gallery",
		Settings:  &dto.DisplaySettingsDTO{ImageLink: "content", ImageClass: "preview"},
		Items: []dto.PreviewItemDTO{
			{URI: "public://draft.jpg", Alt: "draft", Classes: "a b"},
		},
	}

	out, err := f.svc.PreviewField(context.Background(), req)
	require.NoError(t, err)
	assert.Zero(t, out.ContentID)
	require.Len(t, out.Result.Items, 1)
	el := out.Result.Items[0]
	assert.Empty(t, el.Image.URL, "unsaved content has no canonical link")
	assert.Equal(t, []string{"a", "b", "preview"}, el.Image.ItemAttributes.Classes())
	assert.Equal(t, "draft", el.Image.Item.Alt)
}

func TestPreviewField_StoredSettingsAndInvalid(t *testing.T) {
	f := newDisplayFixture(t)
	f.store("article", "field_gallery", "default", formatter.Settings{Link: formatter.LinkFile})

	out, err := f.svc.PreviewField(context.Background(), &dto.PreviewFieldRequest{
		Bundle:    "article",
		FieldName: "field_gallery",
		Items:     []dto.PreviewItemDTO{{URI: "cos://x.jpg"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/x.jpg", out.Result.Items[0].Image.URL)

	_, err = f.svc.PreviewField(context.Background(), &dto.PreviewFieldRequest{
		Bundle:    "article",
		FieldName: "field_gallery",
		Settings:  &dto.DisplaySettingsDTO{ImagesTemplate: "bogus"},
	})
	assert.ErrorIs(t, err, myErrors.ErrInvalidSettings)
}

func TestGetSettings_Default(t *testing.T) {
	f := newDisplayFixture(t)

	out, err := f.svc.GetSettings(context.Background(), "article", "field_gallery", "")
	require.NoError(t, err)
	assert.False(t, out.Stored)
	assert.Nil(t, out.UpdatedAt)
	assert.Equal(t, "default", out.ViewMode)
	assert.Equal(t, formatter.Settings{}, out.Settings)
}

func TestUpdateSettings(t *testing.T) {
	f := newDisplayFixture(t)
	req := &dto.UpdateDisplaySettingsRequest{
		ViewMode: "full",
		DisplaySettingsDTO: dto.DisplaySettingsDTO{
			ImageStyle:     "large",
			ThumbStyle:     "small",
			ImagesTemplate: formatter.TemplateBootstrap,
			ImageLink:      "none",
			ImageClass:     "  spaced  ",
		},
	}

	out, err := f.svc.UpdateSettings(context.Background(), "article", "field_gallery", req)
	require.NoError(t, err)
	assert.True(t, out.Stored)
	require.NotNil(t, out.UpdatedAt)
	assert.Equal(t, "full", out.ViewMode)
	assert.Equal(t, formatter.LinkNone, out.Settings.Link)
	assert.Equal(t, "spaced", out.Settings.ImageClass)
	assert.Equal(t, 1, f.settings.upserts)

	select {
	case ev := <-f.publisher.events:
		assert.Equal(t, "article", ev.bundle)
		assert.Equal(t, "field_gallery", ev.fieldName)
		assert.Equal(t, "full", ev.viewMode)
		assert.Equal(t, "large", ev.settings.ImageStyle)
	case <-time.After(2 * time.Second):
		t.Fatal("settings updated event was not published")
	}
}

func TestUpdateSettings_Rejected(t *testing.T) {
	f := newDisplayFixture(t)
	ctx := context.Background()

	_, err := f.svc.UpdateSettings(ctx, "article", "field_gallery", &dto.UpdateDisplaySettingsRequest{
		DisplaySettingsDTO: dto.DisplaySettingsDTO{ImageStyle: "missing"},
	})
	assert.ErrorIs(t, err, myErrors.ErrStyleNotFound)

	_, err = f.svc.UpdateSettings(ctx, "article", "field_gallery", &dto.UpdateDisplaySettingsRequest{
		DisplaySettingsDTO: dto.DisplaySettingsDTO{ImagesTemplate: "flexslider"},
	})
	assert.ErrorIs(t, err, myErrors.ErrInvalidSettings)

	assert.Zero(t, f.settings.upserts)
	assert.Empty(t, f.publisher.events)
}

func TestSettingsSummaryAndForm(t *testing.T) {
	f := newDisplayFixture(t)
	f.store("article", "field_gallery", "default", formatter.Settings{ImageStyle: "large", Link: formatter.LinkFile})
	ctx := context.Background()

	summary, err := f.svc.SettingsSummary(ctx, "article", "field_gallery", "default")
	require.NoError(t, err)
	assert.Equal(t, []string{"图片样式: Large (480x480)", "链接到文件"}, summary.Summary)

	form, err := f.svc.SettingsForm(ctx, "article", "field_gallery", "default")
	require.NoError(t, err)
	field, ok := form.Form.Field("image_style")
	require.True(t, ok)
	assert.Equal(t, "large", field.DefaultValue)
	assert.Equal(t, []formatter.Option{
		{Value: "large", Label: "Large (480x480)"},
		{Value: "small", Label: "Small (100x100)"},
	}, field.Options)
}
