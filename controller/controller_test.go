package controller

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/image_display_service/formatter"
	"github.com/Xushengqwer/image_display_service/models/dto"
	"github.com/Xushengqwer/image_display_service/models/vo"
	"github.com/Xushengqwer/image_display_service/myErrors"
)

type fakeDisplayService struct {
	err         error
	lastView    string
	lastContent uint64
	lastUpdate  *dto.UpdateDisplaySettingsRequest
}

func (f *fakeDisplayService) RenderField(_ context.Context, contentID uint64, fieldName, viewMode string) (*vo.RenderFieldVO, error) {
	f.lastContent, f.lastView = contentID, viewMode
	if f.err != nil {
		return nil, f.err
	}
	return &vo.RenderFieldVO{
		ContentID: contentID,
		FieldName: fieldName,
		ViewMode:  viewMode,
		Result:    &formatter.ProjectionResult{Theme: formatter.TemplateBxSlider, Items: []formatter.Element{}},
	}, nil
}

func (f *fakeDisplayService) PreviewField(_ context.Context, req *dto.PreviewFieldRequest) (*vo.RenderFieldVO, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &vo.RenderFieldVO{Bundle: req.Bundle, FieldName: req.FieldName, Result: &formatter.ProjectionResult{Items: []formatter.Element{}}}, nil
}

func (f *fakeDisplayService) GetSettings(_ context.Context, bundle, fieldName, viewMode string) (*vo.DisplaySettingsVO, error) {
	f.lastView = viewMode
	if f.err != nil {
		return nil, f.err
	}
	return &vo.DisplaySettingsVO{Bundle: bundle, FieldName: fieldName, ViewMode: viewMode}, nil
}

func (f *fakeDisplayService) UpdateSettings(_ context.Context, bundle, fieldName string, req *dto.UpdateDisplaySettingsRequest) (*vo.DisplaySettingsVO, error) {
	f.lastUpdate = req
	if f.err != nil {
		return nil, f.err
	}
	return &vo.DisplaySettingsVO{Bundle: bundle, FieldName: fieldName, ViewMode: req.ViewMode, Settings: req.ToSettings(), Stored: true}, nil
}

func (f *fakeDisplayService) SettingsForm(_ context.Context, bundle, fieldName, viewMode string) (*vo.SettingsFormVO, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &vo.SettingsFormVO{Bundle: bundle, FieldName: fieldName, ViewMode: viewMode, Form: formatter.BuildForm(formatter.Settings{}, nil)}, nil
}

func (f *fakeDisplayService) SettingsSummary(context.Context, string, string, string) (*vo.SettingsSummaryVO, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &vo.SettingsSummaryVO{Summary: []string{"原始图片"}}, nil
}

func (f *fakeDisplayService) ListStyles(context.Context) ([]vo.ImageStyleVO, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []vo.ImageStyleVO{{StyleID: "thumb", Label: "Thumbnail"}}, nil
}

func newTestEngine(svc *fakeDisplayService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	group := r.Group("/api/v1/display")
	NewDisplayController(svc).RegisterRoutes(group)
	NewSettingsController(svc).RegisterRoutes(group)
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRenderField(t *testing.T) {
	svc := &fakeDisplayService{}
	r := newTestEngine(svc)

	w := doRequest(r, http.MethodGet, "/api/v1/display/contents/7/fields/field_gallery?view_mode=teaser", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint64(7), svc.lastContent)
	assert.Equal(t, "teaser", svc.lastView)
	assert.Contains(t, w.Body.String(), formatter.TemplateBxSlider)

	w = doRequest(r, http.MethodGet, "/api/v1/display/contents/abc/fields/field_gallery", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRenderField_ErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("获取内容 7 失败: %w", commonerrors.ErrRepoNotFound), http.StatusNotFound},
		{fmt.Errorf("渲染失败: %w", myErrors.ErrUnsupportedURI), http.StatusInternalServerError},
		{fmt.Errorf("db down"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		r := newTestEngine(&fakeDisplayService{err: tc.err})
		w := doRequest(r, http.MethodGet, "/api/v1/display/contents/7/fields/field_gallery", "")
		assert.Equal(t, tc.want, w.Code, tc.err.Error())
	}
}

func TestPreviewField(t *testing.T) {
	r := newTestEngine(&fakeDisplayService{})

	w := doRequest(r, http.MethodPost, "/api/v1/display/preview",
		`{"bundle":"article","field_name":"field_gallery","items":[{"uri":"public://a.jpg"}]}`)
	assert.Equal(t, http.StatusOK, w.Code)

	// 缺少 bundle
	w = doRequest(r, http.MethodPost, "/api/v1/display/preview", `{"field_name":"field_gallery"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 取值缺少 uri
	w = doRequest(r, http.MethodPost, "/api/v1/display/preview",
		`{"bundle":"article","field_name":"field_gallery","items":[{"alt":"x"}]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 模板取 none 可以通过绑定，未知模板被拒绝
	w = doRequest(r, http.MethodPost, "/api/v1/display/preview",
		`{"bundle":"article","field_name":"field_gallery","settings":{"images_template":"none"}}`)
	assert.Equal(t, http.StatusOK, w.Code)
	w = doRequest(r, http.MethodPost, "/api/v1/display/preview",
		`{"bundle":"article","field_name":"field_gallery","settings":{"images_template":"flexslider"}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 请求体中的 URI 无法解析属于客户端错误
	r = newTestEngine(&fakeDisplayService{err: fmt.Errorf("预览失败: %w", myErrors.ErrUnsupportedURI)})
	w = doRequest(r, http.MethodPost, "/api/v1/display/preview",
		`{"bundle":"article","field_name":"field_gallery","items":[{"uri":"ftp://a.jpg"}]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateSettings(t *testing.T) {
	svc := &fakeDisplayService{}
	r := newTestEngine(svc)

	w := doRequest(r, http.MethodPut, "/api/v1/display/settings/article/field_gallery",
		`{"view_mode":"full","image_style":"large","image_link":"file","images_template":"bootstrap-carousel"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.lastUpdate)
	assert.Equal(t, "full", svc.lastUpdate.ViewMode)
	assert.Equal(t, "large", svc.lastUpdate.ImageStyle)
	assert.Equal(t, "file", svc.lastUpdate.ImageLink)

	w = doRequest(r, http.MethodPut, "/api/v1/display/settings/article/field_gallery", `{"image_link":"elsewhere"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	r = newTestEngine(&fakeDisplayService{err: fmt.Errorf("%w: large", myErrors.ErrStyleNotFound)})
	w = doRequest(r, http.MethodPut, "/api/v1/display/settings/article/field_gallery", `{"image_style":"large"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSettingsReadEndpoints(t *testing.T) {
	svc := &fakeDisplayService{}
	r := newTestEngine(svc)

	w := doRequest(r, http.MethodGet, "/api/v1/display/settings/article/field_gallery?view_mode=teaser", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "teaser", svc.lastView)

	w = doRequest(r, http.MethodGet, "/api/v1/display/settings/article/field_gallery/form", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "image_thumb_style")

	w = doRequest(r, http.MethodGet, "/api/v1/display/settings/article/field_gallery/summary", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "原始图片")

	w = doRequest(r, http.MethodGet, "/api/v1/display/styles", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "thumb")

	r = newTestEngine(&fakeDisplayService{err: fmt.Errorf("redis down")})
	w = doRequest(r, http.MethodGet, "/api/v1/display/styles", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
