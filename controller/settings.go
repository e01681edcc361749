package controller

import (
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/image_display_service/models/dto"
	"github.com/Xushengqwer/image_display_service/service"
)

// SettingsController 展示设置的读写、表单和摘要，以及可选样式列表
type SettingsController struct {
	displayService service.DisplayService
}

func NewSettingsController(displayService service.DisplayService) *SettingsController {
	return &SettingsController{displayService: displayService}
}

// bindKey 绑定路径中的 (bundle, field_name) 和可选的 view_mode
func bindKey(c *gin.Context) (dto.DisplayKeyURI, string, bool) {
	var key dto.DisplayKeyURI
	if err := c.ShouldBindUri(&key); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的路径参数: "+err.Error())
		return key, "", false
	}
	var query dto.ViewModeQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的查询参数: "+err.Error())
		return key, "", false
	}
	return key, query.ViewMode, true
}

// GetSettings 获取展示设置
// @Summary      获取展示设置
// @Description  未保存过的设置返回默认值，stored=false。
// @Tags         settings (展示设置)
// @Produce      json
// @Param        bundle path string true "内容类型" maxLength(64)
// @Param        field_name path string true "字段名" maxLength(64)
// @Param        view_mode query string false "展示模式，默认 default" maxLength(64)
// @Success      200 {object} vo.DisplaySettingsResponseWrapper "展示设置"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求参数"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/display/settings/{bundle}/{field_name} [get]
func (ctrl *SettingsController) GetSettings(c *gin.Context) {
	key, viewMode, ok := bindKey(c)
	if !ok {
		return
	}
	out, err := ctrl.displayService.GetSettings(c.Request.Context(), key.Bundle, key.FieldName, viewMode)
	if err != nil {
		respondServiceError(c, err, "获取展示设置失败")
		return
	}
	response.RespondSuccess(c, out, "获取展示设置成功")
}

// UpdateSettings 保存展示设置
// @Summary      保存展示设置
// @Description  校验并保存展示设置，引用的图片样式必须存在。保存成功后发送 Kafka 事件。
// @Tags         settings (展示设置)
// @Accept       json
// @Produce      json
// @Param        bundle path string true "内容类型" maxLength(64)
// @Param        field_name path string true "字段名" maxLength(64)
// @Param        request body dto.UpdateDisplaySettingsRequest true "展示设置"
// @Success      200 {object} vo.DisplaySettingsResponseWrapper "保存后的展示设置"
// @Failure      400 {object} vo.BaseResponseWrapper "设置非法或样式不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/display/settings/{bundle}/{field_name} [put]
func (ctrl *SettingsController) UpdateSettings(c *gin.Context) {
	var key dto.DisplayKeyURI
	if err := c.ShouldBindUri(&key); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的路径参数: "+err.Error())
		return
	}
	var req dto.UpdateDisplaySettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求体: "+err.Error())
		return
	}

	out, err := ctrl.displayService.UpdateSettings(c.Request.Context(), key.Bundle, key.FieldName, &req)
	if err != nil {
		respondServiceError(c, err, "保存展示设置失败")
		return
	}
	response.RespondSuccess(c, out, "保存展示设置成功")
}

// SettingsForm 获取设置表单结构
// @Summary      获取设置表单
// @Description  返回设置表单的控件结构，默认值为当前设置，图片样式选项来自样式注册表。
// @Tags         settings (展示设置)
// @Produce      json
// @Param        bundle path string true "内容类型" maxLength(64)
// @Param        field_name path string true "字段名" maxLength(64)
// @Param        view_mode query string false "展示模式，默认 default" maxLength(64)
// @Success      200 {object} vo.SettingsFormResponseWrapper "表单结构"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求参数"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/display/settings/{bundle}/{field_name}/form [get]
func (ctrl *SettingsController) SettingsForm(c *gin.Context) {
	key, viewMode, ok := bindKey(c)
	if !ok {
		return
	}
	out, err := ctrl.displayService.SettingsForm(c.Request.Context(), key.Bundle, key.FieldName, viewMode)
	if err != nil {
		respondServiceError(c, err, "获取设置表单失败")
		return
	}
	response.RespondSuccess(c, out, "获取设置表单成功")
}

// SettingsSummary 获取设置摘要
// @Summary      获取设置摘要
// @Tags         settings (展示设置)
// @Produce      json
// @Param        bundle path string true "内容类型" maxLength(64)
// @Param        field_name path string true "字段名" maxLength(64)
// @Param        view_mode query string false "展示模式，默认 default" maxLength(64)
// @Success      200 {object} vo.SettingsSummaryResponseWrapper "摘要行"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求参数"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/display/settings/{bundle}/{field_name}/summary [get]
func (ctrl *SettingsController) SettingsSummary(c *gin.Context) {
	key, viewMode, ok := bindKey(c)
	if !ok {
		return
	}
	out, err := ctrl.displayService.SettingsSummary(c.Request.Context(), key.Bundle, key.FieldName, viewMode)
	if err != nil {
		respondServiceError(c, err, "获取设置摘要失败")
		return
	}
	response.RespondSuccess(c, out, "获取设置摘要成功")
}

// ListStyles 列出可选的图片样式
// @Summary      图片样式列表
// @Tags         settings (展示设置)
// @Produce      json
// @Success      200 {object} vo.ImageStyleListResponseWrapper "样式列表"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/display/styles [get]
func (ctrl *SettingsController) ListStyles(c *gin.Context) {
	styles, err := ctrl.displayService.ListStyles(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "获取图片样式列表失败")
		return
	}
	response.RespondSuccess(c, styles, "获取图片样式列表成功")
}

// RegisterRoutes 注册 SettingsController 的路由
func (ctrl *SettingsController) RegisterRoutes(group *gin.RouterGroup) {
	settings := group.Group("/settings/:bundle/:field_name")
	{
		settings.GET("", ctrl.GetSettings)             // GET /api/v1/display/settings/:bundle/:field_name
		settings.PUT("", ctrl.UpdateSettings)          // PUT /api/v1/display/settings/:bundle/:field_name
		settings.GET("/form", ctrl.SettingsForm)       // GET /api/v1/display/settings/:bundle/:field_name/form
		settings.GET("/summary", ctrl.SettingsSummary) // GET /api/v1/display/settings/:bundle/:field_name/summary
	}
	group.GET("/styles", ctrl.ListStyles) // GET /api/v1/display/styles
}
