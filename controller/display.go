package controller

import (
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/image_display_service/models/dto"
	"github.com/Xushengqwer/image_display_service/myErrors"
	"github.com/Xushengqwer/image_display_service/service"
)

// DisplayController 图片字段渲染与展示设置
type DisplayController struct {
	displayService service.DisplayService
}

func NewDisplayController(displayService service.DisplayService) *DisplayController {
	return &DisplayController{displayService: displayService}
}

// RenderField 渲染内容的图片字段
// @Summary      渲染图片字段
// @Description  按 (内容类型, 字段, 展示模式) 的展示设置，把内容某个图片字段的取值投影为渲染描述。未保存过设置时使用默认设置。
// @Tags         display (展示)
// @Produce      json
// @Param        content_id path int true "内容ID" minimum(1)
// @Param        field_name path string true "字段名" maxLength(64)
// @Param        view_mode query string false "展示模式，默认 default" maxLength(64)
// @Success      200 {object} vo.RenderFieldResponseWrapper "渲染结果"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求参数"
// @Failure      404 {object} vo.BaseResponseWrapper "内容不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/display/contents/{content_id}/fields/{field_name} [get]
func (ctrl *DisplayController) RenderField(c *gin.Context) {
	var uri dto.RenderFieldURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的路径参数: "+err.Error())
		return
	}
	var query dto.ViewModeQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的查询参数: "+err.Error())
		return
	}

	out, err := ctrl.displayService.RenderField(c.Request.Context(), uri.ContentID, uri.FieldName, query.ViewMode)
	if err != nil {
		respondServiceError(c, err, "渲染图片字段失败")
		return
	}
	response.RespondSuccess(c, out, "渲染成功")
}

// PreviewField 预览未保存内容的图片字段
// @Summary      预览图片字段
// @Description  渲染尚未保存的内容。settings 为空时使用已保存的展示设置；未保存的内容不会生成内容链接。
// @Tags         display (展示)
// @Accept       json
// @Produce      json
// @Param        request body dto.PreviewFieldRequest true "预览请求"
// @Success      200 {object} vo.RenderFieldResponseWrapper "渲染结果"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求体或设置"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/display/preview [post]
func (ctrl *DisplayController) PreviewField(c *gin.Context) {
	var req dto.PreviewFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求体: "+err.Error())
		return
	}

	out, err := ctrl.displayService.PreviewField(c.Request.Context(), &req)
	if err != nil {
		// 预览的 URI 来自请求体
		respondServiceError(c, err, "预览图片字段失败", myErrors.ErrUnsupportedURI)
		return
	}
	response.RespondSuccess(c, out, "预览成功")
}

// RegisterRoutes 注册 DisplayController 的路由
func (ctrl *DisplayController) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("/contents/:content_id/fields/:field_name", ctrl.RenderField) // GET /api/v1/display/contents/:content_id/fields/:field_name
	group.POST("/preview", ctrl.PreviewField)                              // POST /api/v1/display/preview
}
