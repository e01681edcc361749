package controller

import (
	"errors"
	"net/http"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/image_display_service/myErrors"
)

// respondServiceError 把服务层错误映射为 HTTP 状态码
//   - commonerrors.ErrRepoNotFound -> 404
//   - 设置非法、样式不存在 -> 400
//   - clientErrs 中的错误 (由请求内容引起) -> 400
//   - 其它 -> 500，包括库中已存数据的 URI 无法解析
func respondServiceError(c *gin.Context, err error, action string, clientErrs ...error) {
	switch {
	case errors.Is(err, commonerrors.ErrRepoNotFound):
		response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, action+": 资源不存在")
	case errors.Is(err, myErrors.ErrInvalidSettings),
		errors.Is(err, myErrors.ErrStyleNotFound),
		isAnyOf(err, clientErrs):
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, action+": "+err.Error())
	default:
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, action+": "+err.Error())
	}
}

func isAnyOf(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
