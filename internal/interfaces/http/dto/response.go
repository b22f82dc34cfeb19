// Package dto 提供 HTTP 层数据传输对象
package dto

import (
	"github.com/gin-gonic/gin"

	"eli5-api/pkg/errors"
)

// ErrorResponse 错误响应结构
// 对外契约固定为 {"detail": "..."}，消息原样透传
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// Fail 返回错误响应
func Fail(c *gin.Context, httpCode int, detail string) {
	c.JSON(httpCode, ErrorResponse{
		Detail: detail,
	})
}

// FailWithError 按 AppError 的状态码和消息返回错误响应
func FailWithError(c *gin.Context, err error) {
	appErr := errors.AsAppError(err)
	Fail(c, appErr.HTTPStatus, appErr.Message)
}
