package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eli5-api/internal/interfaces/http/dto"
)

// InfoHandler 服务信息处理器
type InfoHandler struct{}

// NewInfoHandler 创建服务信息处理器
func NewInfoHandler() *InfoHandler {
	return &InfoHandler{}
}

// Info 服务信息接口
// @Summary 服务信息
// @Description 返回欢迎信息、模型与端点目录
// @Tags System
// @Produce json
// @Success 200 {object} dto.InfoResponse
// @Router / [get]
func (h *InfoHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, dto.InfoResponse{
		Message: "Welcome to ELI5.ai API!",
		Status:  "Server is running 🚀",
		Model:   "GPT-4o-mini (Fast & Reliable)",
		Endpoints: map[string]string{
			"/explain": "POST - Get ELI5 explanation",
			"/health":  "GET - Check server health",
		},
	})
}
