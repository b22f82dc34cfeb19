package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eli5-api/internal/application/explain"
	"eli5-api/internal/interfaces/http/dto"
)

// HealthHandler 健康检查处理器
type HealthHandler struct {
	client explain.CompletionClient
	model  string
}

// NewHealthHandler 创建健康检查处理器
func NewHealthHandler(client explain.CompletionClient, model string) *HealthHandler {
	return &HealthHandler{
		client: client,
		model:  model,
	}
}

// Health 健康检查接口
// 仅反映启动时的凭证配置状态，不调用外部 API
// @Summary 健康检查
// @Description 检查服务健康状态与凭证配置情况
// @Tags System
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	apiStatus := "no API key"
	if h != nil && h.client != nil && h.client.Configured() {
		apiStatus = "connected"
	}

	c.JSON(http.StatusOK, dto.HealthResponse{
		Status: "healthy",
		API:    apiStatus,
		Model:  h.model,
	})
}

// Live 存活检查接口
// @Summary 存活检查
// @Description 检查服务是否存活
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string
// @Router /live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}
