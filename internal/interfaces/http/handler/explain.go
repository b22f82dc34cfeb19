// Package handler 提供 HTTP 请求处理器
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eli5-api/internal/application/explain"
	"eli5-api/internal/interfaces/http/dto"
	"eli5-api/pkg/errors"
)

// ExplainHandler 解释请求处理器
type ExplainHandler struct {
	svc *explain.Service
}

// NewExplainHandler 创建解释请求处理器
func NewExplainHandler(svc *explain.Service) *ExplainHandler {
	return &ExplainHandler{
		svc: svc,
	}
}

// Explain 生成解释接口
// @Summary 生成指定主题的解释
// @Description 按难度等级调用 LLM 生成解释
// @Tags Explain
// @Accept json
// @Produce json
// @Param request body dto.ExplainRequest true "解释请求"
// @Success 200 {object} dto.ExplainResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /explain [post]
func (h *ExplainHandler) Explain(c *gin.Context) {
	var req dto.ExplainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// 请求体不可解析等价于缺失主题
		dto.FailWithError(c, errors.ErrEmptyTopic)
		return
	}

	result, err := h.svc.Explain(c.Request.Context(), req.Topic, req.Complexity)
	if err != nil {
		dto.FailWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ExplainResponse{
		Success:     true,
		Topic:       result.Topic,
		Complexity:  result.Complexity,
		Explanation: result.Explanation,
		TokensUsed:  result.TokensUsed,
		Model:       result.Model,
		Cost:        result.Cost,
	})
}
