// Package llm 提供 LLM 补全客户端实现
package llm

import (
	"context"
	"fmt"
	"time"

	openaimodel "github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"eli5-api/internal/application/explain"
	"eli5-api/internal/config"
	"eli5-api/pkg/errors"
	"eli5-api/pkg/metrics"
)

// OpenAIClient 基于 Eino OpenAI 适配器的补全客户端
// 凭证未配置时 chatModel 为 nil 哨兵，所有调用立即失败
type OpenAIClient struct {
	chatModel model.BaseChatModel
	modelName string
}

// NewOpenAIClient 创建 OpenAI 补全客户端
// 凭证缺失不视为启动错误，返回未配置状态的客户端
func NewOpenAIClient(ctx context.Context, cfg *config.LLMConfig) (*OpenAIClient, error) {
	c := &OpenAIClient{
		modelName: cfg.Model,
	}

	if !cfg.Configured() {
		return c, nil
	}

	chatModel, err := openaimodel.NewChatModel(ctx, &openaimodel.ChatModelConfig{
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
		Model:   cfg.Model,
		Timeout: cfg.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create eino chat model: %w", err)
	}

	c.chatModel = chatModel
	return c, nil
}

// Configured 返回凭证是否已配置
func (c *OpenAIClient) Configured() bool {
	return c != nil && c.chatModel != nil
}

// Complete 执行一次补全调用
// 任何传输或 API 层错误统一包装为上游错误，不做子类型区分，不重试
func (c *OpenAIClient) Complete(ctx context.Context, system, user string, maxTokens int, temperature float32) (*explain.CompletionResult, error) {
	if !c.Configured() {
		return nil, errors.ErrAPIKeyMissing
	}

	msgs := []*schema.Message{
		schema.SystemMessage(system),
		schema.UserMessage(user),
	}

	start := time.Now()
	outMsg, err := c.chatModel.Generate(ctx, msgs,
		model.WithMaxTokens(maxTokens),
		model.WithTemperature(temperature),
	)
	metrics.LLMCallDuration.WithLabelValues(c.modelName).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.LLMCallTotal.WithLabelValues(c.modelName, "error").Inc()
		return nil, errors.Wrap(err, errors.CodeLLMProviderError, fmt.Sprintf("Error: %s", err.Error()))
	}
	if outMsg == nil {
		metrics.LLMCallTotal.WithLabelValues(c.modelName, "error").Inc()
		return nil, errors.New(errors.CodeLLMProviderError, "Error: empty llm response")
	}

	metrics.LLMCallTotal.WithLabelValues(c.modelName, "success").Inc()

	result := &explain.CompletionResult{
		Text: outMsg.Content,
	}
	if outMsg.ResponseMeta != nil && outMsg.ResponseMeta.Usage != nil {
		result.TotalTokens = outMsg.ResponseMeta.Usage.TotalTokens
		metrics.LLMTokensUsed.WithLabelValues(c.modelName).Add(float64(result.TotalTokens))
	}

	return result, nil
}
