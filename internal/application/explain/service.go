package explain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"eli5-api/pkg/errors"
	"eli5-api/pkg/logger"
	"eli5-api/pkg/metrics"
)

// systemPersona 固定的系统角色设定
const systemPersona = "You are a friendly AI tutor that explains complex topics in simple, engaging ways. Use analogies, examples, and a conversational tone."

// closingDirective 用户提示词的固定收尾指令
const closingDirective = "Please provide a clear, engaging explanation with examples. Keep it friendly and conversational!"

// costPerToken 每 Token 成本（美元）
const costPerToken = 0.0000015

// Result 一次成功解释的产出
type Result struct {
	Topic       string
	Complexity  string
	Explanation string
	TokensUsed  int
	Model       string
	Cost        string
}

// Service 解释生成编排器
type Service struct {
	client CompletionClient
	model  string
}

// NewService 创建解释服务
// client 在装配阶段显式构造注入，无进程级可变状态
func NewService(client CompletionClient, model string) *Service {
	return &Service{
		client: client,
		model:  model,
	}
}

// Explain 生成指定主题的解释
// 流程：校验 -> 解析预设 -> 构建提示词 -> 调用补全 -> 组装结果
func (s *Service) Explain(ctx context.Context, topic, complexity string) (*Result, error) {
	if s == nil || s.client == nil {
		return nil, errors.ErrAPIKeyMissing
	}

	// 校验：主题去除空白后不能为空
	if strings.TrimSpace(topic) == "" {
		return nil, errors.ErrEmptyTopic
	}

	// 未指定难度时回退到默认等级；无法识别的值原样回显，仅预设回退
	echo := complexity
	if strings.TrimSpace(echo) == "" {
		echo = string(DefaultComplexity)
	}
	resolved, preset := ResolvePreset(echo)

	if !s.client.Configured() {
		return nil, errors.ErrAPIKeyMissing
	}

	prompt := buildUserPrompt(preset.Instruction, topic)

	start := time.Now()
	out, err := s.client.Complete(ctx, systemPersona, prompt, preset.MaxTokens, preset.Temperature)
	if err != nil {
		metrics.ExplainRequestsTotal.WithLabelValues(string(resolved), "error").Inc()
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.Wrap(err, errors.CodeLLMProviderError, fmt.Sprintf("Error: %s", err.Error()))
	}

	metrics.ExplainRequestsTotal.WithLabelValues(string(resolved), "success").Inc()
	metrics.ExplainDuration.WithLabelValues(string(resolved)).Observe(time.Since(start).Seconds())

	logger.Info(ctx, "explanation generated",
		"complexity", resolved,
		"tokens_used", out.TotalTokens,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return &Result{
		Topic:       topic,
		Complexity:  echo,
		Explanation: out.Text,
		TokensUsed:  out.TotalTokens,
		Model:       s.model,
		Cost:        formatCost(out.TotalTokens),
	}, nil
}

// buildUserPrompt 拼接预设指令、主题和收尾指令
func buildUserPrompt(instruction, topic string) string {
	return fmt.Sprintf("%s\n\nTopic: %s\n\n%s", instruction, topic, closingDirective)
}

// formatCost 按每 Token 成本计价，格式化为六位小数
func formatCost(totalTokens int) string {
	return fmt.Sprintf("$%.6f", float64(totalTokens)*costPerToken)
}
