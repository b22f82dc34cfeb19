package explain

import (
	"context"
)

// CompletionResult 单次补全调用的结果
type CompletionResult struct {
	Text        string
	TotalTokens int
}

// CompletionClient 文本补全客户端端口，由基础设施层实现
type CompletionClient interface {
	// Configured 返回凭证是否已在启动时配置
	Configured() bool

	// Complete 执行一次补全调用
	// 凭证未配置时立即失败，不发起网络请求
	Complete(ctx context.Context, system, user string, maxTokens int, temperature float32) (*CompletionResult, error)
}
