package explain

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eli5-api/pkg/errors"
)

// stubClient 测试用补全客户端
type stubClient struct {
	configured bool
	text       string
	tokens     int
	err        error

	calls      int
	lastSystem string
	lastUser   string
	lastMaxTok int
	lastTemp   float32
}

func (s *stubClient) Configured() bool {
	return s.configured
}

func (s *stubClient) Complete(_ context.Context, system, user string, maxTokens int, temperature float32) (*CompletionResult, error) {
	s.calls++
	s.lastSystem = system
	s.lastUser = user
	s.lastMaxTok = maxTokens
	s.lastTemp = temperature
	if s.err != nil {
		return nil, s.err
	}
	return &CompletionResult{Text: s.text, TotalTokens: s.tokens}, nil
}

func TestExplainSuccess(t *testing.T) {
	client := &stubClient{configured: true, text: "Imagine...", tokens: 80}
	svc := NewService(client, "GPT-4o-mini")

	result, err := svc.Explain(context.Background(), "black holes", "eli5")
	require.NoError(t, err)

	assert.Equal(t, "black holes", result.Topic)
	assert.Equal(t, "eli5", result.Complexity)
	assert.Equal(t, "Imagine...", result.Explanation)
	assert.Equal(t, 80, result.TokensUsed)
	assert.Equal(t, "GPT-4o-mini", result.Model)
	assert.Equal(t, "$0.000120", result.Cost)
}

func TestExplainPromptAssembly(t *testing.T) {
	client := &stubClient{configured: true, text: "ok", tokens: 1}
	svc := NewService(client, "GPT-4o-mini")

	_, err := svc.Explain(context.Background(), "gravity", "college")
	require.NoError(t, err)

	assert.Contains(t, client.lastSystem, "friendly AI tutor")
	assert.Equal(t,
		"Explain this at a college level with proper terminology:\n\nTopic: gravity\n\nPlease provide a clear, engaging explanation with examples. Keep it friendly and conversational!",
		client.lastUser,
	)
	assert.Equal(t, 1024, client.lastMaxTok)
	assert.InDelta(t, 0.7, float64(client.lastTemp), 1e-6)
}

func TestExplainEmptyTopic(t *testing.T) {
	client := &stubClient{configured: true}
	svc := NewService(client, "GPT-4o-mini")

	for _, topic := range []string{"", "   ", "\t\n"} {
		_, err := svc.Explain(context.Background(), topic, "expert")
		require.Error(t, err, "topic %q", topic)

		appErr := errors.AsAppError(err)
		assert.Equal(t, errors.CodeInvalidParam, appErr.Code)
		assert.Equal(t, 400, appErr.HTTPStatus)
	}
	assert.Zero(t, client.calls, "validation failures must not reach the client")
}

func TestExplainUnconfiguredClient(t *testing.T) {
	client := &stubClient{configured: false}
	svc := NewService(client, "GPT-4o-mini")

	_, err := svc.Explain(context.Background(), "x", "")
	require.Error(t, err)

	appErr := errors.AsAppError(err)
	assert.Equal(t, errors.CodeAPIKeyMissing, appErr.Code)
	assert.Equal(t, 500, appErr.HTTPStatus)
	assert.Equal(t, "API key not configured. Please set OPENAI_API_KEY in .env file", appErr.Message)
	assert.Zero(t, client.calls)
}

func TestExplainValidationBeforeCredentialCheck(t *testing.T) {
	// 主题为空且凭证缺失时，校验先行，返回 400
	client := &stubClient{configured: false}
	svc := NewService(client, "GPT-4o-mini")

	_, err := svc.Explain(context.Background(), "  ", "eli5")
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidParam, errors.AsAppError(err).Code)
}

func TestExplainUpstreamError(t *testing.T) {
	client := &stubClient{configured: true, err: fmt.Errorf("rate limit exceeded")}
	svc := NewService(client, "GPT-4o-mini")

	_, err := svc.Explain(context.Background(), "entropy", "teen")
	require.Error(t, err)

	appErr := errors.AsAppError(err)
	assert.Equal(t, errors.CodeLLMProviderError, appErr.Code)
	assert.Equal(t, 500, appErr.HTTPStatus)
	assert.Equal(t, "Error: rate limit exceeded", appErr.Message)
}

func TestExplainUnrecognizedComplexityAliasesELI5(t *testing.T) {
	client := &stubClient{configured: true, text: "ok", tokens: 10}
	svc := NewService(client, "GPT-4o-mini")

	result, err := svc.Explain(context.Background(), "tides", "phd")
	require.NoError(t, err)

	// 预设回退到 eli5，但请求的等级原样回显
	_, eli5 := ResolvePreset("eli5")
	assert.Equal(t, "phd", result.Complexity)
	assert.Contains(t, client.lastUser, eli5.Instruction)
	assert.Equal(t, eli5.MaxTokens, client.lastMaxTok)
	assert.InDelta(t, float64(eli5.Temperature), float64(client.lastTemp), 1e-6)
}

func TestExplainDefaultsComplexityWhenAbsent(t *testing.T) {
	client := &stubClient{configured: true, text: "ok", tokens: 10}
	svc := NewService(client, "GPT-4o-mini")

	result, err := svc.Explain(context.Background(), "rainbows", "")
	require.NoError(t, err)
	assert.Equal(t, "eli5", result.Complexity)
}

func TestCostFormatting(t *testing.T) {
	cases := map[int]string{
		0:       "$0.000000",
		80:      "$0.000120",
		1000:    "$0.001500",
		1000000: "$1.500000",
	}
	for tokens, want := range cases {
		assert.Equal(t, want, formatCost(tokens), "tokens %d", tokens)
	}
}
