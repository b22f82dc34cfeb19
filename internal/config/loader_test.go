package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	// 无配置文件时全部走默认值
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "eli5-api", cfg.App.Name)
	assert.Equal(t, "0.0.0.0", cfg.Server.HTTP.Host)
	assert.Equal(t, 8000, cfg.Server.HTTP.Port)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	assert.Equal(t, "GPT-4o-mini", cfg.LLM.DisplayName)
	assert.Equal(t, "https://api.openai.com/v1", cfg.LLM.BaseURL)
	assert.Equal(t, "info", cfg.Observability.Logging.Level)
	assert.True(t, cfg.Observability.Metrics.Enabled)
}

func TestLoadAPIKeyFromEnv(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sk-test", cfg.LLM.APIKey)
	assert.True(t, cfg.LLM.Configured())
}

func TestLLMConfigUnconfigured(t *testing.T) {
	cfg := LLMConfig{APIKey: "   "}
	assert.False(t, cfg.Configured())

	cfg.APIKey = ""
	assert.False(t, cfg.Configured())

	cfg.APIKey = "sk-x"
	assert.True(t, cfg.Configured())
}

func TestExpandEnv(t *testing.T) {
	t.Setenv("ELI5_TEST_VAR", "hello")

	assert.Equal(t, "hello", expandEnv("${ELI5_TEST_VAR}"))
	assert.Equal(t, "hello", expandEnv("${ELI5_TEST_VAR:fallback}"))
	assert.Equal(t, "fallback", expandEnv("${ELI5_TEST_UNSET:fallback}"))
	assert.Equal(t, "${ELI5_TEST_UNSET}", expandEnv("${ELI5_TEST_UNSET}"))
	assert.Equal(t, "https://api.openai.com/v1",
		expandEnv("${ELI5_TEST_UNSET:https://api.openai.com/v1}"))
}
