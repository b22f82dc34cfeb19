package explain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvePresetKnownLevels(t *testing.T) {
	for _, key := range []string{"eli5", "eli10", "teen", "college", "expert"} {
		resolved, preset := ResolvePreset(key)
		assert.Equal(t, Complexity(key), resolved)
		assert.NotEmpty(t, preset.Instruction)
		assert.Equal(t, 1024, preset.MaxTokens)
		assert.InDelta(t, 0.7, float64(preset.Temperature), 1e-6)
	}
}

func TestResolvePresetFallsBackToELI5(t *testing.T) {
	_, want := ResolvePreset("eli5")

	for _, key := range []string{"", "phd", "ELI5", "eli-5", "quantum", "  "} {
		resolved, preset := ResolvePreset(key)
		assert.Equal(t, DefaultComplexity, resolved, "key %q", key)
		assert.Equal(t, want, preset, "key %q", key)
	}
}

func TestResolvePresetIsTotal(t *testing.T) {
	// 任意输入都必须得到一个可用预设
	resolved, preset := ResolvePreset(string([]byte{0x00, 0xff}))
	assert.Equal(t, DefaultComplexity, resolved)
	assert.NotZero(t, preset.MaxTokens)
}
