// Package explain 实现解释生成的应用层逻辑
package explain

// Complexity 解释难度等级，闭合枚举
type Complexity string

// 支持的难度等级
const (
	ComplexityELI5    Complexity = "eli5"
	ComplexityELI10   Complexity = "eli10"
	ComplexityTeen    Complexity = "teen"
	ComplexityCollege Complexity = "college"
	ComplexityExpert  Complexity = "expert"
)

// DefaultComplexity 未指定或无法识别时的回退等级
const DefaultComplexity = ComplexityELI5

// Preset 难度预设：指令文本、Token 预算、采样温度
type Preset struct {
	Instruction string
	MaxTokens   int
	Temperature float32
}

// presets 预设表，进程启动即固定，不可变
var presets = map[Complexity]Preset{
	ComplexityELI5: {
		Instruction: "Explain this like I'm 5 years old, using very simple words and fun examples:",
		MaxTokens:   1024,
		Temperature: 0.7,
	},
	ComplexityELI10: {
		Instruction: "Explain this like I'm 10 years old, using clear language and relatable examples:",
		MaxTokens:   1024,
		Temperature: 0.7,
	},
	ComplexityTeen: {
		Instruction: "Explain this like I'm a teenager, with some detail but still easy to understand:",
		MaxTokens:   1024,
		Temperature: 0.7,
	},
	ComplexityCollege: {
		Instruction: "Explain this at a college level with proper terminology:",
		MaxTokens:   1024,
		Temperature: 0.7,
	},
	ComplexityExpert: {
		Instruction: "Explain this with full technical detail for an expert:",
		MaxTokens:   1024,
		Temperature: 0.7,
	},
}

// ResolvePreset 解析难度等级对应的预设
// 全函数：无法识别的等级回退到 eli5，永不失败
func ResolvePreset(key string) (Complexity, Preset) {
	c := Complexity(key)
	if p, ok := presets[c]; ok {
		return c, p
	}
	return DefaultComplexity, presets[DefaultComplexity]
}
