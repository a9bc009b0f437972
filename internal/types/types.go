package types

import "time"

// HighlightMeta 表示一个高亮索引对应的元数据
//
// 由上层批注持久化层填充，本库只读。Tag 用于颜色解析，
// Author/Comments/CreatedAt 仅在生成批注命令时使用。
type HighlightMeta struct {
	Tag       string    `json:"tag"`
	Author    string    `json:"author,omitempty"`
	Comments  []string  `json:"comments,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// Commands 定义输出方言中各命令的拼写
type Commands struct {
	Highlight  string // 高亮包裹命令，参数：浅色 hex、内容
	Underline  string // 下划线包裹命令，参数：深色 hex、线宽、内容
	Annotation string // 批注命令，参数：tag、author、timestamp、comment
}

// DefaultCommands 返回默认命令拼写
func DefaultCommands() *Commands {
	return &Commands{
		Highlight:  "annotHL",
		Underline:  "annotUL",
		Annotation: "annotNote",
	}
}

// RenderConfig 渲染配置
type RenderConfig struct {
	Command *Commands

	// Boundaries 是包裹命令不可跨越的结构边界子串。
	// 扫描时按长度从长到短匹配。
	Boundaries []string

	// 下划线线宽
	RuleThin  string
	RuleThick string

	// OverflowColor 是三层及以上重叠时使用的固定下划线颜色（hex，不带 #）
	OverflowColor string

	// BlendFactor 控制浅色/深色变体向白/黑混合的比例
	BlendFactor float64

	// Palette 是 tag 名不是颜色名时的回退底色（hex，不带 #）
	Palette []string

	// TimeLayout 是批注命令中时间戳的格式
	TimeLayout string
}

// DefaultRenderConfig 返回默认渲染配置
func DefaultRenderConfig() *RenderConfig {
	return &RenderConfig{
		Command:       DefaultCommands(),
		Boundaries:    []string{"\n\n", `\\`, "&"},
		RuleThin:      "0.5pt",
		RuleThick:     "1.1pt",
		OverflowColor: "808080",
		BlendFactor:   0.7,
		Palette: []string{
			"e6194b", "3cb44b", "ffe119", "4363d8",
			"f58231", "911eb4", "46f0f0", "f032e6",
			"bcf60c", "fabebe", "008080", "e6beff",
		},
		TimeLayout: "2006-01-02 15:04",
	}
}
