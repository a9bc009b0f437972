package annotex

import (
	"sync"

	"github.com/riverfjs/annotex-go/internal/types"
)

// 导出类型别名
type (
	HighlightMeta = types.HighlightMeta
	RenderConfig  = types.RenderConfig
	Commands      = types.Commands
)

var (
	defaultConfig     *RenderConfig
	defaultConfigOnce sync.Once
)

// DefaultConfig returns the default render configuration (singleton).
func DefaultConfig() *RenderConfig {
	defaultConfigOnce.Do(func() {
		defaultConfig = types.DefaultRenderConfig()
	})
	return defaultConfig
}
