package render

import (
	"regexp"
	"testing"

	"github.com/riverfjs/annotex-go/internal/types"
)

var hexRe = regexp.MustCompile(`^[0-9a-f]{6}$`)

// TestResolvePair_Stable 测试同一 tag 的颜色对跨调用稳定
func TestResolvePair_Stable(t *testing.T) {
	cfg := types.DefaultRenderConfig()
	for _, tag := range []string{"tomato", "not-a-color-name", ""} {
		a := resolvePair(tag, cfg)
		b := resolvePair(tag, cfg)
		if a != b {
			t.Errorf("resolvePair(%q) unstable: %v vs %v", tag, a, b)
		}
	}
}

// TestResolvePair_HexForm 测试输出是小写六位 hex，不带 #
func TestResolvePair_HexForm(t *testing.T) {
	cfg := types.DefaultRenderConfig()
	pair := resolvePair("steelblue", cfg)
	if !hexRe.MatchString(pair.Light) || !hexRe.MatchString(pair.Dark) {
		t.Errorf("pair = %+v, want bare lowercase rrggbb", pair)
	}
}

// TestResolvePair_LightDarkDistinct 测试浅深变体互不相同且异于纯白纯黑
func TestResolvePair_LightDarkDistinct(t *testing.T) {
	cfg := types.DefaultRenderConfig()
	pair := resolvePair("tomato", cfg)
	if pair.Light == pair.Dark {
		t.Errorf("light and dark variants must differ: %+v", pair)
	}
	if pair.Light == "ffffff" || pair.Dark == "000000" {
		t.Errorf("blend must not collapse to pure white/black: %+v", pair)
	}
}

// TestResolvePair_DistinctTags 测试不同颜色名 tag 得到不同颜色对
func TestResolvePair_DistinctTags(t *testing.T) {
	cfg := types.DefaultRenderConfig()
	seen := make(map[colorPair]string)
	for _, tag := range []string{"tomato", "steelblue", "goldenrod", "orchid", "seagreen"} {
		pair := resolvePair(tag, cfg)
		if other, dup := seen[pair]; dup {
			t.Errorf("tags %q and %q resolve to the same pair %+v", tag, other, pair)
		}
		seen[pair] = tag
	}
}

// TestBaseColor_PaletteFallback 测试非颜色名 tag 落到回退色板
func TestBaseColor_PaletteFallback(t *testing.T) {
	cfg := types.DefaultRenderConfig()
	a := baseColor("sprint-review", cfg.Palette)
	b := baseColor("sprint-review", cfg.Palette)
	if a != b {
		t.Errorf("palette fallback unstable for the same tag: %v vs %v", a, b)
	}
}

// TestResolvePair_BadBlendFactor 测试越界混合系数的兜底
func TestResolvePair_BadBlendFactor(t *testing.T) {
	cfg := types.DefaultRenderConfig()
	cfg.BlendFactor = 1.5
	pair := resolvePair("tomato", cfg)
	if !hexRe.MatchString(pair.Light) || !hexRe.MatchString(pair.Dark) {
		t.Errorf("pair = %+v, want valid hex even with out-of-range factor", pair)
	}
}
