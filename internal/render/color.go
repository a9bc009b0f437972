package render

import (
	"hash/fnv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	"github.com/riverfjs/annotex-go/internal/types"
)

// colorPair 是一个 tag 解析出的浅/深颜色对（hex，不带 #）
type colorPair struct {
	Light string
	Dark  string
}

var (
	white = colorful.Color{R: 1, G: 1, B: 1}
	black = colorful.Color{R: 0, G: 0, B: 0}
)

// resolvePair derives the stable light/dark pair for a tag.
//
// A tag matching an SVG 1.1 color name uses that base color; any other
// tag hashes onto the configured palette. The light variant blends the
// base toward white and the dark variant toward black by the configured
// factor, so the pair stays stable for a given tag and config.
func resolvePair(tag string, cfg *types.RenderConfig) colorPair {
	base := baseColor(tag, cfg.Palette)
	factor := cfg.BlendFactor
	if factor <= 0 || factor > 1 {
		factor = 0.7
	}
	light := base.BlendRgb(white, factor)
	dark := base.BlendRgb(black, factor)
	return colorPair{
		Light: strings.TrimPrefix(strings.ToLower(light.Hex()), "#"),
		Dark:  strings.TrimPrefix(strings.ToLower(dark.Hex()), "#"),
	}
}

// baseColor resolves a tag name to its base color.
func baseColor(tag string, palette []string) colorful.Color {
	if rgba, ok := colornames.Map[strings.ToLower(strings.TrimSpace(tag))]; ok {
		c, ok := colorful.MakeColor(rgba)
		if ok {
			return c
		}
	}
	if len(palette) == 0 {
		palette = types.DefaultRenderConfig().Palette
	}
	hex := palette[hashTag(tag)%uint32(len(palette))]
	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return colorful.Color{R: 0.5, G: 0.5, B: 0.5}
	}
	return c
}

// hashTag FNV-1a，保证同一 tag 在不同编译间得到同一底色
func hashTag(tag string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(tag))
	return h.Sum32()
}
