// Package render 将 Region 列表编译为嵌套标记输出
//
// 每个区间按活跃集大小选择渲染层级（Tier），在结构边界处拆分后
// 独立包裹，最后追加该区间记录的批注命令。对任何合法 Region 列表
// 渲染永不失败：查不到元数据的批注索引被静默跳过，绝不让单个
// 坏引用拖垮整篇文档。
package render

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/riverfjs/annotex-go/internal/notes"
	"github.com/riverfjs/annotex-go/internal/region"
	"github.com/riverfjs/annotex-go/internal/types"
)

// Renderer compiles an ordered Region list into the output dialect.
// One Renderer serves one compilation; it is not safe for concurrent use.
type Renderer struct {
	cfg     *types.RenderConfig
	table   map[int]types.HighlightMeta
	flatten bool
	logger  *log.Logger

	boundaries []string             // longest-first copy of cfg.Boundaries
	pairs      map[string]colorPair // per-tag color cache
}

// New creates a Renderer bound to a config and metadata table.
// A nil config falls back to the defaults; a nil table behaves as empty.
func New(cfg *types.RenderConfig, table map[int]types.HighlightMeta) *Renderer {
	if cfg == nil {
		cfg = types.DefaultRenderConfig()
	}
	boundaries := make([]string, 0, len(cfg.Boundaries))
	for _, b := range cfg.Boundaries {
		if b != "" {
			boundaries = append(boundaries, b)
		}
	}
	sort.SliceStable(boundaries, func(i, j int) bool {
		return len(boundaries[i]) > len(boundaries[j])
	})
	return &Renderer{
		cfg:        cfg,
		table:      table,
		boundaries: boundaries,
		pairs:      make(map[string]colorPair),
	}
}

// SetFlattenComments 控制批注评论是否先经 Markdown 扁平化
func (r *Renderer) SetFlattenComments(on bool) {
	r.flatten = on
}

// SetLogger 设置降级路径使用的日志记录器
func (r *Renderer) SetLogger(logger *log.Logger) {
	r.logger = logger
}

// Render concatenates the rendered form of every region in order.
func (r *Renderer) Render(regions []region.Region) string {
	var out strings.Builder
	for _, reg := range regions {
		r.renderRegion(&out, reg)
	}
	return out.String()
}

// renderRegion emits one region's wrapped text plus its annotation commands.
func (r *Renderer) renderRegion(out *strings.Builder, reg region.Region) {
	// 活跃集重排序：输出必须与调用方切片顺序无关
	active := make([]int, len(reg.Active))
	copy(active, reg.Active)
	sort.Ints(active)

	tier := tierFor(len(active))

	if tier == TierNone {
		out.WriteString(reg.Text)
	} else if !containsAny(reg.Text, r.boundaries) {
		// Cheap path: no structural boundary inside the region.
		out.WriteString(r.wrap(reg.Text, active, tier))
	} else {
		for _, seg := range splitBoundaries(reg.Text, r.boundaries) {
			if seg.boundary || strings.TrimSpace(seg.text) == "" {
				// 边界子串与纯空白段原样直出，不包裹
				out.WriteString(seg.text)
				continue
			}
			out.WriteString(r.wrap(seg.text, active, tier))
		}
	}

	for _, index := range reg.Annotations {
		r.emitAnnotation(out, index)
	}
}

// wrap nests the highlight and underline commands for one sub-segment.
// Highlights go outermost (lowest index first), underlines innermost.
func (r *Renderer) wrap(text string, active []int, tier Tier) string {
	cmd := r.cfg.Command
	content := text

	switch tier {
	case TierSingle:
		pair := r.pairFor(active[0])
		content = r.underline(pair.Dark, r.cfg.RuleThin, content)
		content = fmt.Sprintf(`\%s{%s}{%s}`, cmd.Highlight, pair.Light, content)

	case TierPair:
		lower, upper := r.pairFor(active[0]), r.pairFor(active[1])
		// 两条堆叠下划线：外层粗、低索引深色；内层细、高索引深色
		content = r.underline(upper.Dark, r.cfg.RuleThin, content)
		content = r.underline(lower.Dark, r.cfg.RuleThick, content)
		content = fmt.Sprintf(`\%s{%s}{%s}`, cmd.Highlight, upper.Light, content)
		content = fmt.Sprintf(`\%s{%s}{%s}`, cmd.Highlight, lower.Light, content)

	case TierMany:
		// 单条溢出色粗下划线代替逐 tag 堆叠
		content = r.underline(r.cfg.OverflowColor, r.cfg.RuleThick, content)
		for i := len(active) - 1; i >= 0; i-- {
			pair := r.pairFor(active[i])
			content = fmt.Sprintf(`\%s{%s}{%s}`, cmd.Highlight, pair.Light, content)
		}
	}

	return content
}

func (r *Renderer) underline(colorHex, rule, content string) string {
	return fmt.Sprintf(`\%s{%s}{%s}{%s}`, r.cfg.Command.Underline, colorHex, rule, content)
}

// pairFor resolves the light/dark pair for a highlight index via its tag.
func (r *Renderer) pairFor(index int) colorPair {
	tag := ""
	if meta, ok := r.table[index]; ok {
		tag = meta.Tag
	}
	if pair, ok := r.pairs[tag]; ok {
		return pair
	}
	pair := resolvePair(tag, r.cfg)
	r.pairs[tag] = pair
	return pair
}

// emitAnnotation looks an annotation index up and emits one command per
// recorded comment (one bare command when there are none). Unknown
// indices are skipped: a stale reference must not blank the document.
func (r *Renderer) emitAnnotation(out *strings.Builder, index int) {
	meta, ok := r.table[index]
	if !ok {
		if r.logger != nil {
			r.logger.Printf("annotation index %d missing from metadata table, skipped", index)
		}
		return
	}

	timestamp := ""
	if !meta.CreatedAt.IsZero() {
		timestamp = meta.CreatedAt.Format(r.cfg.TimeLayout)
	}

	comments := meta.Comments
	if len(comments) == 0 {
		comments = []string{""}
	}
	for _, comment := range comments {
		if r.flatten && comment != "" {
			comment = notes.Flatten(comment)
		}
		fmt.Fprintf(out, `\%s{%s}{%s}{%s}{%s}`,
			r.cfg.Command.Annotation,
			escapeReserved(meta.Tag),
			escapeReserved(meta.Author),
			timestamp,
			escapeReserved(comment),
		)
	}
}

// escapeReserved protects the dialect's reserved characters in metadata
// fields. Region text is already in the target dialect and passes
// through untouched; only caller-supplied metadata is escaped.
func escapeReserved(s string) string {
	var out strings.Builder
	for _, ch := range s {
		switch ch {
		case '\\':
			out.WriteString(`\textbackslash `)
		case '{', '}', '&', '%', '#', '_', '$':
			out.WriteByte('\\')
			out.WriteRune(ch)
		default:
			out.WriteRune(ch)
		}
	}
	return out.String()
}
