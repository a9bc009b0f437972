package region

import (
	"sort"

	"github.com/riverfjs/annotex-go/internal/lexer"
)

// Build 顺序消费 token 序列，产出有序 Region 列表
//
// 状态机规则：
//   - Text：追加到当前累积，不触发边界
//   - HighlightStart(n)：无条件 flush，然后将 n 加入活跃集（幂等）
//   - HighlightEnd(n)：无条件 flush，然后将 n 移出活跃集（不在集中则忽略）
//   - Annotation(n)：记录到当前累积，不触发边界
//
// flush 时若累积文本为空则什么都不发生，因此相邻标记之间、流首流尾
// 的标记串都不会产出空 Region。落在零文本 flush 间隙里的批注索引会被
// 静默丢弃——上游系统对该行为有测试断言，保持原样。流结束时执行最后
// 一次 flush，未闭合的高亮保持活跃直到输入末尾。
func Build(tokens []lexer.Token) []Region {
	regions := make([]Region, 0)
	active := make(map[int]struct{})
	acc := newAccumulator()

	// flush emits the pending region, snapshotting the active set before
	// the current token's effect. A zero-text flush emits nothing but
	// still resets: annotation indices stranded in a zero-text gap are
	// dropped, never carried into the next region.
	flush := func() {
		if !acc.Empty() {
			regions = append(regions, Region{
				Text:        acc.Text(),
				Active:      snapshot(active),
				Annotations: acc.Annotations(),
			})
		}
		acc.Reset()
	}

	for _, tok := range tokens {
		switch tok.Kind {
		case lexer.KindText:
			acc.Write(tok.Value)

		case lexer.KindHighlightStart:
			flush()
			active[tok.Index] = struct{}{}

		case lexer.KindHighlightEnd:
			flush()
			delete(active, tok.Index)

		case lexer.KindAnnotation:
			acc.Note(tok.Index)
		}
	}

	flush()
	return regions
}

// snapshot returns the active set as a sorted slice.
func snapshot(active map[int]struct{}) []int {
	out := make([]int, 0, len(active))
	for n := range active {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}
