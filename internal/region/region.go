// Package region 将 token 序列折叠为常量高亮集文本区间
//
// 每个 Region 是一段最大化的文本运行，期间活跃高亮索引集不变。
// 任何高亮开始/结束事件都强制一次区间边界，哪怕它对集合本身是
// 空操作（重复开始、悬空结束）——相邻两个 Region 因此可能携带
// 相同的活跃集，这是刻意的：标记事件与区间边界保持一一对应。
package region

// Region is an immutable run of text over which the set of active
// highlight indices is constant.
type Region struct {
	// Text is the accumulated run. Never empty: a Region is only
	// constructed from a non-empty accumulation.
	Text string

	// Active holds the highlight indices active throughout this run,
	// sorted ascending. An empty slice means no highlight is active.
	Active []int

	// Annotations lists annotation indices recorded while this region
	// accumulated, in insertion order. Duplicates are permitted.
	Annotations []int
}

// Has reports whether index is in the region's active set.
func (r Region) Has(index int) bool {
	for _, n := range r.Active {
		if n == index {
			return true
		}
	}
	return false
}

// Reconstruct concatenates the regions' text, yielding the de-markered
// source content.
func Reconstruct(regions []Region) string {
	totalLen := 0
	for _, r := range regions {
		totalLen += len(r.Text)
	}
	out := make([]byte, 0, totalLen)
	for _, r := range regions {
		out = append(out, r.Text...)
	}
	return string(out)
}
