package render

// Tier selects the nesting/underline strategy for a region, computed
// once from the cardinality of its active set.
type Tier uint8

const (
	// TierNone passes text through unwrapped.
	TierNone Tier = iota
	// TierSingle wraps with one highlight and one thin underline.
	TierSingle
	// TierPair wraps with two nested highlights and two stacked underlines.
	TierPair
	// TierMany wraps with one highlight per index but collapses the
	// underlines to a single thick overflow-colored rule. Stacking more
	// than two distinguishable underline tiers is unreadable.
	TierMany
)

// overflowThreshold 固定为 3；是否按部署配置化尚无上游需求，按常量处理
const overflowThreshold = 3

// tierFor maps an active-set size to its rendering tier.
func tierFor(size int) Tier {
	switch {
	case size <= 0:
		return TierNone
	case size == 1:
		return TierSingle
	case size < overflowThreshold:
		return TierPair
	default:
		return TierMany
	}
}

// String returns the string representation of Tier.
func (t Tier) String() string {
	switch t {
	case TierNone:
		return "none"
	case TierSingle:
		return "single"
	case TierPair:
		return "pair"
	case TierMany:
		return "many"
	default:
		return "unknown"
	}
}
