package lexer

// Kind represents the category of a marker token.
type Kind uint8

const (
	// KindText is a run of literal text between markers.
	KindText Kind = iota
	// KindHighlightStart is an HLSTART{n} marker.
	KindHighlightStart
	// KindHighlightEnd is an HLEND{n} marker.
	KindHighlightEnd
	// KindAnnotation is an ANNOT{n} marker.
	KindAnnotation
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindHighlightStart:
		return "highlight_start"
	case KindHighlightEnd:
		return "highlight_end"
	case KindAnnotation:
		return "annotation"
	default:
		return "unknown"
	}
}

// Token is a single lexed unit of the marked source stream.
//
// Start and End are byte offsets into the source, [Start, End).
// They are retained for diagnostics only; downstream stages never
// consume them. Tokens are never mutated after creation.
type Token struct {
	Kind  Kind
	Index int    // highlight/annotation index; 0 and unused for KindText
	Value string // literal text; empty for marker kinds
	Start int
	End   int
}

// IsMarker reports whether the token is a highlight or annotation marker.
func (t Token) IsMarker() bool {
	return t.Kind != KindText
}
