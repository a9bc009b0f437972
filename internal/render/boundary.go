package render

import "strings"

// segment is one piece of a boundary-split region text.
type segment struct {
	text     string
	boundary bool
}

// containsAny reports whether text contains any boundary substring.
func containsAny(text string, boundaries []string) bool {
	for _, b := range boundaries {
		if strings.Contains(text, b) {
			return true
		}
	}
	return false
}

// splitBoundaries cuts text at every structural boundary substring,
// keeping the boundaries themselves as their own segments so the
// caller can re-interleave them unwrapped. Boundaries are matched
// longest first. Concatenating all segments reproduces text exactly.
func splitBoundaries(text string, boundaries []string) []segment {
	segments := make([]segment, 0, 4)
	pending := 0
	i := 0

	for i < len(text) {
		matched := ""
		for _, b := range boundaries {
			if strings.HasPrefix(text[i:], b) {
				matched = b
				break
			}
		}
		if matched == "" {
			i++
			continue
		}
		if i > pending {
			segments = append(segments, segment{text: text[pending:i]})
		}
		segments = append(segments, segment{text: matched, boundary: true})
		i += len(matched)
		pending = i
	}

	if pending < len(text) {
		segments = append(segments, segment{text: text[pending:]})
	}
	return segments
}
