package region

// accumulator collects the text and annotation indices of the region
// currently being built. Owned by a single Build call; never shared.
type accumulator struct {
	parts       []string
	annotations []int
}

func newAccumulator() *accumulator {
	return &accumulator{
		parts:       make([]string, 0),
		annotations: make([]int, 0),
	}
}

// Write appends literal text to the pending region.
func (a *accumulator) Write(text string) {
	a.parts = append(a.parts, text)
}

// Note records an annotation index against the pending region.
func (a *accumulator) Note(index int) {
	a.annotations = append(a.annotations, index)
}

// Empty reports whether no text has accumulated. Annotation indices
// alone do not make the accumulator non-empty; a flush with no text
// drops them (accepted limitation, see Build).
func (a *accumulator) Empty() bool {
	for _, p := range a.parts {
		if p != "" {
			return false
		}
	}
	return true
}

// Text returns the accumulated text.
func (a *accumulator) Text() string {
	if len(a.parts) == 0 {
		return ""
	}
	totalLen := 0
	for _, p := range a.parts {
		totalLen += len(p)
	}
	result := make([]byte, 0, totalLen)
	for _, p := range a.parts {
		result = append(result, p...)
	}
	return string(result)
}

// Annotations returns a copy of the recorded annotation indices.
func (a *accumulator) Annotations() []int {
	out := make([]int, len(a.annotations))
	copy(out, a.annotations)
	return out
}

// Reset clears the accumulator for the next region.
func (a *accumulator) Reset() {
	a.parts = a.parts[:0]
	a.annotations = a.annotations[:0]
}
