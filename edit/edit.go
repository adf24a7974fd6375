package edit

import "sort"

// SourceEdit replaces src[Offset:Offset+Length] with Replacement. Length
// zero means a pure insertion at Offset.
type SourceEdit struct {
	Offset      int
	Length      int
	Replacement string
}

// End returns the offset just past the region this edit replaces.
func (e SourceEdit) End() int {
	return e.Offset + e.Length
}

// Apply applies a single edit to src.
func Apply(src string, e SourceEdit) string {
	return src[:e.Offset] + e.Replacement + src[e.End():]
}

// ApplyAll applies every edit in edits to src, in descending-offset order
// (spec section 2: "edits applied in descending-offset order"), so that
// earlier edits never invalidate the offsets of later ones. edits is not
// mutated; overlapping edits are not supported and their behavior is
// undefined, matching the engine's planners, which never emit overlapping
// edits for a single call.
func ApplyAll(src string, edits []SourceEdit) string {
	ordered := make([]SourceEdit, len(edits))
	copy(ordered, edits)

	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Offset > ordered[j].Offset
	})

	out := src
	for _, e := range ordered {
		out = Apply(out, e)
	}

	return out
}
