package plan

import (
	"strings"

	"go.jacobcolvin.com/yamledit/edit"
	"go.jacobcolvin.com/yamledit/internal/encode"
	"go.jacobcolvin.com/yamledit/internal/normalize"
	"go.jacobcolvin.com/yamledit/internal/scan"
	"go.jacobcolvin.com/yamledit/node"
)

// valueStartsLine reports whether value should be emitted on its own
// line(s) following "key:", rather than inline after "key: ".
func valueStartsLine(value *node.Node) bool {
	return value.Kind != node.KindScalar && value.BlockCapable() && !value.IsEmptyCollection()
}

// MapAdd plans adding a new key/value entry to a block mapping, at the
// position the alphabetical insertion heuristic selects (spec section
// 4.3.5).
func MapAdd(src string, le scan.LineEnding, step int, m *node.Node, key, value *node.Node) edit.SourceEdit {
	mapIndent, err := scan.MapIndent(src, m)
	if err != nil {
		mapIndent = 0
	}

	sep := " "

	var valRendered string

	if valueStartsLine(value) {
		sep = string(le)
		valRendered = encode.Block(value, mapIndent+step, step, le)
	} else {
		valRendered = encode.Inline(value, mapIndent, step, le)
	}

	entry := strings.Repeat(" ", mapIndent) + encode.Flow(key) + ":" + sep + valRendered

	if len(m.Map) == 0 {
		return edit.SourceEdit{Offset: m.Span.End, Length: 0, Replacement: entry}
	}

	idx := AlphabeticalInsertionIndex(m, keyText(key))

	if idx >= len(m.Map) {
		lastContentEnd := m.Map[len(m.Map)-1].Value.ContentEnd()

		nlIdx := strings.IndexByte(src[lastContentEnd:], '\n')

		var target int

		prefix := ""

		if nlIdx < 0 {
			target = len(src)
			prefix = string(le)
		} else {
			target = lastContentEnd + nlIdx + 1
		}

		return edit.SourceEdit{Offset: target, Length: 0, Replacement: prefix + entry + string(le)}
	}

	kthKeyStart := m.Map[idx].Key.Span.Start
	prevNewline := strings.LastIndexByte(src[:kthKeyStart], '\n')
	target := prevNewline + 1

	return edit.SourceEdit{Offset: target, Length: 0, Replacement: entry + string(le)}
}

// MapReplace plans replacing the value at the entry's key in a block
// mapping with value (spec section 4.3.6).
func MapReplace(src string, le scan.LineEnding, step int, m *node.Node, index int, value *node.Node) edit.SourceEdit {
	entry := m.Map[index]

	mapIndent, err := scan.MapIndent(src, m)
	if err != nil {
		mapIndent = 0
	}

	start := entry.Key.Span.End + 1

	var end int
	if isNullSpanQuirk(entry.Value) {
		end = start + 1
	} else {
		end = entry.Value.ContentEnd()
	}

	var body string
	if valueStartsLine(value) {
		body = string(le) + encode.Block(value, mapIndent+step, step, le)
	} else {
		body = " " + encode.Inline(value, mapIndent, step, le)
	}

	body = normalize.Apply(src, le, end, value, body)

	return edit.SourceEdit{Offset: start, Length: end - start, Replacement: body}
}

// MapRemove plans removing the entry at index from a block mapping (spec
// section 4.3.7).
func MapRemove(src string, le scan.LineEnding, m *node.Node, index int) edit.SourceEdit {
	entry := m.Map[index]

	start := entry.Key.Span.Start

	var baseEnd int
	if isNullSpanQuirk(entry.Value) {
		baseEnd = entry.Key.Span.End + 2
	} else {
		baseEnd = entry.Value.ContentEnd() + 1
	}

	if baseEnd > len(src) {
		baseEnd = len(src)
	}

	cs := scan.SkipAndExtract(src, baseEnd, true)
	end := cs.End

	isOnly := len(m.Map) == 1
	isLast := index == len(m.Map)-1
	atDocStart := start == 0
	atEOF := end >= len(src)

	if isOnly {
		return edit.SourceEdit{Offset: start, Length: end - start, Replacement: "{}"}
	}

	if isLast && !atDocStart {
		prevNewline := strings.LastIndexByte(src[:start], '\n')
		start = prevNewline + 1
	}

	if isLast && !atEOF {
		end = reclaim(src, baseEnd, end)
	}

	return edit.SourceEdit{Offset: start, Length: end - start, Replacement: ""}
}

// isNullSpanQuirk reports whether v is a null scalar with a zero-length
// span, a quirk some parsers produce for an omitted mapping value (spec
// sections 4.3.6 and 4.3.7).
func isNullSpanQuirk(v *node.Node) bool {
	return v.Kind == node.KindScalar && v.Scalar.IsNull() && v.Span.Len() == 0
}
