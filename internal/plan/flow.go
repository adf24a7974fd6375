package plan

import (
	"strings"

	"go.jacobcolvin.com/yamledit/edit"
	"go.jacobcolvin.com/yamledit/internal/encode"
	"go.jacobcolvin.com/yamledit/node"
)

// FlowListAppend plans appending value to a flow sequence (spec section
// 4.3.8): splice just before the closing "]".
func FlowListAppend(list *node.Node, value *node.Node) edit.SourceEdit {
	target := list.Span.End - 1

	rendered := encode.Flow(value)
	if len(list.Seq) > 0 {
		rendered = ", " + rendered
	}

	return edit.SourceEdit{Offset: target, Length: 0, Replacement: rendered}
}

// FlowListInsert plans inserting value before the existing element at
// index (index < len(list.Seq)) in a flow sequence.
func FlowListInsert(src string, list *node.Node, index int, value *node.Node) edit.SourceEdit {
	if index >= len(list.Seq) {
		return FlowListAppend(list, value)
	}

	childStart := list.Seq[index].Span.Start

	comma := strings.LastIndexByte(src[:childStart], ',')
	bracket := strings.LastIndexByte(src[:childStart], '[')

	target := comma
	if bracket > comma {
		target = bracket
	}

	target++
	for target < childStart && src[target] == ' ' {
		target++
	}

	rendered := encode.Flow(value) + ", "

	return edit.SourceEdit{Offset: target, Length: 0, Replacement: rendered}
}

// FlowListRemove plans removing the element at index from a flow sequence.
func FlowListRemove(src string, list *node.Node, index int) edit.SourceEdit {
	elem := list.Seq[index]

	if index == 0 {
		start := strings.IndexByte(src[:elem.Span.Start], '[')
		if start < 0 {
			start = elem.Span.Start
		} else {
			start++
		}

		var end int
		if len(list.Seq) == 1 {
			end = strings.IndexByte(src[elem.Span.End:], ']')
			if end < 0 {
				end = elem.Span.End
			} else {
				end = elem.Span.End + end
			}
		} else {
			comma := strings.IndexByte(src[elem.Span.End:], ',')
			if comma < 0 {
				end = elem.Span.End
			} else {
				end = elem.Span.End + comma + 1
				for end < len(src) && src[end] == ' ' {
					end++
				}
			}
		}

		return edit.SourceEdit{Offset: start, Length: end - start, Replacement: ""}
	}

	start := strings.LastIndexByte(src[:elem.Span.Start], ',')
	if start < 0 {
		start = elem.Span.Start
	}

	end := elem.ContentEnd()

	return edit.SourceEdit{Offset: start, Length: end - start, Replacement: ""}
}

// FlowListReplace plans replacing the element at index in a flow sequence
// with value: splices the entire existing element span, symmetric with
// [FlowMapReplace].
func FlowListReplace(list *node.Node, index int, value *node.Node) edit.SourceEdit {
	elem := list.Seq[index]

	return edit.SourceEdit{
		Offset:      elem.Span.Start,
		Length:      elem.Span.End - elem.Span.Start,
		Replacement: encode.Flow(value),
	}
}

// FlowMapAdd plans adding a new key/value entry to a flow mapping, at the
// position the alphabetical insertion heuristic selects.
func FlowMapAdd(m *node.Node, key, value *node.Node) edit.SourceEdit {
	entry := encode.Flow(key) + ": " + encode.Flow(value)

	if len(m.Map) == 0 {
		target := m.Span.End - 1

		return edit.SourceEdit{Offset: target, Length: 0, Replacement: entry}
	}

	idx := AlphabeticalInsertionIndex(m, keyText(key))

	if idx >= len(m.Map) {
		target := m.Span.End - 1

		return edit.SourceEdit{Offset: target, Length: 0, Replacement: ", " + entry}
	}

	target := m.Map[idx].Key.Span.Start

	return edit.SourceEdit{Offset: target, Length: 0, Replacement: entry + ", "}
}

// FlowMapReplace plans replacing the value at the entry's key in a flow
// mapping with value: splices the entire existing value span.
func FlowMapReplace(m *node.Node, index int, value *node.Node) edit.SourceEdit {
	entry := m.Map[index]

	return edit.SourceEdit{
		Offset:      entry.Value.Span.Start,
		Length:      entry.Value.Span.End - entry.Value.Span.Start,
		Replacement: encode.Flow(value),
	}
}

// FlowMapRemove plans removing the entry at index from a flow mapping.
func FlowMapRemove(src string, m *node.Node, index int) edit.SourceEdit {
	entry := m.Map[index]

	if index == 0 {
		start := strings.IndexByte(src[:entry.Key.Span.Start], '{')
		if start < 0 {
			start = entry.Key.Span.Start
		} else {
			start++
		}

		var end int
		if len(m.Map) == 1 {
			closeIdx := strings.IndexByte(src[entry.Value.Span.End:], '}')
			if closeIdx < 0 {
				end = entry.Value.Span.End
			} else {
				end = entry.Value.Span.End + closeIdx
			}
		} else {
			comma := strings.IndexByte(src[entry.Value.Span.End:], ',')
			if comma < 0 {
				end = entry.Value.Span.End
			} else {
				end = entry.Value.Span.End + comma + 1
				for end < len(src) && src[end] == ' ' {
					end++
				}
			}
		}

		return edit.SourceEdit{Offset: start, Length: end - start, Replacement: ""}
	}

	start := strings.LastIndexByte(src[:entry.Key.Span.Start], ',')
	if start < 0 {
		start = entry.Key.Span.Start
	}

	end := entry.Value.ContentEnd()

	return edit.SourceEdit{Offset: start, Length: end - start, Replacement: ""}
}
