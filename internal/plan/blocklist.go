package plan

import (
	"strings"

	"go.jacobcolvin.com/yamledit/edit"
	"go.jacobcolvin.com/yamledit/internal/encode"
	"go.jacobcolvin.com/yamledit/internal/normalize"
	"go.jacobcolvin.com/yamledit/internal/scan"
	"go.jacobcolvin.com/yamledit/node"
)

// ListAppend plans inserting value as the new last element of a block
// sequence (spec section 4.3.1).
func ListAppend(src string, le scan.LineEnding, step int, list *node.Node, value *node.Node) edit.SourceEdit {
	last := list.Seq[len(list.Seq)-1]
	cs := scan.SkipAndExtract(src, last.ContentEnd(), true)
	target := cs.End

	listIndent, err := scan.ListIndent(src, list)
	if err != nil {
		listIndent = 0
	}

	body := strings.Repeat(" ", listIndent) + "- " + encode.Inline(value, listIndent, step, le)
	body = normalize.Apply(src, le, target, value, body)

	prefix := ""
	suffix := string(le)
	if target == 0 || src[target-1] != '\n' {
		prefix = string(le)
		suffix = ""
	}

	return edit.SourceEdit{Offset: target, Length: 0, Replacement: prefix + body + suffix}
}

// ListInsert plans inserting value before the existing element at index
// (index < len(list.Seq)), per spec section 4.3.2.
func ListInsert(src string, le scan.LineEnding, step int, list *node.Node, index int, value *node.Node) edit.SourceEdit {
	if index >= len(list.Seq) {
		return ListAppend(src, le, step, list, value)
	}

	listIndent, err := scan.ListIndent(src, list)
	if err != nil {
		listIndent = 0
	}

	elemStart := list.Seq[index].Span.Start

	p := strings.LastIndexByte(src[:elemStart], '-')
	if p < 0 {
		p = 0
	}

	newlinePos := strings.LastIndexByte(src[:p], '\n')
	hyphenPos := strings.LastIndexByte(src[:p], '-')

	nested := p != 0 && hyphenPos > newlinePos

	if !nested {
		target := newlinePos + 1
		body := strings.Repeat(" ", listIndent) + "- " + encode.Inline(value, listIndent, step, le) + string(le)

		return edit.SourceEdit{Offset: target, Length: 0, Replacement: body}
	}

	if index != 0 {
		target := hyphenPos + 2
		body := strings.Repeat(" ", listIndent) + "- " + encode.Inline(value, listIndent, step, le) + string(le)

		return edit.SourceEdit{Offset: target, Length: 0, Replacement: body}
	}

	// Nested, first element: it shares its line with the outer "- " and
	// has no leading indent of its own. The new element takes over that
	// compact slot; the old first element is pushed onto its own,
	// properly indented line, reusing the "-" already in the source
	// (spec section 8, scenario 6).
	target := p
	body := "- " + encode.Inline(value, listIndent, step, le) + string(le) + strings.Repeat(" ", listIndent)

	return edit.SourceEdit{Offset: target, Length: 0, Replacement: body}
}

// ListUpdate plans replacing the element at index in a block sequence with
// value (spec section 4.3.3).
func ListUpdate(src string, le scan.LineEnding, step int, list *node.Node, index int, value *node.Node) edit.SourceEdit {
	current := list.Seq[index]

	listIndent, err := scan.ListIndent(src, list)
	if err != nil {
		listIndent = 0
	}

	start := current.Span.Start
	end := current.ContentEnd()

	body := encode.Inline(value, listIndent, step, le)

	if end < start {
		end = start
		body = " " + body
	}

	body = normalize.Apply(src, le, end, value, body)

	return edit.SourceEdit{Offset: start, Length: end - start, Replacement: body}
}

// ListRemove plans removing the element at index from a block sequence
// (spec section 4.3.4).
func ListRemove(src string, le scan.LineEnding, list *node.Node, index int) edit.SourceEdit {
	elem := list.Seq[index]

	start := strings.LastIndexByte(src[:elem.Span.Start], '-')
	if start < 0 {
		start = elem.Span.Start
	}

	contentEnd := elem.ContentEnd()
	cs := scan.SkipAndExtract(src, contentEnd, true)
	end := cs.End

	isOnly := len(list.Seq) == 1
	isLast := index == len(list.Seq)-1
	atDocStart := start == 0
	atEOF := end >= len(src)

	if isOnly {
		return edit.SourceEdit{Offset: start, Length: end - start, Replacement: "[]"}
	}

	if isLast && !atDocStart {
		prevNewline := strings.LastIndexByte(src[:start], '\n')
		start = prevNewline + 1
	}

	if isLast && !atEOF {
		end = reclaim(src, contentEnd, end)
	}

	return edit.SourceEdit{Offset: start, Length: end - start, Replacement: ""}
}

// reclaim restores the leading indent (and, if no blank line intervened,
// the line break itself) that a greedy comment scan swallowed from the
// sibling following the removed element (spec sections 4.3.4 and 4.3.7).
func reclaim(src string, scanStart, scanEnd int) int {
	nlBeforeNext := strings.LastIndexByte(src[:scanEnd], '\n')
	if nlBeforeNext < scanStart {
		return scanEnd
	}

	if strings.Count(src[scanStart:scanEnd], "\n") <= 1 {
		return nlBeforeNext
	}

	return nlBeforeNext + 1
}
