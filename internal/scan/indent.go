package scan

import (
	"strings"

	"go.jacobcolvin.com/yamledit/node"
)

// DefaultIndentStep is used when no nested block collection exists to probe.
const DefaultIndentStep = 2

// IndentStep probes the first block-styled child collection at depth 2 in
// root and returns its indent relative to its parent's indent (spec section
// 4.1.2). Ties are broken by proximity to the start of the document. If no
// such nested collection exists, [DefaultIndentStep] is returned.
func IndentStep(src string, root *node.Node) int {
	best, found := probeStep(src, root, 1)
	if !found {
		return DefaultIndentStep
	}

	return best
}

// probeStep walks n looking for the first block collection at depth 2
// (depth counts root as depth 1). It returns the step measured between a
// depth-2 collection and its depth-1 parent, preferring the candidate
// closest to the start of the document.
func probeStep(src string, n *node.Node, depth int) (int, bool) {
	if n == nil {
		return 0, false
	}

	switch n.Kind {
	case node.KindSequence:
		for _, child := range n.Seq {
			if depth == 1 {
				if step, ok := measureStep(src, n, child); ok {
					return step, true
				}
			}

			if step, ok := probeStep(src, child, depth+1); ok {
				return step, true
			}
		}
	case node.KindMapping:
		for _, entry := range n.Map {
			child := entry.Value
			if depth == 1 {
				if step, ok := measureStep(src, n, child); ok {
					return step, true
				}
			}

			if step, ok := probeStep(src, child, depth+1); ok {
				return step, true
			}
		}
	}

	return 0, false
}

// measureStep measures the indent delta between a depth-1 parent collection
// and a candidate depth-2 child collection, if the child is a non-empty
// block-styled collection.
func measureStep(src string, parent, child *node.Node) (int, bool) {
	if child.Kind != node.KindSequence && child.Kind != node.KindMapping {
		return 0, false
	}

	if child.CollectionStyle == node.CollectionFlow || child.IsEmptyCollection() {
		return 0, false
	}

	childIndent, err := collectionIndent(src, child)
	if err != nil {
		return 0, false
	}

	parentIndent, err := collectionIndent(src, parent)
	if err != nil {
		parentIndent = 0
	}

	step := childIndent - parentIndent
	if step <= 0 {
		return 0, false
	}

	return step, true
}

func collectionIndent(src string, n *node.Node) (int, error) {
	switch n.Kind {
	case node.KindSequence:
		return ListIndent(src, n)
	case node.KindMapping:
		return MapIndent(src, n)
	default:
		return 0, ErrEmptyBlockIndent
	}
}

// ListIndent measures the indentation of a block sequence's elements (spec
// section 4.1.3): from the start offset of the last element, find the most
// recent '-' behind it, then the most recent '\n' before that; indent is
// the distance from just past that newline to the hyphen.
func ListIndent(src string, list *node.Node) (int, error) {
	if len(list.Seq) == 0 {
		return 0, ErrEmptyBlockIndent
	}

	lastStart := list.Seq[len(list.Seq)-1].Span.Start

	hyphenOffset := strings.LastIndexByte(src[:lastStart], '-')
	if hyphenOffset < 0 {
		hyphenOffset = 0
	}

	newlineOffset := strings.LastIndexByte(src[:hyphenOffset], '\n')

	indent := hyphenOffset - newlineOffset - 1
	if indent < 0 {
		indent = 0
	}

	return indent, nil
}

// MapIndent measures the indentation of a block mapping's entries (spec
// section 4.1.3): from the last key's start offset, use the most recent
// '\n'; if a '?' complex-key marker exists on the same line, use it instead
// of the key's own start as the indent reference.
func MapIndent(src string, m *node.Node) (int, error) {
	if len(m.Map) == 0 {
		return 0, ErrEmptyBlockIndent
	}

	keyStart := m.Map[len(m.Map)-1].Key.Span.Start

	newlineOffset := strings.LastIndexByte(src[:keyStart], '\n')
	lineStart := newlineOffset + 1

	base := keyStart
	if qIdx := strings.IndexByte(src[lineStart:keyStart], '?'); qIdx >= 0 {
		base = lineStart + qIdx
	}

	indent := base - lineStart
	if indent < 0 {
		indent = 0
	}

	return indent, nil
}

// ContentEnd returns the content-sensitive end offset of n (spec section
// 4.1.4), delegating to [node.Node.ContentEnd].
func ContentEnd(n *node.Node) int {
	return n.ContentEnd()
}
