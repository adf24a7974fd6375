package encode

import (
	"strings"

	"go.jacobcolvin.com/yamledit/internal/scan"
	"go.jacobcolvin.com/yamledit/node"
)

// Block renders n in block (indentation-based) style at the given indent,
// using step as the per-level indent width and le as the line terminator
// (spec section 4.2, "Block encoder"). A node that cannot be block-rendered
// (an empty collection, or one whose CollectionStyle forces flow) falls
// back to [Flow].
func Block(n *node.Node, indent, step int, le scan.LineEnding) string {
	switch {
	case n.Kind == node.KindScalar:
		return RenderScalar(n, false, indent, le)

	case n.IsEmptyCollection() || !n.BlockCapable():
		return indentPrefix(indent) + Flow(n)
	}

	switch n.Kind {
	case node.KindSequence:
		var b strings.Builder

		for i, child := range n.Seq {
			if i > 0 {
				b.WriteString(string(le))
			}

			b.WriteString(indentPrefix(indent) + "- " + inlineValue(child, indent, step, le))
		}

		return b.String()

	case node.KindMapping:
		var b strings.Builder

		for i, entry := range n.Map {
			if i > 0 {
				b.WriteString(string(le))
			}

			b.WriteString(blockMapEntry(entry, indent, step, le))
		}

		return b.String()

	default:
		return ""
	}
}

// inlineValue renders child as it should appear immediately after a "- "
// list marker or a "key: " map marker: scalars render with their
// continuation lines (literal/folded) indented one step deeper than the
// marker; empty or flow-forced collections render inline via [Flow];
// non-empty block collections render at indent+step with their own
// leading indent stripped, so the marker attaches directly to their first
// line (spec section 4.2 / section 9, "left padding vs. indent step").
// Inline is [inlineValue] exported for reuse by the mutation planners,
// which splice a single encoded value after a "- " or "<key>: " marker they
// write themselves.
func Inline(child *node.Node, indent, step int, le scan.LineEnding) string {
	return inlineValue(child, indent, step, le)
}

func inlineValue(child *node.Node, indent, step int, le scan.LineEnding) string {
	switch {
	case child.Kind == node.KindScalar:
		return RenderScalar(child, false, indent+step, le)

	case child.IsEmptyCollection() || !child.BlockCapable():
		return Flow(child)

	default:
		rendered := Block(child, indent+step, step, le)

		return stripLeadingIndent(rendered, indent+step)
	}
}

// blockMapEntry renders one "<key>: <value>" line (or "<key>:\n<nested
// value>" block). Keys are always flow-rendered (spec section 4.3.6: "map
// keys inserted by the editor are always emitted in flow style"); this
// encoder only ever re-renders keys it is constructing or replacing
// wholesale, so the rule applies uniformly here.
func blockMapEntry(entry node.Entry, indent, step int, le scan.LineEnding) string {
	prefix := indentPrefix(indent) + Flow(entry.Key) + ":"

	val := entry.Value
	if val.Kind != node.KindScalar && val.BlockCapable() && !val.IsEmptyCollection() {
		return prefix + string(le) + Block(val, indent+step, step, le)
	}

	return prefix + " " + inlineValue(val, indent, step, le)
}

func indentPrefix(n int) string {
	return strings.Repeat(" ", n)
}

// stripLeadingIndent removes up to n leading space bytes from the start of
// s only (not from subsequent lines).
func stripLeadingIndent(s string, n int) string {
	i := 0
	for i < n && i < len(s) && s[i] == ' ' {
		i++
	}

	return s[i:]
}
