package node

import (
	"fmt"

	"go.jacobcolvin.com/yamledit/value"
)

// Kind identifies what a [Node] represents.
type Kind int

// Kind constants.
const (
	KindScalar Kind = iota
	KindSequence
	KindMapping
)

// String implements [fmt.Stringer] for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// ScalarStyle is the source rendering style of a scalar node.
type ScalarStyle int

// ScalarStyle constants, per spec section 3 and 4.2.
const (
	// ScalarAny means the style is not pinned by the source; the encoder
	// is free to choose (prefers plain, falls back to double-quoted).
	ScalarAny ScalarStyle = iota
	ScalarPlain
	ScalarSingleQuoted
	ScalarDoubleQuoted
	ScalarLiteral
	ScalarFolded
)

// CollectionStyle is the source rendering style of a sequence or mapping.
type CollectionStyle int

// CollectionStyle constants.
const (
	// CollectionAny means the style is not pinned by the source; the
	// editor treats this as block-capable for maximum flexibility.
	CollectionAny CollectionStyle = iota
	CollectionBlock
	CollectionFlow
)

// Span is a byte-offset range into the original source text, half-open
// ([Start], [End]).
type Span struct {
	Start int
	End   int
}

// Empty reports whether s carries no span information (a synthesized node
// with no corresponding source text).
func (s Span) Empty() bool { return s.Start == 0 && s.End == 0 }

// Len returns the number of bytes spanned.
func (s Span) Len() int { return s.End - s.Start }

// Entry is one key/value pair of a mapping, in source order.
type Entry struct {
	Key   *Node
	Value *Node
}

// Node is one node of a parsed (or synthesized) YAML tree: a scalar,
// sequence, or mapping, carrying style metadata and a source span.
//
// Exactly one of the value-bearing fields is meaningful for a given Kind:
// Scalar for [KindScalar], Seq for [KindSequence], Map for [KindMapping].
type Node struct {
	Kind            Kind
	ScalarStyle     ScalarStyle
	CollectionStyle CollectionStyle

	Scalar value.Value
	Seq    []*Node
	Map    []Entry

	Span Span

	// Comments holds the source comment lines the parser attached to this
	// node. The planners do not read it. Synthesized nodes never carry
	// comments.
	Comments []string

	// Alias reports whether this node is a YAML alias reference. The engine
	// refuses to traverse through or mutate such nodes (spec section 9).
	Alias bool
}

// IsEmptyCollection reports whether n is a sequence or mapping with no
// children. Scalars are never "empty" in this sense.
func (n *Node) IsEmptyCollection() bool {
	switch n.Kind {
	case KindSequence:
		return len(n.Seq) == 0
	case KindMapping:
		return len(n.Map) == 0
	default:
		return false
	}
}

// BlockCapable reports whether n may be rendered in block style: its
// CollectionStyle is not pinned to [CollectionFlow]. Scalars are never
// block-capable in the collection sense this method answers.
func (n *Node) BlockCapable() bool {
	if n.Kind != KindSequence && n.Kind != KindMapping {
		return false
	}

	return n.CollectionStyle != CollectionFlow
}

// Equal reports whether n and other are deeply structurally equal: same
// kind and same logical value, ignoring style, span, and comments. Map
// keys are compared with Equal, per spec section 6 ("Keys compare by deep
// structural equality").
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}

	if n.Kind != other.Kind {
		return false
	}

	switch n.Kind {
	case KindScalar:
		return n.Scalar.Equal(other.Scalar)
	case KindSequence:
		if len(n.Seq) != len(other.Seq) {
			return false
		}

		for i, child := range n.Seq {
			if !child.Equal(other.Seq[i]) {
				return false
			}
		}

		return true
	case KindMapping:
		if len(n.Map) != len(other.Map) {
			return false
		}

		for i, entry := range n.Map {
			oe := other.Map[i]
			if !entry.Key.Equal(oe.Key) || !entry.Value.Equal(oe.Value) {
				return false
			}
		}

		return true
	default:
		return false
	}
}

// NewScalar returns a synthesized scalar [Node] with [ScalarAny] style.
func NewScalar(v value.Value) *Node {
	return &Node{Kind: KindScalar, Scalar: v}
}

// NewScalarStyled returns a synthesized scalar [Node] with an explicit
// requested style.
func NewScalarStyled(v value.Value, style ScalarStyle) *Node {
	return &Node{Kind: KindScalar, Scalar: v, ScalarStyle: style}
}

// NewSequence returns a synthesized sequence [Node] from children, with
// [CollectionAny] style (block-capable).
func NewSequence(children ...*Node) *Node {
	return &Node{Kind: KindSequence, Seq: children}
}

// NewMapping returns a synthesized mapping [Node] from entries, with
// [CollectionAny] style (block-capable).
func NewMapping(entries ...Entry) *Node {
	return &Node{Kind: KindMapping, Map: entries}
}

// FromAny converts a plain Go value into a synthesized [Node] tree.
// Supported inputs: nil, bool, int, int64, float64, string, []any,
// *Node (returned unchanged), and map[string]any (map key order is not guaranteed by Go, so map-valued
// input is only appropriate for values whose key order does not matter to
// the caller; for ordered construction, build a [Node] directly with
// [NewMapping]). Any other input type causes a panic, since FromAny is
// meant for literal call-site values, not arbitrary reflection.
func FromAny(v any) *Node {
	switch t := v.(type) {
	case []any:
		children := make([]*Node, 0, len(t))
		for _, elem := range t {
			children = append(children, FromAny(elem))
		}

		return NewSequence(children...)
	case map[string]any:
		entries := make([]Entry, 0, len(t))
		for k, val := range t {
			entries = append(entries, Entry{Key: NewScalar(value.NewString(k)), Value: FromAny(val)})
		}

		return NewMapping(entries...)
	case *Node:
		return t
	default:
		return NewScalar(value.FromAny(v))
	}
}

// TerminalScalar descends into the last list element / last map value,
// recursively, until it reaches a scalar. Returns nil if a traversed
// collection is empty (per spec section 4.4 step 1: "nothing to
// normalize").
func (n *Node) TerminalScalar() *Node {
	for {
		switch n.Kind {
		case KindScalar:
			return n
		case KindSequence:
			if len(n.Seq) == 0 {
				return nil
			}

			n = n.Seq[len(n.Seq)-1]
		case KindMapping:
			if len(n.Map) == 0 {
				return nil
			}

			n = n.Map[len(n.Map)-1].Value
		default:
			return nil
		}
	}
}

// ContentEnd returns the content-sensitive end offset of n (spec section
// 4.1.4): for flow collections and scalars, the end of n's own span; for
// block collections, it recurses into the last child so that trailing
// emptiness the parser's span may include is skipped.
func (n *Node) ContentEnd() int {
	if n.CollectionStyle == CollectionFlow || n.Kind == KindScalar {
		return n.Span.End
	}

	switch n.Kind {
	case KindSequence:
		if len(n.Seq) == 0 {
			return n.Span.End
		}

		return n.Seq[len(n.Seq)-1].ContentEnd()
	case KindMapping:
		if len(n.Map) == 0 {
			return n.Span.End
		}

		return n.Map[len(n.Map)-1].Value.ContentEnd()
	default:
		return n.Span.End
	}
}

// String implements [fmt.Stringer] for diagnostics (path segment
// formatting, error messages). It is not a YAML encoding.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}

	switch n.Kind {
	case KindScalar:
		return n.Scalar.GoString()
	case KindSequence:
		return fmt.Sprintf("[%d items]", len(n.Seq))
	case KindMapping:
		return fmt.Sprintf("{%d keys}", len(n.Map))
	default:
		return "<invalid>"
	}
}
