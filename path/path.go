// Package path represents a location inside a parsed document: a sequence
// of segments, each either a sequence index or a mapping key (spec section
// 6, "Path representation").
package path

import (
	"strconv"

	"go.jacobcolvin.com/yamledit/node"
)

// Segment is one step of a [Path]: either a sequence index or a mapping
// key. Exactly one of the two is meaningful, selected by IsIndex.
type Segment struct {
	IsIndex bool
	Index   int
	Key     *node.Node
}

// Idx returns an index segment, for traversing into a sequence.
func Idx(i int) Segment {
	return Segment{IsIndex: true, Index: i}
}

// Key returns a key segment from a plain Go value, for traversing into a
// mapping. Keys compare by deep structural equality (spec section 6); the
// key itself must be a scalar, not a list or map — see [node.FromAny] for
// the accepted input types.
func Key(v any) Segment {
	return Segment{Key: node.FromAny(v)}
}

// Path is an ordered sequence of [Segment]s locating a node within a tree.
type Path []Segment

// Of builds a Path from plain Go values: an int becomes an [Idx] segment,
// anything else becomes a [Key] segment built with [node.FromAny].
func Of(segments ...any) Path {
	p := make(Path, 0, len(segments))

	for _, s := range segments {
		if i, ok := s.(int); ok {
			p = append(p, Idx(i))
			continue
		}

		p = append(p, Key(s))
	}

	return p
}

// String implements [fmt.Stringer] for diagnostics.
func (p Path) String() string {
	out := "$"

	for _, seg := range p {
		if seg.IsIndex {
			out += "[" + strconv.Itoa(seg.Index) + "]"
			continue
		}

		out += "." + seg.Key.String()
	}

	return out
}
