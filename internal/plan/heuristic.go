package plan

import (
	"sort"

	"go.jacobcolvin.com/yamledit/internal/encode"
	"go.jacobcolvin.com/yamledit/node"
)

// keyText returns the string-coerced form of a map key, used by the
// alphabetical insertion heuristic (spec sections 4.3.5 and 4.3.8).
func keyText(k *node.Node) string {
	if k.Kind != node.KindScalar {
		return encode.Flow(k)
	}

	if s, ok := k.Scalar.String(); ok {
		return s
	}

	return encode.Flow(k)
}

// AlphabeticalInsertionIndex computes the insertion index for a new key
// added to m: if m's existing keys are already in strictly ascending
// order, the new key is inserted before the first existing key greater
// than it; otherwise the insertion point is the end.
func AlphabeticalInsertionIndex(m *node.Node, key string) int {
	if !keysAscending(m) {
		return len(m.Map)
	}

	return sort.Search(len(m.Map), func(i int) bool {
		return keyText(m.Map[i].Key) > key
	})
}

func keysAscending(m *node.Node) bool {
	for i := 1; i < len(m.Map); i++ {
		if keyText(m.Map[i-1].Key) >= keyText(m.Map[i].Key) {
			return false
		}
	}

	return true
}
