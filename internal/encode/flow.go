package encode

import (
	"strings"

	"go.jacobcolvin.com/yamledit/internal/scan"
	"go.jacobcolvin.com/yamledit/node"
)

// Flow renders n in flow style: `[a, b, c]` for sequences, `{k: v}` for
// mappings, inline for scalars. Flow never selects literal or folded
// scalar style (spec section 4.2); nested collections are always
// flow-rendered in turn, regardless of their own CollectionStyle.
func Flow(n *node.Node) string {
	switch n.Kind {
	case node.KindScalar:
		return RenderScalar(n, true, 0, scan.LF)

	case node.KindSequence:
		if len(n.Seq) == 0 {
			return "[]"
		}

		parts := make([]string, len(n.Seq))
		for i, c := range n.Seq {
			parts[i] = Flow(c)
		}

		return "[" + strings.Join(parts, ", ") + "]"

	case node.KindMapping:
		if len(n.Map) == 0 {
			return "{}"
		}

		parts := make([]string, len(n.Map))
		for i, e := range n.Map {
			parts[i] = Flow(e.Key) + ": " + Flow(e.Value)
		}

		return "{" + strings.Join(parts, ", ") + "}"

	default:
		return ""
	}
}
