package normalize

import (
	"strings"

	"go.jacobcolvin.com/yamledit/internal/scan"
	"go.jacobcolvin.com/yamledit/node"
)

// Apply post-processes encoded, the block-encoded rendering of value, to
// prevent a dangling line break at the splice boundary (spec section 4.4).
// src is the full pre-edit source, le its detected line ending, and
// spliceEnd the end offset (into src) of the region the splice replaces.
func Apply(src string, le scan.LineEnding, spliceEnd int, value *node.Node, encoded string) string {
	term := value.TerminalScalar()
	if term == nil {
		return encoded
	}

	if term.ScalarStyle == node.ScalarLiteral || term.ScalarStyle == node.ScalarFolded {
		return encoded
	}

	if term.ScalarStyle == node.ScalarPlain || term.ScalarStyle == node.ScalarAny {
		if raw, ok := term.Scalar.String(); ok {
			if strings.HasSuffix(raw, "\n") || strings.HasSuffix(raw, "\r\n") {
				return encoded
			}
		}
	}

	if spliceEnd-1 >= 0 && spliceEnd-1 < len(src) && src[spliceEnd-1] == '\n' {
		return trimOneTrailingBreak(encoded, le)
	}

	return strings.TrimRight(encoded, " \t\r\n")
}

// trimOneTrailingBreak removes a single trailing line ending from s, if
// present, preferring the detected line ending's own length.
func trimOneTrailingBreak(s string, le scan.LineEnding) string {
	if strings.HasSuffix(s, string(le)) {
		return s[:len(s)-len(string(le))]
	}

	if strings.HasSuffix(s, "\n") {
		return s[:len(s)-1]
	}

	return s
}
