package encode

import (
	"math"
	"strconv"
	"strings"

	"go.jacobcolvin.com/yamledit/internal/scan"
	"go.jacobcolvin.com/yamledit/internal/yamlparse"
	"go.jacobcolvin.com/yamledit/node"
	"go.jacobcolvin.com/yamledit/value"
)

// RenderScalar renders n's value as YAML text, choosing a concrete scalar
// style per spec section 4.2. flow reports whether the enclosing context is
// a flow collection (flow never picks literal or folded style, regardless
// of n's requested style). indent and le are only consulted for literal and
// folded style, to lay out continuation lines.
func RenderScalar(n *node.Node, flow bool, indent int, le scan.LineEnding) string {
	s, ok := n.Scalar.String()
	if !ok {
		return renderNonString(n.Scalar)
	}

	return renderString(s, n.ScalarStyle, flow, indent, le)
}

// renderNonString renders v's default textual form: numeric/boolean/null
// values are never quoted (spec section 4.2, step 1).
func renderNonString(v value.Value) string {
	switch v.Kind() {
	case value.Bool:
		b, _ := v.Bool()
		if b {
			return "true"
		}

		return "false"
	case value.Int64:
		i, _ := v.Int64()

		return strconv.FormatInt(i, 10)
	case value.Float64:
		f, _ := v.Float64()

		return formatFloat(f)
	case value.Null:
		fallthrough
	default:
		return "null"
	}
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	default:
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
}

func renderString(s string, style node.ScalarStyle, flow bool, indent int, le scan.LineEnding) string {
	if hasUnprintable(s) {
		return quoteDouble(s)
	}

	switch style {
	case node.ScalarSingleQuoted:
		if strings.Contains(s, "\n") {
			return quoteDouble(s)
		}

		return quoteSingle(s)

	case node.ScalarDoubleQuoted:
		return quoteDouble(s)

	case node.ScalarLiteral:
		if flow || s == "" || startsWithSpace(s) {
			return quoteDouble(s)
		}

		return emitLiteral(s, indent, le)

	case node.ScalarFolded:
		if flow || s == "" || startsWithSpace(s) {
			return quoteDouble(s)
		}

		return emitFolded(s, indent, le)

	case node.ScalarPlain, node.ScalarAny:
		fallthrough
	default:
		if yamlparse.ProbeDangerous(s) {
			return quoteDouble(s)
		}

		return s
	}
}

func startsWithSpace(s string) bool {
	return len(s) > 0 && (s[0] == ' ' || s[0] == '\t')
}

// chompIndicator reports the chomping indicator for a block scalar body
// (spec section 4.2): '+' keeps a trailing space/newline, '-' strips it.
func chompIndicator(s string) string {
	if strings.HasSuffix(s, " ") || strings.HasSuffix(s, "\n") {
		return "+"
	}

	return "-"
}

// emitLiteral renders s as a literal ("|") block scalar body at indent,
// using le as the line terminator (spec section 4.2, "Literal style
// emission").
func emitLiteral(s string, indent int, le scan.LineEnding) string {
	indentStr := strings.Repeat(" ", indent)
	body := strings.ReplaceAll(s, "\n", string(le)+indentStr)

	return "|" + chompIndicator(s) + string(le) + indentStr + body
}

// emitFolded renders s as a folded (">") block scalar body at indent (spec
// section 4.2, "Folded style emission"): lines are joined with YAML's
// paragraph-separator rule, and trailing whitespace is trimmed before
// folding and re-appended afterward so it survives chomping.
func emitFolded(s string, indent int, le scan.LineEnding) string {
	trimmed := strings.TrimRight(s, " \t\n")
	tail := s[len(trimmed):]

	lines := strings.Split(trimmed, "\n")

	var b strings.Builder

	for i, line := range lines {
		if i > 0 {
			prev := lines[i-1]
			if prev != "" && line != "" && !startsWithSpace(line) {
				b.WriteByte('\n')
			}

			b.WriteByte('\n')
		}

		b.WriteString(line)
	}

	body := b.String() + tail

	indentStr := strings.Repeat(" ", indent)
	indentedBody := strings.ReplaceAll(body, "\n", string(le)+indentStr)

	return ">" + chompIndicator(s) + string(le) + indentStr + indentedBody
}
