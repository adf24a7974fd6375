package yamlparse

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	goyamlast "github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/token"

	"go.jacobcolvin.com/yamledit/node"
	"go.jacobcolvin.com/yamledit/value"
)

var (
	posInf = math.Inf(1)
	nan    = math.NaN()
)

// scalarKind distinguishes the textual decoding a scalar ast.Node needs;
// style (plain/quoted/literal/folded) is orthogonal and determined
// separately by scalarStyle.
type scalarKind int

const (
	kindNull scalarKind = iota
	kindBool
	kindInt
	kindFloat
	kindString
)

// convertNode converts a single goccy/go-yaml AST node, and recursively its
// children, into a node.Node tree. src is the full document text, needed to
// recover the bracket-inclusive span of flow collections (goccy's span
// information is token-granular, not collection-granular). Anchors and
// tags are transparently unwrapped to their underlying value (the engine's
// data model has no anchor/tag concept, per spec section 1: "does not
// resolve YAML anchors/aliases ... does not emit YAML tags"); aliases are
// preserved as a flagged placeholder so the façade can refuse to traverse
// them.
func convertNode(n goyamlast.Node, src string) (*node.Node, error) {
	switch t := n.(type) {
	case *goyamlast.AliasNode:
		return &node.Node{
			Kind:   node.KindScalar,
			Scalar: value.NewNull(),
			Span:   tokenSpan(n.GetToken()),
			Alias:  true,
		}, nil

	case *goyamlast.AnchorNode:
		return convertNode(t.Value, src)

	case *goyamlast.TagNode:
		return convertNode(t.Value, src)

	case *goyamlast.MappingValueNode:
		return convertMapping(n, []*goyamlast.MappingValueNode{t}, false, src)

	case *goyamlast.MappingNode:
		return convertMapping(n, t.Values, t.IsFlowStyle, src)

	case *goyamlast.SequenceNode:
		return convertSequence(t, src)

	case *goyamlast.NullNode:
		return convertScalar(n, kindNull)

	case *goyamlast.BoolNode:
		return convertScalar(n, kindBool)

	case *goyamlast.IntegerNode:
		return convertScalar(n, kindInt)

	case *goyamlast.FloatNode, *goyamlast.InfinityNode, *goyamlast.NanNode:
		return convertScalar(n, kindFloat)

	case *goyamlast.StringNode:
		return convertScalar(n, kindString)

	case *goyamlast.LiteralNode:
		return convertLiteral(t)

	case *goyamlast.MergeKeyNode:
		return convertScalar(n, kindString)

	default:
		return nil, fmt.Errorf("%w: unsupported node type %T", ErrParse, n)
	}
}

// convertMapping builds a mapping node.Node from a flattened list of
// key/value pairs. values has exactly one element when n is itself a lone
// *ast.MappingValueNode (a single-pair document body).
func convertMapping(n goyamlast.Node, values []*goyamlast.MappingValueNode, isFlow bool, src string) (*node.Node, error) {
	entries := make([]node.Entry, 0, len(values))

	for _, mvn := range values {
		keyNode, err := convertNode(mvn.Key, src)
		if err != nil {
			return nil, err
		}

		valNode, err := convertNode(mvn.Value, src)
		if err != nil {
			return nil, err
		}

		valNode.Comments = append(valNode.Comments, commentLines(mvn)...)

		entries = append(entries, node.Entry{Key: keyNode, Value: valNode})
	}

	style := node.CollectionBlock
	if isFlow {
		style = node.CollectionFlow
	}

	span := tokenSpan(n.GetToken())
	if len(entries) > 0 {
		span.Start = entries[0].Key.Span.Start
		span.End = entries[len(entries)-1].Value.Span.End
	}

	if isFlow {
		span = extendFlowSpan(src, span, '{', '}')
	}

	return &node.Node{
		Kind:            node.KindMapping,
		CollectionStyle: style,
		Map:             entries,
		Span:            span,
		Comments:        commentLines(n),
	}, nil
}

func convertSequence(seq *goyamlast.SequenceNode, src string) (*node.Node, error) {
	children := make([]*node.Node, 0, len(seq.Values))

	for _, v := range seq.Values {
		child, err := convertNode(v, src)
		if err != nil {
			return nil, err
		}

		children = append(children, child)
	}

	style := node.CollectionBlock
	if seq.IsFlowStyle {
		style = node.CollectionFlow
	}

	span := tokenSpan(seq.GetToken())
	if len(children) > 0 {
		span.Start = children[0].Span.Start
		span.End = children[len(children)-1].Span.End
	}

	if seq.IsFlowStyle {
		span = extendFlowSpan(src, span, '[', ']')
	}

	return &node.Node{
		Kind:            node.KindSequence,
		CollectionStyle: style,
		Seq:             children,
		Span:            span,
		Comments:        commentLines(seq),
	}, nil
}

// extendFlowSpan widens span so it covers the enclosing open/close bracket
// pair of a flow collection: goccy's per-node span only ever covers the
// collection's children, never the brackets themselves.
func extendFlowSpan(src string, span node.Span, open, close byte) node.Span {
	return node.Span{
		Start: findOpenBracket(src, span.Start, open),
		End:   findCloseBracket(src, span.End, close),
	}
}

func findOpenBracket(src string, start int, ch byte) int {
	if start >= 0 && start < len(src) && src[start] == ch {
		return start
	}

	if start > len(src) {
		start = len(src)
	}

	idx := strings.LastIndexByte(src[:start], ch)
	if idx >= 0 {
		return idx
	}

	return start
}

func findCloseBracket(src string, end int, ch byte) int {
	if end > 0 && end-1 < len(src) && src[end-1] == ch {
		return end
	}

	if end < 0 {
		end = 0
	}

	if end > len(src) {
		return end
	}

	idx := strings.IndexByte(src[end:], ch)
	if idx >= 0 {
		return end + idx + 1
	}

	return end
}

func convertScalar(n goyamlast.Node, kind scalarKind) (*node.Node, error) {
	tk := n.GetToken()
	text := n.String()

	val, err := scalarValue(kind, text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	return &node.Node{
		Kind:        node.KindScalar,
		ScalarStyle: scalarStyle(tk),
		Scalar:      val,
		Span:        tokenSpan(tk),
		Comments:    commentLines(n),
	}, nil
}

func convertLiteral(lit *goyamlast.LiteralNode) (*node.Node, error) {
	tk := lit.GetToken()

	style := node.ScalarLiteral
	if strings.HasPrefix(strings.TrimSpace(tk.Value), ">") || strings.Contains(tk.Origin, ">") {
		style = node.ScalarFolded
	}

	return &node.Node{
		Kind:        node.KindScalar,
		ScalarStyle: style,
		Scalar:      value.NewString(lit.String()),
		Span:        literalSpan(lit),
		Comments:    commentLines(lit),
	}, nil
}

// scalarValue decodes text (the node's canonical textual form, as returned
// by ast.Node.String()) into a value.Value of the given kind.
func scalarValue(kind scalarKind, text string) (value.Value, error) {
	switch kind {
	case kindNull:
		return value.NewNull(), nil
	case kindBool:
		b, err := strconv.ParseBool(text)
		if err != nil {
			return value.Value{}, err
		}

		return value.NewBool(b), nil
	case kindInt:
		i, err := strconv.ParseInt(text, 0, 64)
		if err != nil {
			return value.Value{}, err
		}

		return value.NewInt64(i), nil
	case kindFloat:
		switch strings.ToLower(strings.TrimPrefix(text, "-")) {
		case ".inf", "+.inf":
			sign := 1.0
			if strings.HasPrefix(text, "-") {
				sign = -1.0
			}

			return value.NewFloat64(sign * posInf), nil
		case ".nan":
			return value.NewFloat64(nan), nil
		}

		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return value.Value{}, err
		}

		return value.NewFloat64(f), nil
	default:
		return value.NewString(text), nil
	}
}

// scalarStyle maps a scalar's lexical token type to the engine's
// [node.ScalarStyle] enum.
func scalarStyle(tk *token.Token) node.ScalarStyle {
	if tk == nil {
		return node.ScalarPlain
	}

	switch tk.Type {
	case token.SingleQuoteType:
		return node.ScalarSingleQuoted
	case token.DoubleQuoteType:
		return node.ScalarDoubleQuoted
	default:
		return node.ScalarPlain
	}
}

// commentLines returns the comment text attached to n, each as a full
// "#..." line, or nil if n has no attached comment.
func commentLines(n goyamlast.Node) []string {
	cg := n.GetComment()
	if cg == nil {
		return nil
	}

	tk := cg.GetToken()
	if tk == nil {
		return nil
	}

	var lines []string
	for _, l := range strings.Split(tk.Value, "\n") {
		lines = append(lines, "#"+l)
	}

	return lines
}

// tokenSpan returns the byte span a lexical token occupies in the source,
// derived from the token's offset and raw (undecoded) text.
func tokenSpan(tk *token.Token) node.Span {
	if tk == nil {
		return node.Span{}
	}

	length := len(tk.Origin)
	if length == 0 {
		length = len(tk.Value)
	}

	start := tk.Position.Offset

	return node.Span{Start: start, End: start + length}
}

// literalSpan approximates the byte span of a block scalar (| or >): from
// its indicator token through enough bytes to cover its decoded content,
// plus one line per content line for the consumed line endings. This is a
// best-effort measure (spec section 9 notes the engine does not guarantee
// byte-identical round-trips for every pathological layout); it is exact
// for literals with no trailing-comment ambiguity, which covers ordinary
// usage.
func literalSpan(lit *goyamlast.LiteralNode) node.Span {
	base := tokenSpan(lit.GetToken())

	content := lit.String()
	if content == "" {
		return base
	}

	approxLines := strings.Count(content, "\n") + 1

	return node.Span{Start: base.Start, End: base.End + len(content) + approxLines}
}
