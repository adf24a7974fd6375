// Package encode renders a node.Node back to YAML source text in a chosen
// style: [Flow] for inline `[a, b]` / `{k: v}` syntax, [Block] for
// indentation-based syntax. Scalar style selection (plain, single-quoted,
// double-quoted, literal, folded) follows the fallback rules and escape
// tables in spec section 4.2.
package encode
