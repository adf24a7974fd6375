// Package yamlparse adapts github.com/goccy/go-yaml -- the YAML 1.2 parser
// this engine consumes as an external collaborator (spec section 1, "the
// YAML parser is consumed as a black box that yields a node tree with
// source spans and style tags") -- into the engine's own
// [go.jacobcolvin.com/yamledit/node.Node] tree shape.
//
// goccy/go-yaml's parser.ParseBytes, called with parser.ParseComments,
// returns an *ast.File whose nodes expose a token (via GetToken) and an
// attached comment (via GetComment), but no single "span" covering a whole
// collection. Parse builds node.Node spans the same way spec section 4.1.4
// defines content-sensitive end: recursively, from the first and last
// descendant token.
package yamlparse
