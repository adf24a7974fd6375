package yamlparse

import (
	"fmt"

	goyamlparser "github.com/goccy/go-yaml/parser"

	"go.jacobcolvin.com/yamledit/node"
)

// Parse parses src as a single YAML document with comment preservation and
// converts it into the engine's node.Node tree. An empty document (no
// bytes, or a document with no body) parses to an empty block-capable
// mapping, the same "maximally permissive" treatment magicschema gives an
// absent schema.
func Parse(src []byte) (*node.Node, error) {
	file, err := goyamlparser.ParseBytes(src, goyamlparser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	if len(file.Docs) == 0 || file.Docs[0].Body == nil {
		return &node.Node{Kind: node.KindMapping, CollectionStyle: node.CollectionAny}, nil
	}

	root, err := convertNode(file.Docs[0].Body, string(src))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	return root, nil
}

// Validate reports whether src re-parses as valid YAML, without building a
// node tree. The façade uses this after applying a
// [go.jacobcolvin.com/yamledit/edit.SourceEdit] to satisfy the
// parse-preservation invariant (spec section 3): on failure the caller
// rejects the edit and keeps the prior state.
func Validate(src []byte) error {
	_, err := goyamlparser.ParseBytes(src, goyamlparser.ParseComments)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrParse, err)
	}

	return nil
}
