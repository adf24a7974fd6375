// Package yamledit edits a YAML document by source-level splicing: it
// parses once into a comment- and style-preserving tree, locates a target
// by path, asks a mutation planner for the minimal [edit.SourceEdit] that
// achieves the requested change, applies it, and re-parses to confirm the
// result is still valid YAML. Only the bytes the change actually touches
// move; everything else — comments, quoting, flow/block choice,
// indentation — survives untouched.
package yamledit

import (
	"fmt"

	"github.com/google/uuid"

	"go.jacobcolvin.com/yamledit/edit"
	"go.jacobcolvin.com/yamledit/internal/scan"
	"go.jacobcolvin.com/yamledit/internal/yamlparse"
	"go.jacobcolvin.com/yamledit/node"
	"go.jacobcolvin.com/yamledit/path"
)

// Editor holds one parsed document and its edit history. It is not safe
// for concurrent mutation (spec section 5): callers serialize access to a
// single instance externally; multiple Editor instances are independent
// and may be driven concurrently from separate goroutines.
type Editor struct {
	id uuid.UUID

	source string
	root   *node.Node

	lineEnding scan.LineEnding
	indentStep int

	edits []edit.SourceEdit
}

// New parses source once and returns an Editor over it. A parse failure is
// fatal to construction — there is no partially-valid Editor.
func New(source string) (*Editor, error) {
	root, err := yamlparse.Parse([]byte(source))
	if err != nil {
		return nil, fmt.Errorf("yamledit: %w", err)
	}

	return &Editor{
		id:         uuid.New(),
		source:     source,
		root:       root,
		lineEnding: scan.DetectLineEnding(source),
		indentStep: scan.IndentStep(source, root),
	}, nil
}

// ID returns a stable identifier for this Editor instance, useful for
// correlating log lines across a fleet of documents under edit.
func (e *Editor) ID() uuid.UUID { return e.id }

// ToString returns the current source text.
func (e *Editor) ToString() string { return e.source }

// Source returns the current source text as bytes.
func (e *Editor) Source() []byte { return []byte(e.source) }

// Edits returns the append-only log of edits applied so far, in the order
// they were committed (spec section 4.5, "edits() -> ordered sequence of
// SourceEdit").
func (e *Editor) Edits() []edit.SourceEdit {
	out := make([]edit.SourceEdit, len(e.edits))
	copy(out, e.edits)

	return out
}

// ParseAt traverses path from the document root and returns the node it
// resolves to. It fails with a [PathError] if any segment is missing,
// out of range, or type-mismatched, an [AliasError] if traversal would
// cross a YAML alias, or an [InvalidScalar] if a key segment is not
// itself a scalar.
func (e *Editor) ParseAt(p path.Path) (*node.Node, error) {
	return resolve(e.root, p)
}

// resolve walks root along p, returning the node it designates.
func resolve(root *node.Node, p path.Path) (*node.Node, error) {
	cur := root

	for i, seg := range p {
		if cur.Alias {
			return nil, &AliasError{Path: p, Segment: i}
		}

		next, err := step(cur, p, i, seg)
		if err != nil {
			return nil, err
		}

		cur = next
	}

	if cur.Alias {
		return nil, &AliasError{Path: p, Segment: len(p)}
	}

	return cur, nil
}

// step resolves a single path segment against cur.
func step(cur *node.Node, p path.Path, i int, seg path.Segment) (*node.Node, error) {
	if seg.IsIndex {
		if cur.Kind != node.KindSequence {
			return nil, &PathError{Path: p, Segment: i, Reason: "not a sequence"}
		}

		if seg.Index < 0 || seg.Index >= len(cur.Seq) {
			return nil, &PathError{Path: p, Segment: i, Reason: "index out of range"}
		}

		return cur.Seq[seg.Index], nil
	}

	if seg.Key.Kind != node.KindScalar {
		return nil, &InvalidScalar{Path: p}
	}

	if cur.Kind != node.KindMapping {
		return nil, &PathError{Path: p, Segment: i, Reason: "not a mapping"}
	}

	for _, entry := range cur.Map {
		if entry.Key.Equal(seg.Key) {
			return entry.Value, nil
		}
	}

	return nil, &PathError{Path: p, Segment: i, Reason: "missing key"}
}

// resolveParent walks root along every segment but the last, returning the
// parent container the last segment addresses. p must be non-empty.
func resolveParent(root *node.Node, p path.Path) (*node.Node, error) {
	return resolve(root, p[:len(p)-1])
}

// mapIndexOf returns the entry index in m matching key, or -1.
func mapIndexOf(m *node.Node, key *node.Node) int {
	for i, entry := range m.Map {
		if entry.Key.Equal(key) {
			return i
		}
	}

	return -1
}

// commit applies edits to the current source, re-parses the result, and on
// success advances the Editor's state and appends to the edit log. On
// re-parse failure the Editor is left exactly as it was and a
// [PostEditParseError] is returned (spec section 4.5).
func (e *Editor) commit(p path.Path, edits []edit.SourceEdit) error {
	next := edit.ApplyAll(e.source, edits)

	root, err := yamlparse.Parse([]byte(next))
	if err != nil {
		return &PostEditParseError{Path: p, Err: err}
	}

	e.source = next
	e.root = root
	e.lineEnding = scan.DetectLineEnding(next)
	e.indentStep = scan.IndentStep(next, root)
	e.edits = append(e.edits, edits...)

	return nil
}
