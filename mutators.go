package yamledit

import (
	"go.jacobcolvin.com/yamledit/edit"
	"go.jacobcolvin.com/yamledit/internal/plan"
	"go.jacobcolvin.com/yamledit/node"
	"go.jacobcolvin.com/yamledit/path"
)

// Update replaces the value at path with value. If path addresses a
// mapping key that does not yet exist, the key is added (spec section 8,
// scenario 4): Update subsumes both "replace" and "add" for map targets,
// matching the façade's single update operation.
func (e *Editor) Update(p path.Path, value any) error {
	if len(p) == 0 {
		return &PathError{Path: p, Segment: 0, Reason: "empty path"}
	}

	parent, err := resolveParent(e.root, p)
	if err != nil {
		return err
	}

	last := p[len(p)-1]
	valNode := node.FromAny(value)

	var edits []edit.SourceEdit

	switch {
	case last.IsIndex:
		if parent.Kind != node.KindSequence {
			return &PathError{Path: p, Segment: len(p) - 1, Reason: "not a sequence"}
		}

		if last.Index < 0 || last.Index >= len(parent.Seq) {
			return &PathError{Path: p, Segment: len(p) - 1, Reason: "index out of range"}
		}

		if parent.CollectionStyle == node.CollectionFlow {
			edits = []edit.SourceEdit{plan.FlowListReplace(parent, last.Index, valNode)}
		} else {
			edits = []edit.SourceEdit{plan.ListUpdate(e.source, e.lineEnding, e.indentStep, parent, last.Index, valNode)}
		}

	default:
		if last.Key.Kind != node.KindScalar {
			return &InvalidScalar{Path: p}
		}

		if parent.Kind != node.KindMapping {
			return &PathError{Path: p, Segment: len(p) - 1, Reason: "not a mapping"}
		}

		idx := mapIndexOf(parent, last.Key)

		switch {
		case idx >= 0 && parent.CollectionStyle == node.CollectionFlow:
			edits = []edit.SourceEdit{plan.FlowMapReplace(parent, idx, valNode)}
		case idx >= 0:
			edits = []edit.SourceEdit{plan.MapReplace(e.source, e.lineEnding, e.indentStep, parent, idx, valNode)}
		case parent.CollectionStyle == node.CollectionFlow:
			edits = []edit.SourceEdit{plan.FlowMapAdd(parent, last.Key, valNode)}
		default:
			edits = []edit.SourceEdit{plan.MapAdd(e.source, e.lineEnding, e.indentStep, parent, last.Key, valNode)}
		}
	}

	return e.commit(p, edits)
}

// list resolves p to the sequence it must address, for the list-only
// mutators (AppendTo, PrependTo, Insert, Splice).
func (e *Editor) list(p path.Path) (*node.Node, error) {
	target, err := e.ParseAt(p)
	if err != nil {
		return nil, err
	}

	if target.Kind != node.KindSequence {
		return nil, &PathError{Path: p, Segment: len(p), Reason: "not a sequence"}
	}

	return target, nil
}

// AppendTo appends value as the new last element of the sequence at path.
func (e *Editor) AppendTo(p path.Path, value any) error {
	list, err := e.list(p)
	if err != nil {
		return err
	}

	valNode := node.FromAny(value)

	var ed edit.SourceEdit
	if list.CollectionStyle == node.CollectionFlow {
		ed = plan.FlowListAppend(list, valNode)
	} else {
		ed = plan.ListAppend(e.source, e.lineEnding, e.indentStep, list, valNode)
	}

	return e.commit(p, []edit.SourceEdit{ed})
}

// PrependTo inserts value as the new first element of the sequence at
// path.
func (e *Editor) PrependTo(p path.Path, value any) error {
	return e.Insert(p, 0, value)
}

// Insert inserts value before the existing element at index in the
// sequence at path. An index at or past the end of the sequence behaves
// like [Editor.AppendTo].
func (e *Editor) Insert(p path.Path, index int, value any) error {
	list, err := e.list(p)
	if err != nil {
		return err
	}

	valNode := node.FromAny(value)

	var ed edit.SourceEdit
	switch {
	case list.CollectionStyle == node.CollectionFlow && index >= len(list.Seq):
		ed = plan.FlowListAppend(list, valNode)
	case list.CollectionStyle == node.CollectionFlow:
		ed = plan.FlowListInsert(e.source, list, index, valNode)
	default:
		ed = plan.ListInsert(e.source, e.lineEnding, e.indentStep, list, index, valNode)
	}

	return e.commit(p, []edit.SourceEdit{ed})
}

// Remove deletes the element or entry addressed by path.
func (e *Editor) Remove(p path.Path) error {
	if len(p) == 0 {
		return &PathError{Path: p, Segment: 0, Reason: "empty path"}
	}

	parent, err := resolveParent(e.root, p)
	if err != nil {
		return err
	}

	last := p[len(p)-1]

	var ed edit.SourceEdit

	switch {
	case last.IsIndex:
		if parent.Kind != node.KindSequence {
			return &PathError{Path: p, Segment: len(p) - 1, Reason: "not a sequence"}
		}

		if last.Index < 0 || last.Index >= len(parent.Seq) {
			return &PathError{Path: p, Segment: len(p) - 1, Reason: "index out of range"}
		}

		if parent.CollectionStyle == node.CollectionFlow {
			ed = plan.FlowListRemove(e.source, parent, last.Index)
		} else {
			ed = plan.ListRemove(e.source, e.lineEnding, parent, last.Index)
		}

	default:
		if last.Key.Kind != node.KindScalar {
			return &InvalidScalar{Path: p}
		}

		if parent.Kind != node.KindMapping {
			return &PathError{Path: p, Segment: len(p) - 1, Reason: "not a mapping"}
		}

		idx := mapIndexOf(parent, last.Key)
		if idx < 0 {
			return &PathError{Path: p, Segment: len(p) - 1, Reason: "missing key"}
		}

		if parent.CollectionStyle == node.CollectionFlow {
			ed = plan.FlowMapRemove(e.source, parent, idx)
		} else {
			ed = plan.MapRemove(e.source, e.lineEnding, parent, idx)
		}
	}

	return e.commit(p, []edit.SourceEdit{ed})
}

// Splice removes deleteCount elements starting at index from the sequence
// at path, then inserts values at that same position, equivalent to
// deleteCount calls to [Editor.Remove] followed by len(values) calls to
// [Editor.Insert] but committed as a single atomic edit.
func (e *Editor) Splice(p path.Path, index, deleteCount int, values []any) error {
	list, err := e.list(p)
	if err != nil {
		return err
	}

	if index < 0 || index+deleteCount > len(list.Seq) {
		return &PathError{Path: p, Segment: len(p), Reason: "splice range out of bounds"}
	}

	var edits []edit.SourceEdit

	for i := 0; i < deleteCount; i++ {
		removeIdx := index + i
		if list.CollectionStyle == node.CollectionFlow {
			edits = append(edits, plan.FlowListRemove(e.source, list, removeIdx))
		} else {
			edits = append(edits, plan.ListRemove(e.source, e.lineEnding, list, removeIdx))
		}
	}

	// Insert edits share one splice offset (the position of the original
	// index-th element); submitted in reverse value order so that, once
	// edit.ApplyAll's stable descending-offset sort preserves this order
	// and applies them in turn, the values land left-to-right.
	for k := len(values) - 1; k >= 0; k-- {
		valNode := node.FromAny(values[k])

		var ed edit.SourceEdit
		switch {
		case list.CollectionStyle == node.CollectionFlow && index >= len(list.Seq):
			ed = plan.FlowListAppend(list, valNode)
		case list.CollectionStyle == node.CollectionFlow:
			ed = plan.FlowListInsert(e.source, list, index, valNode)
		case index >= len(list.Seq):
			ed = plan.ListAppend(e.source, e.lineEnding, e.indentStep, list, valNode)
		default:
			ed = plan.ListInsert(e.source, e.lineEnding, e.indentStep, list, index, valNode)
		}

		edits = append(edits, ed)
	}

	return e.commit(p, edits)
}
