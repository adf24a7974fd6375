package plan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/yamledit/edit"
	"go.jacobcolvin.com/yamledit/internal/plan"
	"go.jacobcolvin.com/yamledit/internal/scan"
	"go.jacobcolvin.com/yamledit/internal/yamlparse"
	"go.jacobcolvin.com/yamledit/node"
)

func parseSeq(t *testing.T, src string) *node.Node {
	t.Helper()

	root, err := yamlparse.Parse([]byte(src))
	require.NoError(t, err)
	require.Equal(t, node.KindSequence, root.Kind)

	return root
}

func TestListAppend(t *testing.T) {
	t.Parallel()

	src := "- a\n- b\n"
	list := parseSeq(t, src)

	e := plan.ListAppend(src, scan.LF, 2, list, node.FromAny("c"))
	got := edit.Apply(src, e)
	assert.Equal(t, "- a\n- b\n- c\n", got)
}

func TestListAppendNoTrailingNewline(t *testing.T) {
	t.Parallel()

	src := "- a\n- b"
	list := parseSeq(t, src)

	e := plan.ListAppend(src, scan.LF, 2, list, node.FromAny("c"))
	got := edit.Apply(src, e)
	assert.Equal(t, "- a\n- b\n- c", got)
}

func TestListInsertAtMiddle(t *testing.T) {
	t.Parallel()

	src := "- a\n- b\n- c\n"
	list := parseSeq(t, src)

	e := plan.ListInsert(src, scan.LF, 2, list, 1, node.FromAny("x"))
	got := edit.Apply(src, e)
	assert.Equal(t, "- a\n- x\n- b\n- c\n", got)
}

func TestListInsertPastEndDelegatesToAppend(t *testing.T) {
	t.Parallel()

	src := "- a\n- b\n"
	list := parseSeq(t, src)

	e := plan.ListInsert(src, scan.LF, 2, list, 5, node.FromAny("z"))
	got := edit.Apply(src, e)
	assert.Equal(t, "- a\n- b\n- z\n", got)
}

func TestListInsertNestedFirstElementRedistributesIndent(t *testing.T) {
	t.Parallel()

	src := "- - x\n  - y\n"
	outer := parseSeq(t, src)
	inner := outer.Seq[0]

	e := plan.ListInsert(src, scan.LF, 2, inner, 0, node.FromAny("z"))
	got := edit.Apply(src, e)
	assert.Equal(t, "- - z\n  - x\n  - y\n", got)
}

func TestListInsertNestedNonFirstElement(t *testing.T) {
	t.Parallel()

	src := "- - x\n  - y\n  - w\n"
	outer := parseSeq(t, src)
	inner := outer.Seq[0]

	e := plan.ListInsert(src, scan.LF, 2, inner, 1, node.FromAny("z"))
	got := edit.Apply(src, e)
	assert.Equal(t, "- - x\n  - z\n  - y\n  - w\n", got)
}

func TestListUpdateReplacesScalar(t *testing.T) {
	t.Parallel()

	src := "- a\n- b\n- c\n"
	list := parseSeq(t, src)

	e := plan.ListUpdate(src, scan.LF, 2, list, 1, node.FromAny("x"))
	got := edit.Apply(src, e)
	assert.Equal(t, "- a\n- x\n- c\n", got)
}

func TestListRemoveMiddleElement(t *testing.T) {
	t.Parallel()

	src := "- a\n- b\n- c\n"
	list := parseSeq(t, src)

	e := plan.ListRemove(src, scan.LF, list, 1)
	got := edit.Apply(src, e)
	assert.Equal(t, "- a\n- c\n", got)
}

func TestListRemoveLastElementPreservesTrailingNewline(t *testing.T) {
	t.Parallel()

	src := "- a\n- b\n"
	list := parseSeq(t, src)

	e := plan.ListRemove(src, scan.LF, list, 1)
	got := edit.Apply(src, e)
	assert.Equal(t, "- a\n", got)
}

func TestListRemoveFirstElementPreservesIndent(t *testing.T) {
	t.Parallel()

	src := "parent:\n  - a\n  - b\n  - c\n"
	root, err := yamlparse.Parse([]byte(src))
	require.NoError(t, err)
	list := root.Map[0].Value

	e := plan.ListRemove(src, scan.LF, list, 0)
	got := edit.Apply(src, e)
	assert.Equal(t, "parent:\n  - b\n  - c\n", got)
}

func TestListRemoveOnlyElementProducesEmptySequence(t *testing.T) {
	t.Parallel()

	src := "- only\n"
	list := parseSeq(t, src)

	e := plan.ListRemove(src, scan.LF, list, 0)
	got := edit.Apply(src, e)
	assert.Equal(t, "[]", got)
}
