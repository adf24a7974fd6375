package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.jacobcolvin.com/yamledit/internal/normalize"
	"go.jacobcolvin.com/yamledit/internal/scan"
	"go.jacobcolvin.com/yamledit/node"
	"go.jacobcolvin.com/yamledit/value"
)

func TestApplyTrimsDanglingBreakAtNewlineBoundary(t *testing.T) {
	t.Parallel()

	src := "a: 1\nb: 2\n"
	val := node.NewScalar(value.NewInt64(1))

	encoded := "1\n"
	got := normalize.Apply(src, scan.LF, len(src), val, encoded)

	assert.Equal(t, "1", got)
}

func TestApplyTrimsTrailingWhitespaceWhenNotAtNewlineBoundary(t *testing.T) {
	t.Parallel()

	src := "a: 1, b: 2"
	val := node.NewScalar(value.NewInt64(1))

	encoded := "1 \t\n"
	got := normalize.Apply(src, scan.LF, 4, val, encoded)

	assert.Equal(t, "1", got)
}

func TestApplyLeavesLiteralStyleUntouched(t *testing.T) {
	t.Parallel()

	src := "a: 1\n"
	val := node.NewScalarStyled(value.NewString("line\n"), node.ScalarLiteral)

	encoded := "|-\nline\n"
	got := normalize.Apply(src, scan.LF, len(src), val, encoded)

	assert.Equal(t, encoded, got)
}

func TestApplyLeavesValueEndingInNewlineUntouched(t *testing.T) {
	t.Parallel()

	src := "a: 1\n"
	val := node.NewScalarStyled(value.NewString("x\n"), node.ScalarPlain)

	encoded := "x\n\n"
	got := normalize.Apply(src, scan.LF, len(src), val, encoded)

	assert.Equal(t, encoded, got)
}

func TestApplyEmptyCollectionReturnsEncodedUnchanged(t *testing.T) {
	t.Parallel()

	encoded := "[]\n"
	got := normalize.Apply("a: 1\n", scan.LF, 5, node.NewSequence(), encoded)

	assert.Equal(t, encoded, got)
}
