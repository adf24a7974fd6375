package encode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.jacobcolvin.com/yamledit/internal/encode"
	"go.jacobcolvin.com/yamledit/node"
	"go.jacobcolvin.com/yamledit/value"
)

func TestFlowScalar(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "42", encode.Flow(node.NewScalar(value.NewInt64(42))))
}

func TestFlowEmptySequence(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "[]", encode.Flow(node.NewSequence()))
}

func TestFlowEmptyMapping(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "{}", encode.Flow(node.NewMapping()))
}

func TestFlowSequence(t *testing.T) {
	t.Parallel()

	n := node.NewSequence(
		node.NewScalar(value.NewInt64(1)),
		node.NewScalar(value.NewInt64(2)),
		node.NewScalar(value.NewInt64(3)),
	)

	assert.Equal(t, "[1, 2, 3]", encode.Flow(n))
}

func TestFlowMapping(t *testing.T) {
	t.Parallel()

	n := node.NewMapping(
		node.Entry{Key: node.NewScalar(value.NewString("a")), Value: node.NewScalar(value.NewInt64(1))},
		node.Entry{Key: node.NewScalar(value.NewString("b")), Value: node.NewScalar(value.NewInt64(2))},
	)

	assert.Equal(t, "{a: 1, b: 2}", encode.Flow(n))
}

func TestFlowNestedCollections(t *testing.T) {
	t.Parallel()

	inner := node.NewSequence(node.NewScalar(value.NewInt64(1)), node.NewScalar(value.NewInt64(2)))
	n := node.NewMapping(
		node.Entry{Key: node.NewScalar(value.NewString("list")), Value: inner},
	)

	assert.Equal(t, "{list: [1, 2]}", encode.Flow(n))
}

func TestFlowNeverSelectsLiteralOrFoldedStyle(t *testing.T) {
	t.Parallel()

	n := node.NewScalarStyled(value.NewString("a\nb"), node.ScalarLiteral)
	assert.Equal(t, `"a\nb"`, encode.Flow(n))
}
