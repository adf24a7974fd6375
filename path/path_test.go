package path_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.jacobcolvin.com/yamledit/path"
)

func TestOfAndString(t *testing.T) {
	t.Parallel()

	p := path.Of("spec", "containers", 0, "name")

	assert.Equal(t, "$.spec.containers[0].name", p.String())
}

func TestIdxAndKeySegments(t *testing.T) {
	t.Parallel()

	idx := path.Idx(3)
	assert.True(t, idx.IsIndex)
	assert.Equal(t, 3, idx.Index)

	key := path.Key("name")
	assert.False(t, key.IsIndex)
	assert.Equal(t, "name", key.Key.String())
}

func TestEmptyPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "$", path.Path{}.String())
	assert.Equal(t, "$", path.Of().String())
}
