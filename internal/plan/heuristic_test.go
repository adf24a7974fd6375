package plan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/yamledit/internal/plan"
	"go.jacobcolvin.com/yamledit/internal/yamlparse"
)

func TestAlphabeticalInsertionIndex(t *testing.T) {
	t.Parallel()

	t.Run("ascending keys insert at sorted position", func(t *testing.T) {
		t.Parallel()

		root, err := yamlparse.Parse([]byte("a: 1\nc: 3\nd: 4\n"))
		require.NoError(t, err)

		assert.Equal(t, 1, plan.AlphabeticalInsertionIndex(root, "b"))
	})

	t.Run("ascending keys insert at end when new key sorts last", func(t *testing.T) {
		t.Parallel()

		root, err := yamlparse.Parse([]byte("a: 1\nb: 2\n"))
		require.NoError(t, err)

		assert.Equal(t, 2, plan.AlphabeticalInsertionIndex(root, "z"))
	})

	t.Run("non-ordered keys always insert at end", func(t *testing.T) {
		t.Parallel()

		root, err := yamlparse.Parse([]byte("z: 1\na: 2\n"))
		require.NoError(t, err)

		assert.Equal(t, 2, plan.AlphabeticalInsertionIndex(root, "m"))
	})

	t.Run("empty mapping inserts at index zero", func(t *testing.T) {
		t.Parallel()

		root, err := yamlparse.Parse([]byte(""))
		require.NoError(t, err)

		assert.Equal(t, 0, plan.AlphabeticalInsertionIndex(root, "a"))
	})
}
