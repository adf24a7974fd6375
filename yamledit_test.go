package yamledit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/yamledit"
	"go.jacobcolvin.com/yamledit/path"
	"go.jacobcolvin.com/yamledit/stringtest"
)

// TestScenarios exercises every concrete end-to-end scenario named in
// SPEC_FULL.md section 11.
func TestScenarios(t *testing.T) {
	t.Parallel()

	t.Run("scenario 1: flow map replace forces double quotes on a dangerous string", func(t *testing.T) {
		t.Parallel()

		ed, err := yamledit.New("{YAML: YAML}")
		require.NoError(t, err)

		require.NoError(t, ed.Update(path.Of("YAML"), "YAML Ain't Markup Language"))
		assert.Equal(t, `{YAML: "YAML Ain't Markup Language"}`, ed.ToString())
	})

	t.Run("scenario 2: remove middle element", func(t *testing.T) {
		t.Parallel()

		ed, err := yamledit.New("- a\n- b\n- c\n")
		require.NoError(t, err)

		require.NoError(t, ed.Remove(path.Of(1)))
		assert.Equal(t, "- a\n- c\n", ed.ToString())
	})

	t.Run("scenario 3: remove last element preserves trailing newline", func(t *testing.T) {
		t.Parallel()

		ed, err := yamledit.New("- a\n- b\n")
		require.NoError(t, err)

		require.NoError(t, ed.Remove(path.Of(1)))
		assert.Equal(t, "- a\n", ed.ToString())
	})

	t.Run("scenario 4: update on a missing key alphabetically appends", func(t *testing.T) {
		t.Parallel()

		ed, err := yamledit.New("a: 1\nb: 2\n")
		require.NoError(t, err)

		require.NoError(t, ed.Update(path.Of("c"), 3))
		assert.Equal(t, "a: 1\nb: 2\nc: 3\n", ed.ToString())
	})

	t.Run("scenario 5: update preserves both header and inline comments", func(t *testing.T) {
		t.Parallel()

		ed, err := yamledit.New("# header\nkey: value  # inline\n")
		require.NoError(t, err)

		require.NoError(t, ed.Update(path.Of("key"), "other"))
		assert.Equal(t, "# header\nkey: other  # inline\n", ed.ToString())
	})

	t.Run("scenario 6: nested list insertion at index 0 redistributes indent", func(t *testing.T) {
		t.Parallel()

		ed, err := yamledit.New("- - x\n  - y\n")
		require.NoError(t, err)

		require.NoError(t, ed.Insert(path.Of(0), 0, "z"))
		assert.Equal(t, "- - z\n  - x\n  - y\n", ed.ToString())
	})
}

func TestIdentityRoundTrip(t *testing.T) {
	t.Parallel()

	srcs := []string{
		"a: 1\nb: 2\n",
		"- a\n- b\n- c\n",
		"{a: 1, b: 2}\n",
		"# comment\nkey: value\n",
		stringtest.JoinCRLF("a: 1", "b: 2", ""),
	}

	for _, src := range srcs {
		ed, err := yamledit.New(src)
		require.NoError(t, err)
		assert.Equal(t, src, ed.ToString())
	}
}

func TestStyleIdempotence(t *testing.T) {
	t.Parallel()

	src := "key: value\n"

	ed, err := yamledit.New(src)
	require.NoError(t, err)

	require.NoError(t, ed.Update(path.Of("key"), "value"))
	assert.Equal(t, src, ed.ToString())
}

func TestLocalChange(t *testing.T) {
	t.Parallel()

	src := "first: 1\nsecond: 2\nthird: 3\n"

	ed, err := yamledit.New(src)
	require.NoError(t, err)

	require.NoError(t, ed.Update(path.Of("second"), 99))

	got := ed.ToString()
	assert.True(t, len(got) >= len("first: 1\n"))
	assert.Equal(t, "first: 1\n", got[:len("first: 1\n")])
	assert.Equal(t, "third: 3\n", got[len(got)-len("third: 3\n"):])
}

func TestEmptyCollectionToNonEmptyAndBack(t *testing.T) {
	t.Parallel()

	ed, err := yamledit.New("items: []\n")
	require.NoError(t, err)

	require.NoError(t, ed.AppendTo(path.Of("items"), "only"))
	assert.Equal(t, "items: [only]\n", ed.ToString())

	require.NoError(t, ed.Remove(path.Of("items", 0)))
	assert.Equal(t, "items: []\n", ed.ToString())
}

func TestSingleElementRemoval(t *testing.T) {
	t.Parallel()

	ed, err := yamledit.New("- only\n")
	require.NoError(t, err)

	require.NoError(t, ed.Remove(path.Of(0)))
	assert.Equal(t, "[]", ed.ToString())
}

func TestFirstElementRemovalPreservesSiblingIndent(t *testing.T) {
	t.Parallel()

	ed, err := yamledit.New("parent:\n  - a\n  - b\n  - c\n")
	require.NoError(t, err)

	require.NoError(t, ed.Remove(path.Of("parent", 0)))
	assert.Equal(t, "parent:\n  - b\n  - c\n", ed.ToString())
}

func TestCRLFDocumentMutation(t *testing.T) {
	t.Parallel()

	src := stringtest.JoinCRLF("- a", "- b", "- c", "")

	ed, err := yamledit.New(src)
	require.NoError(t, err)

	require.NoError(t, ed.Remove(path.Of(1)))
	assert.Equal(t, stringtest.JoinCRLF("- a", "- c", ""), ed.ToString())
}

func TestKeyInsertionIntoNonOrderedMap(t *testing.T) {
	t.Parallel()

	ed, err := yamledit.New("z: 1\na: 2\n")
	require.NoError(t, err)

	require.NoError(t, ed.Update(path.Of("m"), 3))
	assert.Equal(t, "z: 1\na: 2\nm: 3\n", ed.ToString())
}

func TestNullMapValueReplace(t *testing.T) {
	t.Parallel()

	ed, err := yamledit.New("a: null\nb: 2\n")
	require.NoError(t, err)

	require.NoError(t, ed.Update(path.Of("a"), 5))
	assert.Equal(t, "a: 5\nb: 2\n", ed.ToString())
}

func TestDangerousSentinelScalarsGetQuoted(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		sentinel string
		want     string
	}{
		"true":     {"true", `"true"`},
		"null":     {"null", `"null"`},
		"tilde":    {"~", `"~"`},
		"leading dash": {"-value", `"-value"`},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			ed, err := yamledit.New("a: 1\n")
			require.NoError(t, err)

			require.NoError(t, ed.Update(path.Of("a"), tc.sentinel))
			assert.Equal(t, "a: "+tc.want+"\n", ed.ToString())
		})
	}
}

func TestUnprintableEscapeString(t *testing.T) {
	t.Parallel()

	ed, err := yamledit.New("a: 1\n")
	require.NoError(t, err)

	require.NoError(t, ed.Update(path.Of("a"), "bad\x00byte"))
	assert.Equal(t, `a: "bad\0byte"`+"\n", ed.ToString())
}

func TestAppendPrependInsertSplice(t *testing.T) {
	t.Parallel()

	ed, err := yamledit.New("items:\n  - a\n  - b\n")
	require.NoError(t, err)

	require.NoError(t, ed.AppendTo(path.Of("items"), "c"))
	assert.Equal(t, "items:\n  - a\n  - b\n  - c\n", ed.ToString())

	require.NoError(t, ed.PrependTo(path.Of("items"), "z"))
	assert.Equal(t, "items:\n  - z\n  - a\n  - b\n  - c\n", ed.ToString())
}

func TestSpliceReplacesRangeInOrder(t *testing.T) {
	t.Parallel()

	ed, err := yamledit.New("- a\n- b\n- c\n- d\n")
	require.NoError(t, err)

	require.NoError(t, ed.Splice(path.Path{}, 1, 2, []any{"x", "y", "z"}))
	assert.Equal(t, "- a\n- x\n- y\n- z\n- d\n", ed.ToString())
}

func TestPathErrors(t *testing.T) {
	t.Parallel()

	ed, err := yamledit.New("a: 1\n")
	require.NoError(t, err)

	err = ed.Update(path.Of("missing", "deeper"), 1)
	var pathErr *yamledit.PathError
	require.ErrorAs(t, err, &pathErr)
	assert.ErrorIs(t, err, yamledit.ErrPath)
}

func TestAliasTraversalIsRefused(t *testing.T) {
	t.Parallel()

	ed, err := yamledit.New("base: &anchor\n  a: 1\nderived: *anchor\n")
	require.NoError(t, err)

	_, err = ed.ParseAt(path.Of("derived"))
	var aliasErr *yamledit.AliasError
	require.ErrorAs(t, err, &aliasErr)
	assert.ErrorIs(t, err, yamledit.ErrAlias)
}

func TestEditorIDIsStable(t *testing.T) {
	t.Parallel()

	ed, err := yamledit.New("a: 1\n")
	require.NoError(t, err)

	id := ed.ID()
	require.NoError(t, ed.Update(path.Of("a"), 2))
	assert.Equal(t, id, ed.ID())
}

func TestFailedMutationLeavesStateUnchanged(t *testing.T) {
	t.Parallel()

	src := "a: 1\n"

	ed, err := yamledit.New(src)
	require.NoError(t, err)

	err = ed.Remove(path.Of("missing"))
	require.Error(t, err)
	assert.Equal(t, src, ed.ToString())
}
