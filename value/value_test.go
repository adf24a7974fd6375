package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/yamledit/value"
)

func TestConstructorsAndAccessors(t *testing.T) {
	t.Parallel()

	t.Run("null", func(t *testing.T) {
		t.Parallel()
		v := value.NewNull()
		assert.Equal(t, value.Null, v.Kind())
		assert.True(t, v.IsNull())
	})

	t.Run("bool", func(t *testing.T) {
		t.Parallel()
		v := value.NewBool(true)
		b, ok := v.Bool()
		require.True(t, ok)
		assert.True(t, b)

		_, ok = v.Int64()
		assert.False(t, ok)
	})

	t.Run("int64", func(t *testing.T) {
		t.Parallel()
		v := value.NewInt64(42)
		i, ok := v.Int64()
		require.True(t, ok)
		assert.Equal(t, int64(42), i)
	})

	t.Run("float64", func(t *testing.T) {
		t.Parallel()
		v := value.NewFloat64(3.5)
		f, ok := v.Float64()
		require.True(t, ok)
		assert.InDelta(t, 3.5, f, 0)
	})

	t.Run("string", func(t *testing.T) {
		t.Parallel()
		v := value.NewString("hello")
		s, ok := v.String()
		require.True(t, ok)
		assert.Equal(t, "hello", s)
	})
}

func TestGoString(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		v    value.Value
		want string
	}{
		"null":    {value.NewNull(), "null"},
		"bool":    {value.NewBool(true), "true"},
		"int64":   {value.NewInt64(7), "7"},
		"float64": {value.NewFloat64(1.25), "1.25"},
		"string":  {value.NewString("abc"), "abc"},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.v.GoString())
		})
	}
}

func TestEqual(t *testing.T) {
	t.Parallel()

	assert.True(t, value.NewInt64(1).Equal(value.NewInt64(1)))
	assert.False(t, value.NewInt64(1).Equal(value.NewInt64(2)))
	assert.False(t, value.NewInt64(1).Equal(value.NewFloat64(1)))
	assert.True(t, value.NewNull().Equal(value.NewNull()))
	assert.True(t, value.NewString("a").Equal(value.NewString("a")))
	assert.False(t, value.NewString("a").Equal(value.NewString("b")))
}

func TestFromAny(t *testing.T) {
	t.Parallel()

	assert.True(t, value.FromAny(nil).IsNull())
	assert.True(t, value.FromAny(true).Equal(value.NewBool(true)))
	assert.True(t, value.FromAny(3).Equal(value.NewInt64(3)))
	assert.True(t, value.FromAny(int64(3)).Equal(value.NewInt64(3)))
	assert.True(t, value.FromAny(1.5).Equal(value.NewFloat64(1.5)))
	assert.True(t, value.FromAny("s").Equal(value.NewString("s")))
}

func TestFromAnyPanicsOnUnsupportedType(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		value.FromAny([]any{1, 2})
	})
}
