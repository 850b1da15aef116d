package optional

import (
	"slices"
	"strconv"
	"testing"

	"github.com/amp-labs/amp-dependent/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSomeAndNone(t *testing.T) {
	t.Parallel()

	some := Some("007")
	assert.True(t, some.NonEmpty())
	assert.False(t, some.Empty())

	val, ok := some.Get()
	assert.True(t, ok)
	assert.Equal(t, "007", val)

	none := None[string]()
	assert.True(t, none.Empty())

	val, ok = none.Get()
	assert.False(t, ok)
	assert.Empty(t, val)

	var zero Value[int]
	assert.True(t, zero.Empty(), "zero value must be None")
}

func TestFromPair(t *testing.T) {
	t.Parallel()

	m := map[string]int{"a": 1}

	assert.Equal(t, Some(1), FromPair(m["a"], true))

	v, ok := m["b"]
	assert.True(t, FromPair(v, ok).Empty())
}

func TestGetOrPanic(t *testing.T) {
	t.Parallel()

	t.Run("Some", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 42, Some(42).GetOrPanic())
	})

	t.Run("None panics with ErrUnsafeUnwrap", func(t *testing.T) {
		t.Parallel()

		defer func() {
			r := recover()
			require.NotNil(t, r)

			err, ok := r.(error)
			require.True(t, ok)
			require.ErrorIs(t, err, errors.ErrUnsafeUnwrap)
		}()

		None[int]().GetOrPanic()
	})
}

func TestGetOrElseAndOrElse(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, Some(1).GetOrElse(9))
	assert.Equal(t, 9, None[int]().GetOrElse(9))

	assert.Equal(t, Some(1), Some(1).OrElse(Some(2)))
	assert.Equal(t, Some(2), None[int]().OrElse(Some(2)))
}

func TestFilter(t *testing.T) {
	t.Parallel()

	even := func(i int) bool { return i%2 == 0 }

	assert.Equal(t, Some(4), Some(4).Filter(even))
	assert.True(t, Some(3).Filter(even).Empty())
	assert.True(t, None[int]().Filter(even).Empty())
}

func TestEquals(t *testing.T) {
	t.Parallel()

	eq := func(a, b int) bool { return a == b }

	assert.True(t, Some(1).Equals(Some(1), eq))
	assert.False(t, Some(1).Equals(Some(2), eq))
	assert.False(t, Some(1).Equals(None[int](), eq))
	assert.True(t, None[int]().Equals(None[int](), eq))
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Some(-21)", Some(-21).String())
	assert.Equal(t, "None", None[int]().String())
}

func TestAll(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{5}, slices.Collect(Some(5).All()))
	assert.Empty(t, slices.Collect(None[int]().All()))
}

func TestMapAndFlatMap(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Some("12"), Map(Some(12), strconv.Itoa))
	assert.True(t, Map(None[int](), strconv.Itoa).Empty())

	parse := func(s string) Value[int] {
		n, err := strconv.Atoi(s)

		return FromPair(n, err == nil)
	}

	assert.Equal(t, Some(12), FlatMap(Some("12"), parse))
	assert.True(t, FlatMap(Some("x"), parse).Empty())
	assert.True(t, FlatMap(None[string](), parse).Empty())
}

func TestFlatten(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   Value[Value[int]]
		want Value[int]
	}{
		{"some of some", Some(Some(3)), Some(3)},
		{"some of none", Some(None[int]()), None[int]()},
		{"none", None[Value[int]](), None[int]()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, Flatten(tt.in))
		})
	}
}

func TestCollect(t *testing.T) {
	t.Parallel()

	seq := slices.Values([]Value[int]{Some(1), None[int](), Some(3), None[int]()})

	assert.Equal(t, []int{1, 3}, Collect(seq))
	assert.Empty(t, Collect(slices.Values([]Value[int]{None[int]()})))
}
