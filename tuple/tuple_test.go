package tuple

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTuple2(t *testing.T) {
	t.Parallel()

	pair := NewTuple2("0007", false)

	assert.Equal(t, "0007", pair.First())
	assert.False(t, pair.Second())

	first, second := pair.Unpack()
	assert.Equal(t, "0007", first)
	assert.False(t, second)

	assert.Equal(t, "(0007, false)", pair.String())
}

func TestTuple2_NilValues(t *testing.T) {
	t.Parallel()

	pair := NewTuple2[*int, []string](nil, nil)

	assert.Nil(t, pair.First())
	assert.Nil(t, pair.Second())
}
