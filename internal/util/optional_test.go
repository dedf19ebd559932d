package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptional_SomeAndNone(t *testing.T) {
	s := Some(42)
	v, ok := s.Get()
	require.True(t, ok)
	assert.Equal(t, 42, v)
	assert.Equal(t, 42, s.Unwrap())
	assert.Equal(t, 42, s.UnwrapOr(7))
	assert.Equal(t, "42", s.String())

	n := None[int]()
	_, ok = n.Get()
	require.False(t, ok)
	assert.Equal(t, 7, n.UnwrapOr(7))
	assert.Equal(t, "", n.String())
	assert.Panics(t, func() { n.Unwrap() })
}

func TestMap(t *testing.T) {
	double := func(i int) int { return i * 2 }

	assert.Equal(t, Some(8), Map(Some(4), double))
	assert.Equal(t, None[int](), Map(None[int](), double))
}
