//go:build ringdebug

package cyclic

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDebugEmptyAccessPanics(t *testing.T) {
	r := New[int](2)

	require.Panics(t, func() { r.Front() })
	require.Panics(t, func() { r.Back() })
}

func TestDebugNoopResizeKeepsIterators(t *testing.T) {
	r := Of(1, 2, 3)
	it := r.Begin().Plus(1)

	require.NoError(t, r.Resize(r.Len()))
	require.NotPanics(t, func() { it.Get() })
}

func TestDebugStaleIteratorPanics(t *testing.T) {
	r := GrowableOf(1, 2, 3)
	it := r.Begin()

	require.NoError(t, r.Reserve(8))
	require.Panics(t, func() { it.Get() })

	var zero Iterator[int]
	require.Panics(t, func() { zero.Get() })
}
