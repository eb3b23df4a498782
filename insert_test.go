package cyclic

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInsertFixedFull(t *testing.T) {
	a := From(words)

	// The front span is shorter, so the back element is evicted to make room.
	require.NoError(t, a.InsertAt(2, "key"))
	require.EqualValues(t, 7, a.Len())
	require.Equal(t,
		[]string{"12", "ABc", "key", "aBCCD", "Leeks", "Lakes", ""},
		a.Values(),
	)

	// Here the back span is shorter and the front element goes instead.
	require.NoError(t, a.InsertAt(4, "key2"))
	require.EqualValues(t, 7, a.Len())
	require.Equal(t,
		[]string{"ABc", "key", "aBCCD", "key2", "Leeks", "Lakes", ""},
		a.Values(),
	)
}

func TestInsertGrowable(t *testing.T) {
	g := GrowableOf(words...)

	require.NoError(t, g.InsertAt(2, "key"))
	require.EqualValues(t, 8, g.Len())
	require.EqualValues(t, 8, g.Cap())
	require.Equal(t,
		[]string{"12", "ABc", "key", "aBCCD", "Leeks", "Lakes", "", "This is end..."},
		g.Values(),
	)
}

func TestInsertThroughIterator(t *testing.T) {
	a := Of(1, 2, 3, 4)
	require.NoError(t, a.Insert(a.Begin().Plus(2), 9))
	require.Equal(t, []int{2, 9, 3, 4}, a.Values())
}

func TestInsertEdges(t *testing.T) {
	r := New[int](5)
	require.NoError(t, r.PushBack(2))
	require.NoError(t, r.PushBack(3))

	require.NoError(t, r.InsertAt(0, 1))
	require.Equal(t, []int{1, 2, 3}, r.Values())

	require.NoError(t, r.InsertAt(r.Len(), 4))
	require.Equal(t, []int{1, 2, 3, 4}, r.Values())

	require.ErrorIs(t, r.InsertAt(-1, 0), ErrOutOfRange)
	require.ErrorIs(t, r.InsertAt(r.Len()+1, 0), ErrOutOfRange)
}

func TestInsertSlice(t *testing.T) {
	g := GrowableOf(1, 2, 3, 4, 5)

	require.NoError(t, g.InsertSliceAt(1, []int{9, 8}))
	require.EqualValues(t, 7, g.Len())
	require.EqualValues(t, 7, g.Cap())
	require.Equal(t, []int{1, 9, 8, 2, 3, 4, 5}, g.Values())

	require.NoError(t, g.InsertSliceAt(5, []int{0}))
	require.Equal(t, []int{1, 9, 8, 2, 3, 0, 4, 5}, g.Values())

	require.NoError(t, g.InsertSliceAt(3, nil))
	require.EqualValues(t, 8, g.Len())
}

func TestInsertSliceFixed(t *testing.T) {
	f := Of(1, 2, 3)
	require.ErrorIs(t, f.InsertSliceAt(1, []int{9, 9}), ErrTooLong)
	require.Equal(t, []int{1, 2, 3}, f.Values())

	r := New[int](5)
	require.NoError(t, r.PushBack(1))
	require.NoError(t, r.PushBack(2))

	require.NoError(t, r.InsertSliceAt(1, []int{7, 8}))
	require.Equal(t, []int{1, 7, 8, 2}, r.Values())
}

func TestErase(t *testing.T) {
	a := Of("12", "ABc", "Key", "aBCCD", "Leeks", "Lakes", "", "This is end...")

	require.NoError(t, a.EraseAt(2))
	require.EqualValues(t, 7, a.Len())
	require.EqualValues(t, 8, a.Cap())
	require.Equal(t,
		[]string{"12", "ABc", "aBCCD", "Leeks", "Lakes", "", "This is end..."},
		a.Values(),
	)

	b := Of(1, 2, 3, 4, 5)
	require.NoError(t, b.EraseAt(3))
	require.Equal(t, []int{1, 2, 3, 5}, b.Values())
}

func TestEraseWrapped(t *testing.T) {
	w := wrapped(8, []int{-3, -2, -1}, []int{1, 2, 3})

	require.NoError(t, w.EraseAt(1))
	require.Equal(t, []int{-3, -1, 1, 2, 3}, w.Values())
}

func TestEraseThroughIterator(t *testing.T) {
	r := Of(10, 20, 30, 40)

	it, err := r.Erase(r.Begin().Plus(1))
	require.NoError(t, err)
	require.EqualValues(t, 30, it.Get())
	require.Equal(t, []int{10, 30, 40}, r.Values())

	it, err = r.Erase(r.Begin().Plus(2))
	require.NoError(t, err)
	require.True(t, it.Equal(r.End()))
	require.Equal(t, []int{10, 30}, r.Values())
}

func TestEraseErrors(t *testing.T) {
	e := New[int](3)
	require.ErrorIs(t, e.EraseAt(0), ErrOutOfRange)

	r := Of(1, 2)
	require.ErrorIs(t, r.EraseAt(2), ErrOutOfRange)
	require.ErrorIs(t, r.EraseAt(-1), ErrOutOfRange)
}
