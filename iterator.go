package cyclic

import "cmp"

// Iterator is a random-access cursor over a ring. It stores the physical
// slot it points at plus a back-reference to its ring, and steps across the
// physical end of storage transparently, so walking Begin to End always
// visits elements in logical order no matter where the range sits.
//
// An iterator is weakly tied to its ring: any operation that reallocates
// storage or relocates elements (Reserve, Resize, growth on insert, Erase,
// ShrinkToFit, Clear, Assign) invalidates it. Using an invalidated iterator
// is a contract violation, detected when built with the ringdebug tag.
type Iterator[T any] struct {
	slot int
	ring *Ring[T]
	gen  uint32
}

// Begin returns an iterator at the first element.
func (r *Ring[T]) Begin() Iterator[T] {
	return Iterator[T]{slot: r.head, ring: r, gen: r.gen}
}

// End returns the off-the-end iterator.
func (r *Ring[T]) End() Iterator[T] {
	return Iterator[T]{slot: r.tail, ring: r, gen: r.gen}
}

func (r *Ring[T]) iterAt(p int) Iterator[T] {
	if p >= r.Len() {
		return r.End()
	}
	return Iterator[T]{slot: r.slot(p), ring: r, gen: r.gen}
}

// Get returns the element under the cursor.
func (it Iterator[T]) Get() T {
	it.check()
	return it.ring.items[it.slot]
}

// Set overwrites the element under the cursor.
func (it Iterator[T]) Set(v T) {
	it.check()
	it.ring.items[it.slot] = v
}

// Next advances one position. Stepping past the last element of a full ring
// lands on the off-the-end sentinel; stepping past the physical end of
// storage wraps to slot 0 when the range does not start there.
func (it *Iterator[T]) Next() {
	it.check()
	r := it.ring

	it.slot++
	if it.slot == r.head {
		it.slot = len(r.items)
	} else if it.slot == len(r.items) && r.head != 0 {
		it.slot = 0
	}
}

// Prev steps one position back, wrapping symmetrically to Next.
func (it *Iterator[T]) Prev() {
	it.check()
	r := it.ring

	if it.slot == r.head {
		it.slot = len(r.items)
		return
	}
	if it.slot == len(r.items) {
		it.slot = r.head
	}
	if it.slot == 0 {
		it.slot = len(r.items) - 1
	} else {
		it.slot--
	}
}

// Add advances the cursor by n positions. The offset is reduced modulo the
// ring's current size, so arithmetic past the bounds wraps around the
// logical range; an offset that is an exact multiple of the size lands on
// the off-the-end sentinel rather than back on the start. Negative offsets
// route through Sub.
func (it *Iterator[T]) Add(n int) {
	it.check()
	if n == 0 {
		return
	}
	if n < 0 {
		it.Sub(-n)
		return
	}

	r := it.ring
	size := r.Len()
	if size == 0 {
		return
	}
	n %= size

	c := len(r.items)
	switch {
	case it.slot+n >= c:
		it.slot = it.slot + n - c
		if it.slot == r.head {
			it.slot = c
		}
	case it.slot+n == r.head:
		it.slot = c
	default:
		it.slot += n
	}
}

// Sub moves the cursor back by n positions, reduced modulo the ring's size.
func (it *Iterator[T]) Sub(n int) {
	it.check()
	if n == 0 {
		return
	}
	if n < 0 {
		it.Add(-n)
		return
	}

	r := it.ring
	size := r.Len()
	if size == 0 {
		return
	}
	n %= size

	c := len(r.items)
	if it.slot == c {
		if r.head == 0 {
			it.slot = c - 1
		} else {
			it.slot = r.head - 1
		}
		n--
	}

	if it.slot-n < 0 {
		it.slot = c - n + it.slot
	} else {
		it.slot -= n
	}
}

// Plus returns a copy of the iterator advanced by n.
func (it Iterator[T]) Plus(n int) Iterator[T] {
	it.Add(n)
	return it
}

// Minus returns a copy of the iterator moved back by n.
func (it Iterator[T]) Minus(n int) Iterator[T] {
	it.Sub(n)
	return it
}

// Index returns the element n positions after the cursor, with n reduced
// modulo the ring's size; out-of-bounds and negative offsets wrap rather
// than fault.
func (it Iterator[T]) Index(n int) T {
	it.check()
	r := it.ring

	size := r.Len()
	n %= size
	if n < 0 {
		n += size
	}

	slot := it.slot + n
	if c := len(r.items); slot >= c {
		slot -= c
	}
	return r.items[slot]
}

// offset translates the physical slot into the logical offset from the
// ring's first element; the sentinel maps to Len().
func (it Iterator[T]) offset() int {
	r := it.ring
	c := len(r.items)

	if it.slot == c {
		return r.Len()
	}
	if it.slot >= r.head {
		return it.slot - r.head
	}
	return (c - r.head) + it.slot
}

// Distance returns the signed number of positions from o to it. When the two
// operands straddle the wrap point the result is the sum of the spans on
// either side of the physical end.
func (it Iterator[T]) Distance(o Iterator[T]) int {
	return it.offset() - o.offset()
}

// Equal reports whether both iterators address the same position of the same
// ring.
func (it Iterator[T]) Equal(o Iterator[T]) bool {
	return it.ring == o.ring && it.slot == o.slot
}

// Less orders iterators of one ring by logical position.
func (it Iterator[T]) Less(o Iterator[T]) bool {
	return it.offset() < o.offset()
}

// Compare returns -1, 0 or +1 ordering two iterators by logical position.
func (it Iterator[T]) Compare(o Iterator[T]) int {
	return cmp.Compare(it.offset(), o.offset())
}
