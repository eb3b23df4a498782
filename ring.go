// Package cyclic implements a growable, contiguously-backed circular buffer
// with random-access iterators. The logical range lives anywhere inside the
// backing storage and wraps across its physical end; push and pop at either
// end are O(1).
//
// A Ring created with New has a fixed capacity: pushing into a full ring
// overwrites the oldest element from the opposite end. A Ring created with
// NewGrowable reallocates just-in-time instead, so no element is ever lost.
// Rings are not safe for concurrent mutation.
package cyclic

import (
	"iter"
	"math"
	"unsafe"
)

// Ring is a circular sequence of T. The zero value is an empty fixed ring
// with no storage.
//
// Physical layout: items is the storage arena, head the slot of the first
// live element and tail one past the last. tail == len(items) is the
// off-the-end sentinel marking the ring completely full; it disambiguates
// full from empty when head and tail would otherwise coincide.
type Ring[T any] struct {
	items []T
	head  int
	tail  int
	grow  bool
	alloc Allocator[T]
	gen   uint32
}

// New returns an empty fixed-capacity ring.
func New[T any](capacity int) *Ring[T] {
	return &Ring[T]{items: make([]T, capacity)}
}

// NewGrowable returns an empty ring that reallocates on demand.
func NewGrowable[T any](capacity int) *Ring[T] {
	return &Ring[T]{items: make([]T, capacity), grow: true}
}

// Of returns a full fixed ring holding values, capacity len(values).
func Of[T any](values ...T) *Ring[T] {
	return From(values)
}

// GrowableOf is Of with the grow-on-demand policy.
func GrowableOf[T any](values ...T) *Ring[T] {
	r := From(values)
	r.grow = true
	return r
}

// From returns a full fixed ring holding a copy of src.
func From[T any](src []T) *Ring[T] {
	items := make([]T, len(src))
	copy(items, src)
	return &Ring[T]{items: items, tail: len(items)}
}

// Filled returns a full fixed ring of n copies of v.
func Filled[T any](n int, v T) *Ring[T] {
	items := make([]T, n)
	for i := range items {
		items[i] = v
	}
	return &Ring[T]{items: items, tail: n}
}

// Collect copies the elements of [first, last) into a new full fixed ring.
func Collect[T any](first, last Iterator[T]) *Ring[T] {
	n := last.Distance(first)
	if n < 0 {
		n = 0
	}

	items := make([]T, n)

	it := first
	for i := 0; i < n; i++ {
		items[i] = it.Get()
		it.Next()
	}

	return &Ring[T]{items: items, tail: n}
}

// Clone returns a deep copy sharing no storage with r.
func (r *Ring[T]) Clone() *Ring[T] {
	out := &Ring[T]{items: make([]T, len(r.items)), grow: r.grow, alloc: r.alloc}
	n := r.Len()
	r.copyOut(out.items[:n])
	out.setLen(n)
	return out
}

// SetAllocator replaces the memory provider used for future growth. A nil
// allocator restores the default make-backed one.
func (r *Ring[T]) SetAllocator(alloc Allocator[T]) {
	r.alloc = alloc
}

// Len reports the count of live elements. All three layouts are handled:
// contiguous, wrapped, and full (tail at the sentinel).
func (r *Ring[T]) Len() int {
	c := len(r.items)
	if r.tail == c {
		return c
	}
	if r.head <= r.tail {
		return r.tail - r.head
	}
	return (c - r.head) + r.tail
}

// Cap reports the total slots currently allocated.
func (r *Ring[T]) Cap() int {
	return len(r.items)
}

// MaxLen reports the maximum element count representable for T.
func (r *Ring[T]) MaxLen() int {
	return MaxLen[T]()
}

// MaxLen reports the maximum element count addressable for element type T,
// derived from the address-space and element-size limits.
func MaxLen[T any]() int {
	var v T
	if size := unsafe.Sizeof(v); size > 1 {
		return math.MaxInt / int(size)
	}
	return math.MaxInt
}

// slot maps a logical offset in [0, Len()] to a physical index.
func (r *Ring[T]) slot(i int) int {
	i += r.head
	if c := len(r.items); i >= c {
		i -= c
	}
	return i
}

// at returns the storage cell of logical offset i. The offset may address the
// first free slot past the range during growth.
func (r *Ring[T]) at(i int) *T {
	return &r.items[r.slot(i)]
}

// setLen repositions tail for a live count of n, placing it at the sentinel
// when the ring becomes full.
func (r *Ring[T]) setLen(n int) {
	if n == len(r.items) {
		r.tail = n
		return
	}
	r.tail = r.slot(n)
}

func (r *Ring[T]) allocate(n int) ([]T, error) {
	if r.alloc != nil {
		return r.alloc.Allocate(n)
	}
	return defaultAllocator[T]{}.Allocate(n)
}

// reallocate moves the ring into fresh storage of exactly n slots, n >=
// Len(). The logical range is re-linearized to start at slot 0, so wraparound
// never compounds with a freshly reallocated layout. On allocation failure
// the ring is left untouched.
func (r *Ring[T]) reallocate(n int) error {
	items, err := r.allocate(n)
	if err != nil {
		return err
	}

	size := r.Len()
	r.copyOut(items[:size])

	r.items = items
	r.head = 0
	r.tail = size
	r.gen++

	return nil
}

// copyOut writes the first len(dst) live elements into dst in logical order.
func (r *Ring[T]) copyOut(dst []T) {
	n := len(dst)
	if n == 0 {
		return
	}

	if first := len(r.items) - r.head; first < n {
		copy(dst, r.items[r.head:])
		copy(dst[first:], r.items[:n-first])
		return
	}

	copy(dst, r.items[r.head:r.head+n])
}

// Reserve grows storage to exactly n slots if n exceeds the current capacity,
// preserving element order. Smaller requests are no-ops.
func (r *Ring[T]) Reserve(n int) error {
	if n > r.MaxLen() {
		return ErrTooLong
	}
	if n <= len(r.items) {
		return nil
	}
	return r.reallocate(n)
}

// ShrinkToFit reallocates storage down to exactly Len() slots, or releases it
// entirely when the ring is empty.
func (r *Ring[T]) ShrinkToFit() error {
	size := r.Len()

	if size == 0 {
		r.items, r.head, r.tail = nil, 0, 0
		r.gen++
		return nil
	}

	if size == len(r.items) {
		return nil
	}

	return r.reallocate(size)
}

// Resize grows the ring with zero values or truncates it from the back to
// reach length n, reallocating only when n exceeds the capacity.
func (r *Ring[T]) Resize(n int) error {
	var zero T
	return r.ResizeWith(n, zero)
}

// ResizeWith is Resize with an explicit fill value for new elements.
func (r *Ring[T]) ResizeWith(n int, fill T) error {
	if n < 0 {
		return ErrOutOfRange
	}
	if n > r.MaxLen() {
		return ErrTooLong
	}

	size := r.Len()
	if n == size {
		return nil
	}

	switch {
	case n > size:
		if n > len(r.items) {
			if err := r.reallocate(n); err != nil {
				return err
			}
			for i := size; i < n; i++ {
				r.items[i] = fill
			}
			r.tail = n
			return nil
		}
		for i := size; i < n; i++ {
			*r.at(i) = fill
		}
		r.setLen(n)

	case n < size:
		var zero T
		for i := n; i < size; i++ {
			*r.at(i) = zero
		}
		r.setLen(n)
	}

	r.gen++
	return nil
}

// Clear destroys all elements and releases storage, returning the ring to
// the empty unallocated state.
func (r *Ring[T]) Clear() {
	r.items, r.head, r.tail = nil, 0, 0
	r.gen++
}

// Front returns the first element. Calling it on an empty ring is a contract
// violation.
func (r *Ring[T]) Front() T {
	vet(r.Len() != 0, "front of empty ring")
	return r.items[r.head]
}

// Back returns the last element. Calling it on an empty ring is a contract
// violation.
func (r *Ring[T]) Back() T {
	vet(r.Len() != 0, "back of empty ring")
	return r.items[r.slot(r.Len()-1)]
}

// At returns the element at logical offset i, or ErrOutOfRange when i does
// not address a live element.
func (r *Ring[T]) At(i int) (T, error) {
	if i < 0 || i >= r.Len() {
		var zero T
		return zero, ErrOutOfRange
	}
	return *r.at(i), nil
}

// Get returns the element at offset i taken modulo Len(). Out-of-bounds
// offsets, negative ones included, wrap around the logical range instead of
// failing; use At for checked access.
func (r *Ring[T]) Get(i int) T {
	return *r.at(r.wrap(i))
}

// Set writes v at offset i taken modulo Len(), wrapping like Get.
func (r *Ring[T]) Set(i int, v T) {
	*r.at(r.wrap(i)) = v
}

func (r *Ring[T]) wrap(i int) int {
	size := r.Len()
	vet(size != 0, "offset into empty ring")
	i %= size
	if i < 0 {
		i += size
	}
	return i
}

// PushBack appends v. When the ring is full the growable policy reallocates
// to capacity+1 first; the fixed policy overwrites the oldest element, which
// is evicted from the front. On a zero-capacity fixed ring the value is
// dropped and nil returned. O(1) amortized either way.
func (r *Ring[T]) PushBack(v T) error {
	if r.tail == len(r.items) {
		if r.grow {
			if err := r.Reserve(len(r.items) + 1); err != nil {
				return err
			}
		} else if len(r.items) == 0 {
			return nil
		} else {
			r.items[r.head] = v
			if r.head++; r.head == len(r.items) {
				r.head = 0
			}
			return nil
		}
	}

	size := r.Len()
	r.items[r.slot(size)] = v
	r.setLen(size + 1)
	return nil
}

// PushFront prepends v. When the ring is full the growable policy grows
// first; the fixed policy overwrites the current back, which becomes the new
// front slot. On a zero-capacity fixed ring the value is dropped and nil
// returned.
func (r *Ring[T]) PushFront(v T) error {
	if r.tail == len(r.items) {
		if r.grow {
			if err := r.Reserve(len(r.items) + 1); err != nil {
				return err
			}
		} else if len(r.items) == 0 {
			return nil
		} else {
			r.retreatHead()
			r.items[r.head] = v
			return nil
		}
	}

	size := r.Len()
	r.retreatHead()
	r.items[r.head] = v
	r.setLen(size + 1)
	return nil
}

func (r *Ring[T]) retreatHead() {
	if r.head == 0 {
		r.head = len(r.items) - 1
		return
	}
	r.head--
}

// PopBack removes the last element. No-op on an empty ring.
func (r *Ring[T]) PopBack() {
	size := r.Len()
	if size == 0 {
		return
	}

	var zero T
	*r.at(size-1) = zero
	r.setLen(size - 1)
}

// PopFront removes the first element. No-op on an empty ring.
func (r *Ring[T]) PopFront() {
	size := r.Len()
	if size == 0 {
		return
	}

	var zero T
	r.items[r.head] = zero
	if r.head++; r.head == len(r.items) {
		r.head = 0
	}
	r.setLen(size - 1)
}

// Swap exchanges the contents of two rings in O(1); no element is moved.
func (r *Ring[T]) Swap(o *Ring[T]) {
	r.items, o.items = o.items, r.items
	r.head, o.head = o.head, r.head
	r.tail, o.tail = o.tail, r.tail
	r.grow, o.grow = o.grow, r.grow
	r.alloc, o.alloc = o.alloc, r.alloc
	r.gen++
	o.gen++
}

// Values returns the elements as a new slice in logical order.
func (r *Ring[T]) Values() []T {
	out := make([]T, r.Len())
	r.copyOut(out)
	return out
}

// All ranges over (offset, element) pairs in logical order.
func (r *Ring[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, n := 0, r.Len(); i < n; i++ {
			if !yield(i, *r.at(i)) {
				return
			}
		}
	}
}

// Backward ranges over (offset, element) pairs from back to front.
func (r *Ring[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := r.Len() - 1; i >= 0; i-- {
			if !yield(i, *r.at(i)) {
				return
			}
		}
	}
}
