package cyclic

import (
	"cmp"
	"sort"
)

// Sort sorts [first, last) in ascending order. The stock sort algorithm runs
// entirely on iterator arithmetic, which is what makes a wrapped range
// sortable in place.
func Sort[T cmp.Ordered](first, last Iterator[T]) {
	SortFunc(first, last, cmp.Less[T])
}

// SortFunc sorts [first, last) by the given less function.
func SortFunc[T any](first, last Iterator[T], less func(a, b T) bool) {
	sort.Sort(span[T]{first: first, n: last.Distance(first), less: less})
}

// span adapts an iterator pair to sort.Interface.
type span[T any] struct {
	first Iterator[T]
	n     int
	less  func(a, b T) bool
}

func (s span[T]) Len() int { return s.n }

func (s span[T]) Less(i, j int) bool {
	return s.less(s.first.Index(i), s.first.Index(j))
}

func (s span[T]) Swap(i, j int) {
	a, b := s.first.Plus(i), s.first.Plus(j)
	va, vb := a.Get(), b.Get()
	a.Set(vb)
	b.Set(va)
}
