package cyclic

import "cmp"

// Equal reports whether two rings hold pairwise-equal elements in the same
// logical order. Capacity and growth policy do not participate.
func Equal[T comparable](a, b *Ring[T]) bool {
	n := a.Len()
	if n != b.Len() {
		return false
	}
	for i := 0; i < n; i++ {
		if *a.at(i) != *b.at(i) {
			return false
		}
	}
	return true
}

// Compare orders two rings lexicographically over elements visited in
// logical order, with the shorter ring ordered first on a tie.
func Compare[T cmp.Ordered](a, b *Ring[T]) int {
	an, bn := a.Len(), b.Len()
	for i := 0; i < an && i < bn; i++ {
		if c := cmp.Compare(*a.at(i), *b.at(i)); c != 0 {
			return c
		}
	}
	return cmp.Compare(an, bn)
}

// EqualFunc is Equal with a caller-supplied element equality.
func (r *Ring[T]) EqualFunc(o *Ring[T], eq func(a, b T) bool) bool {
	n := r.Len()
	if n != o.Len() {
		return false
	}
	for i := 0; i < n; i++ {
		if !eq(*r.at(i), *o.at(i)) {
			return false
		}
	}
	return true
}
