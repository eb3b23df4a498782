package cyclic

// Assign overwrites the existing logical slots with src, cycling through the
// ring when src is longer than the current size and leaving the trailing
// suffix untouched when it is shorter. The size never changes: this is a fill
// of the live range, not a replacement of the contents.
//
// When src is longer, the slots end up holding the last size-sized window of
// src as it cycles: the final partial pass lands on top of the front of the
// previous full pass.
func (r *Ring[T]) Assign(src []T) {
	size := r.Len()
	if size == 0 || len(src) == 0 {
		return
	}

	if whole := len(src) / size; whole > 0 {
		src = src[(whole-1)*size:]
		for i := 0; i < size; i++ {
			*r.at(i) = src[i]
		}
		src = src[size:]
	}

	for i := 0; i < len(src) && i < size; i++ {
		*r.at(i) = src[i]
	}

	r.gen++
}

// AssignFill overwrites the first n live slots with v; slots past Len() are
// never created.
func (r *Ring[T]) AssignFill(n int, v T) {
	size := r.Len()
	for i := 0; i < n && i < size; i++ {
		*r.at(i) = v
	}
	r.gen++
}

// AssignRange assigns the elements of [first, last), typically iterators of
// another ring, with the same cycling semantics as Assign.
func (r *Ring[T]) AssignRange(first, last Iterator[T]) {
	n := last.Distance(first)
	if n <= 0 {
		return
	}

	tmp := make([]T, 0, n)
	it := first
	for i := 0; i < n; i++ {
		tmp = append(tmp, it.Get())
		it.Next()
	}

	r.Assign(tmp)
}
