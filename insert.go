package cyclic

// Insert places v before the position it addresses. See InsertAt.
func (r *Ring[T]) Insert(it Iterator[T], v T) error {
	return r.InsertAt(it.offset(), v)
}

// InsertAt places v at logical offset p, 0 <= p <= Len(), shifting only the
// shorter of the two spans around p by one position. A full growable ring
// reallocates to capacity+1 first. A full fixed ring evicts one element from
// the far end of the shorter span: the front when the back span moves, the
// back when the front span moves.
func (r *Ring[T]) InsertAt(p int, v T) error {
	size := r.Len()
	if p < 0 || p > size {
		return ErrOutOfRange
	}

	if size == len(r.items) {
		switch {
		case r.grow:
			if err := r.Reserve(len(r.items) + 1); err != nil {
				return err
			}
		case len(r.items) == 0:
			return nil
		case p >= size-p:
			r.PopFront()
			p--
			size--
		default:
			r.PopBack()
			size--
		}
	}

	if p >= size-p {
		// Slide the back span one slot toward the free end.
		for i := size; i > p; i-- {
			*r.at(i) = *r.at(i - 1)
		}
	} else {
		// Open a slot before the range and slide the front span into it.
		r.retreatHead()
		for i := 0; i < p; i++ {
			*r.at(i) = *r.at(i + 1)
		}
	}

	*r.at(p) = v
	r.setLen(size + 1)
	r.gen++
	return nil
}

// InsertSlice places vs before the position it addresses. See InsertSliceAt.
func (r *Ring[T]) InsertSlice(it Iterator[T], vs []T) error {
	return r.InsertSliceAt(it.offset(), vs)
}

// InsertSliceAt places vs at logical offset p. The displaced span (the
// shorter of the two around p) is staged in a scratch buffer to avoid
// overlapping moves across the wrap boundary. A growable ring first grows to
// Len()+len(vs); a fixed ring without enough spare capacity reports
// ErrTooLong and never evicts.
func (r *Ring[T]) InsertSliceAt(p int, vs []T) error {
	size := r.Len()
	if p < 0 || p > size {
		return ErrOutOfRange
	}

	n := len(vs)
	if n == 0 {
		return nil
	}

	if size+n > len(r.items) {
		if !r.grow {
			return ErrTooLong
		}
		if err := r.Reserve(size + n); err != nil {
			return err
		}
	}

	if front, back := p, size-p; front >= back {
		tmp := make([]T, back)
		for i := range tmp {
			tmp[i] = *r.at(p + i)
		}
		for i, v := range vs {
			*r.at(p+i) = v
		}
		for i, v := range tmp {
			*r.at(p+n+i) = v
		}
	} else {
		tmp := make([]T, front)
		for i := range tmp {
			tmp[i] = *r.at(i)
		}
		if r.head -= n; r.head < 0 {
			r.head += len(r.items)
		}
		for i, v := range tmp {
			*r.at(i) = v
		}
		for i, v := range vs {
			*r.at(front+i) = v
		}
	}

	r.setLen(size + n)
	r.gen++
	return nil
}

// Erase removes the element under it, returning an iterator at the position
// that now holds the following element.
func (r *Ring[T]) Erase(it Iterator[T]) (Iterator[T], error) {
	p := it.offset()
	if err := r.EraseAt(p); err != nil {
		return Iterator[T]{}, err
	}
	return r.iterAt(p), nil
}

// EraseAt removes the element at logical offset p, closing the gap by
// shifting the shorter of the two adjacent spans; all other elements keep
// their relative order.
func (r *Ring[T]) EraseAt(p int) error {
	size := r.Len()
	if p < 0 || p >= size {
		return ErrOutOfRange
	}

	var zero T
	if p >= size-p {
		for i := p; i < size-1; i++ {
			*r.at(i) = *r.at(i + 1)
		}
		*r.at(size - 1) = zero
		r.setLen(size - 1)
	} else {
		for i := p; i > 0; i-- {
			*r.at(i) = *r.at(i - 1)
		}
		r.items[r.head] = zero
		if r.head++; r.head == len(r.items) {
			r.head = 0
		}
		r.setLen(size - 1)
	}

	r.gen++
	return nil
}
