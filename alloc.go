package cyclic

// Allocator provides raw storage for a ring. Implementations report
// exhaustion through the error return; the ring never retries and leaves its
// previous storage untouched on failure.
type Allocator[T any] interface {
	Allocate(n int) ([]T, error)
}

type defaultAllocator[T any] struct{}

func (defaultAllocator[T]) Allocate(n int) ([]T, error) {
	return make([]T, n), nil
}
