//go:build !ringdebug

package cyclic

func vet(bool, string) {}

func (it Iterator[T]) check() {}
