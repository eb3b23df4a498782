//go:build ringdebug

package cyclic

// vet fails fast on contract violations. Compiled in only under the
// ringdebug build tag so release builds carry no checks.
func vet(ok bool, msg string) {
	if !ok {
		panic("cyclic: " + msg)
	}
}

func (it Iterator[T]) check() {
	if it.ring == nil {
		panic("cyclic: use of zero iterator")
	}
	if it.gen != it.ring.gen {
		panic("cyclic: iterator invalidated by container mutation")
	}
}
