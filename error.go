package cyclic

import "errors"

var (
	// ErrTooLong is returned when a requested capacity or size exceeds the
	// maximum addressable element count for the element type.
	ErrTooLong = errors.New("cyclic: length exceeds maximum ring size")

	// ErrOutOfRange is returned by checked accessors for an offset that has no
	// valid mapping into the logical range.
	ErrOutOfRange = errors.New("cyclic: offset out of range")
)
