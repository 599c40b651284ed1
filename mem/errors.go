package mem

import "errors"

var (
	// ErrOutOfMemory indicates that an allocation or reallocation could not
	// be satisfied. Containers surface it unchanged, leaving their pre-call
	// state intact.
	ErrOutOfMemory = errors.New("mem: out of memory")

	// ErrBadSize indicates a negative allocation size.
	ErrBadSize = errors.New("mem: negative size")
)
