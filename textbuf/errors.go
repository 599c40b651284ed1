package textbuf

import "errors"

var (
	// ErrInvalidArgument indicates the buffer/capacity pairing invariant or
	// another precondition was violated. Detected before any I/O or growth.
	ErrInvalidArgument = errors.New("textbuf: invalid argument")

	// ErrWriteFailed indicates that formatting or writing into a buffer
	// failed for a reason other than memory exhaustion.
	ErrWriteFailed = errors.New("textbuf: writing buffer failed")
)
