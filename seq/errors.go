package seq

import "errors"

// ErrInvalidArgument indicates that a precondition on an index, count, or
// item size was violated. It is detected before any mutation, so the
// sequence is left unchanged.
var ErrInvalidArgument = errors.New("seq: invalid argument")
