// Package seq implements a reallocation-backed growable sequence of
// fixed-size items.
//
// # Overview
//
// The core type is Raw, a type-erased sequence: it operates purely on raw
// bytes and an item size fixed at creation, so one growth implementation
// serves items of any shape. List is a generic wrapper that recovers
// compile-time type safety at the API boundary by forwarding every operation
// to a Raw.
//
// # Growth Discipline
//
// Every mutating operation that may grow follows the same sequence:
//
//	validate arguments
//	compute the required capacity
//	consult the growth policy (grow.Next) only if it exceeds the current one
//	perform at most one reallocation
//	mutate the contents
//
// Capacity grows geometrically by a factor of 1.5 with a floor of 8 slots.
// Removal and Clear never reallocate; shrinking happens only through an
// explicit TrimToCount.
//
// # Failure Atomicity
//
// Operations either fully succeed or fully preserve the pre-call state. A
// failed growth (mem.ErrOutOfMemory) leaves capacity, count and contents
// exactly as they were; a rejected argument (ErrInvalidArgument) is detected
// before anything is touched.
//
// # Ownership and Aliasing
//
// A sequence has exactly one logical owner and is not safe for concurrent
// use. Views handed out by At, Bytes and List.Slice point into the backing
// block and are invalidated by the next operation that grows the sequence.
//
// # Allocation
//
// Backing blocks come from a mem.Allocator. The default is mem.Heap;
// NewRawIn and In accept a custom allocator, for example mem.Limited to
// enforce a byte budget.
package seq
