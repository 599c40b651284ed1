// Package mem defines the allocation seam the storage engines grow through.
//
// Every container allocates its backing block via an Allocator, so allocation
// failure is a reportable condition rather than a crash: the Heap allocator
// never fails (Go heap exhaustion is not recoverable), while Limited enforces
// a byte budget and returns ErrOutOfMemory when it is exceeded. Tests use
// Limited to exercise the out-of-memory paths of the engines.
package mem

// Allocator hands out and resizes raw byte blocks.
//
// Implementations are not required to be safe for concurrent use; the
// containers built on top are single-owner anyway.
type Allocator interface {
	// Alloc returns a zeroed block of exactly size bytes.
	Alloc(size int) ([]byte, error)

	// Realloc returns a block of exactly size bytes whose prefix is copied
	// from b. A nil b behaves like Alloc. On success b is dead and must not
	// be used or freed; on failure b remains valid and untouched.
	Realloc(b []byte, size int) ([]byte, error)

	// Free returns a block obtained from Alloc or Realloc. Free(nil) is a
	// no-op.
	Free(b []byte)
}

// Heap is the default allocator, backed by the Go heap.
var Heap Allocator = heapAllocator{}

type heapAllocator struct{}

func (heapAllocator) Alloc(size int) ([]byte, error) {
	if size < 0 {
		return nil, ErrBadSize
	}
	return make([]byte, size), nil
}

func (heapAllocator) Realloc(b []byte, size int) ([]byte, error) {
	if size < 0 {
		return nil, ErrBadSize
	}
	nb := make([]byte, size)
	copy(nb, b)
	return nb, nil
}

func (heapAllocator) Free([]byte) {}

// Limited returns an allocator enforcing a total budget across live blocks.
// Requests that would push the number of live bytes past the budget fail with
// ErrOutOfMemory; Free and shrinking Realloc calls return bytes to the
// budget.
func Limited(budget int) Allocator {
	return &limitedAllocator{budget: budget}
}

type limitedAllocator struct {
	budget int
	used   int
}

func (a *limitedAllocator) Alloc(size int) ([]byte, error) {
	if size < 0 {
		return nil, ErrBadSize
	}
	if size > a.budget-a.used {
		return nil, ErrOutOfMemory
	}
	a.used += size
	return make([]byte, size), nil
}

func (a *limitedAllocator) Realloc(b []byte, size int) ([]byte, error) {
	if size < 0 {
		return nil, ErrBadSize
	}
	if size-len(b) > a.budget-a.used {
		return nil, ErrOutOfMemory
	}
	a.used += size - len(b)
	nb := make([]byte, size)
	copy(nb, b)
	return nb, nil
}

func (a *limitedAllocator) Free(b []byte) {
	a.used -= len(b)
}
