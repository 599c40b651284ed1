package seq

import (
	"reflect"
	"unsafe"

	"github.com/growkit/growkit/mem"
)

// List is a strongly-typed wrapper over Raw. It forwards every operation to
// the type-erased core through byte views of T values, so the growth logic
// exists exactly once.
//
// T must not contain pointers: items live in an untyped byte block the
// garbage collector does not scan. Zero-size types are rejected as well. In
// both cases construction fails with ErrInvalidArgument.
type List[T any] struct {
	raw *Raw
}

// New returns an empty List with the default capacity.
func New[T any]() (*List[T], error) {
	return In[T](mem.Heap, initialCapacity)
}

// WithCapacity returns an empty List with room for capacity items.
func WithCapacity[T any](capacity int) (*List[T], error) {
	return In[T](mem.Heap, capacity)
}

// In is WithCapacity with the backing block managed by a.
func In[T any](a mem.Allocator, capacity int) (*List[T], error) {
	var zero T
	t := reflect.TypeOf(&zero).Elem()
	if hasPointers(t) {
		return nil, ErrInvalidArgument
	}
	raw, err := NewRawIn(a, capacity, int(unsafe.Sizeof(zero)))
	if err != nil {
		return nil, err
	}
	return &List[T]{raw: raw}, nil
}

// hasPointers reports whether values of t contain pointers the garbage
// collector would need to see.
func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return hasPointers(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		return true
	}
}

// valueBytes returns the in-memory representation of *v.
func valueBytes[T any](v *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), unsafe.Sizeof(*v))
}

// sliceBytes returns the in-memory representation of vs. len(vs) must be
// positive.
func sliceBytes[T any](vs []T) []byte {
	size := int(unsafe.Sizeof(vs[0]))
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(vs))), len(vs)*size)
}

// Count returns the number of items in the list.
func (l *List[T]) Count() int { return l.raw.Count() }

// Capacity returns the number of items the backing block can hold.
func (l *List[T]) Capacity() int { return l.raw.Capacity() }

// IsEmpty reports whether the list holds no items.
func (l *List[T]) IsEmpty() bool { return l.raw.IsEmpty() }

// At returns a copy of the item at index.
func (l *List[T]) At(index int) (T, error) {
	var v T
	b, err := l.raw.At(index)
	if err != nil {
		return v, err
	}
	copy(valueBytes(&v), b)
	return v, nil
}

// Set overwrites the item at index.
func (l *List[T]) Set(index int, v T) error {
	return l.raw.Set(index, valueBytes(&v))
}

// Append adds v at the end of the list.
func (l *List[T]) Append(v T) error {
	return l.raw.Append(valueBytes(&v))
}

// AppendSlice adds all items of vs in one pass.
func (l *List[T]) AppendSlice(vs []T) error {
	if len(vs) == 0 {
		return nil
	}
	return l.raw.AppendRange(sliceBytes(vs), len(vs))
}

// InsertAt places v at index, shifting the tail right. index may equal
// Count.
func (l *List[T]) InsertAt(index int, v T) error {
	return l.raw.InsertAt(index, valueBytes(&v))
}

// InsertSliceAt places all items of vs at index, shifting the tail right.
func (l *List[T]) InsertSliceAt(index int, vs []T) error {
	if len(vs) == 0 {
		return l.raw.InsertRangeAt(index, nil, 0)
	}
	return l.raw.InsertRangeAt(index, sliceBytes(vs), len(vs))
}

// RemoveAt removes the item at index.
func (l *List[T]) RemoveAt(index int) error {
	return l.raw.RemoveAt(index)
}

// RemoveRange removes n items starting at index.
func (l *List[T]) RemoveRange(index, n int) error {
	return l.raw.RemoveRange(index, n)
}

// Clear empties the list without shrinking it.
func (l *List[T]) Clear() { l.raw.Clear() }

// EnsureCapacity grows the list ahead of future appends.
func (l *List[T]) EnsureCapacity(capacity int) error {
	return l.raw.EnsureCapacity(capacity)
}

// TrimToCount shrinks the backing block to exactly Count items.
func (l *List[T]) TrimToCount() error {
	return l.raw.TrimToCount()
}

// Slice returns a typed view of the occupied items. The view aliases the
// backing block and is invalidated by the next growing operation.
func (l *List[T]) Slice() []T {
	b := l.raw.Bytes()
	if len(b) == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), l.raw.Count())
}

// Release returns the backing block to the allocator and empties the list.
func (l *List[T]) Release() {
	if l == nil {
		return
	}
	l.raw.Release()
}
