package seq

import (
	"github.com/growkit/growkit/grow"
	"github.com/growkit/growkit/internal/buf"
	"github.com/growkit/growkit/mem"
)

// initialCapacity is the growth floor for sequences, in item slots.
const initialCapacity = 8

// Raw is a type-erased growable sequence of fixed-size items. Items live in
// a single contiguous block; indexed access is plain offset arithmetic.
//
// Construct with NewRaw, NewRawWithCapacity or NewRawIn; the zero value is
// not usable.
type Raw struct {
	items    []byte // backing block, len == capacity * itemSize
	count    int
	itemSize int
	alloc    mem.Allocator
}

// NewRaw returns an empty sequence for items of itemSize bytes with the
// default capacity.
func NewRaw(itemSize int) (*Raw, error) {
	return NewRawIn(mem.Heap, initialCapacity, itemSize)
}

// NewRawWithCapacity returns an empty sequence with room for capacity items
// of itemSize bytes.
func NewRawWithCapacity(capacity, itemSize int) (*Raw, error) {
	return NewRawIn(mem.Heap, capacity, itemSize)
}

// NewRawIn is NewRawWithCapacity with the backing block managed by a.
// A nil allocator means mem.Heap.
func NewRawIn(a mem.Allocator, capacity, itemSize int) (*Raw, error) {
	if capacity < 0 || itemSize <= 0 {
		return nil, ErrInvalidArgument
	}
	if a == nil {
		a = mem.Heap
	}
	size, ok := buf.MulOverflowSafe(capacity, itemSize)
	if !ok {
		return nil, ErrInvalidArgument
	}
	items, err := a.Alloc(size)
	if err != nil {
		return nil, err
	}
	return &Raw{items: items, itemSize: itemSize, alloc: a}, nil
}

// Count returns the number of logically occupied item slots.
func (l *Raw) Count() int { return l.count }

// Capacity returns the number of item slots the current backing block holds.
func (l *Raw) Capacity() int { return len(l.items) / l.itemSize }

// ItemSize returns the size of each item in bytes. It is immutable for the
// lifetime of the sequence.
func (l *Raw) ItemSize() int { return l.itemSize }

// IsEmpty reports whether the sequence holds no items.
func (l *Raw) IsEmpty() bool { return l.count == 0 }

// At returns a view of the item at index. The view aliases the backing block
// and is invalidated by the next growing operation.
func (l *Raw) At(index int) ([]byte, error) {
	if index < 0 || index >= l.count {
		return nil, ErrInvalidArgument
	}
	view, ok := buf.Slice(l.items, index*l.itemSize, l.itemSize)
	if !ok {
		return nil, ErrInvalidArgument
	}
	return view, nil
}

// Bytes returns a view of the occupied region of the backing block,
// count * itemSize bytes long. Invalidated by the next growing operation.
func (l *Raw) Bytes() []byte { return l.items[:l.count*l.itemSize] }

// Append copies one item into the slot at Count, growing if needed. item
// must hold at least ItemSize bytes; extra bytes are ignored.
func (l *Raw) Append(item []byte) error {
	if len(item) < l.itemSize {
		return ErrInvalidArgument
	}
	if err := l.EnsureCapacity(l.count + 1); err != nil {
		return err
	}
	copy(l.items[l.count*l.itemSize:], item[:l.itemSize])
	l.count++
	return nil
}

// AppendRange copies n contiguous items from items in one pass. n == 0 is a
// no-op regardless of items.
func (l *Raw) AppendRange(items []byte, n int) error {
	if n < 0 {
		return ErrInvalidArgument
	}
	if n == 0 {
		return nil
	}
	size, ok := buf.MulOverflowSafe(n, l.itemSize)
	if !ok || len(items) < size {
		return ErrInvalidArgument
	}
	need, ok := buf.AddOverflowSafe(l.count, n)
	if !ok {
		return mem.ErrOutOfMemory
	}
	if err := l.EnsureCapacity(need); err != nil {
		return err
	}
	copy(l.items[l.count*l.itemSize:], items[:size])
	l.count += n
	return nil
}

// InsertAt places one item at index, shifting the tail [index, Count) one
// slot to the right. index may equal Count, which appends.
func (l *Raw) InsertAt(index int, item []byte) error {
	if index < 0 || index > l.count || len(item) < l.itemSize {
		return ErrInvalidArgument
	}
	if err := l.EnsureCapacity(l.count + 1); err != nil {
		return err
	}
	off := index * l.itemSize
	tail := (l.count - index) * l.itemSize
	copy(l.items[off+l.itemSize:], l.items[off:off+tail])
	copy(l.items[off:], item[:l.itemSize])
	l.count++
	return nil
}

// InsertRangeAt places n contiguous items at index, shifting the tail n
// slots to the right. n == 0 is a no-op.
func (l *Raw) InsertRangeAt(index int, items []byte, n int) error {
	if index < 0 || index > l.count || n < 0 {
		return ErrInvalidArgument
	}
	if n == 0 {
		return nil
	}
	size, ok := buf.MulOverflowSafe(n, l.itemSize)
	if !ok || len(items) < size {
		return ErrInvalidArgument
	}
	need, ok := buf.AddOverflowSafe(l.count, n)
	if !ok {
		return mem.ErrOutOfMemory
	}
	if err := l.EnsureCapacity(need); err != nil {
		return err
	}
	off := index * l.itemSize
	tail := (l.count - index) * l.itemSize
	copy(l.items[off+size:], l.items[off:off+tail])
	copy(l.items[off:], items[:size])
	l.count += n
	return nil
}

// Set overwrites the item at index in place.
func (l *Raw) Set(index int, item []byte) error {
	if index < 0 || index >= l.count || len(item) < l.itemSize {
		return ErrInvalidArgument
	}
	copy(l.items[index*l.itemSize:], item[:l.itemSize])
	return nil
}

// RemoveAt removes the item at index, shifting the tail [index+1, Count)
// left by one. It never reallocates.
func (l *Raw) RemoveAt(index int) error {
	if index < 0 || index >= l.count {
		return ErrInvalidArgument
	}
	off := index * l.itemSize
	copy(l.items[off:], l.items[off+l.itemSize:l.count*l.itemSize])
	l.count--
	return nil
}

// RemoveRange removes n items starting at index, shifting the remainder
// left. n == 0 is a no-op. It never reallocates.
func (l *Raw) RemoveRange(index, n int) error {
	if index < 0 || n < 0 {
		return ErrInvalidArgument
	}
	end, ok := buf.AddOverflowSafe(index, n)
	if !ok || end > l.count {
		return ErrInvalidArgument
	}
	if n == 0 {
		return nil
	}
	off := index * l.itemSize
	copy(l.items[off:], l.items[end*l.itemSize:l.count*l.itemSize])
	l.count -= n
	return nil
}

// Clear sets the count to zero without releasing or shrinking the backing
// block.
func (l *Raw) Clear() { l.count = 0 }

// EnsureCapacity grows the backing block so that at least capacity items fit
// without further allocation. It never shrinks.
func (l *Raw) EnsureCapacity(capacity int) error {
	if capacity < 0 {
		return ErrInvalidArgument
	}
	current := l.Capacity()
	if current >= capacity {
		return nil
	}
	newCapacity := grow.Next(current, capacity, initialCapacity)
	size, ok := buf.MulOverflowSafe(newCapacity, l.itemSize)
	if !ok {
		// The policy saturated past what the address space can describe;
		// fall back to the exact requirement.
		size, ok = buf.MulOverflowSafe(capacity, l.itemSize)
		if !ok {
			return mem.ErrOutOfMemory
		}
	}
	items, err := l.alloc.Realloc(l.items, size)
	if err != nil {
		return err
	}
	l.items = items
	return nil
}

// TrimToCount shrinks the backing block to exactly Count items. This is a
// reallocation that can cost more than the memory it returns; compare
// Capacity against Count before trimming large sequences. On failure the
// sequence is unchanged. A no-op if the block is already tight.
func (l *Raw) TrimToCount() error {
	if l.Capacity() <= l.count {
		return nil
	}
	items, err := l.alloc.Realloc(l.items, l.count*l.itemSize)
	if err != nil {
		return err
	}
	l.items = items
	return nil
}

// Release returns the backing block to the allocator and empties the
// sequence. Releasing a nil or already released sequence is a no-op.
func (l *Raw) Release() {
	if l == nil || l.items == nil {
		return
	}
	l.alloc.Free(l.items)
	l.items = nil
	l.count = 0
}
