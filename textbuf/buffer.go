// Package textbuf implements dynamically resized, NUL-terminated text
// buffers for line-oriented reads and formatted writes. Buffers grow through
// the same 1.5x policy as the sequence engine, with a smaller floor tuned
// for short text lines, and are only ever grown, never shrunk.
package textbuf

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/growkit/growkit/grow"
	"github.com/growkit/growkit/internal/buf"
	"github.com/growkit/growkit/mem"
)

// initialCapacity is the default allocation for a buffer's first read,
// tuned for short text lines.
const initialCapacity = 128

// Buffer is a growable, always NUL-terminated byte buffer.
//
// Data and Capacity mirror the classic pointer/capacity pairing: Data is nil
// exactly when Capacity is zero, and Capacity counts the usable bytes of
// Data including the terminating NUL. The logical text is the NUL-terminated
// run at the front of Data. Every operation validates the pairing before
// touching anything.
//
// The zero value is an empty buffer ready for use. A Buffer has one logical
// owner and is not safe for concurrent use.
type Buffer struct {
	Data     []byte
	Capacity int

	alloc mem.Allocator
}

// NewIn returns an empty Buffer whose backing block is managed by a.
func NewIn(a mem.Allocator) *Buffer {
	return &Buffer{alloc: a}
}

func (b *Buffer) allocator() mem.Allocator {
	if b.alloc == nil {
		return mem.Heap
	}
	return b.alloc
}

// validate checks the buffer/capacity pairing invariant.
func (b *Buffer) validate() error {
	if b.Capacity < 0 || (b.Data == nil) != (b.Capacity == 0) || b.Capacity > len(b.Data) {
		return ErrInvalidArgument
	}
	return nil
}

// ensure grows the buffer so that at least required bytes, including the
// terminating NUL, are addressable. It never shrinks. On failure the buffer
// is unchanged.
func (b *Buffer) ensure(required int) error {
	if b.Capacity >= required {
		return nil
	}
	newCapacity := grow.Next(b.Capacity, required, 1)
	data, err := b.allocator().Realloc(b.Data, newCapacity)
	if err != nil {
		return err
	}
	b.Data = data
	b.Capacity = newCapacity
	return nil
}

// Len returns the logical length of the text: the distance to the first NUL,
// bounded by Capacity.
func (b *Buffer) Len() int {
	if i := bytes.IndexByte(b.Data[:b.Capacity], 0); i >= 0 {
		return i
	}
	return b.Capacity
}

// Bytes returns the logical text without the terminating NUL. The view
// aliases the backing block and is invalidated by the next growing
// operation.
func (b *Buffer) Bytes() []byte { return b.Data[:b.Len()] }

// String returns a copy of the logical text.
func (b *Buffer) String() string { return string(b.Bytes()) }

// ReadLine reads bytes from r until a line feed (inclusive) or the end of
// the stream, growing the buffer as needed and NUL-terminating the result.
// Prior content is overwritten; the allocation is reused and only ever
// grown.
//
// An exhausted stream with zero bytes read returns io.EOF. If at least one
// byte was read before exhaustion the read succeeds without a trailing line
// feed. Any other read error is returned wrapped and satisfies neither
// errors.Is(err, io.EOF) nor the out-of-memory condition. The stream is
// never opened or closed here; its lifecycle belongs to the caller. Input is
// treated as raw bytes, so UTF-8 passes through untouched.
func (b *Buffer) ReadLine(r io.ByteReader) error {
	if err := b.validate(); err != nil {
		return err
	}
	if b.Data == nil {
		if err := b.ensure(initialCapacity); err != nil {
			return err
		}
	}
	index := 0
	var readErr error
	for {
		c, err := r.ReadByte()
		if err != nil {
			readErr = err
			break
		}
		// One byte for c, one for the terminating NUL.
		if err := b.ensure(index + 2); err != nil {
			return err
		}
		b.Data[index] = c
		index++
		if c == '\n' {
			break
		}
	}
	b.Data[index] = 0
	if readErr != nil && !errors.Is(readErr, io.EOF) {
		return fmt.Errorf("textbuf: reading stream: %w", readErr)
	}
	// End of stream only counts as a failure if nothing was read.
	if readErr != nil && index == 0 {
		return io.EOF
	}
	return nil
}

// Writef formats according to format and replaces the buffer's content with
// the result, growing as needed and NUL-terminating. On failure a previously
// valid buffer is left untouched.
func (b *Buffer) Writef(format string, args ...any) error {
	if err := b.validate(); err != nil {
		return err
	}
	return b.printf(0, format, args...)
}

// Appendf formats according to format and appends the result to the
// buffer's current logical content. On an empty buffer it behaves exactly
// like Writef.
func (b *Buffer) Appendf(format string, args ...any) error {
	if err := b.validate(); err != nil {
		return err
	}
	return b.printf(b.Len(), format, args...)
}

// printf measures the formatted text, grows to fit it plus the terminating
// NUL and writes it at offset.
func (b *Buffer) printf(offset int, format string, args ...any) error {
	text := fmt.Appendf(nil, format, args...)
	required, ok := buf.AddOverflowSafe(offset, len(text))
	if ok {
		required, ok = buf.AddOverflowSafe(required, 1)
	}
	if !ok {
		return ErrWriteFailed
	}
	if err := b.ensure(required); err != nil {
		return err
	}
	copy(b.Data[offset:], text)
	b.Data[offset+len(text)] = 0
	return nil
}

// Release returns the backing block to the allocator and resets the buffer
// to its empty state. Releasing an empty or nil buffer is a no-op.
func (b *Buffer) Release() {
	if b == nil || b.Data == nil {
		return
	}
	b.allocator().Free(b.Data)
	b.Data = nil
	b.Capacity = 0
}
