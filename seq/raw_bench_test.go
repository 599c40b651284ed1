package seq

import (
	"testing"
)

// BenchmarkRawAppend measures amortized append cost including growth.
func BenchmarkRawAppend(b *testing.B) {
	itm := make([]byte, 16)

	b.ResetTimer()
	b.ReportAllocs()

	l, err := NewRaw(16)
	if err != nil {
		b.Fatal(err)
	}
	for range b.N {
		if err := l.Append(itm); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkRawAppendPrealloc measures append cost when the capacity is
// reserved up front and no growth ever happens.
func BenchmarkRawAppendPrealloc(b *testing.B) {
	itm := make([]byte, 16)
	l, err := NewRawWithCapacity(b.N, 16)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		if err := l.Append(itm); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkListAppend measures the overhead of the typed wrapper over the
// raw core.
func BenchmarkListAppend(b *testing.B) {
	l, err := New[int64]()
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := range b.N {
		if err := l.Append(int64(i)); err != nil {
			b.Fatal(err)
		}
	}
}
