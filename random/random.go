// Package random implements the xoshiro256** pseudorandom number generator
// by David Blackman and Sebastiano Vigna, with uniform range helpers based
// on rejection sampling. See https://prng.di.unimi.it/ for the generator
// family.
//
// This is not a cryptographic generator; only the initial seed of New comes
// from the operating system's entropy source.
package random

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"math/bits"
)

// Source is a xoshiro256** generator with 256 bits of state. It is not safe
// for concurrent use.
//
// Source implements math/rand/v2.Source, so it can drive the standard
// library's distribution helpers as well.
type Source struct {
	seed  uint64
	state [4]uint64
}

// New returns a Source seeded from the operating system's entropy source.
func New() (*Source, error) {
	var raw [8]byte
	if _, err := rand.Read(raw[:]); err != nil {
		return nil, fmt.Errorf("random: seeding: %w", err)
	}
	return WithSeed(binary.LittleEndian.Uint64(raw[:])), nil
}

// WithSeed returns a Source initialized from a fixed seed, for reproducible
// sequences.
func WithSeed(seed uint64) *Source {
	s := &Source{}
	s.SetSeed(seed)
	return s
}

// Seed returns the seed the current state was initialized from.
func (s *Source) Seed() uint64 { return s.seed }

// SetSeed reinitializes the state from seed. The 256-bit state is expanded
// from the 64-bit seed with SplitMix64, as the xoshiro authors recommend.
func (s *Source) SetSeed(seed uint64) {
	s.seed = seed
	z := seed
	for i := range s.state {
		z += 0x9E3779B97F4A7C15
		x := z
		x = (x ^ (x >> 30)) * 0xBF58476D1CE4E5B9
		x = (x ^ (x >> 27)) * 0x94D049BB133111EB
		s.state[i] = x ^ (x >> 31)
	}
}

// Uint64 advances the state and returns the next raw pseudorandom value.
func (s *Source) Uint64() uint64 {
	result := bits.RotateLeft64(s.state[1]*5, 7) * 9
	t := s.state[1] << 17
	s.state[2] ^= s.state[0]
	s.state[3] ^= s.state[1]
	s.state[1] ^= s.state[2]
	s.state[0] ^= s.state[3]
	s.state[2] ^= t
	s.state[3] = bits.RotateLeft64(s.state[3], 45)
	return result
}

// uint32n returns a uniform value in [0, n) for n > 0. Rejection sampling
// avoids the bias a bare modulo would introduce; typically very few
// iterations are needed.
func (s *Source) uint32n(n uint32) uint32 {
	threshold := -n % n
	for {
		// The top 32 bits of the raw output are the strongest.
		v := uint32(s.Uint64() >> 32)
		if v >= threshold {
			return v % n
		}
	}
}

// uint64n returns a uniform value in [0, n) for n > 0 by rejection sampling.
func (s *Source) uint64n(n uint64) uint64 {
	threshold := -n % n
	for {
		v := s.Uint64()
		if v >= threshold {
			return v % n
		}
	}
}

// Int32 returns a uniformly distributed value in [min, max), or min when the
// range is empty.
func (s *Source) Int32(min, max int32) int32 {
	if min >= max {
		return min
	}
	// Unsigned subtraction keeps the range well defined across sign
	// boundaries.
	return min + int32(s.uint32n(uint32(max)-uint32(min)))
}

// Uint32 returns a uniformly distributed value in [min, max), or min when
// the range is empty.
func (s *Source) Uint32(min, max uint32) uint32 {
	if min >= max {
		return min
	}
	return min + s.uint32n(max-min)
}

// Int64 returns a uniformly distributed value in [min, max), or min when the
// range is empty.
func (s *Source) Int64(min, max int64) int64 {
	if min >= max {
		return min
	}
	return min + int64(s.uint64n(uint64(max)-uint64(min)))
}

// Uint64In returns a uniformly distributed value in [min, max), or min when
// the range is empty.
func (s *Source) Uint64In(min, max uint64) uint64 {
	if min >= max {
		return min
	}
	return min + s.uint64n(max-min)
}

// Float32 returns a uniformly distributed value in [min, max), or min when
// the range is empty.
func (s *Source) Float32(min, max float32) float32 {
	if min >= max {
		return min
	}
	// 24 explicit mantissa bits, scaled into [0, 1).
	scale := float32(s.Uint64()>>40) * (1.0 / (1 << 24))
	return min + scale*(max-min)
}

// Float64 returns a uniformly distributed value in [min, max), or min when
// the range is empty.
func (s *Source) Float64(min, max float64) float64 {
	if min >= max {
		return min
	}
	// 53 explicit mantissa bits, scaled into [0, 1).
	scale := float64(s.Uint64()>>11) * (1.0 / (1 << 53))
	return min + scale*(max-min)
}
