// Package random provides the deterministic generators artworks draw from.
//
// SFC32 follows the reference small-fast-counter algorithm with 32-bit
// wraparound so a seed maps to the same sequence on every platform.
package random

import (
	"math/bits"
)

// Source yields uniformly distributed values in [0, 1).
type Source func() float64

// PRNG is a seeded, resettable generator.
type PRNG interface {
	// Seed returns the seed as a hex string.
	Seed() string
	// Reset restores the generator to its seeded state.
	Reset() PRNG
	// Rnd returns the next value in [0, 1).
	Rnd() float64
}

const invMax = 1.0 / (1 << 32)

// SFC32 is a 128-bit state small fast counting generator.
type SFC32 struct {
	seed  string
	init  [4]uint32
	state [4]uint32
}

// NewSFC32 creates a generator from a hex seed string.
func NewSFC32(seed string) (*SFC32, error) {
	words, err := ParseSeed(seed)
	if err != nil {
		return nil, err
	}
	return NewSFC32Words(words), nil
}

// NewSFC32Words creates a generator from raw state words.
func NewSFC32Words(words [4]uint32) *SFC32 {
	return &SFC32{
		seed:  FormatSeed(words),
		init:  words,
		state: words,
	}
}

// Seed returns the normalized hex seed.
func (r *SFC32) Seed() string {
	return r.seed
}

// Reset rewinds to the seeded state.
func (r *SFC32) Reset() PRNG {
	r.state = r.init
	return r
}

// Uint32 advances the generator.
func (r *SFC32) Uint32() uint32 {
	s := &r.state
	t := s[0] + s[1] + s[3]
	s[3]++
	s[0] = s[1] ^ (s[1] >> 9)
	s[1] = s[2] + (s[2] << 3)
	s[2] = bits.RotateLeft32(s[2], 21) + t
	return t
}

// Rnd returns the next float in [0, 1).
func (r *SFC32) Rnd() float64 {
	return float64(r.Uint32()) * invMax
}

// Source returns Rnd as a Source.
func (r *SFC32) Source() Source {
	return r.Rnd
}

// SourceOf adapts any PRNG.
func SourceOf(p PRNG) Source {
	return p.Rnd
}
