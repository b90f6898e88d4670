// Package rng provides the injectable randomness used by personality
// synthesis and conversion.
package rng

import (
	crand "crypto/rand"
	"math/big"
	"math/rand/v2"
	"sync"
)

// Source is the randomness provider for every non-deterministic operation.
//
// Implementations MUST be safe for concurrent use.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}

// cryptoSource implements Source using crypto/rand.
type cryptoSource struct{}

// NewCryptoSource returns a Source backed by crypto/rand.
//
// Postcondition: Every value returned by Intn is in [0, n).
func NewCryptoSource() Source {
	return &cryptoSource{}
}

// Intn returns a cryptographically secure random int in [0, n).
//
// Precondition: n > 0. Panics with "rng: Intn called with n <= 0" if n <= 0.
func (c *cryptoSource) Intn(n int) int {
	if n <= 0 {
		panic("rng: Intn called with n <= 0")
	}
	val, err := crand.Int(crand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic("rng: crypto/rand failure: " + err.Error())
	}
	return int(val.Int64())
}

// seededSource is a reproducible PCG stream guarded by a mutex.
type seededSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSeededSource returns a deterministic Source. Two sources built from the
// same seed produce the same sequence.
func NewSeededSource(seed uint64) Source {
	return &seededSource{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Intn returns a pseudo-random int in [0, n).
//
// Precondition: n > 0. Panics if n <= 0.
func (s *seededSource) Intn(n int) int {
	if n <= 0 {
		panic("rng: Intn called with n <= 0")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.IntN(n)
}

// Uint32 draws a uniformly distributed 32-bit value from src in two 16-bit
// halves so it works on platforms where int is 32 bits wide.
func Uint32(src Source) uint32 {
	hi := uint32(src.Intn(1 << 16))
	lo := uint32(src.Intn(1 << 16))
	return hi<<16 | lo
}

// Between returns a value in [lo, hi].
//
// Precondition: lo <= hi.
func Between(src Source, lo, hi int) int {
	return lo + src.Intn(hi-lo+1)
}
