// Package random provides the draw source used by the game rules.
//
// Callers receive a Source at construction time; there is no package-level
// generator.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"sync"
)

// Source - returns a uniformly distributed integer in [0, n).
type Source interface {
	Intn(n int) int
}

// Generator - a PCG generator guarded by a mutex, safe for concurrent use.
type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// New - a generator seeded from crypto/rand.
func New() (*Generator, error) {
	var b [16]byte
	if _, err := crand.Read(b[:]); err != nil {
		return nil, fmt.Errorf("read random seed: %w", err)
	}

	return newGenerator(binary.LittleEndian.Uint64(b[:8]), binary.LittleEndian.Uint64(b[8:])), nil
}

// NewWithSeed - a reproducible generator.
func NewWithSeed(seed int64) *Generator {
	return newGenerator(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)
}

func newGenerator(seed1, seed2 uint64) *Generator {
	return &Generator{
		rnd: rand.New(rand.NewPCG(seed1, seed2)), //nolint: gosec // game rules, not security
	}
}

func (that *Generator) Intn(n int) int {
	if n <= 0 {
		return 0
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	return that.rnd.IntN(n)
}

// Fixed - a source that always draws the same value, reduced into [0, n).
type Fixed int

func (that Fixed) Intn(n int) int {
	if n <= 0 {
		return 0
	}

	value := int(that) % n
	if value < 0 {
		value += n
	}

	return value
}
