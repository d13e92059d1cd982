// Package randstate turns a user-supplied seed into a random generator.
//
// Normalize accepts nil, any Go integer, or an existing *Generator:
//
//	Normalize(nil)   // the shared process-wide generator
//	Normalize(42)    // a new generator; same integer, same stream
//	Normalize(g)     // g itself
//
// Integer seeds drive a PCG source from math/rand/v2. Its output is the
// published PCG-DXSM stream, so a seed reproduces the same Uint64 draws on
// every platform.
package randstate

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"
)

// pcgStream is the second PCG seed word; the user's integer is the first.
const pcgStream = 0x9e3779b97f4a7c15

// InvalidSeedError reports a seed that is not absent, a non-negative integer
// or a *Generator.
type InvalidSeedError struct {
	Value any
}

func (e *InvalidSeedError) Error() string {
	return fmt.Sprintf("%#v cannot be used to seed a random generator", e.Value)
}

// Generator is a stateful source of pseudo-random values. It is safe for
// concurrent use.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a generator deterministically seeded with seed.
func New(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, pcgStream))}
}

var (
	defaultOnce sync.Once
	defaultGen  *Generator
)

// Default returns the process-wide generator, creating it on first use with
// a random seed. It lives until the process exits.
func Default() *Generator {
	defaultOnce.Do(func() {
		defaultGen = &Generator{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
	})
	return defaultGen
}

// Normalize converts seed into a generator. Integer seeds must be
// non-negative.
func Normalize(seed any) (*Generator, error) {
	switch s := seed.(type) {
	case nil:
		return Default(), nil
	case *Generator:
		if s == nil {
			return Default(), nil
		}
		return s, nil
	case int:
		return fromSigned(int64(s), seed)
	case int8:
		return fromSigned(int64(s), seed)
	case int16:
		return fromSigned(int64(s), seed)
	case int32:
		return fromSigned(int64(s), seed)
	case int64:
		return fromSigned(s, seed)
	case uint:
		return New(uint64(s)), nil
	case uint8:
		return New(uint64(s)), nil
	case uint16:
		return New(uint64(s)), nil
	case uint32:
		return New(uint64(s)), nil
	case uint64:
		return New(s), nil
	default:
		return nil, &InvalidSeedError{Value: seed}
	}
}

// fromSigned seeds from a signed integer. Negative seeds are rejected rather
// than folded onto the unsigned range.
func fromSigned(n int64, seed any) (*Generator, error) {
	if n < 0 {
		return nil, &InvalidSeedError{Value: seed}
	}
	return New(uint64(n)), nil
}

// ParseSeed converts a command-line value into a seed for Normalize. An empty
// string is an absent seed and decimal integers become int64 or uint64.
// Anything else is returned unchanged so that Normalize rejects it.
func ParseSeed(raw string) any {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return n
	}
	if n, err := strconv.ParseUint(raw, 10, 64); err == nil {
		return n
	}
	return raw
}

func (g *Generator) Uint64() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Uint64()
}

func (g *Generator) Int64() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Int64()
}

// IntN returns a value in [0, n). It panics if n <= 0.
func (g *Generator) IntN(n int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.IntN(n)
}

func (g *Generator) Float64() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Float64()
}

func (g *Generator) NormFloat64() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.NormFloat64()
}

// Perm returns a random permutation of [0, n).
func (g *Generator) Perm(n int) []int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Perm(n)
}

// Shuffle pseudo-randomizes the order of n elements. swap must not call back
// into g.
func (g *Generator) Shuffle(n int, swap func(i, j int)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rng.Shuffle(n, swap)
}
