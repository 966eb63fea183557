package random

import (
	crand "crypto/rand"
	"fmt"
	"io"
	"math/rand/v2"
	"sync"
)

const hexDigits = "0123456789abcdef"

// Generator produces random values from an injected byte reader and
// math/rand source. It is safe for concurrent use.
type Generator struct {
	reader io.Reader

	mu  sync.Mutex
	rng *rand.Rand // nil means the runtime's global generator
}

// Default is the generator used by the package-level functions.
var Default = New(nil, nil)

// New returns a Generator reading secure bytes from reader and drawing
// uniform values from src. A nil reader selects crypto/rand.Reader; a nil src
// selects the runtime's auto-seeded global generator.
func New(reader io.Reader, src rand.Source) *Generator {
	if reader == nil {
		reader = crand.Reader
	}
	g := &Generator{reader: reader}
	if src != nil {
		g.rng = rand.New(src)
	}
	return g
}

// Bytes returns n random bytes read from the generator's reader.
// A non-positive n returns an empty slice.
func (g *Generator) Bytes(n int) ([]byte, error) {
	if n <= 0 {
		return []byte{}, nil
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(g.reader, b); err != nil {
		return nil, fmt.Errorf("random: failed to read %d random bytes: %w", n, err)
	}
	return b, nil
}

// HexString returns n lowercase hex digits, each taken from one random byte
// modulo 16.
func (g *Generator) HexString(n int) (string, error) {
	b, err := g.Bytes(n)
	if err != nil {
		return "", err
	}
	out := make([]byte, len(b))
	for i, c := range b {
		out[i] = hexDigits[c%16]
	}
	return string(out), nil
}

// IntFromRange returns a uniformly distributed integer in [lo, hi], both ends
// inclusive. A reversed range is swapped. Every range is valid, including
// [math.MinInt, math.MaxInt].
func (g *Generator) IntFromRange(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	span := uint64(hi) - uint64(lo) + 1
	if span == 0 {
		// The span covers all 2^64 values of a 64-bit int.
		return int(g.uint64())
	}
	return lo + int(g.uint64N(span))
}

// Index returns a uniformly distributed index in [0, n). It panics if n <= 0.
func (g *Generator) Index(n int) int {
	if n <= 0 {
		panic("random: Index called with non-positive n")
	}
	return int(g.uint64N(uint64(n)))
}

func (g *Generator) uint64N(n uint64) uint64 {
	if g.rng == nil {
		return rand.Uint64N(n)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Uint64N(n)
}

func (g *Generator) uint64() uint64 {
	if g.rng == nil {
		return rand.Uint64()
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Uint64()
}

// ─────────────────────────────────────────────────────────────────────────────
// Package-level helpers
// ─────────────────────────────────────────────────────────────────────────────

// Bytes returns n cryptographically secure random bytes.
func Bytes(n int) ([]byte, error) { return Default.Bytes(n) }

// HexString returns n random lowercase hex digits.
func HexString(n int) (string, error) { return Default.HexString(n) }

// IntFromRange returns a uniformly distributed integer in [lo, hi].
func IntFromRange(lo, hi int) int { return Default.IntFromRange(lo, hi) }

// FromArray returns a uniformly chosen element of items, drawing from gen[0]
// when supplied and from [Default] otherwise. It returns the zero value and
// false when items is empty.
func FromArray[T any](items []T, gen ...*Generator) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	g := Default
	if len(gen) > 0 && gen[0] != nil {
		g = gen[0]
	}
	return items[g.Index(len(items))], true
}
