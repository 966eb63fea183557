package random_test

import (
	"bytes"
	"errors"
	"io"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-turtledash/random"
)

func seeded() *random.Generator {
	return random.New(nil, rand.NewPCG(1, 2))
}

func TestBytes(t *testing.T) {
	b, err := random.Bytes(32)
	require.NoError(t, err)
	require.Len(t, b, 32)

	other, err := random.Bytes(32)
	require.NoError(t, err)
	require.NotEqual(t, b, other)
}

func TestBytesNonPositive(t *testing.T) {
	for _, n := range []int{0, -3} {
		b, err := random.Bytes(n)
		require.NoError(t, err)
		require.Empty(t, b)
	}
}

func TestBytesFromInjectedReader(t *testing.T) {
	g := random.New(bytes.NewReader([]byte{1, 2, 3, 4}), nil)
	b, err := g.Bytes(3)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, b)
}

func TestBytesShortReader(t *testing.T) {
	g := random.New(bytes.NewReader([]byte{1}), nil)
	_, err := g.Bytes(4)
	require.Error(t, err)
	require.True(t, errors.Is(err, io.ErrUnexpectedEOF))
}

func TestHexStringModSixteen(t *testing.T) {
	g := random.New(bytes.NewReader([]byte{0x00, 0x0f, 0x10, 0xff, 0xab}), nil)
	s, err := g.HexString(5)
	require.NoError(t, err)
	require.Equal(t, "0f0fb", s)
}

func TestHexStringLength(t *testing.T) {
	s, err := random.HexString(40)
	require.NoError(t, err)
	require.Len(t, s, 40)
	for _, r := range s {
		require.Contains(t, "0123456789abcdef", string(r))
	}
}

func TestIntFromRangeInclusive(t *testing.T) {
	g := seeded()
	seen := map[int]int{}
	for i := 0; i < 5000; i++ {
		n := g.IntFromRange(1, 3)
		require.GreaterOrEqual(t, n, 1)
		require.LessOrEqual(t, n, 3)
		seen[n]++
	}
	require.Len(t, seen, 3, "both bounds must be reachable")
}

func TestIntFromRangeSingleAndReversed(t *testing.T) {
	g := seeded()
	require.Equal(t, 7, g.IntFromRange(7, 7))
	for i := 0; i < 100; i++ {
		n := g.IntFromRange(10, -10)
		require.GreaterOrEqual(t, n, -10)
		require.LessOrEqual(t, n, 10)
	}
}

func TestIntFromRangeWideSpans(t *testing.T) {
	g := seeded()
	for i := 0; i < 200; i++ {
		n := g.IntFromRange(0, math.MaxInt)
		require.GreaterOrEqual(t, n, 0)

		m := g.IntFromRange(math.MinInt, 0)
		require.LessOrEqual(t, m, 0)

		require.NotPanics(t, func() { g.IntFromRange(math.MinInt, math.MaxInt) })
		require.NotPanics(t, func() { random.IntFromRange(math.MaxInt, math.MinInt) })
	}
	require.Equal(t, math.MaxInt, g.IntFromRange(math.MaxInt, math.MaxInt))
	require.Equal(t, math.MinInt, g.IntFromRange(math.MinInt, math.MinInt))
}

func TestIntFromRangeDeterministic(t *testing.T) {
	a, b := seeded(), seeded()
	for i := 0; i < 20; i++ {
		require.Equal(t, a.IntFromRange(0, 1000), b.IntFromRange(0, 1000))
	}
}

func TestFromArray(t *testing.T) {
	items := []string{"a", "b", "c"}
	seen := map[string]bool{}
	g := seeded()
	for i := 0; i < 300; i++ {
		v, ok := random.FromArray(items, g)
		require.True(t, ok)
		seen[v] = true
	}
	require.Len(t, seen, 3)
}

func TestFromArrayDefaultGenerator(t *testing.T) {
	v, ok := random.FromArray([]int{42})
	require.True(t, ok)
	require.Equal(t, 42, v)
}

func TestFromArrayEmpty(t *testing.T) {
	v, ok := random.FromArray([]int{})
	require.False(t, ok)
	require.Zero(t, v)
}
