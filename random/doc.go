// Package random provides small randomness helpers: secure random bytes and
// hex strings, uniform integers from an inclusive range, and uniform picks
// from a slice.
//
// # Sources
//
// Two sources back every [Generator]:
//
//   - an io.Reader of secure bytes for [Generator.Bytes] and
//     [Generator.HexString] (crypto/rand.Reader by default);
//   - a math/rand/v2 source for uniform choices (the runtime's auto-seeded
//     generator by default).
//
// The package-level functions use [Default]. Tests that need reproducible
// output build their own generator:
//
//	g := random.New(bytes.NewReader(fixed), rand.NewPCG(1, 2))
//	hex, _ := g.HexString(8)
//	n := g.IntFromRange(1, 6)
package random
