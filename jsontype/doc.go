// Package jsontype compares and canonicalises JSON-shaped Go values: nil,
// booleans, numbers, strings, slices of JSON-shaped values and string-keyed
// maps of JSON-shaped values, as produced by decoding JSON into an any.
//
// # Equality
//
// [DeepEqual] compares two values structurally. Numbers compare by value
// across Go numeric kinds, so int(4) equals float64(4). Values outside the
// JSON shape (pointers, structs, channels, maps with non-string keys) are a
// contract violation and produce [ErrInvalidType] rather than a guess.
//
// DeepEqual walks only the keys of its first argument. A second map with
// extra keys still compares equal:
//
//	jsontype.DeepEqual(map[string]any{"a": 1}, map[string]any{"a": 1, "b": 2}) // → true, nil
//
// # Canonical form
//
// [Hashable] rewrites a value so that semantically equal values have
// identical shapes: maps become key-sorted lists of [key, value] pairs. The
// result is suitable as input to an encoder and a hash function.
package jsontype
