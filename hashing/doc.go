// Package hashing produces content-addressable digests of JSON-shaped Go
// values, so that semantically equal data hashes to the same string
// regardless of map iteration order.
//
// # Architecture
//
// The central abstraction is the [Hasher] interface. Three drivers ship with
// this package, all built on [DigestHasher]:
//
//   - [DriverBLAKE2b]: BLAKE2b-256, optionally keyed (the default)
//   - [DriverSHA3]: SHA3-256
//   - [DriverSHA256]: SHA-256, for systems that only speak SHA-2
//
// The [Manager] is a named driver registry and dispatcher. Register one or
// more [Hasher] implementations, designate a default driver, then delegate
// all hashing operations through the [Manager].
//
// # Quick start
//
//	m, err := hashing.NewDefaultManager() // BLAKE2b default, all drivers registered
//	if err != nil { log.Fatal(err) }
//
//	digest, _ := m.Make(map[string]any{"b": 1, "a": 2})
//	ok, _ := m.Check(map[string]any{"a": 2, "b": 1}, digest) // true
//
// # Canonical encoding
//
// Values are first rewritten with [jsontype.Hashable] and then encoded as
// JSON (see [Canonical]). Maps that differ only in iteration order produce
// the same bytes, and so do typed and untyped collections holding the same
// data: map[string]int{"a": 1} and map[string]any{"a": 1.0} hash alike.
//
// # Digest format
//
// Digests are self-describing so the producing driver can be detected:
//
//	$blake2b-256$<hex-encoded sum>
//	$blake2b-256$key=<key id>$<hex-encoded sum>
//
// The optional middle segment holds the parameters needed to reproduce the
// sum (see [Digest]). A keyed BLAKE2b digest records the [KeyID] of its key,
// never the key itself.
//
// # Rotation
//
// [Manager.NeedsRehash] reports a digest as stale when another driver made
// it, or when the current driver made it under other parameters. Rotating a
// BLAKE2b key is a matter of registering a hasher with the new key: digests
// under the old key id then fail [Manager.Check] with [ErrKeyMismatch]
// instead of reading as a mismatch, and [Manager.Refresh] re-digests them.
//
//	fresh, replaced, err := m.Refresh(value, stored)
//	if err == nil && replaced {
//		save(fresh)
//	}
package hashing
