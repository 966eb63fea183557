package hashing

import "errors"

// Sentinel errors returned by hashing operations.
//
// Use [errors.Is] for comparisons:
//
//	ok, err := hasher.Check(value, digest)
//	if errors.Is(err, hashing.ErrInvalidDigest) {
//	    // digest string is malformed
//	}
var (
	// ErrInvalidDigest is returned when a digest string cannot be parsed
	// because it has an unrecognised format, a bad hex encoding or the wrong
	// length for its driver.
	ErrInvalidDigest = errors.New("hashing: invalid or unrecognised digest string")

	// ErrInvalidOption is returned when a constructor is called with an
	// option outside the allowed range (e.g. a BLAKE2b key longer than 64
	// bytes).
	ErrInvalidOption = errors.New("hashing: invalid option value")

	// ErrEncoding is returned when a value cannot be canonically encoded.
	ErrEncoding = errors.New("hashing: value cannot be canonically encoded")

	// ErrKeyMismatch is returned by a keyed [Hasher]'s Check when the digest
	// was made with a different key, or without one. The digest cannot be
	// verified; [Manager.Refresh] re-digests the value with the current key.
	ErrKeyMismatch = errors.New("hashing: digest was made with a different key")

	// ErrDriverNotFound is returned by [Manager.Driver] or indirectly by
	// [Manager.Make] / [Manager.Check] when the requested driver has not been
	// registered.
	ErrDriverNotFound = errors.New("hashing: driver not found")

	// ErrEmptyDriverName is returned by [Manager.RegisterDriver] when the
	// supplied driver name is an empty string.
	ErrEmptyDriverName = errors.New("hashing: driver name must not be empty")

	// ErrNilHasher is returned by [Manager.RegisterDriver] when a nil [Hasher]
	// is supplied.
	ErrNilHasher = errors.New("hashing: hasher must not be nil")

	// ErrAlgorithmMismatch is returned by a [Hasher]'s Check, NeedsRehash or
	// Info method when the digest was produced by a different driver than the
	// one implemented by that hasher.
	ErrAlgorithmMismatch = errors.New("hashing: digest was produced by a different algorithm")
)
