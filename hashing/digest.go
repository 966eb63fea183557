package hashing

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"maps"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// ──────────────────────────────────────────────────────────────────────────────
// Options
// ──────────────────────────────────────────────────────────────────────────────

// BLAKE2bOptions configures the BLAKE2b driver.
type BLAKE2bOptions struct {
	// Key turns the digest into a MAC. At most [blake2b.Size] (64) bytes.
	//
	// Keyed digests carry a short key id (see [KeyID]) so that a hasher
	// holding a different key reports them through NeedsRehash instead of
	// silently failing to match.
	Key []byte
}

// DefaultBLAKE2bOptions returns unkeyed BLAKE2b options.
func DefaultBLAKE2bOptions() BLAKE2bOptions {
	return BLAKE2bOptions{}
}

// KeyID returns the public identifier written into digests made with key:
// the first four bytes, hex encoded, of the unkeyed BLAKE2b-256 sum of key.
// It identifies a key without revealing it.
func KeyID(key []byte) string {
	sum := blake2b.Sum256(key)
	return hex.EncodeToString(sum[:4])
}

// ──────────────────────────────────────────────────────────────────────────────
// DigestHasher
// ──────────────────────────────────────────────────────────────────────────────

// DigestHasher implements [Hasher] over a fixed-size hash function.
type DigestHasher struct {
	driver DriverName
	size   int
	params map[string]string // written into every digest; nil when empty
	sum    func([]byte) []byte
}

var _ Hasher = (*DigestHasher)(nil)

// NewBLAKE2bHasher returns a BLAKE2b-256 [DigestHasher], keyed when
// opts.Key is set. Returns [ErrInvalidOption] when the key is too long.
func NewBLAKE2bHasher(opts BLAKE2bOptions) (*DigestHasher, error) {
	if len(opts.Key) > blake2b.Size {
		return nil, fmt.Errorf("%w: blake2b key must be at most %d bytes, got %d",
			ErrInvalidOption, blake2b.Size, len(opts.Key))
	}
	h := &DigestHasher{driver: DriverBLAKE2b, size: blake2b.Size256}
	if len(opts.Key) == 0 {
		h.sum = func(data []byte) []byte {
			s := blake2b.Sum256(data)
			return s[:]
		}
		return h, nil
	}

	key := append([]byte(nil), opts.Key...)
	h.params = map[string]string{"key": KeyID(key)}
	h.sum = func(data []byte) []byte {
		mac, _ := blake2b.New256(key) // key length checked above
		mac.Write(data)
		return mac.Sum(nil)
	}
	return h, nil
}

// NewSHA3Hasher returns a SHA3-256 [DigestHasher].
func NewSHA3Hasher() *DigestHasher {
	return &DigestHasher{
		driver: DriverSHA3,
		size:   32,
		sum: func(data []byte) []byte {
			s := sha3.Sum256(data)
			return s[:]
		},
	}
}

// NewSHA256Hasher returns a SHA-256 [DigestHasher].
func NewSHA256Hasher() *DigestHasher {
	return &DigestHasher{
		driver: DriverSHA256,
		size:   sha256.Size,
		sum: func(data []byte) []byte {
			s := sha256.Sum256(data)
			return s[:]
		},
	}
}

// Make returns the digest of value's canonical encoding.
func (h *DigestHasher) Make(value any) (string, error) {
	sum, err := h.digest(value)
	if err != nil {
		return "", err
	}
	return Digest{Driver: h.driver, Params: h.params, Sum: sum}.String(), nil
}

// Check reports whether digest matches value. A digest made with another key
// fails with [ErrKeyMismatch].
func (h *DigestHasher) Check(value any, digest string) (bool, error) {
	d, err := h.parse(digest)
	if err != nil {
		return false, err
	}
	if !maps.Equal(d.Params, h.params) {
		return false, fmt.Errorf("%w: digest has %v, hasher has %v", ErrKeyMismatch, d.Params, h.params)
	}
	got, err := h.digest(value)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare(got, d.Sum) == 1, nil
}

// NeedsRehash reports whether digest was made with parameters other than
// h's, for example by a BLAKE2b hasher holding a rotated key, or unkeyed
// where h is keyed.
func (h *DigestHasher) NeedsRehash(digest string) (bool, error) {
	d, err := h.parse(digest)
	if err != nil {
		return false, err
	}
	return !maps.Equal(d.Params, h.params), nil
}

// Info returns the driver, the sum size and, for keyed digests, the key id.
func (h *DigestHasher) Info(digest string) (DigestInfo, error) {
	d, err := h.parse(digest)
	if err != nil {
		return DigestInfo{}, err
	}
	info := DigestInfo{
		Driver: h.driver,
		Params: map[string]any{"size": len(d.Sum)},
	}
	if id, ok := d.Params["key"]; ok {
		info.Params["key_id"] = id
	}
	return info, nil
}

// Driver returns the driver name of h.
func (h *DigestHasher) Driver() DriverName { return h.driver }

// Size returns the sum length in bytes.
func (h *DigestHasher) Size() int { return h.size }

// KeyID returns the id of h's key, or "" for an unkeyed hasher.
func (h *DigestHasher) KeyID() string { return h.params["key"] }

func (h *DigestHasher) digest(value any) ([]byte, error) {
	b, err := Canonical(value)
	if err != nil {
		return nil, err
	}
	return h.sum(b), nil
}

// parse decodes digest and checks that it belongs to h's driver.
func (h *DigestHasher) parse(digest string) (Digest, error) {
	d, err := ParseDigest(digest)
	if err != nil {
		return Digest{}, err
	}
	if d.Driver != h.driver {
		return Digest{}, fmt.Errorf("%w: expected %s, got %s", ErrAlgorithmMismatch, h.driver, d.Driver)
	}
	if len(d.Sum) != h.size {
		return Digest{}, fmt.Errorf("%w: %s sum must be %d bytes, got %d",
			ErrInvalidDigest, h.driver, h.size, len(d.Sum))
	}
	return d, nil
}
