package hashing

import (
	"encoding/hex"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// DriverName identifies a digest algorithm driver.
type DriverName string

const (
	// DriverBLAKE2b selects BLAKE2b with a 256-bit output.
	DriverBLAKE2b DriverName = "blake2b-256"
	// DriverSHA3 selects SHA3-256.
	DriverSHA3 DriverName = "sha3-256"
	// DriverSHA256 selects SHA-256.
	DriverSHA256 DriverName = "sha256"
)

// Hasher is the core interface satisfied by all digest drivers.
//
// All implementations must be safe for concurrent use by multiple goroutines.
type Hasher interface {
	// Make returns the digest string of value. Equal values always produce
	// equal digests.
	Make(value any) (string, error)

	// Check reports whether digest is the digest of value. A structurally
	// invalid digest, or one this hasher cannot reproduce (another driver,
	// another key), is an error rather than a mismatch.
	Check(value any, digest string) (bool, error)

	// NeedsRehash reports whether digest was made by this driver with a
	// configuration other than the hasher's current one.
	NeedsRehash(digest string) (bool, error)

	// Info describes digest without verifying it.
	Info(digest string) (DigestInfo, error)

	// Driver returns the DriverName implemented by this hasher.
	Driver() DriverName
}

// DigestInfo carries metadata parsed from a digest string.
type DigestInfo struct {
	Driver DriverName

	// Params holds driver-specific parameters. The built-in drivers report
	//   "size"   → int    (sum length in bytes)
	//   "key_id" → string (keyed BLAKE2b only)
	Params map[string]any
}

// Digest is the parsed form of a digest string:
//
//	$<driver>$<hex sum>
//	$<driver>$<name>=<value>[,<name>=<value>...]$<hex sum>
//
// The optional middle segment carries configuration needed to reproduce the
// sum, such as the id of the key that made it.
type Digest struct {
	Driver DriverName
	Params map[string]string
	Sum    []byte
}

// String encodes d. Parameters are written in name order.
func (d Digest) String() string {
	var b strings.Builder
	b.WriteString("$")
	b.WriteString(string(d.Driver))
	b.WriteString("$")
	if len(d.Params) > 0 {
		for i, name := range slices.Sorted(maps.Keys(d.Params)) {
			if i > 0 {
				b.WriteString(",")
			}
			b.WriteString(name + "=" + d.Params[name])
		}
		b.WriteString("$")
	}
	b.WriteString(hex.EncodeToString(d.Sum))
	return b.String()
}

// ParseDigest decodes a digest string produced by [Digest.String].
func ParseDigest(s string) (Digest, error) {
	rest, ok := strings.CutPrefix(s, "$")
	if !ok {
		return Digest{}, fmt.Errorf("%w: missing leading '$'", ErrInvalidDigest)
	}
	parts := strings.Split(rest, "$")
	if len(parts) < 2 || len(parts) > 3 || parts[0] == "" || parts[len(parts)-1] == "" {
		return Digest{}, fmt.Errorf("%w: expected $<driver>[$<params>]$<hex>", ErrInvalidDigest)
	}

	d := Digest{Driver: DriverName(parts[0])}
	if len(parts) == 3 {
		params, err := parseParams(parts[1])
		if err != nil {
			return Digest{}, err
		}
		d.Params = params
	}
	sum, err := hex.DecodeString(parts[len(parts)-1])
	if err != nil {
		return Digest{}, fmt.Errorf("%w: invalid hex: %v", ErrInvalidDigest, err)
	}
	d.Sum = sum
	return d, nil
}

func parseParams(segment string) (map[string]string, error) {
	params := make(map[string]string)
	for _, pair := range strings.Split(segment, ",") {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" || value == "" {
			return nil, fmt.Errorf("%w: malformed parameter %q", ErrInvalidDigest, pair)
		}
		params[name] = value
	}
	return params, nil
}

// DetectDriver inspects a digest string and returns the [DriverName] that
// produced it. It does not verify the digest itself.
//
// The second return value is false when the digest format is not
// recognised.
func DetectDriver(digest string) (DriverName, bool) {
	d, err := ParseDigest(digest)
	if err != nil {
		return "", false
	}
	return d.Driver, true
}
