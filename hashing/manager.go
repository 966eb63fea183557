package hashing

import (
	"fmt"
	"maps"
	"slices"
	"sync"
)

// Manager routes digest operations to named [Hasher] drivers. One driver is
// current: new digests are made with it, and digests from any other driver,
// or from the current driver under an older configuration, are reported as
// stale by [Manager.NeedsRehash] and replaced by [Manager.Refresh].
//
// A Manager is safe for concurrent use. Registration takes a write lock;
// every digest operation only reads the registry.
type Manager struct {
	mu      sync.RWMutex
	hashers map[DriverName]Hasher
	current DriverName
}

// NewManager returns a Manager whose current driver is current, with each of
// hashers registered under its own [Hasher.Driver] name. Nil hashers are
// skipped. The current driver does not have to be registered yet, but
// digest operations fail with [ErrDriverNotFound] until it is.
func NewManager(current DriverName, hashers ...Hasher) *Manager {
	m := &Manager{hashers: make(map[DriverName]Hasher, len(hashers)), current: current}
	for _, h := range hashers {
		if h != nil {
			m.hashers[h.Driver()] = h
		}
	}
	return m
}

// NewDefaultManager returns a Manager with the three built-in drivers.
// Unkeyed BLAKE2b is current.
func NewDefaultManager() (*Manager, error) {
	b2, err := NewBLAKE2bHasher(DefaultBLAKE2bOptions())
	if err != nil {
		return nil, fmt.Errorf("hashing: building blake2b driver: %w", err)
	}
	return NewManager(DriverBLAKE2b, b2, NewSHA3Hasher(), NewSHA256Hasher()), nil
}

// ─── Registry ────────────────────────────────────────────────────────────────

// RegisterDriver registers h under name, replacing any earlier driver of
// that name. Registering a keyed BLAKE2b hasher under [DriverBLAKE2b] is how
// a key is rotated.
func (m *Manager) RegisterDriver(name DriverName, h Hasher) error {
	switch {
	case name == "":
		return ErrEmptyDriverName
	case h == nil:
		return ErrNilHasher
	}
	m.mu.Lock()
	m.hashers[name] = h
	m.mu.Unlock()
	return nil
}

// Driver returns the hasher registered under name.
func (m *Manager) Driver(name DriverName) (Hasher, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lookup(name)
}

// HasDriver reports whether name is registered.
func (m *Manager) HasDriver(name DriverName) bool {
	_, err := m.Driver(name)
	return err == nil
}

// Drivers returns the registered driver names in sorted order.
func (m *Manager) Drivers() []DriverName {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Sorted(maps.Keys(m.hashers))
}

// SetDefaultDriver makes the registered driver name current.
func (m *Manager) SetDefaultDriver(name DriverName) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, err := m.lookup(name); err != nil {
		return err
	}
	m.current = name
	return nil
}

// DefaultDriver returns the name of the current driver.
func (m *Manager) DefaultDriver() DriverName {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// ─── Digests ─────────────────────────────────────────────────────────────────

// Make digests value with the current driver.
func (m *Manager) Make(value any) (string, error) {
	h, err := m.currentHasher()
	if err != nil {
		return "", err
	}
	return h.Make(value)
}

// Check verifies value against digest with the current driver. A digest
// from another driver fails with [ErrAlgorithmMismatch].
func (m *Manager) Check(value any, digest string) (bool, error) {
	h, err := m.currentHasher()
	if err != nil {
		return false, err
	}
	return h.Check(value, digest)
}

// CheckWithDetect verifies value against digest with whichever registered
// driver made it.
func (m *Manager) CheckWithDetect(value any, digest string) (bool, error) {
	h, err := m.hasherFor(digest)
	if err != nil {
		return false, err
	}
	return h.Check(value, digest)
}

// NeedsRehash reports whether digest is stale: made by a driver other than
// the current one, or by the current driver under another configuration
// (a BLAKE2b digest made with a rotated-out key, say).
func (m *Manager) NeedsRehash(digest string) (bool, error) {
	name, ok := DetectDriver(digest)
	if !ok {
		return false, ErrInvalidDigest
	}
	h, err := m.currentHasher()
	if err != nil {
		return false, err
	}
	if name != h.Driver() {
		return true, nil
	}
	return h.NeedsRehash(digest)
}

// Refresh returns the digest value should be stored under from now on. A
// current digest is returned unchanged with false; a stale one is replaced
// by a fresh digest of value from the current driver, with true.
//
// Refresh does not verify digest against value. Call
// [Manager.CheckWithDetect] first when the stored digest also guards
// integrity.
func (m *Manager) Refresh(value any, digest string) (string, bool, error) {
	stale, err := m.NeedsRehash(digest)
	if err != nil || !stale {
		return digest, false, err
	}
	fresh, err := m.Make(value)
	if err != nil {
		return digest, false, err
	}
	return fresh, true, nil
}

// Info describes digest using the current driver.
func (m *Manager) Info(digest string) (DigestInfo, error) {
	h, err := m.currentHasher()
	if err != nil {
		return DigestInfo{}, err
	}
	return h.Info(digest)
}

// InfoWithDetect describes digest using whichever registered driver made it.
func (m *Manager) InfoWithDetect(digest string) (DigestInfo, error) {
	h, err := m.hasherFor(digest)
	if err != nil {
		return DigestInfo{}, err
	}
	return h.Info(digest)
}

// lookup must be called with m.mu held.
func (m *Manager) lookup(name DriverName) (Hasher, error) {
	if h, ok := m.hashers[name]; ok {
		return h, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrDriverNotFound, name)
}

func (m *Manager) currentHasher() (Hasher, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lookup(m.current)
}

func (m *Manager) hasherFor(digest string) (Hasher, error) {
	name, ok := DetectDriver(digest)
	if !ok {
		return nil, ErrInvalidDigest
	}
	return m.Driver(name)
}
