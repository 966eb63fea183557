package timing

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const ms = time.Millisecond

// advancer is the part of the clockz fake clock the tests drive.
type advancer interface {
	Advance(time.Duration)
	BlockUntilReady()
}

func step(clock advancer, d time.Duration) {
	clock.Advance(d)
	clock.BlockUntilReady()
}

// recorder counts invocations of a wrapped function and lets tests wait for
// them.
type recorder[A any] struct {
	mu    sync.Mutex
	got   []A
	calls chan A
}

func newRecorder[A any]() *recorder[A] {
	return &recorder[A]{calls: make(chan A, 64)}
}

func (r *recorder[A]) fn(arg A) int {
	r.mu.Lock()
	r.got = append(r.got, arg)
	n := len(r.got)
	r.mu.Unlock()
	r.calls <- arg
	return n
}

func (r *recorder[A]) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.got)
}

func (r *recorder[A]) waitCall(t *testing.T, want A) {
	t.Helper()
	select {
	case got := <-r.calls:
		require.Equal(t, want, got)
	case <-time.After(time.Second):
		t.Fatalf("timed out waiting for invocation with %v", want)
	}
}

// quiet asserts that no invocation shows up within a short real-time window.
func (r *recorder[A]) quiet(t *testing.T) {
	t.Helper()
	select {
	case got := <-r.calls:
		t.Fatalf("unexpected invocation with %v", got)
	case <-time.After(20 * ms):
	}
}
