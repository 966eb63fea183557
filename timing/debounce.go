package timing

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/zoobzio/clockz"
)

// DefaultWait is the quiet period used when [Debounce] is given a
// non-positive wait.
const DefaultWait = 100 * time.Millisecond

// Debouncer is a deferred invocation handle returned by [Debounce].
//
// A Debouncer is either idle or pending. The first call while idle records
// the argument and arms a timer for the wait period; calls while pending
// only replace the stored argument and the last-call timestamp. When the
// timer fires and the last call is at least wait old, fn runs with the most
// recent argument and the Debouncer goes idle; otherwise the timer is
// re-armed for the remaining time.
//
// All methods are safe for concurrent use. fn is never called with the
// Debouncer's lock held, so it may call back into the Debouncer.
type Debouncer[A, R any] struct {
	fn        func(A) R
	wait      time.Duration
	immediate bool
	clock     clockz.Clock
	log       logrus.Ext1FieldLogger

	mu      sync.Mutex
	stop    chan struct{} // non-nil while pending
	args    A
	hasArgs bool
	lastAt  time.Time
	result  R

	armed func(time.Duration) // observes every timer arm; tests only
}

// Debounce returns a [Debouncer] that runs fn once calls have stopped for
// wait. With [WithImmediate] fn runs on the first call of a burst instead,
// and the calls that follow within the burst are absorbed.
func Debounce[A, R any](fn func(A) R, wait time.Duration, opts ...Option) *Debouncer[A, R] {
	o := buildOptions(opts)
	if wait <= 0 {
		wait = DefaultWait
	}
	return &Debouncer[A, R]{
		fn:        fn,
		wait:      wait,
		immediate: o.immediate,
		clock:     o.clock,
		log:       o.logger.WithField("wait", wait),
	}
}

// Call records arg as the pending invocation and returns the result of the
// most recent invocation of fn. In immediate mode the first call of a burst
// runs fn synchronously and returns its fresh result.
func (d *Debouncer[A, R]) Call(arg A) R {
	d.mu.Lock()
	d.args, d.hasArgs = arg, true
	d.lastAt = d.clock.Now()
	callNow := d.immediate && d.stop == nil
	if d.stop == nil {
		d.arm()
	}
	if !callNow {
		r := d.result
		d.mu.Unlock()
		return r
	}
	args := d.take()
	d.mu.Unlock()

	d.log.Debug("debounce: leading-edge invocation")
	return d.invoke(args)
}

// Clear cancels the pending invocation, if any, without running fn.
func (d *Debouncer[A, R]) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stop == nil {
		return
	}
	close(d.stop)
	d.stop = nil
	d.take()
	d.log.Trace("debounce: cleared")
}

// Flush runs the pending invocation now and cancels its timer. It does
// nothing when the Debouncer is idle, or when only a leading-edge call has
// happened since the timer was armed.
func (d *Debouncer[A, R]) Flush() {
	d.mu.Lock()
	if d.stop == nil {
		d.mu.Unlock()
		return
	}
	close(d.stop)
	d.stop = nil
	if !d.hasArgs {
		d.mu.Unlock()
		return
	}
	args := d.take()
	d.mu.Unlock()

	d.log.Debug("debounce: flushed")
	d.invoke(args)
}

// Pending reports whether a timer is armed.
func (d *Debouncer[A, R]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.stop != nil
}

// arm must be called with d.mu held.
func (d *Debouncer[A, R]) arm() {
	stop := make(chan struct{})
	d.stop = stop
	fire := d.clock.After(d.wait)
	d.notifyArmed(d.wait)
	go d.later(fire, stop)
}

func (d *Debouncer[A, R]) later(fire <-chan time.Time, stop chan struct{}) {
	for {
		select {
		case <-stop:
			return
		case <-fire:
		}

		d.mu.Lock()
		if d.stop != stop {
			d.mu.Unlock()
			return
		}
		elapsed := d.clock.Since(d.lastAt)
		if elapsed >= 0 && elapsed < d.wait {
			remaining := d.wait - elapsed
			fire = d.clock.After(remaining)
			d.notifyArmed(remaining)
			d.mu.Unlock()
			continue
		}
		d.stop = nil
		args := d.take()
		d.mu.Unlock()

		if !d.immediate {
			d.log.Debug("debounce: trailing-edge invocation")
			d.invoke(args)
		}
		return
	}
}

func (d *Debouncer[A, R]) notifyArmed(after time.Duration) {
	d.log.WithField("after", after).Trace("debounce: timer armed")
	if d.armed != nil {
		d.armed(after)
	}
}

// take clears and returns the stored argument. d.mu must be held.
func (d *Debouncer[A, R]) take() A {
	var zero A
	args := d.args
	d.args, d.hasArgs = zero, false
	return args
}

func (d *Debouncer[A, R]) invoke(args A) R {
	r := d.fn(args)
	d.mu.Lock()
	d.result = r
	d.mu.Unlock()
	return r
}
