// Package timing provides clock-driven helpers: a context-aware [Delay], a
// trailing-edge (or leading-edge) [Debounce], and a [Throttle].
//
// # Clocks
//
// Every helper reads time through a clockz.Clock, clockz.RealClock unless
// [WithClock] says otherwise. Tests pass a clockz fake clock and advance it
// explicitly:
//
//	clock := clockz.NewFakeClock()
//	save := timing.Debounce(persist, 500*time.Millisecond, timing.WithClock(clock))
//	save.Call(doc)
//	clock.Advance(500 * time.Millisecond) // persist(doc) runs
//
// # Debounce
//
// A [Debouncer] delays invoking its function until calls have stopped for
// the configured wait. The armed timer is not pushed back by every call;
// when it fires it checks how long ago the latest call was and, if that is
// less than the wait, re-arms for the remainder. [Debouncer.Clear] cancels a
// pending invocation and [Debouncer.Flush] runs it immediately.
//
// # Logging
//
// The helpers are silent by default. Pass a logrus logger with [WithLogger]
// to see timer activity at Debug and Trace level.
package timing
