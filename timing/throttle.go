package timing

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Throttle wraps fn so that it runs at most once per delay. The first call
// always runs. A later call runs only if more than delay has passed since
// the last call that ran; otherwise it is dropped and returns the zero value
// and false.
//
// The returned function is safe for concurrent use. fn itself is called
// without any lock held.
func Throttle[A, R any](fn func(A) R, delay time.Duration, opts ...Option) func(A) (R, bool) {
	o := buildOptions(opts)
	var (
		mu     sync.Mutex
		ran    bool
		lastAt time.Time
	)
	return func(arg A) (R, bool) {
		mu.Lock()
		now := o.clock.Now()
		if ran && now.Sub(lastAt) <= delay {
			since := now.Sub(lastAt)
			mu.Unlock()
			o.logger.WithFields(logrus.Fields{
				"delay": delay,
				"since": since,
			}).Trace("throttle: call dropped")
			var zero R
			return zero, false
		}
		ran, lastAt = true, now
		mu.Unlock()
		return fn(arg), true
	}
}
