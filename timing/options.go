package timing

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/zoobzio/clockz"
)

// Option configures [Delay], [Debounce] and [Throttle].
type Option func(*options)

type options struct {
	clock     clockz.Clock
	logger    logrus.FieldLogger
	immediate bool
}

// WithClock sets the clock used for timers and timestamps.
// Defaults to clockz.RealClock.
func WithClock(clock clockz.Clock) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// WithLogger routes timer diagnostics to logger.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithImmediate makes a [Debouncer] invoke on the leading edge of a burst
// instead of the trailing edge. It has no effect on other helpers.
func WithImmediate() Option {
	return func(o *options) { o.immediate = true }
}

var silent = func() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()

func buildOptions(opts []Option) options {
	o := options{clock: clockz.RealClock, logger: silent}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
