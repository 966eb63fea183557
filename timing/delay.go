package timing

import (
	"context"
	"time"
)

// Delay blocks for d. It returns early with ctx.Err() if ctx is done first.
// A non-positive d returns immediately.
func Delay(ctx context.Context, d time.Duration, opts ...Option) error {
	if d <= 0 {
		return ctx.Err()
	}
	o := buildOptions(opts)
	select {
	case <-o.clock.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
