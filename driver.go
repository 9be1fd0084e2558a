package gridsearch

import (
	"context"
	"time"
)

// DriveOptions defines parameters for Drive.
type DriveOptions struct {
	Observer func(Snapshot)
}

// DriveOption is a function that modifies DriveOptions.
type DriveOption func(*DriveOptions)

// WithTickObserver hands a snapshot to fn after every step.
func WithTickObserver(fn func(Snapshot)) DriveOption {
	return func(options *DriveOptions) { options.Observer = fn }
}

// Drive steps engine once per tick of interval until it has no active
// request. With interval <= 0 it steps back to back, still checking ctx
// between steps. When ctx is done the active request is cancelled and the
// context error returned.
func Drive(ctx context.Context, engine *Engine, interval time.Duration, options ...DriveOption) error {
	var opts DriveOptions
	for _, o := range options {
		o(&opts)
	}
	if !engine.IsActive() {
		return ErrNoSession
	}

	var tick <-chan time.Time
	if interval > 0 {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for engine.IsActive() {
		if tick != nil {
			select {
			case <-ctx.Done():
				engine.Cancel()
				return ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			engine.Cancel()
			return err
		}

		if _, err := engine.Step(); err != nil {
			return err
		}
		if opts.Observer != nil {
			opts.Observer(engine.Snapshot())
		}
	}
	return nil
}
