package driver

import (
	"context"
	"time"

	"github.com/pixil98/go-log"
)

const (
	DefaultTickInterval = 2 * time.Second
	MinTickInterval     = 250 * time.Millisecond
	MaxTickInterval     = 60 * time.Second
)

// Ticker advances the world one step and reports whether it is crashed.
type Ticker interface {
	Tick(context.Context) bool
}

// TickDriver invokes the world's tick entry point at a fixed interval. When
// a tick reports the crashed terminal state the driver stops rescheduling
// itself; Rearm resumes ticking relative to now (no catch-up of missed
// ticks). A zero interval means the driver starts paused.
type TickDriver struct {
	interval time.Duration
	world    Ticker
	rearm    chan struct{}
}

func NewTickDriver(world Ticker, opts ...TickDriverOpt) *TickDriver {
	d := &TickDriver{
		interval: DefaultTickInterval,
		world:    world,
		rearm:    make(chan struct{}, 1),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Rearm schedules the next tick one interval from now. Used after a reset
// replaces the crashed-and-paused schedule. Safe from any goroutine;
// coalesces with a pending rearm.
func (d *TickDriver) Rearm() {
	select {
	case d.rearm <- struct{}{}:
	default:
	}
}

// Start runs the tick loop until the context is canceled. It returns only
// after any in-flight tick has completed, so the world is never torn down
// under a running tick.
func (d *TickDriver) Start(ctx context.Context) error {
	logger := log.GetLogger(ctx)

	paused := d.interval == 0
	interval := d.interval
	if interval == 0 {
		interval = DefaultTickInterval
	}

	timer := time.NewTimer(interval)
	defer timer.Stop()
	if paused {
		stopTimer(timer)
		logger.Infof("tick driver starting paused")
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-d.rearm:
			stopTimer(timer)
			timer.Reset(interval)
			if paused {
				logger.Infof("tick driver re-armed")
				paused = false
			}

		case <-timer.C:
			if crashed := d.world.Tick(ctx); crashed {
				if !paused {
					logger.Infof("world crashed, pausing ticks until reset")
					paused = true
				}
				continue
			}
			timer.Reset(interval)
		}
	}
}

// stopTimer drains a stopped timer's channel so a later Reset is safe.
func stopTimer(t *time.Timer) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
}
