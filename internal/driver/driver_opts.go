package driver

import "time"

type TickDriverOpt func(*TickDriver)

// WithTickInterval sets the tick period. Zero pauses the driver until the
// first Rearm.
func WithTickInterval(interval time.Duration) TickDriverOpt {
	return func(d *TickDriver) {
		d.interval = interval
	}
}
