package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-monster/internal/driver"
)

type Config struct {
	// TickInterval is the simulation cadence. "0" starts the driver paused
	// until the first reset; empty uses the default.
	TickInterval string           `json:"tick_interval"`
	Listeners    []ListenerConfig `json:"listeners"`
	Nats         NatsConfig       `json:"nats"`
	Game         GameConfig       `json:"game"`
	Status       StatusConfig     `json:"status"`
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	if _, err := c.tickInterval(); err != nil {
		el.Add(err)
	}

	for i := range c.Listeners {
		if err := c.Listeners[i].Validate(); err != nil {
			el.Add(fmt.Errorf("listener %d: %w", i, err))
		}
	}

	el.Add(c.Nats.Validate())
	el.Add(c.Game.Validate())
	el.Add(c.Status.Validate())

	return el.Err()
}

func (c *Config) tickInterval() (time.Duration, error) {
	switch c.TickInterval {
	case "":
		return driver.DefaultTickInterval, nil
	case "0":
		return 0, nil
	}

	d, err := time.ParseDuration(c.TickInterval)
	if err != nil {
		return 0, fmt.Errorf("parsing tick_interval: %w", err)
	}
	if d < driver.MinTickInterval || d > driver.MaxTickInterval {
		return 0, fmt.Errorf("tick_interval must be between %s and %s",
			driver.MinTickInterval, driver.MaxTickInterval)
	}
	return d, nil
}
