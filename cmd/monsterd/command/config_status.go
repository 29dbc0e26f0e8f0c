package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-monster/internal/game"
	"github.com/pixil98/go-monster/internal/status"
)

type StatusConfig struct {
	// Interval between snapshots. Empty uses the default.
	Interval string `json:"interval"`
	// File is where the JSON snapshot is written. Empty disables the file.
	File string `json:"file"`
}

func (s *StatusConfig) Validate() error {
	el := errors.NewErrorList()

	if s.Interval != "" {
		d, err := time.ParseDuration(s.Interval)
		if err != nil {
			el.Add(fmt.Errorf("parsing interval: %w", err))
		} else if d <= 0 {
			el.Add(fmt.Errorf("interval must be positive"))
		}
	}

	return el.Err()
}

func (s *StatusConfig) BuildReporter(world *game.World, pub status.Publisher) (*status.Reporter, error) {
	opts := []status.ReporterOpt{
		status.WithStatusFile(s.File),
		status.WithPublisher(pub),
	}
	if s.Interval != "" {
		d, err := time.ParseDuration(s.Interval)
		if err != nil {
			return nil, fmt.Errorf("parsing interval: %w", err)
		}
		opts = append(opts, status.WithInterval(d))
	}
	return status.NewReporter(world, opts...), nil
}
