package status

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/pixil98/go-log"
	"github.com/pixil98/go-monster/internal/game"
)

const (
	DefaultInterval = 10 * time.Second

	// StatusSubject carries periodic system snapshots for external watchers.
	StatusSubject = "monster.status"
)

// Publisher mirrors snapshots onto a messaging subject. Satisfied by
// messaging.NatsServer.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// Reporter periodically snapshots the system state and writes it to a JSON
// status file and, when a publisher is wired, to the status subject. The
// file gives health checks something to poll without opening a session.
type Reporter struct {
	world    *game.World
	interval time.Duration
	path     string
	pub      Publisher
}

func NewReporter(world *game.World, opts ...ReporterOpt) *Reporter {
	r := &Reporter{
		world:    world,
		interval: DefaultInterval,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

func (r *Reporter) Start(ctx context.Context) error {
	logger := log.GetLogger(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := r.report(); err != nil {
				logger.Warnf("reporting status: %s", err)
			}
		}
	}
}

func (r *Reporter) report() error {
	stats := r.world.Stats()

	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("encoding status: %w", err)
	}

	if r.path != "" {
		if err := os.WriteFile(r.path, append(data, '\n'), 0o644); err != nil {
			return fmt.Errorf("writing status file: %w", err)
		}
	}

	if r.pub != nil {
		if err := r.pub.Publish(StatusSubject, data); err != nil {
			return fmt.Errorf("publishing status: %w", err)
		}
	}

	return nil
}
