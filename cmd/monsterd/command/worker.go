package command

import (
	"fmt"

	"github.com/pixil98/go-monster/internal/commands"
	"github.com/pixil98/go-monster/internal/driver"
	"github.com/pixil98/go-monster/internal/listener"
	"github.com/pixil98/go-monster/internal/player"
	"github.com/pixil98/go-service"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	// Messaging comes first so the world can mirror broadcasts onto it
	nats, err := cfg.Nats.BuildNatsServer()
	if err != nil {
		return nil, fmt.Errorf("creating nats server: %w", err)
	}

	world := cfg.Game.BuildWorld(nats)
	handler := commands.NewHandler(world)

	interval, err := cfg.tickInterval()
	if err != nil {
		return nil, err
	}
	ticks := driver.NewTickDriver(world, driver.WithTickInterval(interval))

	sm := player.NewSessionManager(world, handler, ticks)
	cm := listener.NewConnectionManager(sm)

	listeners := make(service.WorkerList, len(cfg.Listeners))
	for i := range cfg.Listeners {
		l, err := cfg.Listeners[i].BuildListener(cm)
		if err != nil {
			return nil, fmt.Errorf("creating listener %d: %w", i, err)
		}
		listeners[fmt.Sprintf("listener-%d", i)] = l
	}

	reporter, err := cfg.Status.BuildReporter(world, nats)
	if err != nil {
		return nil, fmt.Errorf("creating status reporter: %w", err)
	}

	return service.WorkerList{
		"nats":      nats,
		"driver":    ticks,
		"listeners": &listeners,
		"status":    reporter,
	}, nil
}
