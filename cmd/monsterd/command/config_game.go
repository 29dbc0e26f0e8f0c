package command

import (
	"fmt"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-monster/internal/game"
)

type GameConfig struct {
	// Seed selects a deterministic RNG stream. Zero keeps randomness.
	Seed int64 `json:"seed"`
	// StartRoom is the room path caretakers spawn in, e.g. "/tmp/buffet".
	// Empty keeps the nursery default.
	StartRoom string `json:"start_room"`
}

func (g *GameConfig) Validate() error {
	el := errors.NewErrorList()

	if g.StartRoom != "" {
		if _, ok := game.ParseRoomName(g.StartRoom); !ok {
			el.Add(fmt.Errorf("unknown start_room: %s", g.StartRoom))
		}
	}

	return el.Err()
}

func (g *GameConfig) BuildWorld(sink game.EventSink) *game.World {
	opts := []game.WorldOpt{
		game.WithEventSink(sink),
	}
	if g.Seed != 0 {
		opts = append(opts, game.WithSeed(g.Seed))
	}
	if g.StartRoom != "" {
		if id, ok := game.ParseRoomName(g.StartRoom); ok {
			opts = append(opts, game.WithStartRoom(id))
		}
	}
	return game.NewWorld(opts...)
}
