package commands

import (
	"errors"

	"github.com/pixil98/go-monster/internal/game"
)

func (h *Handler) cmdRescue(s *game.Session, _ string) (Result, error) {
	err := h.world.Rescue(s)
	switch {
	case errors.Is(err, game.ErrNotLoggedIn):
		return 0, errLoginFirst()
	case errors.Is(err, game.ErrWrongRoom):
		return 0, NewUserError("Rescues happen in /dev/null/fields.")
	case errors.Is(err, game.ErrNothingToRescue):
		return 0, NewUserError("Nothing to rescue right now.")
	case err != nil:
		return 0, err
	}

	s.Push("You guide the stray daemon back to the nursery.")
	return 0, nil
}
