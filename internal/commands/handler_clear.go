package commands

import (
	"errors"
	"fmt"

	"github.com/pixil98/go-monster/internal/game"
)

func (h *Handler) cmdClear(s *game.Session, _ string) (Result, error) {
	cleared, err := h.world.ClearJunk(s)
	switch {
	case errors.Is(err, game.ErrNotLoggedIn):
		return 0, errLoginFirst()
	case errors.Is(err, game.ErrWrongRoom):
		return 0, NewUserError("You need to be in /dev/null/fields to clear overflow.")
	case err != nil:
		return 0, err
	}

	if cleared == 0 {
		s.Push("Fields are tidy already.")
	} else {
		s.Push(fmt.Sprintf("You vent %d junk piles into the void.", cleared))
	}
	return 0, nil
}
