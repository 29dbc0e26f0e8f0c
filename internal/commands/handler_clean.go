package commands

import (
	"errors"
	"fmt"

	"github.com/pixil98/go-monster/internal/game"
)

func (h *Handler) cmdClean(s *game.Session, arg string) (Result, error) {
	res, err := h.world.Clean(s, arg)
	switch {
	case errors.Is(err, game.ErrNotLoggedIn):
		return 0, errLoginFirst()
	case errors.Is(err, game.ErrBadSlot):
		return 0, NewUserError("Usage: clean <slot#>")
	case errors.Is(err, game.ErrEmptySlot):
		return 0, NewUserError("That slot is empty.")
	case err != nil:
		return 0, err
	}

	if res.Junk {
		s.Push("Junk scrubbed. System load eases.")
	} else {
		s.Push(fmt.Sprintf("You recycle %s.", res.Item))
	}
	return 0, nil
}
