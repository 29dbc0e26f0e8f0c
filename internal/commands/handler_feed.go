package commands

import (
	"errors"

	"github.com/pixil98/go-monster/internal/game"
)

func (h *Handler) cmdFeed(s *game.Session, arg string) (Result, error) {
	_, err := h.world.Feed(s, arg)
	switch {
	case errors.Is(err, game.ErrNotLoggedIn):
		return 0, errLoginFirst()
	case errors.Is(err, game.ErrWrongRoom):
		return 0, NewUserError("The Monster is back in /proc/nursery. Feed there.")
	case errors.Is(err, game.ErrBadSlot):
		return 0, NewUserError("Usage: feed <slot#>")
	case errors.Is(err, game.ErrEmptySlot):
		return 0, NewUserError("That slot is empty.")
	case errors.Is(err, game.ErrRefused):
		return 0, NewUserError("The Monster refuses that offering.")
	}
	// The feed broadcast reaches the feeder's room, feeder included.
	return 0, err
}
