package commands

import (
	"errors"
	"fmt"

	"github.com/pixil98/go-monster/internal/game"
)

func (h *Handler) cmdGrab(s *game.Session, arg string) (Result, error) {
	res, err := h.world.Grab(s, arg)
	switch {
	case errors.Is(err, game.ErrNotLoggedIn):
		return 0, errLoginFirst()
	case errors.Is(err, game.ErrNothingHere):
		return 0, NewUserError("Nothing to grab here.")
	case errors.Is(err, game.ErrNoSuchItem):
		return 0, NewUserError("No such item. Try numbers.")
	case errors.Is(err, game.ErrDaemonGrab):
		return 0, NewUserError("The baby daemon scoots away. Maybe try `rescue`.")
	case errors.Is(err, game.ErrInventoryFull):
		return 0, NewUserError("Inventory full. Try analyze/clean/feed first.")
	case err != nil:
		return 0, err
	}

	s.Push(fmt.Sprintf("You stash %s in slot %d.", res.Item, res.Slot+1))
	return 0, nil
}
