package commands

import (
	"errors"
	"fmt"

	"github.com/pixil98/go-monster/internal/game"
)

func (h *Handler) cmdGo(s *game.Session, arg string) (Result, error) {
	dir, ok := game.ParseDirection(arg)
	if !ok {
		return 0, NewUserError("Usage: go n|e|s|w")
	}

	dest, err := h.world.Move(s, dir)
	switch {
	case errors.Is(err, game.ErrNotLoggedIn):
		return 0, errLoginFirst()
	case errors.Is(err, game.ErrNoExit):
		return 0, NewUserError("No exit that way.")
	case err != nil:
		return 0, err
	}

	s.Push(fmt.Sprintf("You move to %s.", game.GetRoom(dest).Name))
	return h.cmdLook(s, "")
}
