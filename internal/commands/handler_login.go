package commands

import (
	"errors"
	"fmt"

	"github.com/pixil98/go-monster/internal/game"
)

func (h *Handler) cmdLogin(s *game.Session, arg string) (Result, error) {
	info, err := h.world.Login(s, arg)
	switch {
	case errors.Is(err, game.ErrAlreadyLoggedIn):
		return 0, NewUserError("Already logged in.")
	case errors.Is(err, game.ErrEmptyName):
		return 0, NewUserError("Usage: login <name>")
	case err != nil:
		return 0, err
	}

	s.Push(fmt.Sprintf("[PROC] Helper thread %s spawned.", info.Name))
	s.Push(fmt.Sprintf("[LIFECYCLE] Current stage: %s.", info.Stage))
	s.Push(fmt.Sprintf("[TIP] Commands available: %s", info.Commands))
	s.Push(info.Goal)
	return h.cmdLook(s, "")
}
