package commands

import (
	"errors"

	"github.com/pixil98/go-monster/internal/game"
)

func (h *Handler) cmdReset(s *game.Session, _ string) (Result, error) {
	err := h.world.Reset(s)
	switch {
	case errors.Is(err, game.ErrNotLoggedIn):
		return 0, errLoginFirst()
	case errors.Is(err, game.ErrStillRunning):
		return 0, NewUserError("System still running. No reset needed.")
	case err != nil:
		return 0, err
	}

	s.Push("System reset complete. Everyone wakes in /proc/nursery.")
	return FlagReset, nil
}
