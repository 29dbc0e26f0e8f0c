package commands

import (
	"errors"

	"github.com/pixil98/go-monster/internal/game"
)

func (h *Handler) cmdSing(s *game.Session, _ string) (Result, error) {
	err := h.world.Sing(s)
	switch {
	case errors.Is(err, game.ErrNotLoggedIn):
		return 0, errLoginFirst()
	case errors.Is(err, game.ErrWrongRoom):
		return 0, NewUserError("Echo your song in the nursery.")
	}
	return 0, err
}
