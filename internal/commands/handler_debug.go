package commands

import (
	"errors"

	"github.com/pixil98/go-monster/internal/game"
)

func (h *Handler) cmdDebug(s *game.Session, _ string) (Result, error) {
	err := h.world.Debug(s)
	switch {
	case errors.Is(err, game.ErrNotLoggedIn):
		return 0, errLoginFirst()
	case errors.Is(err, game.ErrWrongRoom):
		return 0, NewUserError("Debug rituals happen near the Monster.")
	}
	return 0, err
}
