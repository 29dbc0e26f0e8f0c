package commands

import (
	"errors"

	"github.com/pixil98/go-monster/internal/game"
)

func (h *Handler) cmdPet(s *game.Session, _ string) (Result, error) {
	err := h.world.Pet(s)
	switch {
	case errors.Is(err, game.ErrNotLoggedIn):
		return 0, errLoginFirst()
	case errors.Is(err, game.ErrWrongRoom):
		return 0, NewUserError("Petting works best in the nursery.")
	}
	return 0, err
}
