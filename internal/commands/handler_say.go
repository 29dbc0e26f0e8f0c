package commands

import (
	"errors"

	"github.com/pixil98/go-monster/internal/game"
)

func (h *Handler) cmdSay(s *game.Session, arg string) (Result, error) {
	err := h.world.Say(s, arg)
	if errors.Is(err, game.ErrNotLoggedIn) {
		return 0, errLoginFirst()
	}
	return 0, err
}
