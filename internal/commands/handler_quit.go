package commands

import "github.com/pixil98/go-monster/internal/game"

func (h *Handler) cmdQuit(s *game.Session, _ string) (Result, error) {
	s.Push("Goodbye.")
	return FlagQuit, nil
}
