package commands

import (
	"errors"
	"fmt"

	"github.com/pixil98/go-monster/internal/game"
)

func (h *Handler) cmdAnalyze(s *game.Session, arg string) (Result, error) {
	res, err := h.world.Analyze(s, arg)
	switch {
	case errors.Is(err, game.ErrNotLoggedIn):
		return 0, errLoginFirst()
	case errors.Is(err, game.ErrBadSlot):
		return 0, NewUserError("Usage: analyze <slot#>")
	case errors.Is(err, game.ErrEmptySlot):
		return 0, NewUserError("That slot is empty.")
	case err != nil:
		return 0, err
	}

	switch {
	case res.WasCorrupt:
		s.Push("Analysis complete: corrupted -> junk data.")
	case res.Junk:
		s.Push(fmt.Sprintf("Analysis: %s is junk. Handle carefully.", res.Item))
	default:
		s.Push(fmt.Sprintf("Analysis: %s looks tasty for the Monster.", res.Item))
	}
	return 0, nil
}
