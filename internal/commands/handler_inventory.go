package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pixil98/go-monster/internal/game"
)

func (h *Handler) cmdInventory(s *game.Session, _ string) (Result, error) {
	inv, err := h.world.InventoryOf(s)
	if errors.Is(err, game.ErrNotLoggedIn) {
		return 0, errLoginFirst()
	} else if err != nil {
		return 0, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Inventory (slots %d):\n", game.InventorySlots)
	for i, it := range inv {
		if it.Type == game.ItemNone {
			fmt.Fprintf(&b, "  %d) -- empty --\n", i+1)
			continue
		}
		fmt.Fprintf(&b, "  %d) %s%s\n", i+1, it.Type, marker(it.Flags.Has(game.FlagIdentified), " [id]"))
	}
	s.Push(b.String())
	return 0, nil
}
