package commands

import (
	"errors"
	"fmt"

	"github.com/pixil98/go-monster/internal/game"
)

func (h *Handler) cmdState(s *game.Session, _ string) (Result, error) {
	st, err := h.world.StateSnapshot(s)
	if errors.Is(err, game.ErrNotLoggedIn) {
		return 0, errLoginFirst()
	} else if err != nil {
		return 0, err
	}

	lost := "no"
	if st.DaemonLost {
		lost = "yes"
	}
	s.Push(fmt.Sprintf("[STATE] stability=%d hunger=%d mood=%d trust=%d tick=%d junk=%d daemon_lost=%s",
		st.Stability, st.Hunger, st.Mood, st.Trust, st.Tick, st.JunkLoad, lost))
	s.Push(fmt.Sprintf("Monster: %s", st.Monster))
	return 0, nil
}
