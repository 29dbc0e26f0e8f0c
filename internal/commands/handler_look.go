package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pixil98/go-monster/internal/display"
	"github.com/pixil98/go-monster/internal/game"
)

func (h *Handler) cmdLook(s *game.Session, _ string) (Result, error) {
	view, err := h.world.DescribeRoom(s)
	if errors.Is(err, game.ErrNotLoggedIn) {
		return 0, errLoginFirst()
	} else if err != nil {
		return 0, err
	}

	s.Push(renderRoom(view))
	return 0, nil
}

func renderRoom(v game.RoomView) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\n== %s ==\n%s\n", v.Name, display.Wrap(v.Description))
	fmt.Fprintf(&b, "[EXITS] %s\n", strings.Join(v.Exits, " "))

	st := v.Stats
	fmt.Fprintf(&b, "[STATE] stability=%d hunger=%d mood=%d trust=%d tick=%d junk=%d%s\n",
		st.Stability, st.Hunger, st.Mood, st.Trust, st.Tick, st.JunkLoad,
		daemonLostSuffix(st.DaemonLost))
	if line := helperLine(st.Helpers); line != "" {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	if v.InNursery {
		fmt.Fprintf(&b, "[MONSTER] The Friendly Monster is %s.\n", v.Monster)
		fmt.Fprintf(&b, "[LIFECYCLE] Stage %s.\n", v.Stage)
	}

	b.WriteString("Objects here:\n")
	if len(v.Objects) == 0 {
		b.WriteString("  (nothing interesting)\n")
	}
	for _, o := range v.Objects {
		fmt.Fprintf(&b, "  %d) %s%s (ttl %d)%s\n",
			o.Slot, o.Name, marker(o.Identified, " [id]"), o.TTL, marker(o.Mutated, " [weird]"))
	}

	b.WriteString("Players present:\n")
	if len(v.Others) == 0 {
		b.WriteString("  (just you)\n")
	}
	for _, name := range v.Others {
		fmt.Fprintf(&b, "  %s\n", name)
	}

	return b.String()
}

func daemonLostSuffix(lost bool) string {
	if lost {
		return " daemon-lost"
	}
	return ""
}

func helperLine(flags game.HelperFlags) string {
	if flags == 0 {
		return ""
	}
	parts := []string{"[HELPERS]"}
	if flags.Has(game.HelperMemorySprite) {
		parts = append(parts, "MemorySprite")
	}
	if flags.Has(game.HelperSchedBlessing) {
		parts = append(parts, "SchedulerBlessing")
	}
	if flags.Has(game.HelperIoPixie) {
		parts = append(parts, "IOPixie")
	}
	return strings.Join(parts, " ")
}

func marker(on bool, s string) string {
	if on {
		return s
	}
	return ""
}
