package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pixil98/go-monster/internal/game"
)

// Result is the event flag set a dispatched line reports back to the
// session loop.
type Result uint8

const (
	// FlagReset signals the tick driver should be re-armed immediately.
	FlagReset Result = 1 << iota
	// FlagQuit signals the session wants to disconnect.
	FlagQuit
)

// Has reports whether all bits in f are set.
func (r Result) Has(f Result) bool {
	return r&f == f
}

const unknownCommandHelp = "Unknown command. Try: look/go/grab/analyze/feed/" +
	"clean/rescue/clear/pet/debug/sing/reset/inventory/state/say/quit"

type commandFunc func(s *game.Session, arg string) (Result, error)

// Handler maps one trimmed input line to a world mutation and session
// output. Stage-gated commands are refused with a tip before their handler
// runs; refusal never mutates state.
type Handler struct {
	world *game.World
	table map[string]commandFunc
}

// NewHandler builds the dispatch table against a world.
func NewHandler(world *game.World) *Handler {
	h := &Handler{world: world}
	h.table = map[string]commandFunc{
		"login":     h.cmdLogin,
		"look":      h.cmdLook,
		"go":        h.cmdGo,
		"say":       h.cmdSay,
		"state":     h.cmdState,
		"inventory": h.cmdInventory,
		"grab":      h.cmdGrab,
		"analyze":   h.cmdAnalyze,
		"feed":      h.cmdFeed,
		"clean":     h.cmdClean,
		"rescue":    h.cmdRescue,
		"clear":     h.cmdClear,
		"pet":       h.cmdPet,
		"sing":      h.cmdSing,
		"debug":     h.cmdDebug,
		"reset":     h.cmdReset,
		"quit":      h.cmdQuit,
	}
	return h
}

// Handle parses and dispatches one newline-stripped input line. The command
// name is everything before the first space; the argument is the rest of
// the line and may itself contain spaces.
func (h *Handler) Handle(s *game.Session, line string) Result {
	line = strings.TrimSpace(line)
	if line == "" {
		return 0
	}
	name, arg, _ := strings.Cut(line, " ")
	name = strings.ToLower(name)

	fn, ok := h.table[name]
	if !ok {
		s.Push(unknownCommandHelp)
		return 0
	}

	if gate := game.FindGate(name); gate != nil {
		stage := h.world.Stage()
		if stage < gate.Stage {
			s.Push(fmt.Sprintf("[TIP] '%s' unlocks at stage %s (current: %s).",
				gate.Display, gate.Stage, stage))
			return 0
		}
	}

	res, err := fn(s, arg)
	if err != nil {
		var userErr *UserError
		if errors.As(err, &userErr) {
			s.Push(userErr.Message)
		} else {
			slog.Warn("command failed", "command", name, "error", err)
			s.Push("Something went wrong. Try again.")
		}
	}
	return res
}

// errLoginFirst is the shared refusal for commands that need an actor.
func errLoginFirst() error {
	return NewUserError("login first")
}
