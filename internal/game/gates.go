package game

import "strings"

// CommandGate ties a command name to the lifecycle stage that unlocks it.
// Gates are cumulative: a stage unlocks its own commands plus everything
// from earlier stages. Commands without a gate are available from birth.
type CommandGate struct {
	Name    string
	Display string
	Stage   Stage
}

var commandGates = []CommandGate{
	{"grab", "grab <item>", StageGrowing},
	{"analyze", "analyze <slot>", StageGrowing},
	{"feed", "feed <slot>", StageGrowing},
	{"clean", "clean <slot>", StageMature},
	{"rescue", "rescue", StageMature},
	{"clear", "clear", StageMature},
	{"pet", "pet", StageElder},
	{"debug", "debug", StageElder},
	{"sing", "sing", StageElder},
	{"reset", "reset", StageRetired},
}

// FindGate returns the gate for a command name, or nil for ungated commands.
func FindGate(name string) *CommandGate {
	for i := range commandGates {
		if commandGates[i].Name == name {
			return &commandGates[i]
		}
	}
	return nil
}

const baseCommands = "look, go <dir>, state, inventory, say <msg>, quit"

// AvailableCommands renders the command list unlocked at the given stage.
func AvailableCommands(stage Stage) string {
	var b strings.Builder
	b.WriteString(baseCommands)
	for _, gate := range commandGates {
		if stage < gate.Stage {
			continue
		}
		b.WriteString(", ")
		b.WriteString(gate.Display)
	}
	return b.String()
}

// unlockedAt renders the commands a stage newly unlocks, or "" if none.
func unlockedAt(stage Stage) string {
	var names []string
	for _, gate := range commandGates {
		if gate.Stage == stage {
			names = append(names, gate.Display)
		}
	}
	return strings.Join(names, ", ")
}
