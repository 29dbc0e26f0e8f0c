package game

// MoodState is the derived classification of the monster's condition. It is
// recomputed from the primary stats and never mutated directly.
type MoodState int

const (
	MoodSleeping MoodState = iota
	MoodHungry
	MoodContent
	MoodOverfed
	MoodGlitching
)

func (m MoodState) String() string {
	switch m {
	case MoodSleeping:
		return "sleeping"
	case MoodHungry:
		return "hungry"
	case MoodContent:
		return "content"
	case MoodOverfed:
		return "overfed"
	case MoodGlitching:
		return "glitching"
	default:
		return "???"
	}
}

// HelperFlags is the bitmask of unlocked passive helpers. Flags never clear
// within an epoch.
type HelperFlags uint8

const (
	HelperMemorySprite HelperFlags = 1 << iota
	HelperSchedBlessing
	HelperIoPixie
)

// Has reports whether all bits in mask are set.
func (f HelperFlags) Has(mask HelperFlags) bool {
	return f&mask == mask
}

const (
	stabilityMax = 100
	hungerMax    = 10
	moodMax      = 10
	trustMax     = 10
	junkMax      = 50

	happyStreakCap   = 60
	rescueCounterCap = 5

	memorySpriteTicks  = 20
	schedBlessingGoal  = 10
	ioPixieRescueGoal  = 3
	junkCrashThreshold = 25
)

type helperState struct {
	flags         HelperFlags
	happyStreak   int
	rescueCounter int
	survivedTicks uint32
}

// systemState is the single global resource-pressure record. Every bounded
// field is clamped on mutation and never observed outside its range.
type systemState struct {
	stability  int // 0..100
	hunger     int // 0..10
	mood       int // -10..10
	trust      int // 0..10
	junkLoad   int // 0..50
	tick       uint32
	daemonLost bool
	monster    MoodState
	helper     helperState
	crashed    bool
	stage      Stage
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (st *systemState) adjustStability(delta int) {
	st.stability = clampInt(st.stability+delta, 0, stabilityMax)
}

func (st *systemState) adjustHunger(delta int) {
	st.hunger = clampInt(st.hunger+delta, 0, hungerMax)
}

func (st *systemState) adjustMood(delta int) {
	st.mood = clampInt(st.mood+delta, -moodMax, moodMax)
}

func (st *systemState) adjustTrust(delta int) {
	st.trust = clampInt(st.trust+delta, 0, trustMax)
}

func (st *systemState) adjustJunk(delta int) {
	st.junkLoad = clampInt(st.junkLoad+delta, 0, junkMax)
}

// recomputeMonster rederives the mood state. Predicate order matters; the
// first match wins.
func (st *systemState) recomputeMonster() {
	switch {
	case st.mood <= -4 || st.junkLoad >= 12:
		st.monster = MoodGlitching
	case st.hunger >= 7:
		st.monster = MoodHungry
	case st.hunger <= 1 && st.mood >= 2:
		st.monster = MoodSleeping
	case st.hunger <= 1:
		st.monster = MoodOverfed
	default:
		st.monster = MoodContent
	}
}

// reset restores the epoch-initial state.
func (st *systemState) reset() {
	*st = systemState{
		stability: stabilityMax,
		hunger:    3,
		mood:      0,
		trust:     3,
	}
	st.recomputeMonster()
}

// Stats is a read-only copy of the system state for external observers.
type Stats struct {
	Tick       uint32      `json:"tick"`
	Stability  int         `json:"stability"`
	Hunger     int         `json:"hunger"`
	Mood       int         `json:"mood"`
	Trust      int         `json:"trust"`
	JunkLoad   int         `json:"junk_load"`
	DaemonLost bool        `json:"daemon_lost"`
	Helpers    HelperFlags `json:"helpers"`
	Monster    MoodState   `json:"monster_state"`
	Stage      Stage       `json:"lifecycle"`
	Crashed    bool        `json:"crashed"`
}

func (st *systemState) snapshot() Stats {
	return Stats{
		Tick:       st.tick,
		Stability:  st.stability,
		Hunger:     st.hunger,
		Mood:       st.mood,
		Trust:      st.trust,
		JunkLoad:   st.junkLoad,
		DaemonLost: st.daemonLost,
		Helpers:    st.helper.flags,
		Monster:    st.monster,
		Stage:      st.stage,
		Crashed:    st.crashed,
	}
}
