package game

import (
	"errors"
	"strings"
	"testing"

	"github.com/pixil98/go-testutil"
)

// drainLines empties a session's queue without blocking.
func drainLines(s *Session) []string {
	var out []string
	for {
		select {
		case b := <-s.Messages():
			out = append(out, string(b))
		default:
			return out
		}
	}
}

func anyContains(lines []string, substr string) bool {
	for _, l := range lines {
		if strings.Contains(l, substr) {
			return true
		}
	}
	return false
}

// newTestCaretaker attaches a session, logs it in, and drains the greeting.
func newTestCaretaker(t *testing.T, w *World, name string) *Session {
	t.Helper()
	s := w.AttachSession()
	if _, err := w.Login(s, name); err != nil {
		t.Fatalf("login %s: %v", name, err)
	}
	drainLines(s)
	return s
}

func TestLogin(t *testing.T) {
	w := NewWorld(WithSeed(1))
	s := w.AttachSession()

	info, err := w.Login(s, "  ada  ")
	testutil.AssertEqual(t, "error", err, nil)
	testutil.AssertEqual(t, "name trimmed", info.Name, "ada")
	testutil.AssertEqual(t, "stage", info.Stage, StageHatchling)
	testutil.AssertEqual(t, "room", s.actor.Room, RoomNursery)

	_, err = w.Login(s, "ada")
	testutil.AssertEqual(t, "double login", errors.Is(err, ErrAlreadyLoggedIn), true)

	s2 := w.AttachSession()
	_, err = w.Login(s2, "   ")
	testutil.AssertEqual(t, "empty name", errors.Is(err, ErrEmptyName), true)
}

func TestLoginTruncatesName(t *testing.T) {
	w := NewWorld(WithSeed(1))
	s := w.AttachSession()

	info, err := w.Login(s, strings.Repeat("x", MaxNameLen+10))
	testutil.AssertEqual(t, "error", err, nil)
	testutil.AssertEqual(t, "length", len(info.Name), MaxNameLen)
}

func TestMove(t *testing.T) {
	tests := map[string]struct {
		path    []Direction
		expRoom RoomId
		expErr  error
	}{
		"east to the buffet":       {path: []Direction{East}, expRoom: RoomBuffet},
		"west to the fields":       {path: []Direction{West}, expRoom: RoomFields},
		"round trip":               {path: []Direction{East, West}, expRoom: RoomNursery},
		"no exit north":            {path: []Direction{North}, expErr: ErrNoExit},
		"buffet dead ends east":    {path: []Direction{East, East}, expErr: ErrNoExit},
		"fields dead ends west":    {path: []Direction{West, West}, expErr: ErrNoExit},
		"fields back past nursery": {path: []Direction{West, East, East}, expRoom: RoomBuffet},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			w := NewWorld(WithSeed(1))
			s := newTestCaretaker(t, w, "ada")

			var dest RoomId
			var err error
			for _, d := range tt.path {
				dest, err = w.Move(s, d)
				if err != nil {
					break
				}
			}

			if tt.expErr != nil {
				testutil.AssertEqual(t, "error", errors.Is(err, tt.expErr), true)
				return
			}
			testutil.AssertEqual(t, "error", err, nil)
			testutil.AssertEqual(t, "room", dest, tt.expRoom)
			testutil.AssertEqual(t, "membership", len(w.members[tt.expRoom]), 1)
		})
	}
}

func TestSayIsRoomScoped(t *testing.T) {
	w := NewWorld(WithSeed(1))
	speaker := newTestCaretaker(t, w, "ada")
	listener := newTestCaretaker(t, w, "bob")
	farAway := newTestCaretaker(t, w, "cho")

	if _, err := w.Move(farAway, East); err != nil {
		t.Fatalf("move: %v", err)
	}
	drainLines(farAway)

	err := w.Say(speaker, "hello there")
	testutil.AssertEqual(t, "error", err, nil)

	testutil.AssertEqual(t, "speaker hears", anyContains(drainLines(speaker), "ada says: hello there"), true)
	testutil.AssertEqual(t, "roommate hears", anyContains(drainLines(listener), "ada says: hello there"), true)
	testutil.AssertEqual(t, "other room silent", len(drainLines(farAway)), 0)
}

func TestGrab(t *testing.T) {
	w := NewWorld(WithSeed(1))
	s := newTestCaretaker(t, w, "ada")
	w.addObject(RoomBuffet, ItemRamChunk, 3)
	if _, err := w.Move(s, East); err != nil {
		t.Fatalf("move: %v", err)
	}

	res, err := w.Grab(s, "")
	testutil.AssertEqual(t, "error", err, nil)
	testutil.AssertEqual(t, "item", res.Item, ItemRamChunk)
	testutil.AssertEqual(t, "slot", res.Slot, 0)
	testutil.AssertEqual(t, "selected", s.actor.Selected, 0)
	testutil.AssertEqual(t, "room emptied", w.objectCount(RoomBuffet), 0)

	_, err = w.Grab(s, "1")
	testutil.AssertEqual(t, "nothing left", errors.Is(err, ErrNothingHere), true)
}

func TestGrabByNamePrefix(t *testing.T) {
	w := NewWorld(WithSeed(1))
	s := newTestCaretaker(t, w, "ada")
	w.addObject(RoomBuffet, ItemJunkData, 3)
	w.addObject(RoomBuffet, ItemCpuSlice, 3)
	if _, err := w.Move(s, East); err != nil {
		t.Fatalf("move: %v", err)
	}

	res, err := w.Grab(s, "cpu")
	testutil.AssertEqual(t, "error", err, nil)
	testutil.AssertEqual(t, "item", res.Item, ItemCpuSlice)

	_, err = w.Grab(s, "banana")
	testutil.AssertEqual(t, "no match", errors.Is(err, ErrNoSuchItem), true)
}

func TestGrabRefusesDaemon(t *testing.T) {
	w := NewWorld(WithSeed(1))
	s := newTestCaretaker(t, w, "ada")
	w.addObject(RoomFields, ItemBabyDaemon, 4)
	if _, err := w.Move(s, West); err != nil {
		t.Fatalf("move: %v", err)
	}

	_, err := w.Grab(s, "1")
	testutil.AssertEqual(t, "refused", errors.Is(err, ErrDaemonGrab), true)
	testutil.AssertEqual(t, "daemon stays", w.objectCount(RoomFields), 1)
}

func TestGrabInventoryFull(t *testing.T) {
	w := NewWorld(WithSeed(1))
	s := newTestCaretaker(t, w, "ada")
	for i := 0; i < InventorySlots; i++ {
		s.actor.Inventory[i] = HeldItem{Type: ItemRamChunk}
	}
	w.addObject(RoomBuffet, ItemIoToken, 3)
	if _, err := w.Move(s, East); err != nil {
		t.Fatalf("move: %v", err)
	}

	_, err := w.Grab(s, "1")
	testutil.AssertEqual(t, "full", errors.Is(err, ErrInventoryFull), true)
	testutil.AssertEqual(t, "room keeps item", w.objectCount(RoomBuffet), 1)
}

func TestAnalyze(t *testing.T) {
	tests := map[string]struct {
		item       HeldItem
		expItem    ItemType
		expCorrupt bool
		expJunk    bool
	}{
		"tasty resource": {
			item:    HeldItem{Type: ItemRamChunk},
			expItem: ItemRamChunk,
		},
		"plain junk": {
			item:    HeldItem{Type: ItemJunkData},
			expItem: ItemJunkData,
			expJunk: true,
		},
		"mutated item resolves to junk": {
			item:       HeldItem{Type: ItemIoToken, Flags: FlagMutated},
			expItem:    ItemJunkData,
			expCorrupt: true,
			expJunk:    true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			w := NewWorld(WithSeed(1))
			s := newTestCaretaker(t, w, "ada")
			s.actor.Inventory[0] = tt.item

			res, err := w.Analyze(s, "1")
			testutil.AssertEqual(t, "error", err, nil)
			testutil.AssertEqual(t, "item", res.Item, tt.expItem)
			testutil.AssertEqual(t, "corrupt", res.WasCorrupt, tt.expCorrupt)
			testutil.AssertEqual(t, "junk", res.Junk, tt.expJunk)
			testutil.AssertEqual(t, "identified", s.actor.Inventory[0].Flags.Has(FlagIdentified), true)
			testutil.AssertEqual(t, "mutation cleared", s.actor.Inventory[0].Flags.Has(FlagMutated), false)
		})
	}
}

func TestAnalyzeEmptySlot(t *testing.T) {
	w := NewWorld(WithSeed(1))
	s := newTestCaretaker(t, w, "ada")

	_, err := w.Analyze(s, "2")
	testutil.AssertEqual(t, "empty", errors.Is(err, ErrEmptySlot), true)

	_, err = w.Analyze(s, "9")
	testutil.AssertEqual(t, "bad slot", errors.Is(err, ErrBadSlot), true)
}

func TestFeed(t *testing.T) {
	tests := map[string]struct {
		item         ItemType
		expHunger    int
		expMood      int
		expTrust     int
		expStability int
		expJunkLoad  int
		expJunk      bool
	}{
		"ram chunk adds extra stability": {
			item:         ItemRamChunk,
			expHunger:    0, // 3 - 3
			expMood:      2,
			expTrust:     4,
			expStability: 53, // +2 +1
		},
		"io token boosts mood": {
			item:         ItemIoToken,
			expHunger:    0,
			expMood:      3,
			expTrust:     4,
			expStability: 52,
		},
		"cpu slice fills best": {
			item:         ItemCpuSlice,
			expHunger:    0, // 3 - 4 clamped
			expMood:      2,
			expTrust:     4,
			expStability: 52,
		},
		"junk poisons": {
			item:         ItemJunkData,
			expHunger:    4,
			expMood:      -3,
			expTrust:     1,
			expStability: 45,
			expJunkLoad:  2,
			expJunk:      true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			w := NewWorld(WithSeed(1))
			s := newTestCaretaker(t, w, "ada")
			w.state.stability = 50
			s.actor.Inventory[0] = HeldItem{Type: tt.item}

			res, err := w.Feed(s, "1")
			testutil.AssertEqual(t, "error", err, nil)
			testutil.AssertEqual(t, "item", res.Item, tt.item)
			testutil.AssertEqual(t, "junk", res.Junk, tt.expJunk)
			testutil.AssertEqual(t, "slot emptied", s.actor.Inventory[0].Type, ItemNone)

			st := w.Stats()
			testutil.AssertEqual(t, "hunger", st.Hunger, tt.expHunger)
			testutil.AssertEqual(t, "mood", st.Mood, tt.expMood)
			testutil.AssertEqual(t, "trust", st.Trust, tt.expTrust)
			testutil.AssertEqual(t, "stability", st.Stability, tt.expStability)
			testutil.AssertEqual(t, "junk load", st.JunkLoad, tt.expJunkLoad)
		})
	}
}

func TestFeedOnlyInNursery(t *testing.T) {
	w := NewWorld(WithSeed(1))
	s := newTestCaretaker(t, w, "ada")
	s.actor.Inventory[0] = HeldItem{Type: ItemRamChunk}
	if _, err := w.Move(s, East); err != nil {
		t.Fatalf("move: %v", err)
	}

	_, err := w.Feed(s, "1")
	testutil.AssertEqual(t, "wrong room", errors.Is(err, ErrWrongRoom), true)
	testutil.AssertEqual(t, "item kept", s.actor.Inventory[0].Type, ItemRamChunk)
}

func TestFeedRefusesDaemon(t *testing.T) {
	w := NewWorld(WithSeed(1))
	s := newTestCaretaker(t, w, "ada")
	s.actor.Inventory[0] = HeldItem{Type: ItemBabyDaemon}

	before := w.Stats()
	_, err := w.Feed(s, "1")
	testutil.AssertEqual(t, "refused", errors.Is(err, ErrRefused), true)
	testutil.AssertEqual(t, "no mutation", w.Stats(), before)
	testutil.AssertEqual(t, "item kept", s.actor.Inventory[0].Type, ItemBabyDaemon)
}

func TestClean(t *testing.T) {
	tests := map[string]struct {
		item        ItemType
		inFields    bool
		startJunk   int
		expJunkLoad int
		expMood     int
	}{
		"junk in the fields":    {item: ItemJunkData, inFields: true, startJunk: 5, expJunkLoad: 2, expMood: 1},
		"junk elsewhere":        {item: ItemJunkData, startJunk: 5, expJunkLoad: 4},
		"resource is just gone": {item: ItemIoToken, startJunk: 5, expJunkLoad: 5},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			w := NewWorld(WithSeed(1))
			s := newTestCaretaker(t, w, "ada")
			w.state.junkLoad = tt.startJunk
			s.actor.Inventory[0] = HeldItem{Type: tt.item}
			if tt.inFields {
				if _, err := w.Move(s, West); err != nil {
					t.Fatalf("move: %v", err)
				}
			}

			res, err := w.Clean(s, "1")
			testutil.AssertEqual(t, "error", err, nil)
			testutil.AssertEqual(t, "item", res.Item, tt.item)
			testutil.AssertEqual(t, "slot emptied", s.actor.Inventory[0].Type, ItemNone)

			st := w.Stats()
			testutil.AssertEqual(t, "junk load", st.JunkLoad, tt.expJunkLoad)
			testutil.AssertEqual(t, "mood", st.Mood, tt.expMood)
		})
	}
}

func TestRescue(t *testing.T) {
	t.Run("rescues a loose daemon", func(t *testing.T) {
		w := NewWorld(WithSeed(1))
		s := newTestCaretaker(t, w, "ada")
		w.state.stability = 50
		w.addObject(RoomFields, ItemBabyDaemon, 4)
		w.state.daemonLost = true
		if _, err := w.Move(s, West); err != nil {
			t.Fatalf("move: %v", err)
		}

		err := w.Rescue(s)
		testutil.AssertEqual(t, "error", err, nil)

		st := w.Stats()
		testutil.AssertEqual(t, "daemon home", st.DaemonLost, false)
		testutil.AssertEqual(t, "trust", st.Trust, 5)
		testutil.AssertEqual(t, "mood", st.Mood, 2)
		testutil.AssertEqual(t, "stability", st.Stability, 53)
		testutil.AssertEqual(t, "fields empty", w.objectCount(RoomFields), 0)
		testutil.AssertEqual(t, "counter", w.state.helper.rescueCounter, 1)
	})

	t.Run("clears a stale lost flag", func(t *testing.T) {
		w := NewWorld(WithSeed(1))
		s := newTestCaretaker(t, w, "ada")
		w.state.stability = 50
		w.state.daemonLost = true
		if _, err := w.Move(s, West); err != nil {
			t.Fatalf("move: %v", err)
		}

		err := w.Rescue(s)
		testutil.AssertEqual(t, "error", err, nil)

		st := w.Stats()
		testutil.AssertEqual(t, "flag cleared", st.DaemonLost, false)
		testutil.AssertEqual(t, "trust", st.Trust, 4)
		testutil.AssertEqual(t, "stability", st.Stability, 52)
	})

	t.Run("nothing to rescue", func(t *testing.T) {
		w := NewWorld(WithSeed(1))
		s := newTestCaretaker(t, w, "ada")
		if _, err := w.Move(s, West); err != nil {
			t.Fatalf("move: %v", err)
		}

		err := w.Rescue(s)
		testutil.AssertEqual(t, "error", errors.Is(err, ErrNothingToRescue), true)
	})

	t.Run("fields only", func(t *testing.T) {
		w := NewWorld(WithSeed(1))
		s := newTestCaretaker(t, w, "ada")

		err := w.Rescue(s)
		testutil.AssertEqual(t, "error", errors.Is(err, ErrWrongRoom), true)
	})
}

func TestClearJunk(t *testing.T) {
	w := NewWorld(WithSeed(1))
	s := newTestCaretaker(t, w, "ada")
	w.state.junkLoad = 10
	w.addObject(RoomFields, ItemJunkData, 3)
	w.addObject(RoomFields, ItemJunkData, 3)
	w.addObject(RoomFields, ItemRamChunk, 3)
	if _, err := w.Move(s, West); err != nil {
		t.Fatalf("move: %v", err)
	}

	cleared, err := w.ClearJunk(s)
	testutil.AssertEqual(t, "error", err, nil)
	testutil.AssertEqual(t, "cleared", cleared, 2)
	testutil.AssertEqual(t, "junk load", w.Stats().JunkLoad, 6)
	testutil.AssertEqual(t, "resource survives", w.objectCount(RoomFields), 1)

	cleared, err = w.ClearJunk(s)
	testutil.AssertEqual(t, "error", err, nil)
	testutil.AssertEqual(t, "already tidy", cleared, 0)
}

func TestNurseryRituals(t *testing.T) {
	tests := map[string]struct {
		op           func(w *World, s *Session) error
		expMood      int
		expTrust     int
		expStability int
	}{
		"pet": {
			op:           func(w *World, s *Session) error { return w.Pet(s) },
			expMood:      2,
			expTrust:     4,
			expStability: 50,
		},
		"sing": {
			op:           func(w *World, s *Session) error { return w.Sing(s) },
			expMood:      3,
			expTrust:     4,
			expStability: 51,
		},
		"debug": {
			op:           func(w *World, s *Session) error { return w.Debug(s) },
			expMood:      1,
			expTrust:     3,
			expStability: 51,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			w := NewWorld(WithSeed(1))
			s := newTestCaretaker(t, w, "ada")
			w.state.stability = 50

			err := tt.op(w, s)
			testutil.AssertEqual(t, "error", err, nil)

			st := w.Stats()
			testutil.AssertEqual(t, "mood", st.Mood, tt.expMood)
			testutil.AssertEqual(t, "trust", st.Trust, tt.expTrust)
			testutil.AssertEqual(t, "stability", st.Stability, tt.expStability)

			// All three are nursery rituals.
			if _, err := w.Move(s, East); err != nil {
				t.Fatalf("move: %v", err)
			}
			testutil.AssertEqual(t, "wrong room", errors.Is(tt.op(w, s), ErrWrongRoom), true)
		})
	}
}

func TestDebugExtraWhileGlitching(t *testing.T) {
	w := NewWorld(WithSeed(1))
	s := newTestCaretaker(t, w, "ada")
	w.state.mood = -5
	w.state.recomputeMonster()

	err := w.Debug(s)
	testutil.AssertEqual(t, "error", err, nil)
	testutil.AssertEqual(t, "mood", w.Stats().Mood, -3)
}

func TestReset(t *testing.T) {
	w := NewWorld(WithSeed(1))
	s := newTestCaretaker(t, w, "ada")

	err := w.Reset(s)
	testutil.AssertEqual(t, "refused while running", errors.Is(err, ErrStillRunning), true)

	w.state.crashed = true
	w.state.stage = StageElder
	w.addObject(RoomBuffet, ItemJunkData, 3)
	s.actor.Inventory[0] = HeldItem{Type: ItemRamChunk}
	if _, err := w.Move(s, East); err != nil {
		t.Fatalf("move: %v", err)
	}
	drainLines(s)

	err = w.Reset(s)
	testutil.AssertEqual(t, "error", err, nil)

	st := w.Stats()
	testutil.AssertEqual(t, "crashed", st.Crashed, false)
	testutil.AssertEqual(t, "stage", st.Stage, StageHatchling)
	testutil.AssertEqual(t, "stability", st.Stability, stabilityMax)
	testutil.AssertEqual(t, "buffet cleared", w.objectCount(RoomBuffet), 0)
	testutil.AssertEqual(t, "inventory cleared", s.actor.Inventory[0].Type, ItemNone)
	testutil.AssertEqual(t, "back home", s.actor.Room, RoomNursery)
	testutil.AssertEqual(t, "announced", anyContains(drainLines(s), "New shift begins"), true)
}

func TestOpsRequireLogin(t *testing.T) {
	w := NewWorld(WithSeed(1))
	s := w.AttachSession()

	tests := map[string]func() error{
		"move":    func() error { _, err := w.Move(s, East); return err },
		"say":     func() error { return w.Say(s, "hi") },
		"grab":    func() error { _, err := w.Grab(s, "1"); return err },
		"analyze": func() error { _, err := w.Analyze(s, "1"); return err },
		"feed":    func() error { _, err := w.Feed(s, "1"); return err },
		"clean":   func() error { _, err := w.Clean(s, "1"); return err },
		"rescue":  func() error { return w.Rescue(s) },
		"clear":   func() error { _, err := w.ClearJunk(s); return err },
		"pet":     func() error { return w.Pet(s) },
		"sing":    func() error { return w.Sing(s) },
		"debug":   func() error { return w.Debug(s) },
		"reset":   func() error { return w.Reset(s) },
		"state":   func() error { _, err := w.StateSnapshot(s); return err },
		"look":    func() error { _, err := w.DescribeRoom(s); return err },
	}

	for name, op := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "error", errors.Is(op(), ErrNotLoggedIn), true)
		})
	}
}

func TestDetachSessionRemovesActor(t *testing.T) {
	w := NewWorld(WithSeed(1))
	s := newTestCaretaker(t, w, "ada")
	other := newTestCaretaker(t, w, "bob")

	w.DetachSession(s)

	testutil.AssertEqual(t, "roster", len(w.actors), 1)
	testutil.AssertEqual(t, "membership", len(w.members[RoomNursery]), 1)

	// Broadcasts after detach must not reach the closed session.
	err := w.Say(other, "anyone here?")
	testutil.AssertEqual(t, "error", err, nil)
	_, open := <-s.Messages()
	testutil.AssertEqual(t, "queue closed", open, false)
}
