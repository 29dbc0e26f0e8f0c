package game

import (
	"github.com/google/uuid"
)

// Operations in this file are the mutations the command interpreter drives.
// Each one validates its preconditions and either completes inside a single
// world-lock acquisition or returns a sentinel error without mutating
// anything. Formatting the user-facing reply is the interpreter's job;
// room- and world-scoped broadcasts happen here where a consistent
// membership snapshot is available.

// LoginInfo is what a fresh login needs to greet the player.
type LoginInfo struct {
	Name     string
	Stage    Stage
	Commands string
	Goal     string
}

// Login creates the session's actor at the start room and registers it in
// the roster and room membership.
func (w *World) Login(s *Session, name string) (LoginInfo, error) {
	name = truncateName(name)
	if name == "" {
		return LoginInfo{}, ErrEmptyName
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if s.actor != nil {
		return LoginInfo{}, ErrAlreadyLoggedIn
	}

	a := &Actor{
		Id:   ActorId(uuid.New().String()),
		Name: name,
		Room: w.startRoom,
		HP:   5,
	}
	w.actors[a.Id] = a
	w.members[a.Room][a.Id] = struct{}{}
	s.actor = a

	return LoginInfo{
		Name:     a.Name,
		Stage:    w.state.stage,
		Commands: AvailableCommands(w.state.stage),
		Goal:     goalLine(w.state.stage),
	}, nil
}

// Move relocates the session's actor through an exit and returns the
// destination.
func (w *World) Move(s *Session, d Direction) (RoomId, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	a := s.actor
	if a == nil {
		return NoRoom, ErrNotLoggedIn
	}
	dest := GetRoom(a.Room).Exit(d)
	if dest == NoRoom {
		return NoRoom, ErrNoExit
	}

	delete(w.members[a.Room], a.Id)
	a.Room = dest
	w.members[dest][a.Id] = struct{}{}
	return dest, nil
}

// Say broadcasts a chat line to the speaker's room, speaker included.
func (w *World) Say(s *Session, msg string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	a := s.actor
	if a == nil {
		return ErrNotLoggedIn
	}
	w.broadcastRoomLocked(a.Room, "%s says: %s", a.Name, msg)
	return nil
}

// GrabResult reports what was stashed and where.
type GrabResult struct {
	Item ItemType
	Slot int
}

// Grab moves a room object into the first free inventory slot and selects
// that slot. An empty token targets room slot 1.
func (w *World) Grab(s *Session, token string) (GrabResult, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	a := s.actor
	if a == nil {
		return GrabResult{}, ErrNotLoggedIn
	}
	if w.objectCount(a.Room) == 0 {
		return GrabResult{}, ErrNothingHere
	}
	if token == "" {
		token = "1"
	}
	slot := w.matchObject(a.Room, token)
	if slot < 0 {
		return GrabResult{}, ErrNoSuchItem
	}
	obj := &w.objects[a.Room][slot]
	if obj.Type == ItemBabyDaemon {
		return GrabResult{}, ErrDaemonGrab
	}
	inv := a.firstFreeSlot()
	if inv < 0 {
		return GrabResult{}, ErrInventoryFull
	}

	a.Inventory[inv] = HeldItem{Type: obj.Type, Flags: obj.Flags}
	a.Selected = inv
	obj.clear()
	return GrabResult{Item: a.Inventory[inv].Type, Slot: inv}, nil
}

// AnalyzeResult describes an identification outcome.
type AnalyzeResult struct {
	Item       ItemType
	WasCorrupt bool
	Junk       bool
}

// Analyze marks a held item identified. A mutated item resolves to plain
// junk data. An empty token targets the selected slot.
func (w *World) Analyze(s *Session, token string) (AnalyzeResult, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	a := s.actor
	if a == nil {
		return AnalyzeResult{}, ErrNotLoggedIn
	}
	slot := a.Selected
	if token != "" {
		slot = a.matchSlot(token)
	}
	if slot < 0 || slot >= InventorySlots {
		return AnalyzeResult{}, ErrBadSlot
	}
	it := &a.Inventory[slot]
	if it.Type == ItemNone {
		return AnalyzeResult{}, ErrEmptySlot
	}

	it.Flags |= FlagIdentified
	if it.Flags.Has(FlagMutated) {
		it.Type = ItemJunkData
		it.Flags &^= FlagMutated
		return AnalyzeResult{Item: it.Type, WasCorrupt: true, Junk: true}, nil
	}
	return AnalyzeResult{Item: it.Type, Junk: it.Type.IsJunk()}, nil
}

// FeedResult describes a feeding outcome.
type FeedResult struct {
	Item ItemType
	Junk bool
}

// Feed offers a held item to the monster. Only works from the nursery.
// Feed-class items soothe it; junk poisons it; anything else is refused
// without mutation.
func (w *World) Feed(s *Session, token string) (FeedResult, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	a := s.actor
	if a == nil {
		return FeedResult{}, ErrNotLoggedIn
	}
	if a.Room != RoomNursery {
		return FeedResult{}, ErrWrongRoom
	}
	slot := a.Selected
	if token != "" {
		slot = a.matchSlot(token)
	}
	if slot < 0 || slot >= InventorySlots {
		return FeedResult{}, ErrBadSlot
	}
	it := &a.Inventory[slot]
	if it.Type == ItemNone {
		return FeedResult{}, ErrEmptySlot
	}

	st := &w.state
	switch {
	case it.Type.IsFeed():
		hungerDrop := 3
		if it.Type == ItemCpuSlice {
			hungerDrop = 4
		}
		moodBoost := 2
		if it.Type == ItemIoToken {
			moodBoost = 3
		}
		st.adjustHunger(-hungerDrop)
		st.adjustMood(moodBoost)
		st.adjustTrust(1)
		st.adjustStability(2)
		if it.Type == ItemRamChunk {
			st.adjustStability(1)
		}
		fed := it.Type
		it.clear()
		st.recomputeMonster()
		w.broadcastRoomLocked(RoomNursery,
			"[MONSTER] %s feeds the Monster. It purrs happily.", a.Name)
		return FeedResult{Item: fed}, nil

	case it.Type.IsJunk():
		st.adjustHunger(1)
		st.adjustMood(-3)
		st.adjustTrust(-2)
		st.adjustStability(-5)
		st.adjustJunk(2)
		fed := it.Type
		it.clear()
		st.recomputeMonster()
		w.broadcastRoomLocked(RoomNursery,
			"[MONSTER] %s accidentally feeds junk! The Monster glitches.", a.Name)
		return FeedResult{Item: fed, Junk: true}, nil

	default:
		return FeedResult{}, ErrRefused
	}
}

// CleanResult describes a recycling outcome.
type CleanResult struct {
	Item     ItemType
	Junk     bool
	InFields bool
}

// Clean consumes a held item. Junk scrubbed in the fields eases junk load
// with a mood and stability bonus; elsewhere the relief is smaller. A
// non-junk item is silently recycled with no stat effect.
func (w *World) Clean(s *Session, token string) (CleanResult, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	a := s.actor
	if a == nil {
		return CleanResult{}, ErrNotLoggedIn
	}
	slot := a.Selected
	if token != "" {
		slot = a.matchSlot(token)
	}
	if slot < 0 || slot >= InventorySlots {
		return CleanResult{}, ErrBadSlot
	}
	it := &a.Inventory[slot]
	if it.Type == ItemNone {
		return CleanResult{}, ErrEmptySlot
	}

	res := CleanResult{Item: it.Type, InFields: a.Room == RoomFields}
	if it.Type.IsJunk() {
		res.Junk = true
		st := &w.state
		if res.InFields {
			st.adjustJunk(-3)
			st.adjustMood(1)
			st.adjustStability(1)
		} else {
			st.adjustJunk(-1)
		}
		st.recomputeMonster()
	}
	it.clear()
	return res, nil
}

// Rescue clears the first loose baby daemon in the fields, or the lost
// flag alone for a smaller reward. Only works from the fields.
func (w *World) Rescue(s *Session) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	a := s.actor
	if a == nil {
		return ErrNotLoggedIn
	}
	if a.Room != RoomFields {
		return ErrWrongRoom
	}

	st := &w.state
	for i := range w.objects[RoomFields] {
		o := &w.objects[RoomFields][i]
		if o.Type != ItemBabyDaemon {
			continue
		}
		o.clear()
		st.adjustTrust(2)
		st.adjustMood(2)
		st.adjustStability(3)
		st.daemonLost = false
		st.helper.rescueCounter = min(st.helper.rescueCounter+1, rescueCounterCap)
		st.recomputeMonster()
		return nil
	}
	if st.daemonLost {
		st.daemonLost = false
		st.adjustTrust(1)
		st.adjustMood(1)
		st.adjustStability(2)
		st.helper.rescueCounter = min(st.helper.rescueCounter+1, rescueCounterCap)
		st.recomputeMonster()
		return nil
	}
	return ErrNothingToRescue
}

// ClearJunk vents every junk pile in the fields and returns how many went.
func (w *World) ClearJunk(s *Session) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	a := s.actor
	if a == nil {
		return 0, ErrNotLoggedIn
	}
	if a.Room != RoomFields {
		return 0, ErrWrongRoom
	}

	cleared := 0
	for i := range w.objects[RoomFields] {
		o := &w.objects[RoomFields][i]
		if o.Type == ItemJunkData {
			o.clear()
			cleared++
		}
	}
	if cleared > 0 {
		st := &w.state
		st.adjustJunk(-cleared * 2)
		st.adjustStability(1)
		st.adjustMood(1)
		st.recomputeMonster()
	}
	return cleared, nil
}

// Pet soothes the monster. Nursery only.
func (w *World) Pet(s *Session) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	a := s.actor
	if a == nil {
		return ErrNotLoggedIn
	}
	if a.Room != RoomNursery {
		return ErrWrongRoom
	}
	w.state.adjustMood(2)
	w.state.adjustTrust(1)
	w.state.recomputeMonster()
	w.broadcastRoomLocked(RoomNursery,
		"[MONSTER] %s gives gentle pats. Warm chimes play.", a.Name)
	return nil
}

// Sing cheers the monster. Nursery only.
func (w *World) Sing(s *Session) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	a := s.actor
	if a == nil {
		return ErrNotLoggedIn
	}
	if a.Room != RoomNursery {
		return ErrWrongRoom
	}
	w.state.adjustMood(3)
	w.state.adjustTrust(1)
	w.state.adjustStability(1)
	w.state.recomputeMonster()
	w.broadcastRoomLocked(RoomNursery,
		"[PROC] %s sings a lullaby. The Monster hums along.", a.Name)
	return nil
}

// Debug patches the monster's threads, extra effective while glitching.
// Nursery only.
func (w *World) Debug(s *Session) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	a := s.actor
	if a == nil {
		return ErrNotLoggedIn
	}
	if a.Room != RoomNursery {
		return ErrWrongRoom
	}
	st := &w.state
	st.adjustJunk(-1)
	st.adjustMood(1)
	st.adjustStability(1)
	if st.monster == MoodGlitching {
		st.adjustMood(1)
	}
	st.recomputeMonster()
	w.broadcastRoomLocked(RoomNursery,
		"[SYSLOG] %s patches the Monster's threads. Glitches fade.", a.Name)
	return nil
}

// Reset restores the epoch-initial state after a crash. It reseeds a
// deterministic RNG, clears every room object, empties every actor's
// inventory and relocates everyone to the start room, then re-announces
// the goal and command list. Refused while the system is still running.
func (w *World) Reset(s *Session) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	a := s.actor
	if a == nil {
		return ErrNotLoggedIn
	}
	if !w.state.crashed {
		return ErrStillRunning
	}

	w.rng.Reseed()
	w.state.reset()
	for room := range w.objects {
		for i := range w.objects[room] {
			w.objects[room][i].clear()
		}
	}
	for _, other := range w.actors {
		other.clearInventory()
		delete(w.members[other.Room], other.Id)
		other.Room = w.startRoom
		w.members[w.startRoom][other.Id] = struct{}{}
	}

	w.announceGoalLocked()
	w.broadcastAllLocked("[TIP] Commands available: %s", AvailableCommands(w.state.stage))
	w.broadcastAllLocked("[PROC] %s restores the kernel. New shift begins!", a.Name)
	return nil
}

// StateSnapshot returns the stats for the `state` command.
func (w *World) StateSnapshot(s *Session) (Stats, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if s.actor == nil {
		return Stats{}, ErrNotLoggedIn
	}
	return w.state.snapshot(), nil
}

// InventoryOf returns a copy of the session actor's inventory.
func (w *World) InventoryOf(s *Session) ([InventorySlots]HeldItem, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if s.actor == nil {
		return [InventorySlots]HeldItem{}, ErrNotLoggedIn
	}
	return s.actor.Inventory, nil
}
