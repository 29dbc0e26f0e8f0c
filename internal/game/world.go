package game

import (
	"fmt"
	"log/slog"
	"sync"
)

// RoomSlots is the fixed object capacity of each room.
const RoomSlots = 4

// EventsSubject is the messaging subject world broadcasts are mirrored to
// for external observers (display clients, dashboards).
const EventsSubject = "monster.events"

// EventSink receives a copy of every world-scoped broadcast line.
type EventSink interface {
	Publish(subject string, data []byte) error
}

// World is the single explicitly-owned aggregate of all mutable game state:
// the system state record, room object tables, the actor roster and room
// membership sets, and the session roster. One mutex guards all of it; it is
// held for the full duration of a tick or a command's world-touching logic.
// Enqueueing into a session's queue takes that session's own inner lock.
type World struct {
	mu        sync.Mutex
	rng       *Rng
	startRoom RoomId
	sink      EventSink

	state    systemState
	objects  [RoomCount][RoomSlots]RoomObject
	actors   map[ActorId]*Actor
	members  [RoomCount]map[ActorId]struct{}
	sessions map[*Session]struct{}
}

// WorldOpt configures a World at construction.
type WorldOpt func(*World)

// WithSeed selects a deterministic RNG stream. Zero keeps the
// non-deterministic default.
func WithSeed(seed int64) WorldOpt {
	return func(w *World) {
		w.rng = NewRng(seed)
	}
}

// WithStartRoom overrides where actors spawn and respawn.
func WithStartRoom(id RoomId) WorldOpt {
	return func(w *World) {
		if ValidRoom(id) {
			w.startRoom = id
		}
	}
}

// WithEventSink mirrors world broadcasts to an external subject.
func WithEventSink(sink EventSink) WorldOpt {
	return func(w *World) {
		w.sink = sink
	}
}

// NewWorld builds a world in its epoch-initial state.
func NewWorld(opts ...WorldOpt) *World {
	w := &World{
		rng:       NewRng(0),
		startRoom: RoomNursery,
		actors:    make(map[ActorId]*Actor),
		sessions:  make(map[*Session]struct{}),
	}
	for i := range w.members {
		w.members[i] = make(map[ActorId]struct{})
	}
	for _, opt := range opts {
		opt(w)
	}
	w.state.reset()
	return w
}

// Stats returns a read-only copy of the system state.
func (w *World) Stats() Stats {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state.snapshot()
}

// Stage returns the current lifecycle stage.
func (w *World) Stage() Stage {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state.stage
}

/* ---- Sessions ---------------------------------------------------------- */

// AttachSession registers a new session and greets it. The returned session
// carries no actor until a successful login.
func (w *World) AttachSession() *Session {
	s := newSession()

	w.mu.Lock()
	w.sessions[s] = struct{}{}
	w.mu.Unlock()

	s.Push("Welcome to /dev/monster.")
	s.Push("Commands: login <name>, look, go <dir>, grab <item>, analyze <slot>, " +
		"feed <slot>, clean <slot>, rescue, clear, pet, debug, sing, inventory, " +
		"state, say <msg>, reset, quit")
	return s
}

// DetachSession removes a session and destroys its actor. Removal happens
// under the world lock so a detached session can never receive a later
// broadcast and never leaves a dangling room-membership entry.
func (w *World) DetachSession(s *Session) {
	w.mu.Lock()
	delete(w.sessions, s)
	if a := s.actor; a != nil {
		delete(w.members[a.Room], a.Id)
		delete(w.actors, a.Id)
		s.actor = nil
	}
	w.mu.Unlock()

	s.close()
}

/* ---- Fan-out ----------------------------------------------------------- */

func (w *World) broadcastAllLocked(format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	for s := range w.sessions {
		if s.actor == nil {
			continue
		}
		s.Push(line)
	}
	if w.sink != nil {
		if err := w.sink.Publish(EventsSubject, []byte(line)); err != nil {
			slog.Debug("mirroring broadcast", "error", err)
		}
	}
}

func (w *World) broadcastRoomLocked(room RoomId, format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	for s := range w.sessions {
		if s.actor == nil || s.actor.Room != room {
			continue
		}
		s.Push(line)
	}
}

/* ---- Room objects ------------------------------------------------------ */

func (w *World) firstFreeObjectSlot(room RoomId) int {
	for i := range w.objects[room] {
		if w.objects[room][i].Type == ItemNone {
			return i
		}
	}
	return -1
}

func (w *World) objectCount(room RoomId) int {
	n := 0
	for i := range w.objects[room] {
		if w.objects[room][i].Type != ItemNone {
			n++
		}
	}
	return n
}

func (w *World) addObject(room RoomId, t ItemType, ttl int) *RoomObject {
	slot := w.firstFreeObjectSlot(room)
	if slot < 0 {
		return nil
	}
	w.objects[room][slot] = RoomObject{Type: t, TTL: ttl}
	return &w.objects[room][slot]
}

func (w *World) decayObjects(room RoomId) {
	for i := range w.objects[room] {
		o := &w.objects[room][i]
		if o.Type == ItemNone || o.TTL == 0 {
			continue
		}
		o.TTL--
		if o.TTL == 0 {
			o.clear()
		}
	}
}

// matchObject resolves a room object token: a 1-based slot number or a
// case-insensitive item-name prefix. Returns -1 when nothing matches.
func (w *World) matchObject(room RoomId, token string) int {
	if token == "" {
		return -1
	}
	if idx := parseIndex(token, RoomSlots); idx >= 0 {
		if w.objects[room][idx].Type != ItemNone {
			return idx
		}
	}
	for i := range w.objects[room] {
		o := &w.objects[room][i]
		if o.Type == ItemNone {
			continue
		}
		if hasFoldPrefix(o.Type.String(), token) {
			return i
		}
	}
	return -1
}

/* ---- Spawning ---------------------------------------------------------- */

func (w *World) randomBuffetResource() ItemType {
	p := w.rng.Percent()
	switch {
	case p < 40:
		return ItemRamChunk
	case p < 70:
		return ItemIoToken
	case p < 90:
		return ItemCpuSlice
	default:
		return ItemJunkData
	}
}

// spawnBuffetResourceLocked places one weighted-random resource into the
// buffet and returns the broadcast line, or "" when the room was full.
func (w *World) spawnBuffetResourceLocked() string {
	if w.firstFreeObjectSlot(RoomBuffet) < 0 {
		return ""
	}
	t := w.randomBuffetResource()
	obj := w.addObject(RoomBuffet, t, w.rng.Between(3, 5))
	if obj == nil {
		return ""
	}
	if t == ItemJunkData && w.rng.Percent() < 30 {
		obj.Flags |= FlagMutated
	}
	return fmt.Sprintf("[SPAWN] %s appears in %s.", t, GetRoom(RoomBuffet).Name)
}

// spawnDaemonLocked lets one baby daemon loose in the fields, if none is
// already loose and a slot is free. Returns the broadcast line or "".
func (w *World) spawnDaemonLocked() string {
	if w.state.daemonLost {
		return ""
	}
	if w.objectCount(RoomFields) >= RoomSlots {
		return ""
	}
	if w.addObject(RoomFields, ItemBabyDaemon, w.rng.Between(4, 6)) == nil {
		return ""
	}
	w.state.daemonLost = true
	return fmt.Sprintf("[ALERT] A baby daemon wanders into %s!", GetRoom(RoomFields).Name)
}

/* ---- Announcements ----------------------------------------------------- */

func (w *World) announceGoalLocked() {
	next := nextStageRule(w.state.stage)
	if next == nil {
		w.broadcastAllLocked("[QUEST] The Friendly Monster is retired. Enjoy free play!")
		return
	}
	w.broadcastAllLocked("[QUEST] Goal: reach %s (tick %d+, stability %d+).",
		next.stage, next.minTick, next.minStability)
}

func goalLine(stage Stage) string {
	next := nextStageRule(stage)
	if next == nil {
		return "[QUEST] The Friendly Monster is retired. Enjoy free play!"
	}
	return fmt.Sprintf("[QUEST] Goal: reach %s (tick %d+, stability %d+).",
		next.stage, next.minTick, next.minStability)
}
