package game

// ObjectView is one occupied room slot as seen by `look`.
type ObjectView struct {
	Slot       int // 1-based
	Name       string
	TTL        int
	Identified bool
	Mutated    bool
}

// RoomView is a consistent snapshot of everything `look` renders, taken
// under one world-lock acquisition. The interpreter formats it.
type RoomView struct {
	Name        string
	Description string
	Exits       []string
	Stats       Stats
	InNursery   bool
	Monster     MoodState
	Stage       Stage
	Objects     []ObjectView
	Others      []string
}

// DescribeRoom snapshots the session actor's surroundings.
func (w *World) DescribeRoom(s *Session) (RoomView, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	a := s.actor
	if a == nil {
		return RoomView{}, ErrNotLoggedIn
	}
	r := GetRoom(a.Room)

	v := RoomView{
		Name:        r.Name,
		Description: r.Description,
		Stats:       w.state.snapshot(),
		InNursery:   a.Room == RoomNursery,
		Monster:     w.state.monster,
		Stage:       w.state.stage,
	}
	for d := Direction(0); d < DirCount; d++ {
		if r.Exit(d) != NoRoom {
			v.Exits = append(v.Exits, d.String())
		}
	}
	for i := range w.objects[a.Room] {
		o := &w.objects[a.Room][i]
		if o.Type == ItemNone {
			continue
		}
		ttl := o.TTL
		if ttl == 0 {
			ttl = 1
		}
		v.Objects = append(v.Objects, ObjectView{
			Slot:       i + 1,
			Name:       o.Type.String(),
			TTL:        ttl,
			Identified: o.Flags.Has(FlagIdentified),
			Mutated:    o.Flags.Has(FlagMutated),
		})
	}
	for id := range w.members[a.Room] {
		if id == a.Id {
			continue
		}
		if other := w.actors[id]; other != nil {
			v.Others = append(v.Others, other.Name)
		}
	}
	return v, nil
}
