package game

import (
	"strconv"
	"strings"
)

const (
	// InventorySlots is the fixed per-actor carry capacity.
	InventorySlots = 3
	// MaxNameLen bounds a display name, in bytes.
	MaxNameLen = 24
)

// ActorId is a handle into the world's actor roster. Rooms hold sets of
// handles rather than pointers so teardown never leaves a dangling entry.
type ActorId string

// Actor is the in-world body owned by exactly one session. It is created on
// the session's first successful login and destroyed with the session.
type Actor struct {
	Id        ActorId
	Name      string
	Room      RoomId
	HP        int
	Inventory [InventorySlots]HeldItem
	Selected  int
}

func (a *Actor) clearInventory() {
	for i := range a.Inventory {
		a.Inventory[i].clear()
	}
	a.Selected = 0
}

func (a *Actor) firstFreeSlot() int {
	for i := range a.Inventory {
		if a.Inventory[i].Type == ItemNone {
			return i
		}
	}
	return -1
}

// matchSlot resolves an inventory slot token: "sel" for the selected slot,
// or a 1-based index. Returns -1 when the token resolves to nothing.
func (a *Actor) matchSlot(token string) int {
	if token == "sel" {
		if a.Selected >= InventorySlots {
			return InventorySlots - 1
		}
		return a.Selected
	}
	if idx, err := strconv.Atoi(token); err == nil {
		if idx >= 1 && idx <= InventorySlots {
			return idx - 1
		}
	}
	return -1
}

// truncateName clips a display name to MaxNameLen bytes.
func truncateName(name string) string {
	name = strings.TrimSpace(name)
	if len(name) > MaxNameLen {
		name = name[:MaxNameLen]
	}
	return name
}
