package game

import "strings"

// RoomId indexes the fixed room table.
type RoomId int

const (
	RoomNursery RoomId = iota
	RoomBuffet
	RoomFields
	RoomCount
)

// NoRoom marks a missing exit.
const NoRoom RoomId = -1

// Direction is a compass exit index.
type Direction int

const (
	North Direction = iota
	East
	South
	West
	DirCount
)

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "???"
	}
}

// ParseDirection accepts a full direction name or its first letter,
// case-insensitively. Returns false for anything else.
func ParseDirection(token string) (Direction, bool) {
	switch strings.ToLower(token) {
	case "n", "north":
		return North, true
	case "e", "east":
		return East, true
	case "s", "south":
		return South, true
	case "w", "west":
		return West, true
	default:
		return 0, false
	}
}

// Room is one entry of the static world map. The topology never changes at
// runtime; rooms differ only in their object tables and membership sets.
type Room struct {
	Id          RoomId
	Name        string
	Description string
	Exits       [DirCount]RoomId
}

// Exit returns the destination through d, or NoRoom.
func (r *Room) Exit(d Direction) RoomId {
	if d < 0 || d >= DirCount {
		return NoRoom
	}
	return r.Exits[d]
}

var rooms = [RoomCount]Room{
	RoomNursery: {
		Id:          RoomNursery,
		Name:        "/proc/nursery",
		Description: "Friendly Monster naps amid warm kernel blankets.",
		Exits:       [DirCount]RoomId{NoRoom, RoomBuffet, NoRoom, RoomFields},
	},
	RoomBuffet: {
		Id:          RoomBuffet,
		Name:        "/tmp/buffet",
		Description: "Resource carts roll in and out, piled high with tasty chunks.",
		Exits:       [DirCount]RoomId{NoRoom, NoRoom, NoRoom, RoomNursery},
	},
	RoomFields: {
		Id:          RoomFields,
		Name:        "/dev/null/fields",
		Description: "Windy plains sweep away unwanted bits and lost daemons.",
		Exits:       [DirCount]RoomId{NoRoom, RoomNursery, NoRoom, NoRoom},
	},
}

// GetRoom returns the static room record for id.
func GetRoom(id RoomId) *Room {
	return &rooms[id]
}

// ValidRoom reports whether id indexes the room table.
func ValidRoom(id RoomId) bool {
	return id >= 0 && id < RoomCount
}

// ParseRoomName resolves a room by its full path name, case-insensitively.
func ParseRoomName(name string) (RoomId, bool) {
	for i := range rooms {
		if strings.EqualFold(rooms[i].Name, name) {
			return rooms[i].Id, true
		}
	}
	return NoRoom, false
}
