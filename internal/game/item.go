package game

// ItemType classifies room objects and held items.
type ItemType int

const (
	ItemNone ItemType = iota
	ItemRamChunk
	ItemIoToken
	ItemCpuSlice
	ItemJunkData
	ItemBabyDaemon
)

func (t ItemType) String() string {
	switch t {
	case ItemRamChunk:
		return "RAM chunk"
	case ItemIoToken:
		return "IO token"
	case ItemCpuSlice:
		return "CPU slice"
	case ItemJunkData:
		return "junk data"
	case ItemBabyDaemon:
		return "baby daemon"
	default:
		return "nothing"
	}
}

// IsFeed reports whether the monster will eat this.
func (t ItemType) IsFeed() bool {
	return t == ItemRamChunk || t == ItemIoToken || t == ItemCpuSlice
}

// IsJunk reports whether this counts against junk load.
func (t ItemType) IsJunk() bool {
	return t == ItemJunkData
}

// ItemFlags annotate an object instance rather than its type.
type ItemFlags uint8

const (
	// FlagIdentified is set once the item has been analyzed.
	FlagIdentified ItemFlags = 1 << iota
	// FlagMutated marks a disguised corrupt item. Cleared when analysis
	// resolves it to plain junk.
	FlagMutated
)

// Has reports whether all bits in mask are set.
func (f ItemFlags) Has(mask ItemFlags) bool {
	return f&mask == mask
}

// RoomObject is one slot of a room's object table. TTL counts remaining
// ticks; zero on an occupied slot means no decay.
type RoomObject struct {
	Type  ItemType
	TTL   int
	Flags ItemFlags
}

func (o *RoomObject) clear() {
	*o = RoomObject{}
}

// HeldItem is one inventory slot. Held items never decay.
type HeldItem struct {
	Type  ItemType
	Flags ItemFlags
}

func (it *HeldItem) clear() {
	*it = HeldItem{}
}
