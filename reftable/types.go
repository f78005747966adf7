package reftable

// Handle is an opaque reference to a value in a table.
// Handle 0 is reserved and always invalid.
type Handle uint32

const (
	indexBits = 20
	indexMask = 1<<indexBits - 1
	genMask   = 1<<(32-indexBits) - 1
)

func makeHandle(index, gen uint32) Handle {
	return Handle((gen&genMask)<<indexBits | (index+1)&indexMask)
}

// index returns the slot index, or -1 for the reserved handle.
func (h Handle) index() int {
	return int(uint32(h)&indexMask) - 1
}

func (h Handle) generation() uint32 {
	return uint32(h) >> indexBits
}

// Kind labels a table in lifecycle events.
type Kind uint8

const (
	Local Kind = iota
	Global
)

func (k Kind) String() string {
	if k == Global {
		return "global"
	}
	return "local"
}

// EventType is a reference lifecycle notification.
type EventType uint8

const (
	EventCreated EventType = iota
	EventDeleted
)

// Event represents a reference lifecycle event.
type Event struct {
	Value  any
	Handle Handle
	Table  Kind
	Type   EventType
}

// Observer receives notifications about reference lifecycle events.
type Observer interface {
	OnRefEvent(Event)
}
