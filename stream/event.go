package stream

import "fmt"

// Event represents a structural event from the decoder.
// Events correspond to the encoder's API methods, providing a symmetric
// encode/decode interface.
type Event struct {
	Type EventType

	// Value fields (only one is set based on Type)
	Key   []byte
	Int   int64
	Bytes []byte
}

// IsValueStart returns true if this event starts a value (as opposed to a
// key or end marker).
func (e *Event) IsValueStart() bool {
	return e.Type == EventBeginList ||
		e.Type == EventBeginDict ||
		e.Type == EventInt ||
		e.Type == EventBytes
}

// EventType represents the type of a structural event.
type EventType int

const (
	EventBeginDict EventType = iota
	EventBeginList
	EventEnd
	EventKey
	EventInt
	EventBytes
)

func (t EventType) String() string {
	switch t {
	case EventBeginDict:
		return "BeginDict"
	case EventBeginList:
		return "BeginList"
	case EventEnd:
		return "End"
	case EventKey:
		return "Key"
	case EventInt:
		return "Int"
	case EventBytes:
		return "Bytes"
	default:
		return "Unknown"
	}
}

func (t EventType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *EventType) UnmarshalText(d []byte) error {
	k := string(d)
	pt, ok := map[string]EventType{
		"BeginDict": EventBeginDict,
		"BeginList": EventBeginList,
		"End":       EventEnd,
		"Key":       EventKey,
		"Int":       EventInt,
		"Bytes":     EventBytes,
	}[k]
	if ok {
		*t = pt
		return nil
	}
	return fmt.Errorf("unknown type %q", k)
}
