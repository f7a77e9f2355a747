package stream

// Error represents a misuse of the event sequence, such as a key outside a
// dictionary. Malformed input is reported with ir.Error kinds instead.
type Error struct {
	Msg string
}

func (e *Error) Error() string {
	return e.Msg
}
