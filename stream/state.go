package stream

import (
	"bytes"
	"strconv"

	"github.com/clockworkengineer/bencode/ir"
)

// State provides minimal stack/state/path management.
// It validates an event sequence and tracks where in the document the next
// event lands; it does no I/O.
type State struct {
	stack     []item
	canonical bool
	done      bool
}

type item struct {
	dict    bool
	n       int
	hasKey  bool
	key     []byte
	lastKey []byte
}

// NewState creates a new State. With canonical set, dictionary keys must
// arrive in strictly increasing order.
func NewState(canonical bool) *State {
	return &State{canonical: canonical}
}

func (s *State) pop() {
	n := len(s.stack)
	s.stack = s.stack[:n-1]
}

func (s *State) current() *item {
	n := len(s.stack)
	return &s.stack[n-1]
}

// value records a completed or opened value at the current position.
func (s *State) value() error {
	if len(s.stack) == 0 {
		if s.done {
			return &Error{Msg: "value after complete document"}
		}
		return nil
	}
	cur := s.current()
	if cur.dict && !cur.hasKey {
		return &Error{Msg: "dictionary value without key at " + s.CurrentPath()}
	}
	cur.n++
	cur.hasKey = false
	return nil
}

// ProcessEvent processes an event and updates state/path tracking.
// Call this for each event in order.
func (s *State) ProcessEvent(event *Event) error {
	switch event.Type {
	case EventBeginDict, EventBeginList:
		if err := s.value(); err != nil {
			return err
		}
		s.stack = append(s.stack, item{dict: event.Type == EventBeginDict})

	case EventEnd:
		if len(s.stack) == 0 {
			return &Error{Msg: "end outside container"}
		}
		if s.current().hasKey {
			return &Error{Msg: "key without value at " + s.CurrentPath()}
		}
		s.pop()
		if len(s.stack) == 0 {
			s.done = true
		}

	case EventInt, EventBytes:
		if err := s.value(); err != nil {
			return err
		}
		if len(s.stack) == 0 {
			s.done = true
		}

	case EventKey:
		if len(s.stack) == 0 || !s.current().dict {
			return &Error{Msg: "key not in dictionary at " + s.CurrentPath()}
		}
		cur := s.current()
		if cur.hasKey {
			return &Error{Msg: "key after key at " + s.CurrentPath()}
		}
		if s.canonical && cur.n > 0 && bytes.Compare(cur.lastKey, event.Key) >= 0 {
			return ir.ErrNonCanonicalData
		}
		cur.hasKey = true
		cur.key = event.Key
		cur.lastKey = event.Key
	}
	return nil
}

// Depth returns the current nesting depth (0 = top level).
func (s *State) Depth() int {
	return len(s.stack)
}

// Done reports whether a complete top-level value has been processed.
func (s *State) Done() bool {
	return s.done && len(s.stack) == 0
}

// Reset clears the state so that another document may follow.
func (s *State) Reset() {
	s.stack = s.stack[:0]
	s.done = false
}

// CurrentPath returns the path of the next value, e.g. "", "info.files[2]".
// Keys that are not plain text are shown quoted.
func (s *State) CurrentPath() string {
	res := ""
	for i := range s.stack {
		it := &s.stack[i]
		top := i == len(s.stack)-1
		if it.dict {
			if top && !it.hasKey {
				continue
			}
			if i > 0 {
				res += "."
			}
			res += ir.PathKey(it.key)
			continue
		}
		idx := it.n
		if !top {
			idx--
		}
		res += "[" + strconv.Itoa(idx) + "]"
	}
	return res
}

// IsInDict returns true if currently inside a dictionary.
func (s *State) IsInDict() bool {
	return len(s.stack) > 0 && s.current().dict
}

// IsInList returns true if currently inside a list.
func (s *State) IsInList() bool {
	return len(s.stack) > 0 && !s.current().dict
}

// CurrentKey returns the pending dictionary key, if any.
func (s *State) CurrentKey() []byte {
	if !s.IsInDict() || !s.current().hasKey {
		return nil
	}
	return s.current().key
}

// CurrentIndex returns the index the next list item will take.
func (s *State) CurrentIndex() int {
	if !s.IsInList() {
		return -1
	}
	return s.current().n
}

// AwaitingKey reports whether the next event must be a key or an end.
func (s *State) AwaitingKey() bool {
	return s.IsInDict() && !s.current().hasKey
}
