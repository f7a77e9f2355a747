package stream

import (
	"io"
	"strconv"

	"github.com/clockworkengineer/bencode/ir"
)

// Encoder provides explicit stack management for streaming bencode
// encoding. Every call is checked against the structure written so far, so
// a sequence of calls that succeeds always produces well-formed output.
type Encoder struct {
	writer  io.Writer
	state   *State
	offset  int64
	opts    *streamOpts
	scratch []byte
}

// NewEncoder creates a new Encoder writing to w.
func NewEncoder(w io.Writer, opts ...StreamOption) *Encoder {
	streamOpts := &streamOpts{}
	for _, opt := range opts {
		opt(streamOpts)
	}
	return &Encoder{
		writer: w,
		state:  NewState(streamOpts.canonical),
		opts:   streamOpts,
	}
}

// Depth returns the current nesting depth (0 = top level).
func (e *Encoder) Depth() int {
	return e.state.Depth()
}

// CurrentPath returns the path of the next value.
func (e *Encoder) CurrentPath() string {
	return e.state.CurrentPath()
}

// IsInDict returns true if currently inside a dictionary.
func (e *Encoder) IsInDict() bool {
	return e.state.IsInDict()
}

// IsInList returns true if currently inside a list.
func (e *Encoder) IsInList() bool {
	return e.state.IsInList()
}

// Offset returns the byte offset in the output stream.
func (e *Encoder) Offset() int64 {
	return e.offset
}

// Done reports whether a complete top-level value has been written.
func (e *Encoder) Done() bool {
	return e.state.Done()
}

func (e *Encoder) process(ev *Event) error {
	if e.opts.multi && e.state.Done() {
		e.state.Reset()
	}
	return e.state.ProcessEvent(ev)
}

func (e *Encoder) writeBytes(d []byte) error {
	n, err := e.writer.Write(d)
	e.offset += int64(n)
	return err
}

// BeginDict begins a dictionary.
func (e *Encoder) BeginDict() error {
	if err := e.process(&Event{Type: EventBeginDict}); err != nil {
		return err
	}
	return e.writeBytes([]byte("d"))
}

// BeginList begins a list.
func (e *Encoder) BeginList() error {
	if err := e.process(&Event{Type: EventBeginList}); err != nil {
		return err
	}
	return e.writeBytes([]byte("l"))
}

// End closes the innermost open container.
func (e *Encoder) End() error {
	if err := e.process(&Event{Type: EventEnd}); err != nil {
		return err
	}
	return e.writeBytes([]byte("e"))
}

// WriteKey writes a dictionary key.
func (e *Encoder) WriteKey(k []byte) error {
	if err := e.process(&Event{Type: EventKey, Key: k}); err != nil {
		return err
	}
	return e.writeString(k)
}

func (e *Encoder) WriteKeyString(k string) error {
	return e.WriteKey([]byte(k))
}

// WriteInt writes an integer value.
func (e *Encoder) WriteInt(v int64) error {
	if err := e.process(&Event{Type: EventInt, Int: v}); err != nil {
		return err
	}
	e.scratch = append(e.scratch[:0], 'i')
	e.scratch = strconv.AppendInt(e.scratch, v, 10)
	e.scratch = append(e.scratch, 'e')
	return e.writeBytes(e.scratch)
}

// WriteBytes writes a byte string value.
func (e *Encoder) WriteBytes(v []byte) error {
	if err := e.process(&Event{Type: EventBytes, Bytes: v}); err != nil {
		return err
	}
	return e.writeString(v)
}

func (e *Encoder) WriteString(v string) error {
	return e.WriteBytes([]byte(v))
}

func (e *Encoder) writeString(v []byte) error {
	e.scratch = strconv.AppendInt(e.scratch[:0], int64(len(v)), 10)
	e.scratch = append(e.scratch, ':')
	if err := e.writeBytes(e.scratch); err != nil {
		return err
	}
	return e.writeBytes(v)
}

// WriteEvent writes a single event.
func (e *Encoder) WriteEvent(ev *Event) error {
	switch ev.Type {
	case EventBeginDict:
		return e.BeginDict()
	case EventBeginList:
		return e.BeginList()
	case EventEnd:
		return e.End()
	case EventKey:
		return e.WriteKey(ev.Key)
	case EventInt:
		return e.WriteInt(ev.Int)
	case EventBytes:
		return e.WriteBytes(ev.Bytes)
	}
	return &Error{Msg: "unknown event type " + ev.Type.String()}
}

// WriteNode writes a whole tree at the current position in stored
// dictionary order.
func (e *Encoder) WriteNode(n *ir.Node) error {
	events, err := NodeToEvents(n)
	if err != nil {
		return err
	}
	for i := range events {
		if err := e.WriteEvent(&events[i]); err != nil {
			return err
		}
	}
	return nil
}
