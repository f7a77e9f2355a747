package stream

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strconv"

	"github.com/clockworkengineer/bencode/debug"
	"github.com/clockworkengineer/bencode/ir"
	"github.com/clockworkengineer/bencode/memory"
	"github.com/clockworkengineer/bencode/parse"
)

// Decoder reads bencode from an io.Reader as a sequence of structural
// events without holding the document in memory.
//
// Configuration is shared with the parse package: MaxDepth bounds nesting,
// EnforceCanonical checks key order, MaxInputLength caps the bytes read and
// AllowTrailingData lets further top-level values follow the first. A
// memory limit bounds the size of any single byte string.
type Decoder struct {
	r       *bufio.Reader
	cfg     parse.Config
	state   *State
	tracker *memory.Tracker
	scratch *memory.Buffer
	offset  int64
	charged int
	started bool
}

// NewDecoder creates a new Decoder reading from r.
func NewDecoder(r io.Reader, opts ...parse.ParseOption) *Decoder {
	cfg := parse.DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = parse.DefaultMaxDepth
	}
	tracker := cfg.Tracker
	if tracker == nil && cfg.MemoryLimit > 0 {
		tracker = memory.NewTracker(cfg.MemoryLimit)
	}
	return &Decoder{
		r:       bufio.NewReader(r),
		cfg:     cfg,
		state:   NewState(cfg.EnforceCanonical),
		tracker: tracker,
		// the longest int64 is 20 characters with its sign
		scratch: memory.NewBuffer(20),
	}
}

// Depth returns the current nesting depth (0 = top level).
func (d *Decoder) Depth() int {
	return d.state.Depth()
}

// CurrentPath returns the path of the next value.
func (d *Decoder) CurrentPath() string {
	return d.state.CurrentPath()
}

// Offset returns the number of input bytes consumed.
func (d *Decoder) Offset() int64 {
	return d.offset
}

func (d *Decoder) readByte() (byte, error) {
	if d.cfg.MaxInputLength > 0 && d.offset >= int64(d.cfg.MaxInputLength) {
		if _, err := d.r.Peek(1); err == nil {
			return 0, ir.ErrInputTooLong
		}
	}
	c, err := d.r.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, ir.ErrUnexpectedEOF
		}
		return 0, err
	}
	d.offset++
	return c, nil
}

// ReadEvent reads the next structural event from the stream.
// Returns io.EOF when the stream ends cleanly between top-level values.
func (d *Decoder) ReadEvent() (*Event, error) {
	if d.charged > 0 {
		d.tracker.Free(d.charged)
		d.charged = 0
	}
	ev, err := d.readEvent()
	if err != nil {
		if debug.Stream() && err != io.EOF {
			debug.Logger().Debug("stream decode", slog.Int64("offset", d.offset),
				slog.String("path", d.state.CurrentPath()), slog.Any("error", err))
		}
		return nil, err
	}
	if err := d.state.ProcessEvent(ev); err != nil {
		return nil, err
	}
	return ev, nil
}

func (d *Decoder) readEvent() (*Event, error) {
	if d.state.Done() || !d.started {
		if _, err := d.r.Peek(1); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, io.EOF
			}
			return nil, err
		}
		if d.state.Done() {
			if !d.cfg.AllowTrailingData {
				return nil, ir.ErrTrailingData
			}
			d.state.Reset()
		}
		d.started = true
	}
	c, err := d.readByte()
	if err != nil {
		return nil, err
	}
	if d.state.AwaitingKey() {
		switch {
		case c == 'e':
			return &Event{Type: EventEnd}, nil
		case c >= '0' && c <= '9':
			k, err := d.readBytes(c)
			if err != nil {
				return nil, err
			}
			return &Event{Type: EventKey, Key: k}, nil
		}
		return nil, ir.ErrInvalidFormat
	}
	switch {
	case c == 'i':
		v, err := d.readInt()
		if err != nil {
			return nil, err
		}
		return &Event{Type: EventInt, Int: v}, nil
	case c >= '0' && c <= '9':
		b, err := d.readBytes(c)
		if err != nil {
			return nil, err
		}
		return &Event{Type: EventBytes, Bytes: b}, nil
	case c == 'l' || c == 'd':
		if d.state.Depth()+1 > d.cfg.MaxDepth {
			return nil, ir.ErrDepthExceeded
		}
		if c == 'l' {
			return &Event{Type: EventBeginList}, nil
		}
		return &Event{Type: EventBeginDict}, nil
	case c == 'e' && d.state.IsInList():
		return &Event{Type: EventEnd}, nil
	}
	return nil, ir.ErrInvalidFormat
}

// readInt reads the digits of an integer after its 'i'.
func (d *Decoder) readInt() (int64, error) {
	d.scratch.Reset()
	for {
		c, err := d.readByte()
		if err != nil {
			return 0, err
		}
		if c == 'e' {
			break
		}
		digits := d.scratch.Bytes()
		switch {
		case c == '-' && len(digits) == 0:
		case c >= '0' && c <= '9':
			if len(digits) > 0 && bytes.Equal(bytes.TrimPrefix(digits, []byte("-")), []byte("0")) {
				return 0, ir.ErrInvalidDigit
			}
		default:
			return 0, ir.ErrInvalidDigit
		}
		if err := d.scratch.Push(c); err != nil {
			return 0, ir.ErrIntegerOverflow
		}
	}
	digits := d.scratch.Bytes()
	if len(digits) == 0 || string(digits) == "-" || string(digits) == "-0" {
		return 0, ir.ErrInvalidDigit
	}
	v, err := strconv.ParseInt(string(digits), 10, 64)
	if err != nil {
		return 0, ir.ErrIntegerOverflow
	}
	return v, nil
}

// readBytes reads a length-prefixed byte string whose first length digit is
// first.
func (d *Decoder) readBytes(first byte) ([]byte, error) {
	n := int64(first - '0')
	for {
		c, err := d.readByte()
		if err != nil {
			return nil, err
		}
		if c == ':' {
			break
		}
		if c < '0' || c > '9' || n == 0 && first == '0' {
			return nil, ir.ErrInvalidDigit
		}
		if n > (1<<62)/10 {
			return nil, ir.ErrTruncatedString
		}
		n = n*10 + int64(c-'0')
	}
	if d.cfg.MaxInputLength > 0 && d.offset+n > int64(d.cfg.MaxInputLength) {
		return nil, ir.ErrInputTooLong
	}
	if d.tracker != nil {
		if n > int64(int(^uint(0)>>1)) {
			return nil, ir.ErrMemoryBoundsExceeded
		}
		if err := d.tracker.Alloc(int(n)); err != nil {
			return nil, err
		}
		d.charged = int(n)
	}
	buf := bytes.NewBuffer(make([]byte, 0, min(n, 64<<10)))
	m, err := io.CopyN(buf, d.r, n)
	d.offset += m
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ir.ErrTruncatedString
		}
		return nil, err
	}
	return buf.Bytes(), nil
}

// ReadNode reads events until one complete value has been read and
// returns it as a tree.
func (d *Decoder) ReadNode() (*ir.Node, error) {
	b := &nodeBuilder{}
	for {
		ev, err := d.ReadEvent()
		if err != nil {
			if err == io.EOF && b.started() {
				return nil, ir.ErrUnexpectedEOF
			}
			return nil, err
		}
		if err := b.add(ev); err != nil {
			return nil, err
		}
		if b.root != nil {
			return b.root, nil
		}
	}
}
