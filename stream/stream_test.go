package stream

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/clockworkengineer/bencode/encode"
	"github.com/clockworkengineer/bencode/ir"
	"github.com/clockworkengineer/bencode/parse"

	"github.com/google/go-cmp/cmp"
)

func readAll(t *testing.T, in string, opts ...parse.ParseOption) ([]Event, error) {
	t.Helper()
	dec := NewDecoder(strings.NewReader(in), opts...)
	var events []Event
	for {
		ev, err := dec.ReadEvent()
		if err == io.EOF {
			return events, nil
		}
		if err != nil {
			return events, err
		}
		events = append(events, *ev)
	}
}

func TestDecoderEvents(t *testing.T) {
	events, err := readAll(t, `d3:foo3:bar4:spamli1ei-2eee`)
	if err != nil {
		t.Fatal(err)
	}
	want := []Event{
		{Type: EventBeginDict},
		{Type: EventKey, Key: []byte("foo")},
		{Type: EventBytes, Bytes: []byte("bar")},
		{Type: EventKey, Key: []byte("spam")},
		{Type: EventBeginList},
		{Type: EventInt, Int: 1},
		{Type: EventInt, Int: -2},
		{Type: EventEnd},
		{Type: EventEnd},
	}
	if diff := cmp.Diff(want, events); diff != "" {
		t.Errorf("events (-want +got):\n%s", diff)
	}
}

func TestDecoderMatchesParse(t *testing.T) {
	inputs := []string{
		`i0e`, `0:`, `le`, `de`,
		`d3:foo3:bar4:spamli1ei2ei3eee`,
		`l4:spamd1:ali1eeee`,
		`d1:ad1:bd1:cleeee`,
	}
	for _, in := range inputs {
		want, err := parse.ParseString(in)
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		got, err := NewDecoder(strings.NewReader(in)).ReadNode()
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		if !ir.Equal(want, got) {
			t.Errorf("%q: stream %v, parse %v", in, got, want)
		}
	}
}

func TestDecoderErrors(t *testing.T) {
	tests := []struct {
		in   string
		e    error
		opts []parse.ParseOption
	}{
		{in: `i-0e`, e: ir.ErrInvalidDigit},
		{in: `i01e`, e: ir.ErrInvalidDigit},
		{in: `ie`, e: ir.ErrInvalidDigit},
		{in: `i9223372036854775808e`, e: ir.ErrIntegerOverflow},
		{in: `i123456789012345678901e`, e: ir.ErrIntegerOverflow},
		{in: `5:spam`, e: ir.ErrTruncatedString},
		{in: `01:a`, e: ir.ErrInvalidDigit},
		{in: `li1e`, e: ir.ErrUnexpectedEOF},
		{in: `d3:fooe`, e: ir.ErrInvalidFormat},
		{in: `di1ee`, e: ir.ErrInvalidFormat},
		{in: `d1:b0:1:a0:e`, e: ir.ErrNonCanonicalData},
		{in: `i1ei2e`, e: ir.ErrTrailingData},
		{in: `lllleeee`, e: ir.ErrDepthExceeded, opts: []parse.ParseOption{parse.MaxDepth(3)}},
		{in: `10:0123456789`, e: ir.ErrInputTooLong, opts: []parse.ParseOption{parse.MaxInputLength(8)}},
		{in: `10:0123456789`, e: ir.ErrMemoryBoundsExceeded, opts: []parse.ParseOption{parse.MemoryLimit(8)}},
	}
	for _, tt := range tests {
		_, err := readAll(t, tt.in, tt.opts...)
		if err != tt.e {
			t.Errorf("%q: got %v want %v", tt.in, err, tt.e)
		}
	}
	if _, err := readAll(t, `d1:b0:1:a0:e`, parse.Lenient()); err != nil {
		t.Errorf("lenient: %v", err)
	}
}

func TestDecoderMultiple(t *testing.T) {
	dec := NewDecoder(strings.NewReader(`i1e4:spamle`), parse.AllowTrailing(true))
	var got []string
	for {
		n, err := dec.ReadNode()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, n.String())
	}
	if diff := cmp.Diff([]string{`1`, `"spam"`, `[]`}, got); diff != "" {
		t.Errorf("documents (-want +got):\n%s", diff)
	}
	if dec.Offset() != 11 {
		t.Errorf("offset %d", dec.Offset())
	}
}

func TestDecoderPath(t *testing.T) {
	dec := NewDecoder(strings.NewReader(`d4:infod5:filesli1ei02eeee`))
	var err error
	for err == nil {
		_, err = dec.ReadEvent()
	}
	if err != ir.ErrInvalidDigit {
		t.Fatalf("got %v", err)
	}
	if got := dec.CurrentPath(); got != "info.files[1]" {
		t.Errorf("path %q", got)
	}
}

func TestEncoder(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	enc := NewEncoder(buf, WithCanonicalKeys())
	steps := []func() error{
		enc.BeginDict,
		func() error { return enc.WriteKeyString("foo") },
		func() error { return enc.WriteString("bar") },
		func() error { return enc.WriteKeyString("spam") },
		enc.BeginList,
		func() error { return enc.WriteInt(1) },
		func() error { return enc.WriteInt(2) },
		func() error { return enc.WriteInt(3) },
		enc.End,
		enc.End,
	}
	for i, step := range steps {
		if err := step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
	if got := buf.String(); got != `d3:foo3:bar4:spamli1ei2ei3eee` {
		t.Errorf("got %q", got)
	}
	if enc.Offset() != int64(buf.Len()) || !enc.Done() {
		t.Errorf("offset %d done %v", enc.Offset(), enc.Done())
	}
	if err := enc.WriteInt(4); err == nil {
		t.Errorf("value after complete document accepted")
	}
}

func TestEncoderMisuse(t *testing.T) {
	var se *Error
	enc := NewEncoder(io.Discard)
	if err := enc.WriteKeyString("k"); !errors.As(err, &se) {
		t.Errorf("key at top level: %v", err)
	}
	if err := enc.End(); !errors.As(err, &se) {
		t.Errorf("end at top level: %v", err)
	}
	_ = enc.BeginDict()
	if err := enc.WriteInt(1); !errors.As(err, &se) {
		t.Errorf("value without key: %v", err)
	}
	_ = enc.WriteKeyString("b")
	if err := enc.End(); !errors.As(err, &se) {
		t.Errorf("end after key: %v", err)
	}
	_ = enc.WriteInt(1)
	enc2 := NewEncoder(io.Discard, WithCanonicalKeys())
	_ = enc2.BeginDict()
	_ = enc2.WriteKeyString("b")
	_ = enc2.WriteInt(1)
	if err := enc2.WriteKeyString("a"); err != ir.ErrNonCanonicalData {
		t.Errorf("unsorted key: %v", err)
	}
}

func TestRoundTripEvents(t *testing.T) {
	in := `d1:ad1:bl0:i-1eee1:ci7ee`
	n, err := parse.ParseString(in)
	if err != nil {
		t.Fatal(err)
	}
	events, err := NodeToEvents(n)
	if err != nil {
		t.Fatal(err)
	}
	back, err := EventsToNode(events)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(n, back) {
		t.Errorf("events round trip: %v vs %v", n, back)
	}
	buf := bytes.NewBuffer(nil)
	if err := NewEncoder(buf).WriteNode(n); err != nil {
		t.Fatal(err)
	}
	if buf.String() != encode.MustString(n) {
		t.Errorf("stream %q, encode %q", buf.String(), encode.MustString(n))
	}
	if _, err := EventsToNode(events[:len(events)-1]); err != ir.ErrUnexpectedEOF {
		t.Errorf("truncated events: %v", err)
	}
}

func TestEventTypeText(t *testing.T) {
	for _, et := range []EventType{EventBeginDict, EventBeginList, EventEnd, EventKey, EventInt, EventBytes} {
		d, _ := et.MarshalText()
		var back EventType
		if err := back.UnmarshalText(d); err != nil || back != et {
			t.Errorf("%s: %v %v", et, back, err)
		}
	}
}
