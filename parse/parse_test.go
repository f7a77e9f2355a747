package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/clockworkengineer/bencode/ir"
	"github.com/clockworkengineer/bencode/memory"
	"github.com/google/go-cmp/cmp"
)

type parseTest struct {
	in   string
	e    error
	opts []ParseOption
}

var strategies = []Strategy{Recursive, Iterative}

// parseAll runs every tree-building path and checks they agree.
func parseAll(t *testing.T, in string, opts ...ParseOption) (*ir.Node, error) {
	t.Helper()
	var (
		first    *ir.Node
		firstErr error
	)
	for i, s := range strategies {
		n, err := Parse([]byte(in), append(opts, WithStrategy(s))...)
		if i == 0 {
			first, firstErr = n, err
			continue
		}
		if err != firstErr {
			t.Errorf("%q: %s error %v, recursive error %v", in, s, err, firstErr)
		}
		if err == nil && !ir.Equal(n, first) {
			t.Errorf("%q: %s tree %v, recursive tree %v", in, s, n, first)
		}
	}
	ref, err := ParseBorrowed([]byte(in), opts...)
	if err != firstErr {
		t.Errorf("%q: borrowed error %v, recursive error %v", in, err, firstErr)
	}
	if err == nil && !ir.Equal(ref.Own(), first) {
		t.Errorf("%q: borrowed tree %v, recursive tree %v", in, ref.Own(), first)
	}
	if _, err := Validate([]byte(in), opts...); err != firstErr {
		t.Errorf("%q: validate error %v, recursive error %v", in, err, firstErr)
	}
	return first, firstErr
}

func TestParseOK(t *testing.T) {
	pts := []parseTest{
		{in: `i0e`},
		{in: `i42e`},
		{in: `i-42e`},
		{in: `i9223372036854775807e`},
		{in: `i-9223372036854775808e`},
		{in: `0:`},
		{in: `4:spam`},
		{in: "3:\x00\xff\n"},
		{in: `le`},
		{in: `de`},
		{in: `li1ei2ei3ee`},
		{in: `l4:spami7ee`},
		{in: `d3:foo3:bar4:spamli1ei2ei3eee`},
		{in: `d1:ad1:bl1:cee1:bi0ee`},
		{in: `d1:b0:1:a0:e`, opts: []ParseOption{Lenient()}},
		{in: `d1:a0:1:a0:e`, opts: []ParseOption{Lenient()}},
		{in: `i1ejunk`, opts: []ParseOption{AllowTrailing(true)}},
	}
	for _, pt := range pts {
		if _, err := parseAll(t, pt.in, pt.opts...); err != nil {
			t.Errorf("%q: %v", pt.in, err)
		}
	}
}

func TestParseErrors(t *testing.T) {
	pts := []parseTest{
		{in: ``, e: ir.ErrUnexpectedEOF},
		{in: `i`, e: ir.ErrUnexpectedEOF},
		{in: `i12`, e: ir.ErrUnexpectedEOF},
		{in: `ie`, e: ir.ErrInvalidDigit},
		{in: `i-e`, e: ir.ErrInvalidDigit},
		{in: `i-0e`, e: ir.ErrInvalidDigit},
		{in: `i01e`, e: ir.ErrInvalidDigit},
		{in: `i-01e`, e: ir.ErrInvalidDigit},
		{in: `i1.5e`, e: ir.ErrInvalidDigit},
		{in: `i9223372036854775808e`, e: ir.ErrIntegerOverflow},
		{in: `i-9223372036854775809e`, e: ir.ErrIntegerOverflow},
		{in: `5:spam`, e: ir.ErrTruncatedString},
		{in: `99999999999999999999999:x`, e: ir.ErrTruncatedString},
		{in: `01:a`, e: ir.ErrInvalidDigit},
		{in: `4spam`, e: ir.ErrInvalidDigit},
		{in: `4`, e: ir.ErrUnexpectedEOF},
		{in: `x`, e: ir.ErrInvalidFormat},
		{in: `e`, e: ir.ErrInvalidFormat},
		{in: `l`, e: ir.ErrUnexpectedEOF},
		{in: `li1e`, e: ir.ErrUnexpectedEOF},
		{in: `lllll`, e: ir.ErrUnexpectedEOF},
		{in: `llllllllll`, e: ir.ErrUnexpectedEOF},
		{in: `d1:ad1:ad1:a`, e: ir.ErrUnexpectedEOF},
		{in: `d`, e: ir.ErrUnexpectedEOF},
		{in: `di1ei2ee`, e: ir.ErrInvalidFormat},
		{in: `d3:fooe`, e: ir.ErrInvalidFormat},
		{in: `d3:foo`, e: ir.ErrUnexpectedEOF},
		{in: `d1:b0:1:a0:e`, e: ir.ErrNonCanonicalData},
		{in: `d1:a0:1:a0:e`, e: ir.ErrNonCanonicalData},
		{in: `i1ei2e`, e: ir.ErrTrailingData},
		{in: `lee`, e: ir.ErrTrailingData},
		{in: `4:spam`, e: ir.ErrInputTooLong, opts: []ParseOption{MaxInputLength(5)}},
	}
	for _, pt := range pts {
		_, err := parseAll(t, pt.in, pt.opts...)
		if err != pt.e {
			t.Errorf("%q: got %v, want %v", pt.in, err, pt.e)
		}
	}
}

func TestDepthBound(t *testing.T) {
	const depth = 8
	nest := func(n int) string {
		return strings.Repeat("l", n) + strings.Repeat("e", n)
	}
	if _, err := parseAll(t, nest(depth), MaxDepth(depth)); err != nil {
		t.Errorf("depth %d refused: %v", depth, err)
	}
	if _, err := parseAll(t, nest(depth+1), MaxDepth(depth)); err != ir.ErrDepthExceeded {
		t.Errorf("depth %d: got %v", depth+1, err)
	}
	dicts := strings.Repeat("d1:a", depth) + "i0e" + strings.Repeat("e", depth)
	if _, err := parseAll(t, dicts, MaxDepth(depth-1)); err != ir.ErrDepthExceeded {
		t.Errorf("nested dicts: got %v", err)
	}
}

func TestDeepIterative(t *testing.T) {
	const depth = 100000
	in := strings.Repeat("l", depth) + strings.Repeat("e", depth)
	n, err := ParseIterative([]byte(in), MaxDepth(depth))
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < depth; i++ {
		n = n.Values[0]
	}
	if n.Len() != 0 {
		t.Errorf("innermost list not empty")
	}
}

func TestCanonicalOrdering(t *testing.T) {
	in := `d1:b0:1:a0:e`
	if _, err := ParseString(in); err != ir.ErrNonCanonicalData {
		t.Errorf("strict: %v", err)
	}
	n, err := ParseString(in, Lenient())
	if err != nil {
		t.Fatalf("lenient: %v", err)
	}
	if got := string(n.Fields[0].Bytes) + string(n.Fields[1].Bytes); got != "ba" {
		t.Errorf("lenient parse reordered keys: %s", got)
	}
}

func TestDuplicateKeysRetained(t *testing.T) {
	n, err := ParseString(`d1:ai1e1:ai2ee`, Lenient())
	if err != nil {
		t.Fatal(err)
	}
	if n.Len() != 2 {
		t.Fatalf("duplicates dropped: %v", n)
	}
	if v, _ := n.RequiredInt("a"); v != 2 {
		t.Errorf("lookup with duplicates: %d", v)
	}
}

func TestExample(t *testing.T) {
	n, err := ParseString(`d3:foo3:bar4:spamli1ei2ei3eee`)
	if err != nil {
		t.Fatal(err)
	}
	want := ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("foo"), Val: ir.FromString("bar")},
		{Key: ir.FromString("spam"), Val: ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2), ir.FromInt(3)})},
	})
	if diff := cmp.Diff(want, n); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestMemoryBound(t *testing.T) {
	in := "l" + strings.Repeat("i1e", 100) + "e"
	for _, s := range strategies {
		_, err := Parse([]byte(in), WithStrategy(s), MemoryLimit(256))
		if err != ir.ErrMemoryBoundsExceeded {
			t.Errorf("%s: got %v", s, err)
		}
	}
	if _, err := ParseBorrowed([]byte(in), MemoryLimit(256)); err != ir.ErrMemoryBoundsExceeded {
		t.Errorf("borrowed: got %v", err)
	}
	if _, err := ParseString(in, MemoryLimit(1<<20)); err != nil {
		t.Errorf("ample bound: %v", err)
	}
}

func TestSharedTracker(t *testing.T) {
	tr := memory.NewTracker(0)
	if _, err := ParseString(`l4:spame`, WithTracker(tr)); err != nil {
		t.Fatal(err)
	}
	first := tr.Current()
	if first < int64(2*memory.NodeSize+4) {
		t.Errorf("tracker under-charged: %d", first)
	}
	if _, err := ParseString(`l4:spame`, WithTracker(tr)); err != nil {
		t.Fatal(err)
	}
	if tr.Current() != 2*first {
		t.Errorf("tracker not cumulative: %d after %d", tr.Current(), first)
	}
}

func TestArenaBacked(t *testing.T) {
	arena := memory.NewArena(64, 1, nil)
	nodes := memory.NewSlab[ir.Node](16, 1, nil)
	in := []byte(`d3:foo3:bar4:spamli1ei2ei3eee`)
	n, err := Parse(in, WithArena(arena), WithNodes(nodes))
	if err != nil {
		t.Fatal(err)
	}
	in[3] = 'X'
	if _, err := n.RequiredString("foo"); err != nil {
		t.Errorf("arena copy aliases input: %v", err)
	}
	if nodes.Len() != 8 {
		t.Errorf("slab handed out %d nodes, want 8", nodes.Len())
	}
	if arena.Used() != len("foobarspam") {
		t.Errorf("arena used %d", arena.Used())
	}
	big := "l" + strings.Repeat("i1e", 16) + "e"
	nodes.Reset()
	if _, err := ParseString(big, WithNodes(nodes)); !errors.Is(err, ir.ErrOutOfMemory) {
		t.Errorf("exhausted slab: %v", err)
	}
}

func TestArenaMemoryBound(t *testing.T) {
	in := "l" + strings.Repeat("1000:"+strings.Repeat("x", 1000), 4) + "e"
	for _, s := range strategies {
		arena := memory.NewArena(1<<16, 1, nil)
		_, err := Parse([]byte(in), WithStrategy(s), WithArena(arena), MemoryLimit(1024))
		if err != ir.ErrMemoryBoundsExceeded {
			t.Errorf("%s: got %v with arena used %d", s, err, arena.Used())
		}
		nodes := memory.NewSlab[ir.Node](64, 1, nil)
		_, err = Parse([]byte(`li1ei2ei3ee`), WithStrategy(s), WithNodes(nodes), MemoryLimit(int64(memory.NodeSize)))
		if err != ir.ErrMemoryBoundsExceeded {
			t.Errorf("%s: slab nodes: got %v", s, err)
		}
	}

	tr := memory.NewTracker(0)
	arena := memory.NewArena(1<<12, 1, tr)
	if _, err := ParseString(`l4:spame`, WithArena(arena), WithTracker(tr)); err != nil {
		t.Fatal(err)
	}
	want := int64(1<<12 + 2*memory.NodeSize + memory.SlotSize)
	if tr.Current() != want {
		t.Errorf("shared tracker charged %d, want %d", tr.Current(), want)
	}
}

func TestBorrowedAliasesInput(t *testing.T) {
	in := []byte(`d3:key5:valuee`)
	r, err := ParseBorrowed(in)
	if err != nil {
		t.Fatal(err)
	}
	in[8] = 'V'
	if v, _ := r.RequiredBytes("key"); string(v) != "Value" {
		t.Errorf("borrowed value does not alias input: %q", v)
	}
}

func TestValidateStats(t *testing.T) {
	st, err := Validate([]byte(`d3:foo3:bar4:spamli1ei2ei3eee`))
	if err != nil {
		t.Fatal(err)
	}
	want := Stats{
		Nodes: 6, Containers: 2, Integers: 3, Strings: 1,
		Bytes: 10, MaxDepth: 2, Children: 5, Length: 29,
	}
	if diff := cmp.Diff(want, st); diff != "" {
		t.Errorf("stats (-want +got):\n%s", diff)
	}
	if st.Estimate() <= st.Bytes {
		t.Errorf("estimate %d", st.Estimate())
	}
}

func TestDecoderOffset(t *testing.T) {
	dec := NewDecoder()
	if _, err := dec.Decode([]byte(`li1ei01ee`)); err != ir.ErrInvalidDigit {
		t.Fatalf("got %v", err)
	}
	if dec.Offset() != 6 {
		t.Errorf("offset %d, want 6", dec.Offset())
	}
	if _, err := dec.Decode([]byte(`i1e`)); err != nil || dec.Offset() != 3 {
		t.Errorf("success offset %d %v", dec.Offset(), err)
	}
}

func TestStrategyText(t *testing.T) {
	var s Strategy
	if err := s.UnmarshalText([]byte("iterative")); err != nil || s != Iterative {
		t.Errorf("unmarshal: %v %v", s, err)
	}
	if err := s.UnmarshalText([]byte("sideways")); err == nil {
		t.Errorf("unknown strategy accepted")
	}
}
