package bencode

import (
	"testing"

	"github.com/clockworkengineer/bencode/encode"
	"github.com/clockworkengineer/bencode/parse"
)

type matchTest struct {
	in    string
	match string
	res   bool
	trim  string
}

var matchTests = []matchTest{
	{in: `i1e`, match: `i1e`, res: true},
	{in: `i0e`, match: `i1e`, res: false},
	{in: `li1ee`, match: `li1ee`, res: true},
	{in: `le`, match: `le`, res: true},
	{in: `li1ee`, match: `li2ee`, res: false},
	{in: `li1ei2ee`, match: `li1ee`, res: false},
	{in: `4:spam`, match: `4:spam`, res: true},
	{in: `4:spam`, match: `i4e`, res: false},
	{in: `d1:ai1e1:bi2ee`, match: `de`, res: true, trim: `de`},
	{in: `d1:ai1e1:bi2ee`, match: `d1:bi2ee`, res: true, trim: `d1:bi2ee`},
	{in: `d1:ai1e1:bi2ee`, match: `d1:bi3ee`, res: false},
	{in: `d1:ai1ee`, match: `d1:ci1ee`, res: false},
	{
		in:    `d4:infod6:lengthi5e4:name1:xe8:announce1:ue`,
		match: `d4:infod4:name1:xee`,
		res:   true,
		trim:  `d4:infod4:name1:xee`,
	},
	{
		in:    `ld1:ai1e1:bi2eed1:ai3eee`,
		match: `ld1:ai1eedee`,
		res:   true,
		trim:  `ld1:ai1eedee`,
	},
}

func TestMatch(t *testing.T) {
	for _, mt := range matchTests {
		doc, err := parse.ParseString(mt.in, parse.Lenient())
		if err != nil {
			t.Fatalf("%s: %v", mt.in, err)
		}
		m, err := parse.ParseString(mt.match)
		if err != nil {
			t.Fatalf("%s: %v", mt.match, err)
		}
		if got := Match(doc, m); got != mt.res {
			t.Errorf("%s match %s: got %v", mt.in, mt.match, got)
		}
		if mt.trim == "" {
			continue
		}
		if got := encode.MustString(Trim(m, doc)); got != mt.trim {
			t.Errorf("%s trim %s: got %q want %q", mt.in, mt.match, got, mt.trim)
		}
	}
}
