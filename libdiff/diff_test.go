package libdiff

import (
	"testing"

	"github.com/clockworkengineer/bencode/parse"

	"github.com/google/go-cmp/cmp"
)

type diffTest struct {
	from, to string
	changes  []string
}

var diffTests = []diffTest{
	{from: `i1e`, to: `i1e`},
	{from: `i1e`, to: `i2e`, changes: []string{`~ $: 1 -> 2`}},
	{from: `i1e`, to: `1:a`, changes: []string{`~ $: 1 -> "a"`}},
	{
		from:    `d1:ai1e1:bi2ee`,
		to:      `d1:bi3e1:ci4ee`,
		changes: []string{`- $.a: 1`, `~ $.b: 2 -> 3`, `+ $.c: 4`},
	},
	{
		from:    `li1ei2ei3ee`,
		to:      `li1ei9ei2ei3ee`,
		changes: []string{`+ $[1]: 9`},
	},
	{
		from:    `li1ei2ei3ee`,
		to:      `li1ei3ee`,
		changes: []string{`- $[1]: 2`},
	},
	{
		from:    `li1ei2ei3ee`,
		to:      `li1ei5ei3ee`,
		changes: []string{`~ $[1]: 2 -> 5`},
	},
	{
		from:    `d4:infod5:filesld6:lengthi1eeeee`,
		to:      `d4:infod5:filesld6:lengthi2eeeee`,
		changes: []string{`~ $.info.files[0].length: 1 -> 2`},
	},
	{
		from:    `d12:piece lengthi1ee`,
		to:      `d12:piece lengthi2ee`,
		changes: []string{`~ $."piece length": 1 -> 2`},
	},
	{
		// last duplicate wins
		from: `d1:ai1e1:ai2ee`,
		to:   `d1:ai2ee`,
	},
}

func TestDiff(t *testing.T) {
	for _, dt := range diffTests {
		from, err := parse.ParseString(dt.from, parse.Lenient())
		if err != nil {
			t.Fatal(err)
		}
		to, err := parse.ParseString(dt.to, parse.Lenient())
		if err != nil {
			t.Fatal(err)
		}
		var got []string
		for _, c := range Diff(from, to) {
			got = append(got, c.String())
		}
		if diff := cmp.Diff(dt.changes, got); diff != "" {
			t.Errorf("%s -> %s (-want +got):\n%s", dt.from, dt.to, diff)
		}
	}
}

func TestReverse(t *testing.T) {
	from, _ := parse.ParseString(`d1:ai1e1:bi2ee`)
	to, _ := parse.ParseString(`d1:bi3e1:ci4ee`)
	var got []string
	for _, c := range Reverse(Diff(from, to)) {
		got = append(got, c.String())
	}
	want := []string{`+ $.a: 1`, `~ $.b: 3 -> 2`, `- $.c: 4`}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("reverse (-want +got):\n%s", diff)
	}
}
