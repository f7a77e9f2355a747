package bencode

import (
	"errors"
	"testing"

	"github.com/clockworkengineer/bencode/encode"
	"github.com/clockworkengineer/bencode/parse"
)

type pathTest struct {
	Path string
	Doc  string
	Res  string
	Err  error
}

var pathTests = []pathTest{
	{
		Path: "$",
		Doc:  "i1e",
		Res:  "i1e",
	},
	{
		Path: "$.f",
		Doc:  "d1:fi1ee",
		Res:  "i1e",
	},
	{
		Path: "f",
		Doc:  "d1:fi1ee",
		Res:  "i1e",
	},
	{
		Path: "$[0]",
		Doc:  "li1ei2ei3ee",
		Res:  "i1e",
	},
	{
		Path: "$[1].f",
		Doc:  "li0ed1:fi2e1:gi3eee",
		Res:  "i2e",
	},
	{
		Path: "info.files[1].path[0]",
		Doc:  "d4:infod5:filesld4:pathl1:aeed4:pathl1:beeeee",
		Res:  "1:b",
	},
	{
		Path: `$."f[3]"[2]`,
		Doc:  "d1:ali1ee4:f[3]li0ei1ei2eee",
		Res:  "i2e",
	},
	{
		Path: `$.info."piece length"`,
		Doc:  "d4:infod12:piece lengthi4eee",
		Res:  "i4e",
	},
	{
		Path: "$.g",
		Doc:  "d1:fi1ee",
		Err:  ErrNotFound,
	},
	{
		Path: "$[3]",
		Doc:  "li1ee",
		Err:  ErrNotFound,
	},
	{
		Path: "$.f",
		Doc:  "li1ee",
		Err:  ErrNotFound,
	},
	{
		Path: "$[x]",
		Doc:  "li1ee",
		Err:  ErrBadPath,
	},
	{
		Path: "$[0",
		Doc:  "li1ee",
		Err:  ErrBadPath,
	},
	{
		Path: "$.",
		Doc:  "d1:fi1ee",
		Err:  ErrBadPath,
	},
	{
		Path: "$[0]f",
		Doc:  "ld1:fi1eee",
		Err:  ErrBadPath,
	},
}

func TestGet(t *testing.T) {
	for _, pt := range pathTests {
		doc, err := parse.ParseString(pt.Doc)
		if err != nil {
			t.Fatalf("%s: %v", pt.Doc, err)
		}
		res, err := Get(doc, pt.Path)
		if pt.Err != nil {
			if !errors.Is(err, pt.Err) {
				t.Errorf("%s on %s: got %v want %v", pt.Path, pt.Doc, err, pt.Err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s on %s: %v", pt.Path, pt.Doc, err)
			continue
		}
		if got := encode.MustString(res); got != pt.Res {
			t.Errorf("%s on %s: got %q want %q", pt.Path, pt.Doc, got, pt.Res)
		}
	}
}
