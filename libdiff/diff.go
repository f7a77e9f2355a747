package libdiff

import (
	"bytes"
	"strconv"

	"github.com/clockworkengineer/bencode/encode"
	"github.com/clockworkengineer/bencode/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	OpDelete Op = iota
	OpInsert
	OpReplace
)

func (o Op) String() string {
	switch o {
	case OpDelete:
		return "-"
	case OpInsert:
		return "+"
	case OpReplace:
		return "~"
	}
	return "?"
}

// Change is one difference between two trees. From is nil for an insert
// and To is nil for a delete.
type Change struct {
	Path string
	Op   Op
	From *ir.Node
	To   *ir.Node
}

func (c Change) String() string {
	switch c.Op {
	case OpDelete:
		return "- " + c.Path + ": " + c.From.String()
	case OpInsert:
		return "+ " + c.Path + ": " + c.To.String()
	}
	return "~ " + c.Path + ": " + c.From.String() + " -> " + c.To.String()
}

// Diff returns the changes that turn from into to, in document order.
// Dictionaries are compared key by key as the encoder sees them: sorted,
// with the last of any duplicate keys. Lists are aligned with a sequence
// diff so an insertion does not show up as a change to every later
// element. Equal trees give no changes.
func Diff(from, to *ir.Node) []Change {
	return diff(nil, "$", from, to)
}

func diff(dst []Change, path string, from, to *ir.Node) []Change {
	if from.Type != to.Type {
		return append(dst, Change{Path: path, Op: OpReplace, From: from, To: to})
	}
	switch from.Type {
	case ir.DictType:
		return diffDict(dst, path, from, to)
	case ir.ListType:
		return diffList(dst, path, from, to)
	}
	if !ir.Equal(from, to) {
		dst = append(dst, Change{Path: path, Op: OpReplace, From: from, To: to})
	}
	return dst
}

func diffDict(dst []Change, path string, from, to *ir.Node) []Change {
	fromOrder := encode.EntryOrder(from, true)
	toOrder := encode.EntryOrder(to, true)
	i, j := 0, 0
	for i < len(fromOrder) || j < len(toOrder) {
		c := 0
		switch {
		case i == len(fromOrder):
			c = 1
		case j == len(toOrder):
			c = -1
		default:
			c = bytes.Compare(from.Fields[fromOrder[i]].Bytes, to.Fields[toOrder[j]].Bytes)
		}
		switch {
		case c < 0:
			k := fromOrder[i]
			dst = append(dst, Change{Path: ir.KeyPath(path, from.Fields[k].Bytes), Op: OpDelete, From: from.Values[k]})
			i++
		case c > 0:
			k := toOrder[j]
			dst = append(dst, Change{Path: ir.KeyPath(path, to.Fields[k].Bytes), Op: OpInsert, To: to.Values[k]})
			j++
		default:
			fk, tk := fromOrder[i], toOrder[j]
			dst = diff(dst, ir.KeyPath(path, from.Fields[fk].Bytes), from.Values[fk], to.Values[tk])
			i++
			j++
		}
	}
	return dst
}

func diffList(dst []Change, path string, from, to *ir.Node) []Change {
	m := map[string]rune{}
	fromRunes := mapValues(m, from)
	toRunes := mapValues(m, to)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)

	fi, ti := 0, 0
	// deleted from indexes not yet paired with an insert
	var pending []int
	flush := func() {
		for _, k := range pending {
			dst = append(dst, Change{Path: ir.IndexPath(path, k), Op: OpDelete, From: from.Values[k]})
		}
		pending = pending[:0]
	}
	for i := range diffs {
		d := &diffs[i]
		switch d.Type {
		case diffpatch.DiffDelete:
			for range []rune(d.Text) {
				pending = append(pending, fi)
				fi++
			}
		case diffpatch.DiffInsert:
			for range []rune(d.Text) {
				if len(pending) > 0 {
					k := pending[0]
					pending = pending[1:]
					dst = diff(dst, ir.IndexPath(path, k), from.Values[k], to.Values[ti])
				} else {
					dst = append(dst, Change{Path: ir.IndexPath(path, ti), Op: OpInsert, To: to.Values[ti]})
				}
				ti++
			}
		case diffpatch.DiffEqual:
			flush()
			for range []rune(d.Text) {
				dst = diff(dst, ir.IndexPath(path, fi), from.Values[fi], to.Values[ti])
				fi++
				ti++
			}
		}
	}
	flush()
	return dst
}

// mapValues gives each list element a rune standing for its summary, so
// that equal scalars and containers of the same type line up.
func mapValues(m map[string]rune, node *ir.Node) []rune {
	rs := make([]rune, len(node.Values))
	for i, v := range node.Values {
		sum := summaryStr(v)
		r, ok := m[sum]
		if !ok {
			r = rune(len(m))
			m[sum] = r
		}
		rs[i] = r
	}
	return rs
}

func summaryStr(node *ir.Node) string {
	switch node.Type {
	case ir.IntegerType:
		return "i" + strconv.FormatInt(node.Int, 10)
	case ir.BytesType:
		return "s" + string(node.Bytes)
	}
	return node.Type.String()
}

// Reverse returns the changes that undo changes.
func Reverse(changes []Change) []Change {
	res := make([]Change, len(changes))
	for i, c := range changes {
		r := Change{Path: c.Path, Op: c.Op, From: c.To, To: c.From}
		switch c.Op {
		case OpDelete:
			r.Op = OpInsert
		case OpInsert:
			r.Op = OpDelete
		}
		res[i] = r
	}
	return res
}
