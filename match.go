package bencode

import (
	"github.com/clockworkengineer/bencode/ir"
)

// Match reports whether doc matches pattern. Integers and byte strings
// match when equal. A dictionary pattern matches a dictionary holding at
// least its keys, each value matching; a list pattern matches a list of
// the same length element by element.
func Match(doc, pattern *ir.Node) bool {
	if doc.Type != pattern.Type {
		return false
	}
	switch pattern.Type {
	case ir.DictType:
		for i, field := range pattern.Fields {
			v := doc.Lookup(field.Bytes)
			if v == nil || !Match(v, pattern.Values[i]) {
				return false
			}
		}
		return true
	case ir.ListType:
		if len(doc.Values) != len(pattern.Values) {
			return false
		}
		for i := range doc.Values {
			if !Match(doc.Values[i], pattern.Values[i]) {
				return false
			}
		}
		return true
	}
	return ir.Equal(doc, pattern)
}

// Trim filters doc down to the dictionary keys present in pattern. doc is
// expected to match pattern; doc is not modified.
func Trim(pattern, doc *ir.Node) *ir.Node {
	switch {
	case pattern.IsDict() && doc.IsDict():
		var kvs []ir.KeyVal
		for i, field := range doc.Fields {
			p := pattern.Lookup(field.Bytes)
			if p == nil {
				continue
			}
			kvs = append(kvs, ir.KeyVal{Key: field.Clone(), Val: Trim(p, doc.Values[i])})
		}
		return ir.FromKeyVals(kvs)
	case pattern.IsList() && doc.IsList() && len(pattern.Values) == len(doc.Values):
		res := make([]*ir.Node, len(doc.Values))
		for i := range doc.Values {
			res[i] = Trim(pattern.Values[i], doc.Values[i])
		}
		return ir.FromSlice(res)
	}
	return doc.Clone()
}
