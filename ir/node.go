package ir

import (
	"maps"
	"slices"
)

// Node is an owned bencode value. For DictType, Fields[i] is the BytesType
// key of Values[i]; entries keep the order in which they were parsed or
// added, duplicates included.
type Node struct {
	Type   Type
	Int    int64
	Bytes  []byte
	Fields []*Node
	Values []*Node
}

type KeyVal struct {
	Key *Node
	Val *Node
}

func FromInt(v int64) *Node {
	return &Node{Type: IntegerType, Int: v}
}

// FromBytes returns a byte string node holding a copy of v.
func FromBytes(v []byte) *Node {
	return &Node{Type: BytesType, Bytes: append([]byte{}, v...)}
}

func FromString(v string) *Node {
	return &Node{Type: BytesType, Bytes: []byte(v)}
}

func FromSlice(vs []*Node) *Node {
	if vs == nil {
		vs = []*Node{}
	}
	return &Node{Type: ListType, Values: vs}
}

func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{
		Type:   DictType,
		Fields: make([]*Node, 0, len(kvs)),
		Values: make([]*Node, 0, len(kvs)),
	}
	for _, kv := range kvs {
		res.Fields = append(res.Fields, kv.Key)
		res.Values = append(res.Values, kv.Val)
	}
	return res
}

// FromMap builds a dictionary with keys in canonical order.
func FromMap(m map[string]*Node) *Node {
	keys := slices.Sorted(maps.Keys(m))
	res := &Node{
		Type:   DictType,
		Fields: make([]*Node, 0, len(keys)),
		Values: make([]*Node, 0, len(keys)),
	}
	for _, k := range keys {
		res.Fields = append(res.Fields, FromString(k))
		res.Values = append(res.Values, m[k])
	}
	return res
}

func ToMap(node *Node) map[string]*Node {
	if node.Type != DictType {
		return nil
	}
	res := make(map[string]*Node, len(node.Fields))
	for i, f := range node.Fields {
		res[string(f.Bytes)] = node.Values[i]
	}
	return res
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.Int = y.Int
	dst.Bytes = nil
	if y.Bytes != nil {
		dst.Bytes = append([]byte{}, y.Bytes...)
	}
	dst.Fields = nil
	dst.Values = nil
	if y.Type == DictType {
		dst.Fields = make([]*Node, len(y.Fields))
		for i, f := range y.Fields {
			dst.Fields[i] = f.Clone()
		}
	}
	if y.Type == ListType || y.Type == DictType {
		dst.Values = make([]*Node, len(y.Values))
		for i, v := range y.Values {
			dst.Values[i] = v.Clone()
		}
	}
	return dst
}

// Append adds v to the end of a list.
func (y *Node) Append(v *Node) error {
	if y.Type != ListType {
		return ErrTypeMismatch
	}
	y.Values = append(y.Values, v)
	return nil
}

// Put appends a key/value pair to a dictionary without looking for an
// existing entry.
func (y *Node) Put(key string, v *Node) error {
	if y.Type != DictType {
		return ErrTypeMismatch
	}
	y.Fields = append(y.Fields, FromString(key))
	y.Values = append(y.Values, v)
	return nil
}

// Set replaces the value of the last entry with key, or appends one.
func (y *Node) Set(key string, v *Node) error {
	if y.Type != DictType {
		return ErrTypeMismatch
	}
	if i := y.lookupIndex([]byte(key)); i >= 0 {
		y.Values[i] = v
		return nil
	}
	return y.Put(key, v)
}

// Delete removes every entry with key and reports whether any existed.
func (y *Node) Delete(key string) (bool, error) {
	if y.Type != DictType {
		return false, ErrTypeMismatch
	}
	found := false
	j := 0
	for i, f := range y.Fields {
		if string(f.Bytes) == key {
			found = true
			continue
		}
		y.Fields[j] = f
		y.Values[j] = y.Values[i]
		j++
	}
	clear(y.Fields[j:])
	clear(y.Values[j:])
	y.Fields = y.Fields[:j]
	y.Values = y.Values[:j]
	return found, nil
}
