package ir

import "bytes"

func (y *Node) IsInt() bool   { return y != nil && y.Type == IntegerType }
func (y *Node) IsBytes() bool { return y != nil && y.Type == BytesType }
func (y *Node) IsList() bool  { return y != nil && y.Type == ListType }
func (y *Node) IsDict() bool  { return y != nil && y.Type == DictType }

// TypeName returns the lower-case name used in diagnostics.
func (y *Node) TypeName() string {
	switch y.Type {
	case IntegerType:
		return "integer"
	case BytesType:
		return "string"
	case ListType:
		return "list"
	case DictType:
		return "dictionary"
	}
	return "unknown"
}

func (y *Node) AsInt() (int64, bool) {
	if !y.IsInt() {
		return 0, false
	}
	return y.Int, true
}

// AsBytes returns the node's bytes without copying.
func (y *Node) AsBytes() ([]byte, bool) {
	if !y.IsBytes() {
		return nil, false
	}
	return y.Bytes, true
}

func (y *Node) AsString() (string, bool) {
	if !y.IsBytes() {
		return "", false
	}
	return string(y.Bytes), true
}

func (y *Node) AsList() ([]*Node, bool) {
	if !y.IsList() {
		return nil, false
	}
	return y.Values, true
}

func (y *Node) AsDict() ([]KeyVal, bool) {
	if !y.IsDict() {
		return nil, false
	}
	return y.KeyVals(), true
}

// KeyVals returns the entries of a dictionary in stored order.
func (y *Node) KeyVals() []KeyVal {
	if !y.IsDict() {
		return nil
	}
	res := make([]KeyVal, len(y.Fields))
	for i := range y.Fields {
		res[i] = KeyVal{Key: y.Fields[i], Val: y.Values[i]}
	}
	return res
}

// Len is the byte length of a string, or the entry count of a container.
func (y *Node) Len() int {
	switch y.Type {
	case BytesType:
		return len(y.Bytes)
	case ListType, DictType:
		return len(y.Values)
	}
	return 0
}

func (y *Node) Index(i int) *Node {
	if !y.IsList() || i < 0 || i >= len(y.Values) {
		return nil
	}
	return y.Values[i]
}

// Lookup finds the value stored under key by exact byte comparison. When a
// leniently parsed dictionary holds duplicate keys the last one wins.
func (y *Node) Lookup(key []byte) *Node {
	if !y.IsDict() {
		return nil
	}
	if i := y.lookupIndex(key); i >= 0 {
		return y.Values[i]
	}
	return nil
}

func (y *Node) Get(key string) *Node {
	if !y.IsDict() {
		return nil
	}
	for i := len(y.Fields) - 1; i >= 0; i-- {
		if string(y.Fields[i].Bytes) == key {
			return y.Values[i]
		}
	}
	return nil
}

func (y *Node) Has(key string) bool {
	return y.Get(key) != nil
}

func (y *Node) lookupIndex(key []byte) int {
	for i := len(y.Fields) - 1; i >= 0; i-- {
		if bytes.Equal(y.Fields[i].Bytes, key) {
			return i
		}
	}
	return -1
}
