package ir

import "fmt"

type Type int

const (
	IntegerType Type = iota
	BytesType
	ListType
	DictType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		IntegerType: "Integer",
		BytesType:   "ByteString",
		ListType:    "List",
		DictType:    "Dictionary",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Integer":    IntegerType,
		"ByteString": BytesType,
		"List":       ListType,
		"Dictionary": DictType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		IntegerType,
		BytesType,
		ListType,
		DictType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case ListType, DictType:
		return false
	default:
		return true
	}
}
