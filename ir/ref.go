package ir

import "bytes"

// RefNode is a borrowed bencode value: Bytes and Keys alias the input the
// tree was parsed from. The input must stay alive and unmodified for as long
// as the RefNode, or anything taken from it, is in use. Use Own to detach.
//
// For DictType, Keys[i] is the key of Values[i].
type RefNode struct {
	Type   Type
	Int    int64
	Bytes  []byte
	Keys   [][]byte
	Values []RefNode
}

func (r *RefNode) IsInt() bool   { return r.Type == IntegerType }
func (r *RefNode) IsBytes() bool { return r.Type == BytesType }
func (r *RefNode) IsList() bool  { return r.Type == ListType }
func (r *RefNode) IsDict() bool  { return r.Type == DictType }

func (r *RefNode) AsInt() (int64, bool) {
	if !r.IsInt() {
		return 0, false
	}
	return r.Int, true
}

func (r *RefNode) AsBytes() ([]byte, bool) {
	if !r.IsBytes() {
		return nil, false
	}
	return r.Bytes, true
}

func (r *RefNode) AsList() ([]RefNode, bool) {
	if !r.IsList() {
		return nil, false
	}
	return r.Values, true
}

func (r *RefNode) Len() int {
	switch r.Type {
	case BytesType:
		return len(r.Bytes)
	case ListType, DictType:
		return len(r.Values)
	}
	return 0
}

// Lookup finds the value stored under key, last occurrence first.
func (r *RefNode) Lookup(key []byte) *RefNode {
	if !r.IsDict() {
		return nil
	}
	for i := len(r.Keys) - 1; i >= 0; i-- {
		if bytes.Equal(r.Keys[i], key) {
			return &r.Values[i]
		}
	}
	return nil
}

func (r *RefNode) Get(key string) *RefNode {
	return r.Lookup([]byte(key))
}

func (r *RefNode) Required(key string) (*RefNode, error) {
	if !r.IsDict() {
		return nil, &FieldError{Key: key, Want: DictType, Got: r.Type, Err: ErrTypeMismatch}
	}
	v := r.Get(key)
	if v == nil {
		return nil, &FieldError{Key: key, Err: ErrMissingField}
	}
	return v, nil
}

func (r *RefNode) RequiredInt(key string) (int64, error) {
	v, err := r.Required(key)
	if err != nil {
		return 0, err
	}
	if !v.IsInt() {
		return 0, &FieldError{Key: key, Want: IntegerType, Got: v.Type, Err: ErrTypeMismatch}
	}
	return v.Int, nil
}

func (r *RefNode) RequiredBytes(key string) ([]byte, error) {
	v, err := r.Required(key)
	if err != nil {
		return nil, err
	}
	if !v.IsBytes() {
		return nil, &FieldError{Key: key, Want: BytesType, Got: v.Type, Err: ErrTypeMismatch}
	}
	return v.Bytes, nil
}

// Own returns an owned deep copy that no longer references the input.
func (r *RefNode) Own() *Node {
	switch r.Type {
	case IntegerType:
		return FromInt(r.Int)
	case BytesType:
		return FromBytes(r.Bytes)
	case ListType:
		vs := make([]*Node, len(r.Values))
		for i := range r.Values {
			vs[i] = r.Values[i].Own()
		}
		return FromSlice(vs)
	case DictType:
		res := &Node{
			Type:   DictType,
			Fields: make([]*Node, len(r.Keys)),
			Values: make([]*Node, len(r.Values)),
		}
		for i := range r.Keys {
			res.Fields[i] = FromBytes(r.Keys[i])
			res.Values[i] = r.Values[i].Own()
		}
		return res
	}
	return nil
}
