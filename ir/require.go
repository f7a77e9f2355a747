package ir

// Required returns the value stored under key, or a *FieldError wrapping
// ErrMissingField. A receiver that is not a dictionary yields
// ErrTypeMismatch.
func (y *Node) Required(key string) (*Node, error) {
	if !y.IsDict() {
		return nil, &FieldError{Key: key, Want: DictType, Got: y.typeOrZero(), Err: ErrTypeMismatch}
	}
	v := y.Get(key)
	if v == nil {
		return nil, &FieldError{Key: key, Err: ErrMissingField}
	}
	return v, nil
}

func (y *Node) requiredOf(key string, t Type) (*Node, error) {
	v, err := y.Required(key)
	if err != nil {
		return nil, err
	}
	if v.Type != t {
		return nil, &FieldError{Key: key, Want: t, Got: v.Type, Err: ErrTypeMismatch}
	}
	return v, nil
}

func (y *Node) RequiredInt(key string) (int64, error) {
	v, err := y.requiredOf(key, IntegerType)
	if err != nil {
		return 0, err
	}
	return v.Int, nil
}

func (y *Node) RequiredBytes(key string) ([]byte, error) {
	v, err := y.requiredOf(key, BytesType)
	if err != nil {
		return nil, err
	}
	return v.Bytes, nil
}

func (y *Node) RequiredString(key string) (string, error) {
	b, err := y.RequiredBytes(key)
	return string(b), err
}

func (y *Node) RequiredList(key string) ([]*Node, error) {
	v, err := y.requiredOf(key, ListType)
	if err != nil {
		return nil, err
	}
	return v.Values, nil
}

func (y *Node) RequiredDict(key string) (*Node, error) {
	return y.requiredOf(key, DictType)
}

// optionalOf reports a missing key as (nil, nil) and a present key of the
// wrong type as a mismatch.
func (y *Node) optionalOf(key string, t Type) (*Node, error) {
	if !y.IsDict() {
		return nil, &FieldError{Key: key, Want: DictType, Got: y.typeOrZero(), Err: ErrTypeMismatch}
	}
	v := y.Get(key)
	if v == nil {
		return nil, nil
	}
	if v.Type != t {
		return nil, &FieldError{Key: key, Want: t, Got: v.Type, Err: ErrTypeMismatch}
	}
	return v, nil
}

func (y *Node) OptionalInt(key string) (int64, bool, error) {
	v, err := y.optionalOf(key, IntegerType)
	if v == nil {
		return 0, false, err
	}
	return v.Int, true, nil
}

func (y *Node) OptionalBytes(key string) ([]byte, bool, error) {
	v, err := y.optionalOf(key, BytesType)
	if v == nil {
		return nil, false, err
	}
	return v.Bytes, true, nil
}

func (y *Node) OptionalString(key string) (string, bool, error) {
	b, ok, err := y.OptionalBytes(key)
	return string(b), ok, err
}

func (y *Node) OptionalList(key string) ([]*Node, bool, error) {
	v, err := y.optionalOf(key, ListType)
	if v == nil {
		return nil, false, err
	}
	return v.Values, true, nil
}

func (y *Node) OptionalDict(key string) (*Node, bool, error) {
	v, err := y.optionalOf(key, DictType)
	if v == nil {
		return nil, false, err
	}
	return v, true, nil
}

func (y *Node) typeOrZero() Type {
	if y == nil {
		return IntegerType
	}
	return y.Type
}
