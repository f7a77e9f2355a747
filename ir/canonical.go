package ir

import (
	"bytes"
	"slices"
)

// CompareKeys orders dictionary keys as raw bytes.
func CompareKeys(a, b []byte) int {
	return bytes.Compare(a, b)
}

// CheckShape reports ErrInvalidFormat if the tree has a nil node, a node
// of unknown type, a dictionary key that is not a byte string or a
// dictionary whose Fields and Values differ in length. Such trees can be
// assembled by hand but have no encoding.
func CheckShape(y *Node) error {
	return walkShape(y, false)
}

// CheckCanonical reports ErrNonCanonicalData if any dictionary in the tree
// has keys that are not strictly increasing. Duplicates count as
// non-canonical. A malformed tree gives ErrInvalidFormat as for CheckShape.
func CheckCanonical(y *Node) error {
	return walkShape(y, true)
}

func walkShape(y *Node, canonical bool) error {
	stack := []*Node{y}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n == nil {
			return ErrInvalidFormat
		}
		switch n.Type {
		case IntegerType, BytesType:
		case DictType:
			if len(n.Fields) != len(n.Values) {
				return ErrInvalidFormat
			}
			for i, k := range n.Fields {
				if k == nil || k.Type != BytesType {
					return ErrInvalidFormat
				}
				if canonical && i > 0 && CompareKeys(n.Fields[i-1].Bytes, k.Bytes) >= 0 {
					return ErrNonCanonicalData
				}
			}
			stack = append(stack, n.Values...)
		case ListType:
			stack = append(stack, n.Values...)
		default:
			return ErrInvalidFormat
		}
	}
	return nil
}

func IsCanonical(y *Node) bool {
	return CheckCanonical(y) == nil
}

// SortKeys sorts every dictionary in the tree by key in place. The sort is
// stable so duplicate keys keep their relative order.
func SortKeys(y *Node) {
	stack := []*Node{y}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch n.Type {
		case DictType:
			kvs := n.KeyVals()
			slices.SortStableFunc(kvs, func(a, b KeyVal) int {
				return CompareKeys(a.Key.Bytes, b.Key.Bytes)
			})
			for i, kv := range kvs {
				n.Fields[i] = kv.Key
				n.Values[i] = kv.Val
			}
			stack = append(stack, n.Values...)
		case ListType:
			stack = append(stack, n.Values...)
		}
	}
}
