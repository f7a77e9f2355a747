// Package ir provides the in-memory representation of bencode values.
//
// # Overview
//
// A bencode document is a tree of four kinds of value: signed 64-bit
// integers, byte strings, lists and dictionaries. Node is the owned form of
// that tree. RefNode is the borrowed form produced by zero-copy parsing,
// whose byte strings alias the parsed input.
//
// # Node Structure
//
// Node works as a tagged union: Type selects which of Int, Bytes, Values and
// Fields are meaningful.
//
//   - IntegerType: Int
//   - BytesType: Bytes (arbitrary bytes, not necessarily text)
//   - ListType: Values
//   - DictType: Fields holds the keys (BytesType nodes), Values the values
//
// Dictionary entries keep insertion order. Canonical bencode requires keys in
// strictly increasing byte order; CheckCanonical tests for it and SortKeys
// establishes it. Trees parsed leniently may contain duplicate keys, which are
// kept; Lookup and Get return the last one.
//
// # Accessors
//
// Typed accessors (AsInt, AsBytes, ...) report whether the node has the
// requested type. The Required* family looks up a dictionary field and
// fails with a *FieldError wrapping ErrMissingField or ErrTypeMismatch; the
// Optional* family reports an absent field as not-ok without error.
//
// # Errors
//
// Error is the allocation-free error kind shared by all codec packages.
package ir
