// Package parse decodes bencode into ir trees.
//
// # Strategies
//
// Parse builds an owned *ir.Node tree. Two independent strategies are
// available through WithStrategy: Recursive (the default) and Iterative,
// which keeps open containers on an explicit stack and so uses constant
// call depth. Both accept the same inputs and fail with the same errors.
//
// ParseBorrowed builds an ir.RefNode tree whose byte strings alias the
// input, and Validate checks an input without building any tree at all,
// reporting its shape as Stats.
//
// # Policies
//
// A Config (see DefaultConfig) bounds nesting depth, input length and
// committed memory, and decides whether dictionary key order must be
// canonical and whether bytes may follow the root value. Integer and length
// digit rules (no leading zeros, no negative zero, 64-bit range) always
// apply. With canonical enforcement off, dictionaries keep keys in input
// order and duplicate keys are retained.
//
// Failures are reported as ir.Error values. Decoder.Offset gives the input
// position of the last failure.
package parse
