package convert

import "errors"

// ErrUnrepresentable is returned when a tree has no rendering in the
// requested format, e.g. a TOML document whose root is not a dictionary.
var ErrUnrepresentable = errors.New("unrepresentable")
