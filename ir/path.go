package ir

import (
	"bytes"
	"strconv"
)

// PathKey renders a dictionary key as a path segment: plain when it is text
// free of path punctuation, quoted otherwise.
func PathKey(k []byte) string {
	if len(k) > 0 && IsText(k) && bytes.IndexAny(k, ".[]\"$ ") == -1 {
		return string(k)
	}
	return QuoteBytes(k)
}

// KeyPath appends key k to path.
func KeyPath(path string, k []byte) string {
	return path + "." + PathKey(k)
}

// IndexPath appends list index i to path.
func IndexPath(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}
