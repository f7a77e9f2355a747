// Package libdiff computes structural differences between bencode trees.
package libdiff
