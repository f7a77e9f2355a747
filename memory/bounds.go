package memory

import (
	"unsafe"

	"github.com/clockworkengineer/bencode/ir"
)

var (
	// NodeSize is the in-memory size of one ir.Node.
	NodeSize = int(unsafe.Sizeof(ir.Node{}))
	// SlotSize is the cost of one child or key slot in a container.
	SlotSize = int(unsafe.Sizeof((*ir.Node)(nil)))
	// RefNodeSize is the in-memory size of one ir.RefNode.
	RefNodeSize = int(unsafe.Sizeof(ir.RefNode{}))
)

// BufferSize is the footprint of a Buffer of the given capacity, header
// included.
func BufferSize(capacity int) int {
	return capacity + int(unsafe.Sizeof(Buffer{}))
}

// TreeEstimate is a conservative upper bound on the bytes needed to build an
// owned tree with the given shape, excluding byte string contents.
func TreeEstimate(nodes, containers, avgChildren int) int {
	return nodes*NodeSize + containers*avgChildren*2*SlotSize
}

// BorrowedEstimate bounds the bytes needed for a borrowed tree of the given
// shape.
func BorrowedEstimate(nodes, containers, avgChildren int) int {
	return nodes*RefNodeSize + containers*avgChildren*int(unsafe.Sizeof([]byte(nil)))
}

// MaxSafeDepth is the nesting depth that fits in half of stackBytes at
// frameBytes per level.
func MaxSafeDepth(stackBytes, frameBytes int) int {
	if frameBytes <= 0 {
		return 0
	}
	return (stackBytes / 2) / frameBytes
}
