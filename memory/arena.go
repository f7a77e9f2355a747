package memory

import (
	"log/slog"

	"github.com/clockworkengineer/bencode/debug"
	"github.com/clockworkengineer/bencode/ir"
)

// Arena is a bump allocator over a bounded number of fixed-size slabs.
// Memory is reclaimed only in bulk by Reset or Release. Slices handed out
// by Allocate stay valid until the next Reset or Release.
type Arena struct {
	slabSize int
	maxSlabs int
	tracker  *Tracker

	slabs [][]byte
	cur   int
	off   int
	used  int
	peak  int
}

// NewArena returns an arena of at most maxSlabs slabs of slabSize bytes.
// Slabs are allocated lazily and charged to tracker when it is non-nil.
func NewArena(slabSize, maxSlabs int, tracker *Tracker) *Arena {
	return &Arena{
		slabSize: max(slabSize, 1),
		maxSlabs: max(maxSlabs, 1),
		tracker:  tracker,
	}
}

// Allocate returns size bytes whose offset within their slab is a multiple
// of align (a power of two; 0 means 1). It fails with ErrOutOfMemory when
// the request cannot be met within the slab budget, leaving the arena
// unchanged.
func (a *Arena) Allocate(size, align int) ([]byte, error) {
	if align <= 0 {
		align = 1
	}
	if size < 0 || size > a.slabSize || align&(align-1) != 0 {
		return nil, ir.ErrOutOfMemory
	}
	if len(a.slabs) > 0 {
		if p, ok := a.bump(size, align); ok {
			return p, nil
		}
	}
	if a.cur+1 < len(a.slabs) {
		a.used += a.slabSize - a.off
		a.cur++
		a.off = 0
	} else if len(a.slabs) < a.maxSlabs {
		if a.tracker != nil {
			if err := a.tracker.Alloc(a.slabSize); err != nil {
				return nil, err
			}
		}
		if len(a.slabs) > 0 {
			a.used += a.slabSize - a.off
			a.cur++
		}
		a.slabs = append(a.slabs, make([]byte, a.slabSize))
		a.off = 0
		if debug.Arena() {
			debug.Logger().Debug("arena slab", slog.Int("slab", len(a.slabs)), slog.Int("size", a.slabSize))
		}
	} else {
		return nil, ir.ErrOutOfMemory
	}
	p, _ := a.bump(size, align)
	return p, nil
}

func (a *Arena) bump(size, align int) ([]byte, bool) {
	start := (a.off + align - 1) &^ (align - 1)
	if start+size > a.slabSize {
		return nil, false
	}
	slab := a.slabs[a.cur]
	a.used += start + size - a.off
	a.off = start + size
	a.peak = max(a.peak, a.used)
	return slab[start : start+size : start+size], true
}

// CopyBytes copies b into the arena.
func (a *Arena) CopyBytes(b []byte) ([]byte, error) {
	if len(b) == 0 {
		return []byte{}, nil
	}
	p, err := a.Allocate(len(b), 1)
	if err != nil {
		return nil, err
	}
	copy(p, b)
	return p, nil
}

// Reset rewinds the arena, keeping its slabs for reuse. Everything
// previously allocated becomes invalid.
func (a *Arena) Reset() {
	for i := 0; i <= a.cur && i < len(a.slabs); i++ {
		clear(a.slabs[i])
	}
	a.cur = 0
	a.off = 0
	a.used = 0
}

// Release drops all slabs and returns their bytes to the tracker.
func (a *Arena) Release() {
	if a.tracker != nil {
		a.tracker.Free(len(a.slabs) * a.slabSize)
	}
	a.slabs = nil
	a.cur = 0
	a.off = 0
	a.used = 0
}

// Used is the number of bytes handed out since the last Reset, alignment
// padding and abandoned slab tails included.
func (a *Arena) Used() int { return a.used }

// Capacity is the total budget of the arena.
func (a *Arena) Capacity() int { return a.slabSize * a.maxSlabs }

func (a *Arena) Remaining() int { return a.Capacity() - a.used }

func (a *Arena) Peak() int { return a.peak }

// Slabs is the number of slabs currently allocated.
func (a *Arena) Slabs() int { return len(a.slabs) }

func (a *Arena) SlabSize() int { return a.slabSize }

// Tracker returns the tracker charged for slabs, or nil.
func (a *Arena) Tracker() *Tracker { return a.tracker }
