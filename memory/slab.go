package memory

import (
	"unsafe"

	"github.com/clockworkengineer/bencode/ir"
)

// Slab is a typed bump allocator. Values are handed out from chunks of
// chunkLen elements; at most maxChunks chunks are ever allocated. As with
// Arena, values are reclaimed only in bulk.
type Slab[T any] struct {
	chunkLen  int
	maxChunks int
	tracker   *Tracker

	chunks [][]T
	cur    int
	used   int
	count  int
}

func NewSlab[T any](chunkLen, maxChunks int, tracker *Tracker) *Slab[T] {
	return &Slab[T]{
		chunkLen:  max(chunkLen, 1),
		maxChunks: max(maxChunks, 1),
		tracker:   tracker,
	}
}

// New returns a pointer to a zeroed T, or ErrOutOfMemory when every chunk
// is spent.
func (s *Slab[T]) New() (*T, error) {
	if len(s.chunks) == 0 || s.used == s.chunkLen {
		if err := s.advance(); err != nil {
			return nil, err
		}
	}
	p := &s.chunks[s.cur][s.used]
	s.used++
	s.count++
	return p, nil
}

func (s *Slab[T]) advance() error {
	if len(s.chunks) > 0 && s.cur+1 < len(s.chunks) {
		s.cur++
		s.used = 0
		return nil
	}
	if len(s.chunks) == s.maxChunks {
		return ir.ErrOutOfMemory
	}
	if s.tracker != nil {
		if err := s.tracker.Alloc(s.chunkBytes()); err != nil {
			return err
		}
	}
	s.chunks = append(s.chunks, make([]T, s.chunkLen))
	s.cur = len(s.chunks) - 1
	s.used = 0
	return nil
}

func (s *Slab[T]) chunkBytes() int {
	var zero T
	return s.chunkLen * int(unsafe.Sizeof(zero))
}

// Len is the number of values handed out since the last Reset.
func (s *Slab[T]) Len() int { return s.count }

// Cap is the most values the slab will ever hand out.
func (s *Slab[T]) Cap() int { return s.chunkLen * s.maxChunks }

// Tracker returns the tracker charged for chunks, or nil.
func (s *Slab[T]) Tracker() *Tracker { return s.tracker }

// Reset zeroes and rewinds every chunk, keeping them for reuse.
func (s *Slab[T]) Reset() {
	for i := range s.chunks {
		clear(s.chunks[i])
	}
	s.cur = 0
	s.used = 0
	s.count = 0
}

// Release drops all chunks and returns their bytes to the tracker.
func (s *Slab[T]) Release() {
	if s.tracker != nil {
		s.tracker.Free(len(s.chunks) * s.chunkBytes())
	}
	s.chunks = nil
	s.cur = 0
	s.used = 0
	s.count = 0
}
