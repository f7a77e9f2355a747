package memory

import "github.com/clockworkengineer/bencode/ir"

// Buffer is a byte buffer of fixed capacity. It never grows: pushing past
// capacity fails with ErrBufferFull, popping when empty with ErrBufferEmpty.
type Buffer struct {
	data []byte
}

func NewBuffer(capacity int) *Buffer {
	return &Buffer{data: make([]byte, 0, capacity)}
}

// BufferOf wraps caller-owned storage; its capacity is cap(p) and its
// initial contents are empty.
func BufferOf(p []byte) *Buffer {
	return &Buffer{data: p[:0]}
}

func (b *Buffer) Push(c byte) error {
	if len(b.data) == cap(b.data) {
		return ir.ErrBufferFull
	}
	b.data = append(b.data, c)
	return nil
}

// Extend appends all of p or nothing.
func (b *Buffer) Extend(p []byte) error {
	if len(p) > cap(b.data)-len(b.data) {
		return ir.ErrBufferFull
	}
	b.data = append(b.data, p...)
	return nil
}

func (b *Buffer) Pop() (byte, error) {
	n := len(b.data)
	if n == 0 {
		return 0, ir.ErrBufferEmpty
	}
	c := b.data[n-1]
	b.data = b.data[:n-1]
	return c, nil
}

// Write implements io.Writer with Extend semantics.
func (b *Buffer) Write(p []byte) (int, error) {
	if err := b.Extend(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Bytes aliases the buffer contents.
func (b *Buffer) Bytes() []byte  { return b.data }
func (b *Buffer) Len() int       { return len(b.data) }
func (b *Buffer) Cap() int       { return cap(b.data) }
func (b *Buffer) Available() int { return cap(b.data) - len(b.data) }
func (b *Buffer) Reset()         { b.data = b.data[:0] }

// Stack is a stack of fixed capacity.
type Stack[T any] struct {
	items []T
}

func NewStack[T any](capacity int) *Stack[T] {
	return &Stack[T]{items: make([]T, 0, capacity)}
}

func (s *Stack[T]) Push(v T) error {
	if len(s.items) == cap(s.items) {
		return ir.ErrBufferFull
	}
	s.items = append(s.items, v)
	return nil
}

func (s *Stack[T]) Pop() (T, error) {
	var zero T
	n := len(s.items)
	if n == 0 {
		return zero, ir.ErrBufferEmpty
	}
	v := s.items[n-1]
	s.items[n-1] = zero
	s.items = s.items[:n-1]
	return v, nil
}

// Top returns the top element in place, or nil when empty.
func (s *Stack[T]) Top() *T {
	n := len(s.items)
	if n == 0 {
		return nil
	}
	return &s.items[n-1]
}

func (s *Stack[T]) Len() int { return len(s.items) }
func (s *Stack[T]) Cap() int { return cap(s.items) }

func (s *Stack[T]) Reset() {
	clear(s.items)
	s.items = s.items[:0]
}
