package parse

import (
	"github.com/clockworkengineer/bencode/ir"
	"github.com/clockworkengineer/bencode/memory"
)

// Stats describes the shape of a validated document.
type Stats struct {
	Nodes      int
	Containers int
	Integers   int
	Strings    int
	// Bytes is the total length of byte strings, keys included.
	Bytes    int
	MaxDepth int
	// Children is the total number of list items and dictionary entries.
	Children int
	// Length is the number of input bytes the root value occupies.
	Length int
}

// AvgChildren is the mean entry count per container.
func (s Stats) AvgChildren() int {
	if s.Containers == 0 {
		return 0
	}
	return (s.Children + s.Containers - 1) / s.Containers
}

// Estimate bounds the bytes an owned parse of the same document commits.
func (s Stats) Estimate() int {
	return memory.TreeEstimate(s.Nodes, s.Containers, s.AvgChildren()) + s.Bytes
}

type vframe struct {
	dict    bool
	hasKey  bool
	prev    []byte
	entries int
}

// Validate checks d against the grammar and the configured policies without
// building a tree.
func Validate(d []byte, opts ...ParseOption) (Stats, error) {
	cfg := buildConfig(opts)
	st, _, err := validate(d, &cfg)
	return st, err
}

func validate(d []byte, cfg *Config) (Stats, int, error) {
	var st Stats
	if err := checkInput(d, cfg); err != nil {
		return st, 0, err
	}
	s := &scanner{d: d}
	maxDepth := cfg.maxDepth()
	stack := memory.NewStack[vframe](min(maxDepth, len(d)))
	for {
		top := stack.Top()
		if top != nil && !top.hasKey {
			end, err := s.atEnd()
			if err != nil {
				return st, s.pos, err
			}
			if end {
				_, _ = stack.Pop()
				if stack.Len() == 0 {
					break
				}
				stack.Top().hasKey = false
				continue
			}
			if top.dict {
				k, err := s.scanKey(top.prev, top.entries > 0, cfg.EnforceCanonical)
				if err != nil {
					return st, s.pos, err
				}
				top.prev = k
				top.entries++
				top.hasKey = true
				st.Bytes += len(k)
				st.Children++
				continue
			}
			st.Children++
		}
		c, err := s.peek()
		if err != nil {
			return st, s.pos, err
		}
		t, err := valueStart(c)
		if err != nil {
			return st, s.pos, err
		}
		st.Nodes++
		switch t {
		case ir.IntegerType:
			if _, err := s.scanInt(); err != nil {
				return st, s.pos, err
			}
			st.Integers++
		case ir.BytesType:
			p, err := s.scanBytes()
			if err != nil {
				return st, s.pos, err
			}
			st.Strings++
			st.Bytes += len(p)
		default:
			if stack.Len()+1 > maxDepth {
				return st, s.pos, ir.ErrDepthExceeded
			}
			s.pos++
			if err := stack.Push(vframe{dict: t == ir.DictType}); err != nil {
				return st, s.pos, ir.ErrDepthExceeded
			}
			st.Containers++
			st.MaxDepth = max(st.MaxDepth, stack.Len())
			continue
		}
		if stack.Len() == 0 {
			break
		}
		stack.Top().hasKey = false
	}
	if err := s.checkTrailing(cfg); err != nil {
		return st, s.pos, err
	}
	st.Length = s.pos
	return st, s.pos, nil
}
