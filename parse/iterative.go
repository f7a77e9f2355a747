package parse

import (
	"github.com/clockworkengineer/bencode/ir"
	"github.com/clockworkengineer/bencode/memory"
)

// frame is one open container on the iterative parser's stack.
type frame struct {
	node    *ir.Node
	key     *ir.Node
	prev    []byte
	entries int
}

// ParseIterative parses d without recursion, keeping open containers on a
// stack bounded by the configured depth.
func ParseIterative(d []byte, opts ...ParseOption) (*ir.Node, error) {
	cfg := buildConfig(opts)
	n, _, err := parseIterative(d, &cfg)
	return n, err
}

func parseIterative(d []byte, cfg *Config) (*ir.Node, int, error) {
	if err := checkInput(d, cfg); err != nil {
		return nil, 0, err
	}
	s := &scanner{d: d}
	b := newBuilder(cfg)
	maxDepth := cfg.maxDepth()
	// every open container has consumed one input byte, so truncated input
	// runs out of bytes before it runs out of frames
	stack := memory.NewStack[frame](min(maxDepth, len(d)))

	var root *ir.Node
	for root == nil {
		var v *ir.Node
		top := stack.Top()
		if top != nil && top.key == nil {
			end, err := s.atEnd()
			if err != nil {
				return nil, s.pos, err
			}
			if end {
				f, _ := stack.Pop()
				v = f.node
			} else if top.node.Type == ir.DictType && top.key == nil {
				k, err := s.scanKey(top.prev, top.entries > 0, cfg.EnforceCanonical)
				if err != nil {
					return nil, s.pos, err
				}
				if top.key, err = b.bytesNode(k); err != nil {
					return nil, s.pos, err
				}
				top.prev = k
				top.entries++
				continue
			}
		}
		if v == nil {
			c, err := s.peek()
			if err != nil {
				return nil, s.pos, err
			}
			t, err := valueStart(c)
			if err != nil {
				return nil, s.pos, err
			}
			switch t {
			case ir.IntegerType:
				i, err := s.scanInt()
				if err != nil {
					return nil, s.pos, err
				}
				if v, err = b.intNode(i); err != nil {
					return nil, s.pos, err
				}
			case ir.BytesType:
				p, err := s.scanBytes()
				if err != nil {
					return nil, s.pos, err
				}
				if v, err = b.bytesNode(p); err != nil {
					return nil, s.pos, err
				}
			default:
				if stack.Len()+1 > maxDepth {
					return nil, s.pos, ir.ErrDepthExceeded
				}
				s.pos++
				node, err := b.containerNode(t)
				if err != nil {
					return nil, s.pos, err
				}
				if err := stack.Push(frame{node: node}); err != nil {
					return nil, s.pos, ir.ErrDepthExceeded
				}
				continue
			}
		}
		parent := stack.Top()
		if parent == nil {
			root = v
			break
		}
		var err error
		if parent.node.Type == ir.ListType {
			err = b.appendValue(parent.node, v)
		} else {
			err = b.appendEntry(parent.node, parent.key, v)
			parent.key = nil
		}
		if err != nil {
			return nil, s.pos, err
		}
	}
	if err := s.checkTrailing(cfg); err != nil {
		return nil, s.pos, err
	}
	return root, s.pos, nil
}
