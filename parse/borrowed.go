package parse

import (
	"github.com/clockworkengineer/bencode/ir"
	"github.com/clockworkengineer/bencode/memory"
)

type borrowedParser struct {
	scanner
	cfg      *Config
	tracker  *memory.Tracker
	maxDepth int
}

// ParseBorrowed parses d into a tree whose byte strings and keys alias d.
// d must outlive the result and must not be modified while it is in use.
func ParseBorrowed(d []byte, opts ...ParseOption) (ir.RefNode, error) {
	cfg := buildConfig(opts)
	n, _, err := parseBorrowed(d, &cfg)
	return n, err
}

func parseBorrowed(d []byte, cfg *Config) (ir.RefNode, int, error) {
	if err := checkInput(d, cfg); err != nil {
		return ir.RefNode{}, 0, err
	}
	p := &borrowedParser{
		scanner:  scanner{d: d},
		cfg:      cfg,
		tracker:  cfg.tracker(),
		maxDepth: cfg.maxDepth(),
	}
	var root ir.RefNode
	if err := p.value(&root, 0); err != nil {
		return ir.RefNode{}, p.pos, err
	}
	if err := p.checkTrailing(cfg); err != nil {
		return ir.RefNode{}, p.pos, err
	}
	return root, p.pos, nil
}

func (p *borrowedParser) charge(n int) error {
	if p.tracker == nil {
		return nil
	}
	return p.tracker.Alloc(n)
}

func (p *borrowedParser) value(dst *ir.RefNode, depth int) error {
	c, err := p.peek()
	if err != nil {
		return err
	}
	t, err := valueStart(c)
	if err != nil {
		return err
	}
	dst.Type = t
	switch t {
	case ir.IntegerType:
		dst.Int, err = p.scanInt()
		return err
	case ir.BytesType:
		dst.Bytes, err = p.scanBytes()
		return err
	}
	if depth+1 > p.maxDepth {
		return ir.ErrDepthExceeded
	}
	p.pos++
	dst.Values = []ir.RefNode{}
	if t == ir.DictType {
		dst.Keys = [][]byte{}
	}
	var prev []byte
	for i := 0; ; i++ {
		end, err := p.atEnd()
		if err != nil {
			return err
		}
		if end {
			return nil
		}
		if t == ir.DictType {
			k, err := p.scanKey(prev, i > 0, p.cfg.EnforceCanonical)
			if err != nil {
				return err
			}
			prev = k
			if err := p.charge(memory.SlotSize * 3); err != nil {
				return err
			}
			dst.Keys = append(dst.Keys, k)
		}
		if err := p.charge(memory.RefNodeSize); err != nil {
			return err
		}
		dst.Values = append(dst.Values, ir.RefNode{})
		if err := p.value(&dst.Values[len(dst.Values)-1], depth+1); err != nil {
			return err
		}
	}
}
