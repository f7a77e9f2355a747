package parse

import (
	"github.com/clockworkengineer/bencode/ir"
)

type recursiveParser struct {
	scanner
	cfg      *Config
	b        *builder
	maxDepth int
}

// ParseRecursive parses d by recursive descent.
func ParseRecursive(d []byte, opts ...ParseOption) (*ir.Node, error) {
	cfg := buildConfig(opts)
	n, _, err := parseRecursive(d, &cfg)
	return n, err
}

func parseRecursive(d []byte, cfg *Config) (*ir.Node, int, error) {
	if err := checkInput(d, cfg); err != nil {
		return nil, 0, err
	}
	p := &recursiveParser{
		scanner:  scanner{d: d},
		cfg:      cfg,
		b:        newBuilder(cfg),
		maxDepth: cfg.maxDepth(),
	}
	n, err := p.value(0)
	if err != nil {
		return nil, p.pos, err
	}
	if err := p.checkTrailing(cfg); err != nil {
		return nil, p.pos, err
	}
	return n, p.pos, nil
}

// value parses one value whose container, if any, sits at depth+1.
func (p *recursiveParser) value(depth int) (*ir.Node, error) {
	c, err := p.peek()
	if err != nil {
		return nil, err
	}
	t, err := valueStart(c)
	if err != nil {
		return nil, err
	}
	switch t {
	case ir.IntegerType:
		v, err := p.scanInt()
		if err != nil {
			return nil, err
		}
		return p.b.intNode(v)
	case ir.BytesType:
		v, err := p.scanBytes()
		if err != nil {
			return nil, err
		}
		return p.b.bytesNode(v)
	}
	if depth+1 > p.maxDepth {
		return nil, ir.ErrDepthExceeded
	}
	p.pos++
	node, err := p.b.containerNode(t)
	if err != nil {
		return nil, err
	}
	if t == ir.ListType {
		return node, p.list(node, depth+1)
	}
	return node, p.dict(node, depth+1)
}

func (p *recursiveParser) list(node *ir.Node, depth int) error {
	for {
		end, err := p.atEnd()
		if err != nil {
			return err
		}
		if end {
			return nil
		}
		v, err := p.value(depth)
		if err != nil {
			return err
		}
		if err := p.b.appendValue(node, v); err != nil {
			return err
		}
	}
}

func (p *recursiveParser) dict(node *ir.Node, depth int) error {
	var prev []byte
	for i := 0; ; i++ {
		end, err := p.atEnd()
		if err != nil {
			return err
		}
		if end {
			return nil
		}
		k, err := p.scanKey(prev, i > 0, p.cfg.EnforceCanonical)
		if err != nil {
			return err
		}
		prev = k
		key, err := p.b.bytesNode(k)
		if err != nil {
			return err
		}
		v, err := p.value(depth)
		if err != nil {
			return err
		}
		if err := p.b.appendEntry(node, key, v); err != nil {
			return err
		}
	}
}
