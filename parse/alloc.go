package parse

import (
	"github.com/clockworkengineer/bencode/ir"
	"github.com/clockworkengineer/bencode/memory"
)

// builder allocates tree nodes and byte strings for a parse and charges the
// memory bound for every one of them, wherever they are allocated. A slab or
// arena sharing the parse tracker already charges it for its chunks, so
// nodes and bytes it hands out are not charged twice.
type builder struct {
	tracker *memory.Tracker
	arena   *memory.Arena
	nodes   *memory.Slab[ir.Node]
}

func newBuilder(cfg *Config) *builder {
	return &builder{
		tracker: cfg.tracker(),
		arena:   cfg.Arena,
		nodes:   cfg.Nodes,
	}
}

func (b *builder) charge(n int) error {
	if b.tracker == nil {
		return nil
	}
	return b.tracker.Alloc(n)
}

func (b *builder) node(t ir.Type) (*ir.Node, error) {
	var n *ir.Node
	if b.nodes != nil {
		if b.nodes.Tracker() != b.tracker {
			if err := b.charge(memory.NodeSize); err != nil {
				return nil, err
			}
		}
		var err error
		if n, err = b.nodes.New(); err != nil {
			return nil, err
		}
	} else {
		if err := b.charge(memory.NodeSize); err != nil {
			return nil, err
		}
		n = &ir.Node{}
	}
	n.Type = t
	return n, nil
}

func (b *builder) intNode(v int64) (*ir.Node, error) {
	n, err := b.node(ir.IntegerType)
	if err != nil {
		return nil, err
	}
	n.Int = v
	return n, nil
}

func (b *builder) bytesNode(v []byte) (*ir.Node, error) {
	n, err := b.node(ir.BytesType)
	if err != nil {
		return nil, err
	}
	if n.Bytes, err = b.bytes(v); err != nil {
		return nil, err
	}
	return n, nil
}

func (b *builder) containerNode(t ir.Type) (*ir.Node, error) {
	n, err := b.node(t)
	if err != nil {
		return nil, err
	}
	n.Values = []*ir.Node{}
	if t == ir.DictType {
		n.Fields = []*ir.Node{}
	}
	return n, nil
}

func (b *builder) bytes(v []byte) ([]byte, error) {
	if b.arena != nil {
		if b.arena.Tracker() != b.tracker {
			if err := b.charge(len(v)); err != nil {
				return nil, err
			}
		}
		return b.arena.CopyBytes(v)
	}
	if err := b.charge(len(v)); err != nil {
		return nil, err
	}
	return append([]byte{}, v...), nil
}

func (b *builder) appendValue(parent, v *ir.Node) error {
	if err := b.charge(memory.SlotSize); err != nil {
		return err
	}
	parent.Values = append(parent.Values, v)
	return nil
}

func (b *builder) appendEntry(parent, key, v *ir.Node) error {
	if err := b.charge(2 * memory.SlotSize); err != nil {
		return err
	}
	parent.Fields = append(parent.Fields, key)
	parent.Values = append(parent.Values, v)
	return nil
}
