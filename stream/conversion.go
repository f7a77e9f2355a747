package stream

import (
	"fmt"

	"github.com/clockworkengineer/bencode/ir"
)

// NodeToEvents converts an ir.Node to a sequence of events in stored
// dictionary order.
func NodeToEvents(node *ir.Node) ([]Event, error) {
	var events []Event
	var walk func(n *ir.Node) error
	walk = func(n *ir.Node) error {
		switch n.Type {
		case ir.IntegerType:
			events = append(events, Event{Type: EventInt, Int: n.Int})
		case ir.BytesType:
			events = append(events, Event{Type: EventBytes, Bytes: n.Bytes})
		case ir.ListType:
			events = append(events, Event{Type: EventBeginList})
			for _, v := range n.Values {
				if err := walk(v); err != nil {
					return err
				}
			}
			events = append(events, Event{Type: EventEnd})
		case ir.DictType:
			events = append(events, Event{Type: EventBeginDict})
			for i, f := range n.Fields {
				events = append(events, Event{Type: EventKey, Key: f.Bytes})
				if err := walk(n.Values[i]); err != nil {
					return err
				}
			}
			events = append(events, Event{Type: EventEnd})
		default:
			return fmt.Errorf("unknown node type %d", n.Type)
		}
		return nil
	}
	if err := walk(node); err != nil {
		return nil, err
	}
	return events, nil
}

// EventsToNode converts a sequence of events to an ir.Node.
// Takes events read from Decoder.
func EventsToNode(events []Event) (*ir.Node, error) {
	if len(events) == 0 {
		return nil, nil
	}
	b := &nodeBuilder{}
	for i := range events {
		if err := b.add(&events[i]); err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		if b.root != nil && i != len(events)-1 {
			return nil, fmt.Errorf("event %d: %w", i+1, &Error{Msg: "events after complete document"})
		}
	}
	if b.root == nil {
		return nil, ir.ErrUnexpectedEOF
	}
	return b.root, nil
}

type nodeFrame struct {
	node *ir.Node
	key  []byte
}

// nodeBuilder assembles a tree from events, one at a time.
type nodeBuilder struct {
	state *State
	stack []nodeFrame
	root  *ir.Node
}

func (b *nodeBuilder) started() bool {
	return len(b.stack) > 0
}

func (b *nodeBuilder) add(ev *Event) error {
	if b.state == nil {
		b.state = NewState(false)
	}
	if err := b.state.ProcessEvent(ev); err != nil {
		return err
	}
	switch ev.Type {
	case EventBeginList:
		b.stack = append(b.stack, nodeFrame{node: ir.FromSlice(nil)})
	case EventBeginDict:
		b.stack = append(b.stack, nodeFrame{node: ir.FromKeyVals(nil)})
	case EventKey:
		b.stack[len(b.stack)-1].key = ev.Key
	case EventEnd:
		top := b.stack[len(b.stack)-1]
		b.stack = b.stack[:len(b.stack)-1]
		b.attach(top.node)
	case EventInt:
		b.attach(ir.FromInt(ev.Int))
	case EventBytes:
		b.attach(ir.FromBytes(ev.Bytes))
	}
	return nil
}

func (b *nodeBuilder) attach(n *ir.Node) {
	if len(b.stack) == 0 {
		b.root = n
		return
	}
	parent := &b.stack[len(b.stack)-1]
	if parent.node.Type == ir.DictType {
		parent.node.Fields = append(parent.node.Fields, ir.FromBytes(parent.key))
		parent.node.Values = append(parent.node.Values, n)
		parent.key = nil
		return
	}
	parent.node.Values = append(parent.node.Values, n)
}
