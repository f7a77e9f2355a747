package convert

import (
	"bufio"
	"io"

	"github.com/clockworkengineer/bencode/encode"
	"github.com/clockworkengineer/bencode/ir"
)

// ToJSON writes n as compact JSON. Dictionaries become objects with sorted
// keys; byte strings become JSON strings escaped byte by byte.
func ToJSON(n *ir.Node, w io.Writer) error {
	bw := bufio.NewWriter(w)
	if err := toJSON(n, bw); err != nil {
		return err
	}
	return bw.Flush()
}

func toJSON(n *ir.Node, w *bufio.Writer) error {
	switch n.Type {
	case ir.IntegerType:
		return writeInt(w, n.Int)
	case ir.BytesType:
		return writeQuoted(w, n.Bytes)
	case ir.ListType:
		if err := w.WriteByte('['); err != nil {
			return err
		}
		for i, v := range n.Values {
			if i > 0 {
				if err := w.WriteByte(','); err != nil {
					return err
				}
			}
			if err := toJSON(v, w); err != nil {
				return err
			}
		}
		return w.WriteByte(']')
	case ir.DictType:
		if err := w.WriteByte('{'); err != nil {
			return err
		}
		for i, k := range encode.EntryOrder(n, true) {
			if i > 0 {
				if err := w.WriteByte(','); err != nil {
					return err
				}
			}
			if err := writeQuoted(w, n.Fields[k].Bytes); err != nil {
				return err
			}
			if err := w.WriteByte(':'); err != nil {
				return err
			}
			if err := toJSON(n.Values[k], w); err != nil {
				return err
			}
		}
		return w.WriteByte('}')
	}
	return ir.ErrInvalidFormat
}
