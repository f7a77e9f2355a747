package encode

import (
	"bufio"
	"bytes"
	"io"
	"log/slog"
	"slices"
	"strconv"

	"github.com/clockworkengineer/bencode/debug"
	"github.com/clockworkengineer/bencode/ir"
)

type EncState struct {
	cfg    Config
	indent int
	depth  int

	Color func(ir.Type, ColorAttr, string) string

	scratch []byte
}

func newState(opts []EncodeOption) *EncState {
	es := &EncState{
		cfg:    DefaultConfig(),
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

// Encode writes node to w as canonical bencode. Errors from w are returned
// as is. A malformed tree (see ir.CheckShape) fails with ir.ErrInvalidFormat
// before anything is written.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := newState(opts)
	check := ir.CheckShape
	if es.cfg.RejectNonCanonical {
		check = ir.CheckCanonical
	}
	if err := check(node); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	if err := encode(node, bw, es); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	if debug.Encode() {
		debug.Logger().Debug("encode", slog.String("root", node.TypeName()),
			slog.Bool("sorted", es.cfg.SortDictionaryKeys))
	}
	return nil
}

// EncodeBytes returns the encoding of node.
func EncodeBytes(node *ir.Node, opts ...EncodeOption) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encode(node *ir.Node, w *bufio.Writer, es *EncState) error {
	switch node.Type {
	case ir.IntegerType:
		es.scratch = append(es.scratch[:0], 'i')
		es.scratch = strconv.AppendInt(es.scratch, node.Int, 10)
		es.scratch = append(es.scratch, 'e')
		_, err := w.Write(es.scratch)
		return err
	case ir.BytesType:
		return writeBytes(w, es, node.Bytes)
	case ir.ListType:
		if err := w.WriteByte('l'); err != nil {
			return err
		}
		for _, v := range node.Values {
			if err := encode(v, w, es); err != nil {
				return err
			}
		}
		return w.WriteByte('e')
	case ir.DictType:
		if err := w.WriteByte('d'); err != nil {
			return err
		}
		for _, i := range EntryOrder(node, es.cfg.SortDictionaryKeys) {
			if err := writeBytes(w, es, node.Fields[i].Bytes); err != nil {
				return err
			}
			if err := encode(node.Values[i], w, es); err != nil {
				return err
			}
		}
		return w.WriteByte('e')
	}
	return ir.ErrInvalidFormat
}

func writeBytes(w *bufio.Writer, es *EncState, d []byte) error {
	es.scratch = strconv.AppendInt(es.scratch[:0], int64(len(d)), 10)
	es.scratch = append(es.scratch, ':')
	if _, err := w.Write(es.scratch); err != nil {
		return err
	}
	_, err := w.Write(d)
	return err
}

// EntryOrder returns the indexes of the entries of a dictionary in the
// order they are written. When sorting, the sort is stable and only the
// last of each run of equal keys is kept.
func EntryOrder(node *ir.Node, sorted bool) []int {
	idx := make([]int, len(node.Fields))
	for i := range idx {
		idx[i] = i
	}
	if !sorted {
		return idx
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		return ir.CompareKeys(node.Fields[a].Bytes, node.Fields[b].Bytes)
	})
	j := 0
	for i, k := range idx {
		if i+1 < len(idx) && bytes.Equal(node.Fields[k].Bytes, node.Fields[idx[i+1]].Bytes) {
			continue
		}
		idx[j] = k
		j++
	}
	return idx[:j]
}
