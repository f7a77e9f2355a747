package encode

import (
	"bufio"
	"bytes"
	"io"
	"slices"
	"strconv"

	"github.com/clockworkengineer/bencode/ir"
)

// EncodeRef writes a borrowed tree without first copying it into an owned
// one. Options apply as for Encode.
func EncodeRef(ref *ir.RefNode, w io.Writer, opts ...EncodeOption) error {
	es := newState(opts)
	if es.cfg.RejectNonCanonical {
		if err := checkRef(ref); err != nil {
			return err
		}
	}
	bw := bufio.NewWriter(w)
	if err := encodeRef(ref, bw, es); err != nil {
		return err
	}
	return bw.Flush()
}

func encodeRef(ref *ir.RefNode, w *bufio.Writer, es *EncState) error {
	switch ref.Type {
	case ir.IntegerType:
		es.scratch = append(es.scratch[:0], 'i')
		es.scratch = strconv.AppendInt(es.scratch, ref.Int, 10)
		es.scratch = append(es.scratch, 'e')
		_, err := w.Write(es.scratch)
		return err
	case ir.BytesType:
		return writeBytes(w, es, ref.Bytes)
	case ir.ListType:
		if err := w.WriteByte('l'); err != nil {
			return err
		}
		for i := range ref.Values {
			if err := encodeRef(&ref.Values[i], w, es); err != nil {
				return err
			}
		}
		return w.WriteByte('e')
	case ir.DictType:
		if err := w.WriteByte('d'); err != nil {
			return err
		}
		for _, i := range refOrder(ref, es.cfg.SortDictionaryKeys) {
			if err := writeBytes(w, es, ref.Keys[i]); err != nil {
				return err
			}
			if err := encodeRef(&ref.Values[i], w, es); err != nil {
				return err
			}
		}
		return w.WriteByte('e')
	}
	return ir.ErrInvalidFormat
}

func refOrder(ref *ir.RefNode, sorted bool) []int {
	idx := make([]int, len(ref.Keys))
	for i := range idx {
		idx[i] = i
	}
	if !sorted {
		return idx
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		return ir.CompareKeys(ref.Keys[a], ref.Keys[b])
	})
	j := 0
	for i, k := range idx {
		if i+1 < len(idx) && bytes.Equal(ref.Keys[k], ref.Keys[idx[i+1]]) {
			continue
		}
		idx[j] = k
		j++
	}
	return idx[:j]
}

func checkRef(ref *ir.RefNode) error {
	for i := range ref.Values {
		if ref.Type == ir.DictType && i > 0 && ir.CompareKeys(ref.Keys[i-1], ref.Keys[i]) >= 0 {
			return ir.ErrNonCanonicalData
		}
		if err := checkRef(&ref.Values[i]); err != nil {
			return err
		}
	}
	return nil
}
