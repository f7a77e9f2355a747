package encode

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/clockworkengineer/bencode/ir"
)

// View writes an indented human-readable rendering of node, one entry per
// line. Printable byte strings are quoted; others are shown as 0x hex.
// Dictionary entries follow the same ordering rules as Encode.
func View(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	if err := ir.CheckShape(node); err != nil {
		return err
	}
	es := newState(opts)
	bw := bufio.NewWriter(w)
	if err := view(node, bw, es); err != nil {
		return err
	}
	if _, err := bw.WriteString("\n"); err != nil {
		return err
	}
	return bw.Flush()
}

func ViewString(node *ir.Node, opts ...EncodeOption) string {
	buf := &strings.Builder{}
	if err := View(node, buf, opts...); err != nil {
		return err.Error()
	}
	return buf.String()
}

func (es *EncState) paint(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

func (es *EncState) newline(w *bufio.Writer) error {
	_, err := w.WriteString("\n" + strings.Repeat(" ", es.depth*es.indent))
	return err
}

func viewBytes(es *EncState, d []byte) string {
	if ir.IsText(d) {
		return es.paint(ir.BytesType, ValueColor, strconv.Quote(string(d)))
	}
	return es.paint(ir.BytesType, BinaryColor, ir.QuoteBytes(d))
}

func view(node *ir.Node, w *bufio.Writer, es *EncState) error {
	switch node.Type {
	case ir.IntegerType:
		_, err := w.WriteString(es.paint(ir.IntegerType, ValueColor, strconv.FormatInt(node.Int, 10)))
		return err
	case ir.BytesType:
		_, err := w.WriteString(viewBytes(es, node.Bytes))
		return err
	case ir.ListType:
		return viewContainer(w, es, ir.ListType, "[", "]", len(node.Values), func(i int) error {
			return view(node.Values[i], w, es)
		})
	case ir.DictType:
		order := EntryOrder(node, es.cfg.SortDictionaryKeys)
		return viewContainer(w, es, ir.DictType, "{", "}", len(order), func(i int) error {
			k := order[i]
			key := node.Fields[k].Bytes
			var ks string
			if ir.IsText(key) {
				ks = es.paint(ir.DictType, FieldColor, strconv.Quote(string(key)))
			} else {
				ks = es.paint(ir.BytesType, BinaryColor, ir.QuoteBytes(key))
			}
			if _, err := w.WriteString(ks + es.paint(ir.DictType, SepColor, ":") + " "); err != nil {
				return err
			}
			return view(node.Values[k], w, es)
		})
	}
	return ir.ErrInvalidFormat
}

func viewContainer(w *bufio.Writer, es *EncState, t ir.Type, open, end string, n int, item func(int) error) error {
	if n == 0 {
		_, err := w.WriteString(es.paint(t, SepColor, open+end))
		return err
	}
	if _, err := w.WriteString(es.paint(t, SepColor, open)); err != nil {
		return err
	}
	es.depth++
	for i := range n {
		if err := es.newline(w); err != nil {
			return err
		}
		if err := item(i); err != nil {
			return err
		}
		if i < n-1 {
			if _, err := w.WriteString(es.paint(t, SepColor, ",")); err != nil {
				return err
			}
		}
	}
	es.depth--
	if err := es.newline(w); err != nil {
		return err
	}
	_, err := w.WriteString(es.paint(t, SepColor, end))
	return err
}
