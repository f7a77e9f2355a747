package convert

import (
	"bufio"
	"io"

	"github.com/clockworkengineer/bencode/encode"
	"github.com/clockworkengineer/bencode/ir"
)

// ToXML writes n as XML: <integer>, <string>, <list> and
// <dictionary><item><key/><value/></item></dictionary> elements, with no
// whitespace between them.
func ToXML(n *ir.Node, w io.Writer) error {
	bw := bufio.NewWriter(w)
	if err := toXML(n, bw); err != nil {
		return err
	}
	return bw.Flush()
}

func writeXMLText(w *bufio.Writer, d []byte) error {
	start := 0
	for i, c := range d {
		var ent string
		switch c {
		case '&':
			ent = "&amp;"
		case '<':
			ent = "&lt;"
		case '>':
			ent = "&gt;"
		default:
			continue
		}
		if err := writeEscaped(w, d[start:i]); err != nil {
			return err
		}
		if _, err := w.WriteString(ent); err != nil {
			return err
		}
		start = i + 1
	}
	return writeEscaped(w, d[start:])
}

func toXML(n *ir.Node, w *bufio.Writer) error {
	var err error
	switch n.Type {
	case ir.IntegerType:
		if _, err = w.WriteString("<integer>"); err != nil {
			return err
		}
		if err = writeInt(w, n.Int); err != nil {
			return err
		}
		_, err = w.WriteString("</integer>")
	case ir.BytesType:
		if _, err = w.WriteString("<string>"); err != nil {
			return err
		}
		if err = writeXMLText(w, n.Bytes); err != nil {
			return err
		}
		_, err = w.WriteString("</string>")
	case ir.ListType:
		if _, err = w.WriteString("<list>"); err != nil {
			return err
		}
		for _, v := range n.Values {
			if err = toXML(v, w); err != nil {
				return err
			}
		}
		_, err = w.WriteString("</list>")
	case ir.DictType:
		if _, err = w.WriteString("<dictionary>"); err != nil {
			return err
		}
		for _, k := range encode.EntryOrder(n, true) {
			if _, err = w.WriteString("<item><key>"); err != nil {
				return err
			}
			if err = writeXMLText(w, n.Fields[k].Bytes); err != nil {
				return err
			}
			if _, err = w.WriteString("</key><value>"); err != nil {
				return err
			}
			if err = toXML(n.Values[k], w); err != nil {
				return err
			}
			if _, err = w.WriteString("</value></item>"); err != nil {
				return err
			}
		}
		_, err = w.WriteString("</dictionary>")
	default:
		err = ir.ErrInvalidFormat
	}
	return err
}
