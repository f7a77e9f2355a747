package convert

import (
	"bufio"
	"strconv"
)

const hexDigits = "0123456789abcdef"

// writeEscaped writes d byte by byte: printable ASCII as is, '"' and '\'
// backslash escaped and everything else as \u00XX. The output is plain
// ASCII whatever the input bytes are.
func writeEscaped(w *bufio.Writer, d []byte) error {
	for _, c := range d {
		var err error
		switch {
		case c == '"' || c == '\\':
			_, err = w.Write([]byte{'\\', c})
		case c >= 0x20 && c < 0x7f:
			err = w.WriteByte(c)
		default:
			_, err = w.Write([]byte{'\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xf]})
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func writeQuoted(w *bufio.Writer, d []byte) error {
	if err := w.WriteByte('"'); err != nil {
		return err
	}
	if err := writeEscaped(w, d); err != nil {
		return err
	}
	return w.WriteByte('"')
}

func writeInt(w *bufio.Writer, v int64) error {
	var buf [20]byte
	_, err := w.Write(strconv.AppendInt(buf[:0], v, 10))
	return err
}
