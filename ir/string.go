package ir

import (
	"encoding/hex"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// String renders the tree in a compact human-readable form, e.g.
// {"foo": "bar", "spam": [1, 2, 3]}. Byte strings that are not printable
// text are shown as hex.
func (y *Node) String() string {
	if y == nil {
		return "<nil>"
	}
	b := &strings.Builder{}
	y.writeTo(b)
	return b.String()
}

func (y *Node) writeTo(b *strings.Builder) {
	switch y.Type {
	case IntegerType:
		b.WriteString(strconv.FormatInt(y.Int, 10))
	case BytesType:
		b.WriteString(QuoteBytes(y.Bytes))
	case ListType:
		b.WriteByte('[')
		for i, v := range y.Values {
			if i > 0 {
				b.WriteString(", ")
			}
			v.writeTo(b)
		}
		b.WriteByte(']')
	case DictType:
		b.WriteByte('{')
		for i, f := range y.Fields {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(QuoteBytes(f.Bytes))
			b.WriteString(": ")
			y.Values[i].writeTo(b)
		}
		b.WriteByte('}')
	}
}

// QuoteBytes quotes printable UTF-8 text and renders anything else as
// 0x-prefixed hex.
func QuoteBytes(d []byte) string {
	if IsText(d) {
		return strconv.Quote(string(d))
	}
	return "0x" + hex.EncodeToString(d)
}

// IsText reports whether d is valid UTF-8 made of printable runes and
// ordinary whitespace.
func IsText(d []byte) bool {
	if !utf8.Valid(d) {
		return false
	}
	for _, r := range string(d) {
		if !unicode.IsPrint(r) && !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
