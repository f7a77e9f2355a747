package convert

import (
	"io"

	"github.com/clockworkengineer/bencode/encode"
	"github.com/clockworkengineer/bencode/ir"

	"github.com/fxamacker/cbor/v2"
)

// cborMode encodes with Core Deterministic Encoding (RFC 8949 4.2), so a
// tree always produces the same bytes.
var cborMode cbor.EncMode

func init() {
	var err error
	cborMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("convert: CBOR encoder initialization failed: " + err.Error())
	}
}

// ToCBOR writes n as a single CBOR data item. Byte strings, keys included,
// stay CBOR byte strings so no information is lost.
func ToCBOR(n *ir.Node, w io.Writer) error {
	return cborMode.NewEncoder(w).Encode(cborValue(n))
}

// CBORBytes returns the CBOR encoding of n.
func CBORBytes(n *ir.Node) ([]byte, error) {
	return cborMode.Marshal(cborValue(n))
}

func cborValue(n *ir.Node) any {
	switch n.Type {
	case ir.IntegerType:
		return n.Int
	case ir.BytesType:
		return n.Bytes
	case ir.ListType:
		res := make([]any, len(n.Values))
		for i, v := range n.Values {
			res[i] = cborValue(v)
		}
		return res
	}
	order := encode.EntryOrder(n, true)
	res := make(map[cbor.ByteString]any, len(order))
	for _, k := range order {
		res[cbor.ByteString(n.Fields[k].Bytes)] = cborValue(n.Values[k])
	}
	return res
}
