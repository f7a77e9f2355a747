package convert

import (
	"encoding/hex"

	"github.com/clockworkengineer/bencode/ir"
)

// textValue returns d as a string when it is printable text and as 0x
// prefixed hex otherwise, for formats whose strings must be valid UTF-8.
func textValue(d []byte) string {
	if ir.IsText(d) {
		return string(d)
	}
	return "0x" + hex.EncodeToString(d)
}
