package convert

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/clockworkengineer/bencode/debug"
	"github.com/clockworkengineer/bencode/encode"
	"github.com/clockworkengineer/bencode/format"
	"github.com/clockworkengineer/bencode/ir"
)

// Convert writes n to w in format f. The encode options apply to the
// bencode and text formats.
func Convert(n *ir.Node, w io.Writer, f format.Format, opts ...encode.EncodeOption) error {
	if debug.Encode() {
		debug.Logger().Debug("convert", slog.String("format", f.String()),
			slog.String("root", n.TypeName()))
	}
	switch f {
	case format.BencodeFormat:
		return encode.Encode(n, w, opts...)
	case format.TextFormat:
		return encode.View(n, w, opts...)
	case format.JSONFormat:
		return ToJSON(n, w)
	case format.YAMLFormat:
		return ToYAML(n, w)
	case format.TOMLFormat:
		return ToTOML(n, w)
	case format.XMLFormat:
		return ToXML(n, w)
	case format.CBORFormat:
		return ToCBOR(n, w)
	}
	return fmt.Errorf("%w: %d", format.ErrBadFormat, int(f))
}
