package parse

import (
	"log/slog"

	"github.com/clockworkengineer/bencode/debug"
	"github.com/clockworkengineer/bencode/ir"
)

// Parse parses a single bencode value from d using the configured
// strategy.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	dec := &Decoder{cfg: buildConfig(opts)}
	return dec.Decode(d)
}

func ParseString(v string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(v), opts...)
}

// Decoder is a reusable parse configuration. A Decoder holds the offset of
// its last call and so must not be shared between goroutines; create one
// per goroutine.
type Decoder struct {
	cfg    Config
	offset int
}

func NewDecoder(opts ...ParseOption) *Decoder {
	return &Decoder{cfg: buildConfig(opts)}
}

// Config returns a copy of the decoder's configuration.
func (dec *Decoder) Config() Config {
	return dec.cfg
}

// Offset is the input position reached by the last call: the end of the
// root value on success, the failure point otherwise.
func (dec *Decoder) Offset() int {
	return dec.offset
}

func (dec *Decoder) Decode(d []byte) (*ir.Node, error) {
	var (
		n   *ir.Node
		err error
	)
	switch dec.cfg.Strategy {
	case Iterative:
		n, dec.offset, err = parseIterative(d, &dec.cfg)
	default:
		n, dec.offset, err = parseRecursive(d, &dec.cfg)
	}
	dec.log("decode", err)
	return n, err
}

func (dec *Decoder) DecodeBorrowed(d []byte) (ir.RefNode, error) {
	n, off, err := parseBorrowed(d, &dec.cfg)
	dec.offset = off
	dec.log("decode borrowed", err)
	return n, err
}

func (dec *Decoder) Validate(d []byte) (Stats, error) {
	st, off, err := validate(d, &dec.cfg)
	dec.offset = off
	dec.log("validate", err)
	return st, err
}

func (dec *Decoder) log(op string, err error) {
	if !debug.Parse() {
		return
	}
	attrs := []any{
		slog.String("strategy", dec.cfg.Strategy.String()),
		slog.Int("offset", dec.offset),
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}
	debug.Logger().Debug(op, attrs...)
}
