package bencode

import (
	"fmt"
	"io"
	"os"

	"github.com/clockworkengineer/bencode/encode"
	"github.com/clockworkengineer/bencode/ir"
	"github.com/clockworkengineer/bencode/parse"

	"github.com/moby/sys/atomicwriter"
)

const Version = "v0.4.0"

// Read parses the whole of r as one bencoded value.
func Read(r io.Reader, opts ...parse.ParseOption) (*ir.Node, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading: %w", err)
	}
	return parse.Parse(d, opts...)
}

// ReadFile parses the file at path. "-" reads standard input.
func ReadFile(path string, opts ...parse.ParseOption) (*ir.Node, error) {
	if path == "-" {
		return Read(os.Stdin, opts...)
	}
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	n, err := parse.Parse(d, opts...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}
	return n, nil
}

// WriteFile encodes n and replaces the file at path with the result.
// The file is written to a temporary and renamed, so readers never see a
// partial encoding; nothing is written when encoding fails.
func WriteFile(path string, n *ir.Node, perm os.FileMode, opts ...encode.EncodeOption) error {
	d, err := encode.EncodeBytes(n, opts...)
	if err != nil {
		return err
	}
	return atomicwriter.WriteFile(path, d, perm)
}
