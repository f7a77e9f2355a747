package main

import (
	"fmt"
	"io"
	"os"

	"github.com/clockworkengineer/bencode/ir"
	"github.com/clockworkengineer/bencode/parse"

	"github.com/scott-cotton/cli"
)

// env is the standard input and output a command body runs against.
type env struct {
	in  io.Reader
	out io.Writer
}

func newEnv(cc *cli.Context) *env {
	return &env{in: cc.In, out: cc.Out}
}

func (e *env) open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(e.in), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", path, err)
	}
	return f, nil
}

func (e *env) read(path string) ([]byte, error) {
	r, err := e.open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

func (e *env) node(path string, opts ...parse.ParseOption) (*ir.Node, error) {
	d, err := e.read(path)
	if err != nil {
		return nil, err
	}
	n, err := parse.Parse(d, opts...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}
	return n, nil
}

// fileArgs returns args, or standard input when there are none.
func fileArgs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

// errFailed makes the process exit 1 without a usage message.
var errFailed error = cli.ExitCodeErr(1)
