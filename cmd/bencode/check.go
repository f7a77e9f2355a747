package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/clockworkengineer/bencode/parse"
	"github.com/clockworkengineer/bencode/stream"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	return runCheck(cfg, newEnv(cc), args)
}

func runCheck(cfg *CheckConfig, e *env, args []string) error {
	failed := 0
	for _, file := range fileArgs(args) {
		var (
			msg string
			err error
		)
		if cfg.Stream {
			msg, err = checkStream(cfg, e, file)
		} else {
			msg, err = checkTree(cfg, e, file)
		}
		if err != nil {
			failed++
			fmt.Fprintf(e.out, "%s: %v\n", file, err)
			continue
		}
		fmt.Fprintf(e.out, "%s: ok%s\n", file, msg)
	}
	if failed > 0 {
		slog.Debug("check failed", "files", failed)
		return errFailed
	}
	return nil
}

func checkTree(cfg *CheckConfig, e *env, file string) (string, error) {
	d, err := e.read(file)
	if err != nil {
		return "", err
	}
	// decode rather than validate so -iterative and -mem apply
	dec := parse.NewDecoder(cfg.parseOpts()...)
	if _, err := dec.Decode(d); err != nil {
		return "", fmt.Errorf("%w at offset %d", err, dec.Offset())
	}
	if !cfg.Stats {
		return "", nil
	}
	st, err := dec.Validate(d)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(" nodes=%d containers=%d integers=%d strings=%d bytes=%d depth=%d estimate=%d",
		st.Nodes, st.Containers, st.Integers, st.Strings, st.Bytes, st.MaxDepth, st.Estimate()), nil
}

func checkStream(cfg *CheckConfig, e *env, file string) (string, error) {
	r, err := e.open(file)
	if err != nil {
		return "", err
	}
	defer r.Close()
	dec := stream.NewDecoder(r, cfg.parseOpts()...)
	events, depth := 0, 0
	for {
		_, err := dec.ReadEvent()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("%w at offset %d (%s)", err, dec.Offset(), dec.CurrentPath())
		}
		events++
		depth = max(depth, dec.Depth())
	}
	if !cfg.Stats {
		return "", nil
	}
	return fmt.Sprintf(" events=%d depth=%d bytes=%d", events, depth, dec.Offset()), nil
}
