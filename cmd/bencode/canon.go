package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"github.com/clockworkengineer/bencode"
	"github.com/clockworkengineer/bencode/encode"
	"github.com/clockworkengineer/bencode/parse"

	"github.com/scott-cotton/cli"
)

func canon(cfg *CanonConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Canon.Parse(cc, args)
	if err != nil {
		return err
	}
	return runCanon(cfg, newEnv(cc), args)
}

func runCanon(cfg *CanonConfig, e *env, args []string) error {
	if cfg.Write && cfg.List {
		return fmt.Errorf("%w: only one of -w, -l may be specified", cli.ErrUsage)
	}
	files := fileArgs(args)
	if cfg.Write && files[0] == "-" {
		return fmt.Errorf("%w: -w needs file arguments", cli.ErrUsage)
	}
	opts := append(cfg.parseOpts(), parse.Lenient())
	for _, file := range files {
		d, err := e.read(file)
		if err != nil {
			return err
		}
		n, err := parse.Parse(d, opts...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		out, err := encode.EncodeBytes(n)
		if err != nil {
			return err
		}
		same := bytes.Equal(d, out)
		switch {
		case cfg.List:
			if !same {
				fmt.Fprintln(e.out, file)
			}
		case cfg.Write:
			if same {
				continue
			}
			perm := os.FileMode(0o644)
			if st, err := os.Stat(file); err == nil {
				perm = st.Mode().Perm()
			}
			if err := bencode.WriteFile(file, n, perm); err != nil {
				return err
			}
			slog.Debug("canonicalised", "file", file, "in", len(d), "out", len(out))
		default:
			if _, err := e.out.Write(out); err != nil {
				return err
			}
		}
	}
	return nil
}
