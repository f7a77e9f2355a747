package main

import (
	"fmt"

	"github.com/clockworkengineer/bencode"
	"github.com/clockworkengineer/bencode/encode"
	"github.com/clockworkengineer/bencode/ir"
	"github.com/clockworkengineer/bencode/parse"

	"github.com/scott-cotton/cli"
)

func match(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	return runMatch(cfg, newEnv(cc), args)
}

func runMatch(cfg *MatchConfig, e *env, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: match requires 1 argument, a match document", cli.ErrUsage)
	}
	m, err := getMatch(cfg, e, args[0])
	if err != nil {
		return err
	}
	opts := cfg.viewOpts(e.out)
	found := 0
	for _, file := range fileArgs(args[1:]) {
		n, err := e.node(file, cfg.parseOpts()...)
		if err != nil {
			return err
		}
		if !bencode.Match(n, m) {
			continue
		}
		found++
		fmt.Fprintln(e.out, file)
		if !cfg.Trim {
			continue
		}
		if err := encode.View(bencode.Trim(m, n), e.out, opts...); err != nil {
			return fmt.Errorf("error encoding output: %w", err)
		}
	}
	if found == 0 {
		return errFailed
	}
	return nil
}

func getMatch(cfg *MatchConfig, e *env, arg string) (*ir.Node, error) {
	if cfg.File {
		return e.node(arg, cfg.parseOpts()...)
	}
	res, err := parse.ParseString(arg, cfg.parseOpts()...)
	if err != nil {
		return nil, fmt.Errorf("error decoding match: %w", err)
	}
	return res, nil
}
