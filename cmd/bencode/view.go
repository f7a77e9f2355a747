package main

import (
	"github.com/clockworkengineer/bencode/encode"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	return runView(cfg, newEnv(cc), args)
}

func runView(cfg *ViewConfig, e *env, args []string) error {
	opts := cfg.viewOpts(e.out)
	if cfg.Stored {
		opts = append(opts, encode.SortKeys(false))
	}
	files := fileArgs(args)
	for i, file := range files {
		n, err := e.node(file, cfg.parseOpts()...)
		if err != nil {
			return err
		}
		if err := encode.View(n, e.out, opts...); err != nil {
			return err
		}
		if i < len(files)-1 {
			if _, err := e.out.Write([]byte("---\n")); err != nil {
				return err
			}
		}
	}
	return nil
}
