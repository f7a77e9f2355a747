package main

import (
	"fmt"

	"github.com/clockworkengineer/bencode"
	"github.com/clockworkengineer/bencode/encode"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return runGet(cfg, newEnv(cc), args)
}

func runGet(cfg *GetConfig, e *env, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	opts := cfg.viewOpts(e.out)
	for _, file := range fileArgs(args[1:]) {
		n, err := e.node(file, cfg.parseOpts()...)
		if err != nil {
			return err
		}
		res, err := bencode.Get(n, path)
		if err != nil {
			return fmt.Errorf("error querying %s with %s: %w", file, path, err)
		}
		if err := encode.View(res, e.out, opts...); err != nil {
			return err
		}
	}
	return nil
}
