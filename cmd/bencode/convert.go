package main

import (
	"fmt"

	"github.com/clockworkengineer/bencode/convert"
	"github.com/clockworkengineer/bencode/encode"
	"github.com/clockworkengineer/bencode/format"

	"github.com/scott-cotton/cli"
)

func convertCmd(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	return runConvert(cfg, newEnv(cc), args)
}

func runConvert(cfg *ConvertConfig, e *env, args []string) error {
	var opts []encode.EncodeOption
	if cfg.Stored {
		opts = append(opts, encode.SortKeys(false))
	}
	files := fileArgs(args)
	if len(files) > 1 && cfg.Format.IsBinary() {
		return fmt.Errorf("%w: %s output takes a single input", cli.ErrUsage, cfg.Format)
	}
	for _, file := range files {
		n, err := e.node(file, cfg.parseOpts()...)
		if err != nil {
			return err
		}
		if err := convert.Convert(n, e.out, cfg.Format, opts...); err != nil {
			return fmt.Errorf("error converting %s to %s: %w", file, cfg.Format, err)
		}
		switch cfg.Format {
		case format.JSONFormat, format.XMLFormat:
			if _, err := e.out.Write([]byte("\n")); err != nil {
				return err
			}
		}
	}
	return nil
}
