package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/clockworkengineer/bencode/encode"
	"github.com/clockworkengineer/bencode/libdiff"

	"github.com/scott-cotton/cli"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return runDiff(cfg, newEnv(cc), args)
}

func runDiff(cfg *DiffConfig, e *env, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	y1, err := e.node(args[0], cfg.parseOpts()...)
	if err != nil {
		return err
	}
	y2, err := e.node(args[1], cfg.parseOpts()...)
	if err != nil {
		return err
	}
	var differs bool
	if cfg.Lines {
		a, b := encode.ViewString(y1), encode.ViewString(y2)
		if cfg.Reverse {
			a, b = b, a
		}
		differs, err = lineDiff(e.out, a, b)
	} else {
		changes := libdiff.Diff(y1, y2)
		if cfg.Reverse {
			changes = libdiff.Reverse(changes)
		}
		for _, c := range changes {
			if _, err = fmt.Fprintln(e.out, c); err != nil {
				break
			}
		}
		differs = len(changes) > 0
	}
	if err != nil {
		return err
	}
	if differs {
		return errFailed
	}
	return nil
}

func lineDiff(w io.Writer, a, b string) (bool, error) {
	dmp := diffpatch.New()
	ac, bc, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ac, bc, false), lines)
	differs := false
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffpatch.DiffInsert:
			prefix = "+ "
			differs = true
		case diffpatch.DiffDelete:
			prefix = "- "
			differs = true
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			if _, err := io.WriteString(w, prefix+line); err != nil {
				return differs, err
			}
		}
	}
	return differs, nil
}
