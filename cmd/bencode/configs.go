package main

import (
	"fmt"
	"io"
	"os"

	"github.com/clockworkengineer/bencode/encode"
	"github.com/clockworkengineer/bencode/format"
	"github.com/clockworkengineer/bencode/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color     bool `cli:"name=color desc='view with color'"`
	Lenient   bool `cli:"name=lenient desc='accept unsorted and duplicate dictionary keys'"`
	Iterative bool `cli:"name=iterative desc='parse without recursion'"`
	Depth     int  `cli:"name=depth desc='maximum nesting depth (default 100)'"`
	Mem       int  `cli:"name=mem desc='memory limit for a parse in bytes'"`
	Verbose   bool `cli:"name=v desc='log debug messages'"`
	LogJSON   bool `cli:"name=logjson desc='log as JSON'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func fmtFunc(fp *format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = f
		return f, nil
	})
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	res := []parse.ParseOption{}
	if cfg.Lenient {
		res = append(res, parse.Lenient())
	}
	if cfg.Iterative {
		res = append(res, parse.WithStrategy(parse.Iterative))
	}
	if cfg.Depth > 0 {
		res = append(res, parse.MaxDepth(cfg.Depth))
	}
	if cfg.Mem > 0 {
		res = append(res, parse.MemoryLimit(int64(cfg.Mem)))
	}
	return res
}

// viewOpts colours the view when asked to, or when w is a terminal and
// -color was not given at all.
func (cfg *MainConfig) viewOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	if cfg.Main == nil {
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	Stored bool `cli:"name=stored desc='keep dictionary keys in stored order'"`
	View   *cli.Command
}

type ConvertConfig struct {
	*MainConfig

	Format format.Format
	Stored bool `cli:"name=stored desc='keep dictionary keys in stored order (bencode and text)'"`

	Convert *cli.Command
}

type CanonConfig struct {
	*MainConfig

	Write bool `cli:"name=w desc='rewrite files in place'"`
	List  bool `cli:"name=l desc='only list files that are not canonical'"`

	Canon *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Stream bool `cli:"name=stream desc='check as a stream of events without building a tree'"`
	Stats  bool `cli:"name=stats desc='print node statistics'"`

	Check *cli.Command
}

type InfoConfig struct {
	*MainConfig

	Files bool `cli:"name=files desc='list the files of multi-file torrents'"`

	Info *cli.Command
}

type SumConfig struct {
	*MainConfig

	Algo string `cli:"name=a desc='hash algorithm: blake3, sha1 or sha256'"`
	Raw  bool   `cli:"name=raw desc='hash the file bytes instead of the canonical encoding'"`

	Sum *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type MatchConfig struct {
	*cli.Command
	*MainConfig

	Trim bool `cli:"name=trim desc='trim the results to the match'"`
	File bool `cli:"name=f desc='consider match a file path'"`
}

type DiffConfig struct {
	*MainConfig

	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Lines   bool `cli:"name=lines desc='line diff of the text views'"`

	Diff *cli.Command
}
