package main

import (
	"github.com/clockworkengineer/bencode/format"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "bencode").
		WithSynopsis("bencode [opts] command [opts]").
		WithDescription("bencode is a tool for working with bencoded files.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return bencodeMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			ConvertCommand(cfg),
			CanonCommand(cfg),
			CheckCommand(cfg),
			InfoCommand(cfg),
			SumCommand(cfg),
			GetCommand(cfg),
			MatchCommand(cfg),
			DiffCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithOpts(opts...).
		WithSynopsis("view [files]").
		WithDescription("view bencoded files as indented text, in color on terminals").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func ConvertCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ConvertConfig{MainConfig: mainCfg, Format: format.JSONFormat}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "O",
		Aliases:     []string{"ofmt"},
		Description: "output format: json/j, yaml/y, toml, xml/x, cbor/c, bencode/b, text/t",
		Type:        cli.NamedFuncOpt(fmtFunc(&cfg.Format), "(format)"),
	})
	cmd := cli.NewCommand("convert").
		WithAliases("c", "co").
		WithOpts(opts...).
		WithSynopsis("convert [-O format] [files]").
		WithDescription("convert bencoded files to other formats").
		WithRun(func(cc *cli.Context, args []string) error {
			return convertCmd(cfg, cc, args)
		})
	cfg.Convert = cmd
	return cmd
}

func CanonCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CanonConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("canon").
		WithAliases("fmt").
		WithOpts(opts...).
		WithSynopsis("canon [-w | -l] [files]").
		WithDescription("re-encode files canonically, with sorted and unique dictionary keys").
		WithRun(func(cc *cli.Context, args []string) error {
			return canon(cfg, cc, args)
		})
	cfg.Canon = cmd
	return cmd
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("check").
		WithAliases("ck").
		WithOpts(opts...).
		WithSynopsis("check [-stream] [-stats] [files]").
		WithDescription("validate bencoded files; exits 1 if any is invalid").
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
	cfg.Check = cmd
	return cmd
}

func InfoCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &InfoConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("info").
		WithAliases("i").
		WithOpts(opts...).
		WithSynopsis("info [-files] torrents").
		WithDescription("show the metainfo and info hash of .torrent files").
		WithRun(func(cc *cli.Context, args []string) error {
			return info(cfg, cc, args)
		})
	cfg.Info = cmd
	return cmd
}

func SumCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SumConfig{MainConfig: mainCfg, Algo: "blake3"}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("sum").
		WithOpts(opts...).
		WithSynopsis("sum [-a algo] [-raw] [files]").
		WithDescription("hash the canonical encoding of files, so key order does not change the sum").
		WithRun(func(cc *cli.Context, args []string) error {
			return sum(cfg, cc, args)
		})
	cfg.Sum = cmd
	return cmd
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g", "ge").
		WithSynopsis("get <path> [files]").
		WithDescription("get elements such as info.files[0].length from files").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func MatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Command, "match").
		WithAliases("m").
		WithSynopsis("match [opts] <matchobj> [files]").
		WithDescription("print the files that match a bencoded match document").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return match(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithOpts(opts...).
		WithSynopsis("diff [-r] [-lines] a b").
		WithDescription("diff two bencoded files; exits 1 if they differ").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}
