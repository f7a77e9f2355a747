package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/clockworkengineer/bencode/metainfo"

	"github.com/scott-cotton/cli"
)

func info(cfg *InfoConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Info.Parse(cc, args)
	if err != nil {
		return err
	}
	return runInfo(cfg, newEnv(cc), args)
}

func runInfo(cfg *InfoConfig, e *env, args []string) error {
	files := fileArgs(args)
	for i, file := range files {
		d, err := e.read(file)
		if err != nil {
			return err
		}
		m, err := metainfo.Parse(d, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error reading metainfo from %s: %w", file, err)
		}
		writeInfo(e.out, m, cfg.Files)
		if i < len(files)-1 {
			fmt.Fprintln(e.out)
		}
	}
	return nil
}

func writeInfo(w io.Writer, m *metainfo.Metainfo, listFiles bool) {
	field := func(k string, v any) {
		fmt.Fprintf(w, "%-14s %v\n", k+":", v)
	}
	fp := m.Fingerprint()
	field("name", m.Info.Name)
	field("info hash", m.InfoHashHex())
	field("blake3", hex.EncodeToString(fp[:]))
	field("announce", m.Announce)
	for i, tier := range m.AnnounceList {
		field(fmt.Sprintf("tier %d", i), strings.Join(tier, " "))
	}
	if m.Comment != "" {
		field("comment", m.Comment)
	}
	if m.CreatedBy != "" {
		field("created by", m.CreatedBy)
	}
	if !m.CreationDate.IsZero() {
		field("created", m.CreationDate.Format(time.RFC3339))
	}
	if m.Encoding != "" {
		field("encoding", m.Encoding)
	}
	field("piece length", m.Info.PieceLength)
	field("pieces", m.Info.NumPieces())
	field("private", m.Info.Private)
	field("total length", m.Info.TotalLength())
	if m.Info.Files == nil {
		return
	}
	field("files", len(m.Info.Files))
	if !listFiles {
		return
	}
	for _, f := range m.Info.Files {
		fmt.Fprintf(w, "  %12d  %s\n", f.Length, strings.Join(f.Path, "/"))
	}
}
