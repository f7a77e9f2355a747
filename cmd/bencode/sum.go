package main

import (
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"

	"github.com/clockworkengineer/bencode/encode"
	"github.com/clockworkengineer/bencode/parse"

	"github.com/scott-cotton/cli"
	"github.com/zeebo/blake3"
)

func newHash(algo string) (hash.Hash, error) {
	switch algo {
	case "blake3", "b3":
		return blake3.New(), nil
	case "sha1":
		return sha1.New(), nil
	case "sha256":
		return sha256.New(), nil
	}
	return nil, fmt.Errorf("%w: unknown hash algorithm %q", cli.ErrUsage, algo)
}

func sum(cfg *SumConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Sum.Parse(cc, args)
	if err != nil {
		return err
	}
	return runSum(cfg, newEnv(cc), args)
}

func runSum(cfg *SumConfig, e *env, args []string) error {
	h, err := newHash(cfg.Algo)
	if err != nil {
		return err
	}
	for _, file := range fileArgs(args) {
		d, err := e.read(file)
		if err != nil {
			return err
		}
		if !cfg.Raw {
			n, err := parse.Parse(d, cfg.parseOpts()...)
			if err != nil {
				return fmt.Errorf("error decoding %s: %w", file, err)
			}
			if d, err = encode.EncodeBytes(n); err != nil {
				return err
			}
		}
		h.Reset()
		h.Write(d)
		fmt.Fprintf(e.out, "%s  %s\n", hex.EncodeToString(h.Sum(nil)), file)
	}
	return nil
}
