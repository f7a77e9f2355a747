package parse

import (
	"fmt"

	"github.com/clockworkengineer/bencode/ir"
	"github.com/clockworkengineer/bencode/memory"
)

// DefaultMaxDepth is the nesting limit used when none is configured.
const DefaultMaxDepth = 100

// Strategy selects how Parse walks nested containers.
type Strategy int

const (
	// Recursive descends with one call frame per nesting level.
	Recursive Strategy = iota
	// Iterative keeps nesting state on an explicit bounded stack.
	Iterative
)

func (s Strategy) String() string {
	switch s {
	case Recursive:
		return "recursive"
	case Iterative:
		return "iterative"
	}
	return "<unknown strategy>"
}

func (s Strategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Strategy) UnmarshalText(d []byte) error {
	ps, ok := map[string]Strategy{
		"recursive": Recursive,
		"r":         Recursive,
		"iterative": Iterative,
		"i":         Iterative,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unknown parse strategy %q", d)
	}
	*s = ps
	return nil
}

// Config governs a parse. The zero value is not the default; start from
// DefaultConfig.
type Config struct {
	// MaxDepth bounds container nesting. A top-level container is at depth
	// 1. Values <= 0 mean DefaultMaxDepth.
	MaxDepth int
	// EnforceCanonical rejects dictionaries whose keys are not strictly
	// increasing. Integer and length digit rules apply regardless.
	EnforceCanonical bool
	// AllowTrailingData accepts bytes after the root value.
	AllowTrailingData bool
	// MaxInputLength rejects longer inputs up front; 0 means no limit.
	MaxInputLength int
	Strategy       Strategy

	// MemoryLimit bounds the bytes a single parse may commit; 0 means no
	// limit. Ignored when Tracker is set.
	MemoryLimit int64
	// Tracker, when set, is charged for every parse made with this config
	// and is not reset between parses.
	Tracker *memory.Tracker
	// Arena, when set, holds copied byte strings.
	Arena *memory.Arena
	// Nodes, when set, supplies tree nodes.
	Nodes *memory.Slab[ir.Node]
}

func DefaultConfig() Config {
	return Config{
		MaxDepth:         DefaultMaxDepth,
		EnforceCanonical: true,
	}
}

func (c *Config) maxDepth() int {
	if c.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return c.MaxDepth
}

func (c *Config) tracker() *memory.Tracker {
	if c.Tracker != nil {
		return c.Tracker
	}
	if c.MemoryLimit > 0 {
		return memory.NewTracker(c.MemoryLimit)
	}
	return nil
}

type ParseOption func(*Config)

func MaxDepth(n int) ParseOption {
	return func(c *Config) { c.MaxDepth = n }
}

// Canonical toggles canonical key-order enforcement.
func Canonical(v bool) ParseOption {
	return func(c *Config) { c.EnforceCanonical = v }
}

// Lenient is Canonical(false).
func Lenient() ParseOption {
	return Canonical(false)
}

func AllowTrailing(v bool) ParseOption {
	return func(c *Config) { c.AllowTrailingData = v }
}

func MaxInputLength(n int) ParseOption {
	return func(c *Config) { c.MaxInputLength = n }
}

func WithStrategy(s Strategy) ParseOption {
	return func(c *Config) { c.Strategy = s }
}

func MemoryLimit(n int64) ParseOption {
	return func(c *Config) { c.MemoryLimit = n }
}

func WithTracker(t *memory.Tracker) ParseOption {
	return func(c *Config) { c.Tracker = t }
}

func WithArena(a *memory.Arena) ParseOption {
	return func(c *Config) { c.Arena = a }
}

func WithNodes(s *memory.Slab[ir.Node]) ParseOption {
	return func(c *Config) { c.Nodes = s }
}

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) ParseOption {
	return func(c *Config) { *c = cfg }
}

func buildConfig(opts []ParseOption) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
