// Package config handles application configuration and command-line argument parsing.
package config

import (
	"fmt"
	"os"

	"github.com/alexflint/go-arg"
	"go.uber.org/zap"

	"github.com/joe/dir-iter/pkg/diriter"
	"github.com/joe/dir-iter/pkg/filesystem"
)

// Config holds the application configuration
type Config struct {
	Root        string   `arg:"positional" default:"." help:"Directory to walk: a local path or sftp://user@host[:port]/path"`
	Patterns    []string `arg:"-p,--pattern,separate" help:"Glob a file must match (repeatable; any match is enough)"`
	Extensions  []string `arg:"-e,--ext,separate" help:"Extension a file must have, as a shorthand for -p '*.ext' (repeatable)"`
	Filters     []string `arg:"-f,--filter,separate" help:"Sibling ordering filter, applied in the order given: files-first|directories-first|order-by-mtime-asc|order-by-mtime-desc|order-by-name|reverse"`
	Hidden      bool     `arg:"-a,--hidden" help:"Include hidden files and directories"`
	IgnoreCase  bool     `arg:"-i,--ignore-case" help:"Match patterns case-insensitively"`
	Interactive bool     `arg:"-I,--interactive" help:"Browse the tree interactively (terminal only)"`
	Limit       int      `arg:"-n,--limit" help:"Stop after this many files (0 = no limit)"`
	Check       bool     `arg:"--check" help:"Drain the iterator and compare it with a full walk of the tree"`
	Verbose     bool     `arg:"-v,--verbose" help:"Log every directory scan"`
}

// Description returns the program description for go-arg
func (Config) Description() string {
	return "Walk a directory tree lazily, one file at a time, picking up changes made while it runs"
}

// Version returns the version string for go-arg
func (Config) Version() string {
	return "dir-iter 1.0.0"
}

// ParseFlags parses command-line flags and returns configuration
func ParseFlags() (*Config, error) {
	cfg := &Config{Root: "."}

	arg.MustParse(cfg)

	return PostProcessConfig(cfg)
}

// PostProcessConfig applies post-processing logic to a parsed config
func PostProcessConfig(cfg *Config) (*Config, error) {
	if cfg.Root == "" {
		cfg.Root = "."
	}

	if cfg.Limit < 0 {
		return nil, fmt.Errorf("limit must not be negative: %d", cfg.Limit) //nolint:err113 // user-facing validation
	}

	if cfg.Check && cfg.Interactive {
		return nil, fmt.Errorf("--check and --interactive cannot be combined") //nolint:err113,perfsprint // user-facing validation
	}

	if err := cfg.ValidateRoot(); err != nil {
		return nil, err
	}

	// Build a throwaway finder so bad patterns and filter names fail here,
	// before any connection is made.
	if _, err := cfg.NewFinder(filesystem.NewMockFileSystem(), "/", zap.NewNop()); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ValidateRoot checks that a local root exists and is a directory. Remote
// roots are only checked for a well-formed URL; the server is not contacted.
func (cfg *Config) ValidateRoot() error {
	loc, err := filesystem.ParseLocation(cfg.Root)
	if err != nil {
		return err
	}

	if loc.IsRemote {
		return nil
	}

	root, err := diriter.Clean(loc.Path)
	if err != nil {
		return fmt.Errorf("cannot resolve root path: %w", err)
	}

	info, err := os.Stat(root)
	if os.IsNotExist(err) {
		return fmt.Errorf("root path does not exist: %s: %w", cfg.Root, err)
	}
	if err != nil {
		return fmt.Errorf("cannot access root path: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("root path is not a directory: %s", cfg.Root) //nolint:err113 // user-facing validation
	}

	return nil
}

// NewFinder builds a Finder over fsys rooted at root, configured from the
// flags: patterns, then extensions, then filters in the order given.
func (cfg *Config) NewFinder(fsys filesystem.FileSystem, root string, logger *zap.Logger) (*diriter.Finder, error) {
	finder, err := diriter.New(root,
		diriter.WithFileSystem(fsys),
		diriter.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}

	if err := finder.AddPatterns(cfg.Patterns); err != nil {
		return nil, err
	}

	if err := finder.AddExtensions(cfg.Extensions); err != nil {
		return nil, err
	}

	if err := finder.AddFilters(cfg.Filters); err != nil {
		return nil, err
	}

	if cfg.Hidden {
		finder.IncludeHidden()
	}

	if cfg.IgnoreCase {
		finder.CaseInsensitive()
	}

	return finder, nil
}
