// Package main is the entry point for the dir-iter application.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"go.uber.org/zap"
	"golang.org/x/term" //nolint:depguard // Required for TTY detection

	"github.com/joe/dir-iter/internal/config"
	"github.com/joe/dir-iter/internal/tui"
	"github.com/joe/dir-iter/pkg/diriter"
	"github.com/joe/dir-iter/pkg/errors"
	"github.com/joe/dir-iter/pkg/filesystem"
)

func main() {
	cfg, err := config.ParseFlags()
	if err != nil {
		report(os.Stderr, err, "")
		os.Exit(1)
	}

	os.Exit(run(cfg, os.Stdout, os.Stderr, term.IsTerminal(int(os.Stdout.Fd()))))
}

// run executes one invocation and returns the process exit code.
func run(cfg *config.Config, stdout, stderr io.Writer, isTTY bool) int {
	logger := zap.NewNop()
	if cfg.Verbose {
		if dev, err := zap.NewDevelopment(); err == nil {
			logger = dev
		}
	}
	defer func() { _ = logger.Sync() }()

	fsys, root, closer, err := filesystem.Open(cfg.Root)
	if err != nil {
		report(stderr, err, cfg.Root)
		return 1
	}
	if closer != nil {
		defer closer()
	}

	finder, err := cfg.NewFinder(fsys, root, logger)
	if err != nil {
		report(stderr, err, root)
		return 1
	}

	switch {
	case cfg.Check:
		return check(finder, stdout, stderr)

	case cfg.Interactive:
		if !isTTY {
			fmt.Fprintln(stderr, "Error: --interactive needs a terminal")
			return 1
		}

		if err := tui.Run(finder.Iterator(), finder.Root()); err != nil {
			report(stderr, err, finder.Root())
			return 1
		}

		return 0

	default:
		return list(finder, cfg.Limit, stdout, stderr)
	}
}

// list prints each file relative to the root, up to limit (0 = all).
func list(finder *diriter.Finder, limit int, stdout, stderr io.Writer) int {
	it := finder.Iterator()

	for count := 0; limit == 0 || count < limit; count++ {
		entry, ok := it.Next()
		if !ok {
			break
		}

		fmt.Fprintln(stdout, relative(finder.Root(), entry.Path))
	}

	if err := it.Err(); err != nil {
		report(stderr, err, finder.Root())
		return 1
	}

	return 0
}

// check drains an iterator and compares what it yielded with a census of
// the tree, reporting duplicates and omissions.
func check(finder *diriter.Finder, stdout, stderr io.Writer) int {
	var yielded []string
	seen := make(map[string]int)

	err := finder.Each(func(entry diriter.Entry) error {
		yielded = append(yielded, entry.Path)
		seen[entry.Path]++
		return nil
	})
	if err != nil {
		report(stderr, err, finder.Root())
		return 1
	}

	census, err := finder.Census()
	if err != nil {
		report(stderr, err, finder.Root())
		return 1
	}

	expected := make(map[string]bool, len(census))
	var problems []string
	for _, path := range census {
		expected[path] = true
		if seen[path] == 0 {
			problems = append(problems, "missing:   "+relative(finder.Root(), path))
		}
	}

	for path, count := range seen {
		switch {
		case count > 1:
			problems = append(problems, fmt.Sprintf("repeated:  %s (%d times)", relative(finder.Root(), path), count))
		case !expected[path]:
			problems = append(problems, "unexpected: "+relative(finder.Root(), path))
		}
	}

	if len(problems) > 0 {
		slices.Sort(problems)
		for _, problem := range problems {
			fmt.Fprintln(stderr, problem)
		}
		fmt.Fprintf(stderr, "check failed: %d problems in %d files\n", len(problems), len(yielded))

		return 1
	}

	fmt.Fprintf(stdout, "ok: %d files, each yielded once\n", len(yielded))

	return 0
}

func relative(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}

	return filepath.ToSlash(rel)
}

// report prints err with actionable suggestions.
func report(w io.Writer, err error, path string) {
	enriched := errors.NewEnricher().Enrich(err, path)

	fmt.Fprintf(w, "Error: %v\n", enriched)

	if suggestions := errors.FormatSuggestions(enriched); suggestions != "" {
		fmt.Fprintf(w, "\nTry these solutions:\n%s\n", suggestions)
	}
}
