//nolint:varnamelen // Test files use idiomatic short variable names (t, etc.)
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/dir-iter/internal/config"
)

func tree(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	for _, rel := range []string{"a.txt", "b/c.txt", "b/d/e.txt", "f.md", ".hidden.txt"} {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(rel), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	return root
}

func TestRunListsRelativePaths(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	var stdout, stderr bytes.Buffer
	code := run(&config.Config{Root: tree(t)}, &stdout, &stderr, false)

	g.Expect(code).To(Equal(0))
	g.Expect(stderr.String()).To(BeEmpty())
	g.Expect(strings.Fields(stdout.String())).To(Equal([]string{"a.txt", "b/c.txt", "b/d/e.txt", "f.md"}))
}

func TestRunStopsAtLimit(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	var stdout, stderr bytes.Buffer
	code := run(&config.Config{Root: tree(t), Limit: 2, Extensions: []string{"txt"}}, &stdout, &stderr, false)

	g.Expect(code).To(Equal(0))
	g.Expect(strings.Fields(stdout.String())).To(Equal([]string{"a.txt", "b/c.txt"}))
}

func TestRunCheck(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	var stdout, stderr bytes.Buffer
	code := run(&config.Config{Root: tree(t), Check: true, Hidden: true}, &stdout, &stderr, false)

	g.Expect(code).To(Equal(0))
	g.Expect(stdout.String()).To(Equal("ok: 5 files, each yielded once\n"))
	g.Expect(stderr.String()).To(BeEmpty())
}

func TestRunReportsActionableErrors(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	var stdout, stderr bytes.Buffer
	code := run(&config.Config{Root: tree(t), Filters: []string{"order-by-size"}}, &stdout, &stderr, false)

	g.Expect(code).To(Equal(1))
	g.Expect(stdout.String()).To(BeEmpty())
	g.Expect(stderr.String()).To(HavePrefix("Error: "))
	g.Expect(stderr.String()).To(ContainSubstring("order-by-size"))
	g.Expect(stderr.String()).To(ContainSubstring("Try these solutions:"))
}

func TestRunInteractiveNeedsTerminal(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	var stdout, stderr bytes.Buffer
	code := run(&config.Config{Root: tree(t), Interactive: true}, &stdout, &stderr, false)

	g.Expect(code).To(Equal(1))
	g.Expect(stderr.String()).To(ContainSubstring("needs a terminal"))
}
