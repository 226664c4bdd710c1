package diriter_test

import (
	"strings"
	"testing"
	"time"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers
	"go.uber.org/zap/zaptest"

	"github.com/joe/dir-iter/pkg/diriter"
	"github.com/joe/dir-iter/pkg/filesystem"
)

// newTree builds a mock filesystem. Paths ending in "/" become directories,
// everything else an empty file stamped with the current logical time.
func newTree(paths ...string) *filesystem.MockFileSystem {
	fsys := filesystem.NewMockFileSystem()
	for _, p := range paths {
		if strings.HasSuffix(p, "/") {
			fsys.AddDir(strings.TrimSuffix(p, "/"), fsys.Now())
			continue
		}
		fsys.AddFile(p, nil, fsys.Now())
	}

	return fsys
}

func newMockFinder(t *testing.T, fsys *filesystem.MockFileSystem, root string, opts ...diriter.Option) *diriter.Finder {
	t.Helper()

	opts = append([]diriter.Option{
		diriter.WithFileSystem(fsys),
		diriter.WithLogger(zaptest.NewLogger(t)),
	}, opts...)

	finder, err := diriter.New(root, opts...)
	NewWithT(t).Expect(err).ShouldNot(HaveOccurred())

	return finder
}

// drain collects paths from Next until the iterator is exhausted.
func drain(t *testing.T, it *diriter.Iterator) []string {
	t.Helper()

	var paths []string
	for {
		entry, ok := it.Next()
		if !ok {
			break
		}
		paths = append(paths, entry.Path)
	}

	NewWithT(t).Expect(it.Err()).ShouldNot(HaveOccurred())

	return paths
}

func entryAt(t *testing.T, fsys *filesystem.MockFileSystem, path string) diriter.Entry {
	t.Helper()

	info, err := fsys.Stat(path)
	NewWithT(t).Expect(err).ShouldNot(HaveOccurred())

	return diriter.Entry{Path: path, Info: info}
}

func paths(entries []diriter.Entry) []string {
	result := make([]string, 0, len(entries))
	for _, entry := range entries {
		result = append(result, entry.Path)
	}

	return result
}

func at(seconds int) time.Time {
	return time.Date(2023, time.June, 1, 0, 0, seconds, 0, time.UTC)
}
