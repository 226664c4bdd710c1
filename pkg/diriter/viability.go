package diriter

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// candidates lists dir and keeps the children worth considering. Children
// that disappear between the listing and their stat are dropped silently.
func (f *Finder) candidates(dir string) ([]Entry, error) {
	infos, err := f.fsys.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	entries := make([]Entry, 0, len(infos))
	for _, listed := range infos {
		path := f.fsys.Join(dir, listed.Name())

		info, err := f.fsys.Stat(path)
		if err != nil {
			continue
		}

		entry := Entry{Path: path, Info: info}
		if f.Viable(entry) {
			entries = append(entries, entry)
		}
	}

	return entries, nil
}

// Viable reports whether an existing entry passes the hidden-entry policy
// and, for non-directories, the pattern set. Patterns never prune
// directories: they decide which files are emitted, not which subtrees are
// descended into.
func (f *Finder) Viable(entry Entry) bool {
	if !f.includeHidden && IsHidden(entry.Path) {
		return false
	}

	if entry.IsDir() || len(f.patterns) == 0 {
		return true
	}

	return f.matches(entry.Path)
}

// matches reports whether any pattern matches path. Patterns without a
// separator are matched against the basename; the rest against the
// slash-separated path relative to the root, so "**" works across levels.
func (f *Finder) matches(path string) bool {
	name := Identity(path)

	for _, pattern := range f.patterns {
		subject := name
		if strings.Contains(pattern, "/") {
			subject = f.relative(path)
		}

		if f.ignoreCase {
			pattern = strings.ToLower(pattern)
			subject = strings.ToLower(subject)
		}

		matched, err := doublestar.Match(pattern, subject)
		if err == nil && matched {
			return true
		}
	}

	return false
}

func (f *Finder) relative(path string) string {
	rel, err := filepath.Rel(f.root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}

	return filepath.ToSlash(rel)
}
