// Package diriter iterates over a directory tree lazily, one file at a time.
//
// A Finder holds the configuration: the root, which entries are visible
// (hidden-entry policy and glob patterns, which apply to files only) and the
// chain of filters that decides the order siblings are visited in. Each call
// to Finder.Iterator returns an independent depth-first Iterator that can
// step forward with Next, look ahead with Peek, and undo with Prev.
//
// Iterators never materialise the whole tree. They hold one cached listing
// per directory on the current descent path and rescan a directory whenever
// its modification or change time moves, so files added while iterating
// show up in their sorted position and files already emitted are not
// emitted again.
//
// Basic usage:
//
//	finder, err := diriter.New("~/notes")
//	if err != nil {
//	    return err
//	}
//	_ = finder.AddExtension("md")
//	_ = finder.AddFilters([]string{diriter.OrderByName, diriter.FilesFirst})
//
//	err = finder.Each(func(entry diriter.Entry) error {
//	    fmt.Println(entry.Path)
//	    return nil
//	})
package diriter

import (
	"fmt"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"

	"github.com/joe/dir-iter/pkg/filesystem"
)

// Finder is the configuration shared by reference with every Iterator it
// creates. It is not safe for concurrent mutation.
type Finder struct {
	root     string
	fsys     filesystem.FileSystem
	logger   *zap.Logger
	provider FilterProvider

	patterns      []string
	filters       []string
	ignoreCase    bool
	includeHidden bool
}

// Option configures a Finder at construction time.
type Option func(*Finder)

// WithFileSystem makes the Finder read fsys instead of the local disk.
func WithFileSystem(fsys filesystem.FileSystem) Option {
	return func(f *Finder) {
		f.fsys = fsys
	}
}

// WithLogger sets the logger rescans are reported to.
func WithLogger(logger *zap.Logger) Option {
	return func(f *Finder) {
		f.logger = logger
	}
}

// WithFilterProvider replaces the standard filters as the source of filter names.
func WithFilterProvider(provider FilterProvider) Option {
	return func(f *Finder) {
		f.provider = provider
	}
}

// New creates a Finder rooted at root. Patterns start empty (every file
// passes), matching is case sensitive, hidden entries are excluded and the
// filter chain is empty (children come in listing order).
func New(root string, opts ...Option) (*Finder, error) {
	cleaned, err := Clean(root)
	if err != nil {
		return nil, err
	}

	finder := &Finder{
		root:     cleaned,
		fsys:     filesystem.NewRealFileSystem(),
		logger:   zap.NewNop(),
		provider: StandardFilters(),
	}

	for _, opt := range opts {
		opt(finder)
	}

	if finder.provider == nil {
		return nil, fmt.Errorf("%w: provider is nil", ErrInvalidFilterProvider)
	}
	if finder.fsys == nil {
		finder.fsys = filesystem.NewRealFileSystem()
	}
	if finder.logger == nil {
		finder.logger = zap.NewNop()
	}

	return finder, nil
}

// Root returns the cleaned root path.
func (f *Finder) Root() string {
	return f.root
}

// Patterns returns the configured file patterns.
func (f *Finder) Patterns() []string {
	return slices.Clone(f.patterns)
}

// AddPattern adds a glob pattern. A file is emitted when any pattern matches
// it. Supported syntax is doublestar's: *, ?, [class], {alt,ernatives}, **.
func (f *Finder) AddPattern(pattern string) error {
	if !doublestar.ValidatePattern(pattern) {
		return fmt.Errorf("%w: %q", ErrBadPattern, pattern)
	}

	f.patterns = append(f.patterns, pattern)

	return nil
}

// AddPatterns adds each pattern in order, stopping at the first invalid one.
func (f *Finder) AddPatterns(patterns []string) error {
	for _, pattern := range patterns {
		if err := f.AddPattern(pattern); err != nil {
			return err
		}
	}

	return nil
}

// AddExtension adds the pattern "*.ext". The leading dot is optional.
func (f *Finder) AddExtension(extension string) error {
	return f.AddPattern("*" + normalizeExtension(extension))
}

// AddExtensions adds each extension in order.
func (f *Finder) AddExtensions(extensions []string) error {
	for _, extension := range extensions {
		if err := f.AddExtension(extension); err != nil {
			return err
		}
	}

	return nil
}

func normalizeExtension(extension string) string {
	if extension == "" || strings.HasPrefix(extension, ".") {
		return extension
	}

	return "." + extension
}

// CaseSensitive makes pattern matching case sensitive (the default).
func (f *Finder) CaseSensitive() {
	f.ignoreCase = false
}

// CaseInsensitive makes pattern matching ignore case.
func (f *Finder) CaseInsensitive() {
	f.ignoreCase = true
}

// IgnoreCase reports whether pattern matching ignores case.
func (f *Finder) IgnoreCase() bool {
	return f.ignoreCase
}

// IncludeHidden makes entries whose name starts with HiddenMarker visible.
func (f *Finder) IncludeHidden() {
	f.includeHidden = true
}

// ExcludeHidden skips hidden files and hidden directories (the default).
func (f *Finder) ExcludeHidden() {
	f.includeHidden = false
}

// IncludesHidden reports whether hidden entries are visible.
func (f *Finder) IncludesHidden() bool {
	return f.includeHidden
}

// Filters returns the filter chain in application order.
func (f *Finder) Filters() []string {
	return slices.Clone(f.filters)
}

// AddFilter appends a filter to the chain. Filters run in the order added,
// each consuming the previous one's output, so the last filter added is the
// primary sort key and earlier ones break its ties.
func (f *Finder) AddFilter(name string) error {
	if _, ok := f.provider.Filter(name); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownFilter, name)
	}

	f.filters = append(f.filters, name)

	return nil
}

// AddFilters appends each filter in order, stopping at the first unknown one.
func (f *Finder) AddFilters(names []string) error {
	for _, name := range names {
		if err := f.AddFilter(name); err != nil {
			return err
		}
	}

	return nil
}

// FilterProvider returns the provider filter names resolve against.
func (f *Finder) FilterProvider() FilterProvider {
	return f.provider
}

// SetFilterProvider installs a new provider. It fails, leaving the current
// provider in place, unless every registered filter name resolves.
func (f *Finder) SetFilterProvider(provider FilterProvider) error {
	if provider == nil {
		return fmt.Errorf("%w: provider is nil", ErrInvalidFilterProvider)
	}

	var missing []string
	for _, name := range f.filters {
		if _, ok := provider.Filter(name); !ok {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		return &FilterProviderError{Missing: missing}
	}

	f.provider = provider

	return nil
}

// Iterator returns a fresh iterator over the tree under Root. Iterators share
// nothing but this Finder.
func (f *Finder) Iterator() *Iterator {
	return newIterator(f, f.root)
}

// Each drains a fresh iterator, calling fn with every file. It stops early
// when fn returns an error and returns that error.
func (f *Finder) Each(fn func(Entry) error) error {
	return f.Iterator().Each(fn)
}

// scan lists dir and runs the viable children through the filter chain.
func (f *Finder) scan(dir string) ([]Entry, error) {
	entries, err := f.candidates(dir)
	if err != nil {
		return nil, err
	}

	for _, name := range f.filters {
		filter, ok := f.provider.Filter(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownFilter, name)
		}

		entries, err = applyFilter(name, filter, entries)
		if err != nil {
			return nil, err
		}
	}

	f.logger.Debug("scanned directory",
		zap.String("path", dir),
		zap.Int("children", len(entries)),
	)

	return entries, nil
}
