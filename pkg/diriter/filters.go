package diriter

import (
	"cmp"
	"slices"
)

// Names of the standard filters.
const (
	FilesFirst       = "files-first"
	DirectoriesFirst = "directories-first"
	OrderByMtimeAsc  = "order-by-mtime-asc"
	OrderByMtimeDesc = "order-by-mtime-desc"
	OrderByName      = "order-by-name"
	Reverse          = "reverse"
)

// Filter orders and prunes the children of one directory.
//
// A filter receives entries that share a parent, have not been emitted yet
// at this level, and passed the hidden and pattern checks. It must return a
// subsequence of its input: it may reorder and drop entries, never add them.
type Filter func(entries []Entry) []Entry

// FilterProvider resolves filter names to filters.
type FilterProvider interface {
	Filter(name string) (Filter, bool)
}

// FilterSet is a FilterProvider backed by a map.
type FilterSet map[string]Filter

// Filter implements FilterProvider.
func (s FilterSet) Filter(name string) (Filter, bool) {
	filter, ok := s[name]
	return filter, ok && filter != nil
}

// StandardFilters returns the built-in filters. Every sorting filter is
// stable: entries that compare equal keep the order they arrived in, so the
// filter registered last in a chain is the primary sort key.
func StandardFilters() FilterSet {
	return FilterSet{
		FilesFirst:       SortFilesFirst,
		DirectoriesFirst: SortDirectoriesFirst,
		OrderByMtimeAsc:  SortByMtimeAsc,
		OrderByMtimeDesc: SortByMtimeDesc,
		OrderByName:      SortByName,
		Reverse:          ReverseOrder,
	}
}

// SortFilesFirst puts non-directories before directories.
func SortFilesFirst(entries []Entry) []Entry {
	return StableSortBy(entries, func(e Entry) int {
		if e.IsDir() {
			return 1
		}
		return 0
	})
}

// SortDirectoriesFirst puts directories before non-directories.
func SortDirectoriesFirst(entries []Entry) []Entry {
	return StableSortBy(entries, func(e Entry) int {
		if e.IsDir() {
			return 0
		}
		return 1
	})
}

// SortByMtimeAsc orders by modification time, oldest first, at the full
// resolution the filesystem reports.
func SortByMtimeAsc(entries []Entry) []Entry {
	return StableSortBy(entries, func(e Entry) int64 {
		return e.ModTime().UnixNano()
	})
}

// SortByMtimeDesc orders by modification time, newest first, at the full
// resolution the filesystem reports.
func SortByMtimeDesc(entries []Entry) []Entry {
	return StableSortBy(entries, func(e Entry) int64 {
		return -e.ModTime().UnixNano()
	})
}

// SortByName orders by identity key, bytewise.
func SortByName(entries []Entry) []Entry {
	return StableSortBy(entries, Entry.Name)
}

// ReverseOrder reverses the current order.
func ReverseOrder(entries []Entry) []Entry {
	reversed := slices.Clone(entries)
	slices.Reverse(reversed)

	return reversed
}

// StableSortBy sorts a copy of entries by key, keeping the incoming order
// among entries with equal keys.
func StableSortBy[K cmp.Ordered](entries []Entry, key func(Entry) K) []Entry {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b Entry) int {
		return cmp.Compare(key(a), key(b))
	})

	return sorted
}

// applyFilter runs one filter and enforces its contract. The filter gets its
// own copy of the input so it cannot corrupt the caller's slice.
func applyFilter(name string, filter Filter, entries []Entry) ([]Entry, error) {
	remaining := make(map[string]int, len(entries))
	for _, entry := range entries {
		remaining[entry.Path]++
	}

	filtered := filter(slices.Clone(entries))

	var unexpected []string
	for _, entry := range filtered {
		if remaining[entry.Path] == 0 {
			unexpected = append(unexpected, entry.Path)
			continue
		}
		remaining[entry.Path]--
	}

	if len(unexpected) > 0 {
		return nil, &FilterResultError{Filter: name, Unexpected: unexpected}
	}

	return filtered, nil
}
