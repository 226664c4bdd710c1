package diriter

import (
	"github.com/joe/dir-iter/pkg/filesystem"
)

// Iterator walks one directory depth-first and owns at most one child
// Iterator for the subdirectory currently being descended into. The live
// chain of children from the root down is the traversal stack.
//
// Next, Peek and Prev return (Entry{}, false) when there is nothing to
// return. Check Err afterwards to tell the end of the tree from a failure;
// once Err is non-nil every call returns false.
//
// A directory that no longer exists is treated as empty rather than as an
// error, so a subtree removed mid-walk simply ends early.
type Iterator struct {
	finder *Finder
	path   string

	children []Entry
	scanned  bool
	stamp    stamp

	// visited holds the identity keys of children already emitted (files)
	// or finished (directories), in emission order. It is matched by key,
	// not position, because a rescan may reorder the children.
	visited []string
	seen    map[string]struct{}

	child *Iterator
	err   error
}

func newIterator(finder *Finder, path string) *Iterator {
	return &Iterator{
		finder: finder,
		path:   path,
		seen:   make(map[string]struct{}),
	}
}

// Path returns the directory this iterator is responsible for.
func (it *Iterator) Path() string {
	return it.path
}

// Err returns the error that stopped the iterator, if any.
func (it *Iterator) Err() error {
	return it.err
}

// Next emits the next file in depth-first order and marks it visited.
// Directories are descended into, never returned.
func (it *Iterator) Next() (Entry, bool) {
	if !it.refresh() {
		return Entry{}, false
	}

	for {
		if it.child != nil {
			if entry, ok := it.child.Next(); ok {
				return entry, true
			}
			if !it.adopt(it.child) {
				return Entry{}, false
			}

			it.markVisited(Identity(it.child.path))
			it.child = nil
		}

		entry, ok := it.nextUnvisited()
		if !ok {
			return Entry{}, false
		}

		if entry.IsDir() {
			it.child = newIterator(it.finder, entry.Path)
			continue
		}

		it.markVisited(entry.Name())

		return entry, true
	}
}

// Peek returns what Next would return without emitting it. Repeated calls
// never change the sequence Next produces, and Peek marks nothing visited:
// a drained subdirectory stays active so files added to it later are still
// found by Next.
func (it *Iterator) Peek() (Entry, bool) {
	if !it.refresh() {
		return Entry{}, false
	}

	active := ""
	if it.child != nil {
		if entry, ok := it.child.Peek(); ok {
			return entry, true
		}
		if !it.adopt(it.child) {
			return Entry{}, false
		}

		active = Identity(it.child.path)
	}

	for _, entry := range it.children {
		if it.isVisited(entry.Name()) || entry.Name() == active {
			continue
		}

		if !entry.IsDir() {
			return entry, true
		}

		// Empty subdirectories are skipped here without being marked;
		// Next marks them when it walks past.
		sub := newIterator(it.finder, entry.Path)
		if next, ok := sub.Peek(); ok {
			if it.child == nil {
				it.child = sub
			}
			return next, true
		}
		if err := sub.Err(); err != nil {
			it.err = err
			return Entry{}, false
		}
	}

	return Entry{}, false
}

// Prev undoes the most recent Next and returns the file it emitted, so the
// following Next returns it again. When a whole subdirectory was finished,
// Prev re-enters it from the end. It returns false when nothing at this
// level or below has been emitted.
//
// Entries that vanished or stopped being viable since they were emitted are
// forgotten instead of returned.
func (it *Iterator) Prev() (Entry, bool) {
	if !it.refresh() {
		return Entry{}, false
	}

	if it.child != nil {
		if entry, ok := it.child.Prev(); ok {
			return entry, true
		}
		if !it.adopt(it.child) {
			return Entry{}, false
		}

		// Nothing below was emitted; the directory itself was never marked.
		it.child = nil
	}

	for len(it.visited) > 0 {
		entry, ok := it.lookup(it.unmarkLast())
		if !ok {
			continue
		}

		if !entry.IsDir() {
			return entry, true
		}

		sub := newIterator(it.finder, entry.Path)
		if !sub.markAllVisited() {
			if !it.adopt(sub) {
				return Entry{}, false
			}
			continue
		}

		if prev, ok := sub.Prev(); ok {
			it.child = sub
			return prev, true
		}
		if !it.adopt(sub) {
			return Entry{}, false
		}
	}

	return Entry{}, false
}

// Each calls fn with every remaining file, stopping early when fn returns an
// error. It returns fn's error or Err.
func (it *Iterator) Each(fn func(Entry) error) error {
	for {
		entry, ok := it.Next()
		if !ok {
			return it.Err()
		}

		if err := fn(entry); err != nil {
			return err
		}
	}
}

// refresh checks the directory still exists and rescans its children when
// its stamp moved. It reports whether the iterator can proceed.
func (it *Iterator) refresh() bool {
	if it.err != nil {
		return false
	}

	info, err := it.finder.fsys.Stat(it.path)
	if err != nil || !info.IsDir() {
		return false
	}

	current := stampOf(info)
	if it.scanned && current.equal(it.stamp) {
		return true
	}

	children, err := it.finder.scan(it.path)
	if err != nil {
		if filesystem.IsNotExist(err) {
			return false
		}
		it.err = err

		return false
	}

	it.children = children
	it.stamp = current
	it.scanned = true

	return true
}

// adopt copies a child's error into the iterator and reports whether the
// iterator is still healthy.
func (it *Iterator) adopt(child *Iterator) bool {
	if err := child.Err(); err != nil {
		it.err = err
		return false
	}

	return true
}

func (it *Iterator) nextUnvisited() (Entry, bool) {
	for _, entry := range it.children {
		if !it.isVisited(entry.Name()) {
			return entry, true
		}
	}

	return Entry{}, false
}

// lookup finds a child by identity key in the current view.
func (it *Iterator) lookup(name string) (Entry, bool) {
	for _, entry := range it.children {
		if entry.Name() == name {
			return entry, true
		}
	}

	return Entry{}, false
}

func (it *Iterator) isVisited(name string) bool {
	_, ok := it.seen[name]
	return ok
}

func (it *Iterator) markVisited(name string) {
	if it.isVisited(name) {
		return
	}

	it.visited = append(it.visited, name)
	it.seen[name] = struct{}{}
}

func (it *Iterator) unmarkLast() string {
	last := it.visited[len(it.visited)-1]
	it.visited = it.visited[:len(it.visited)-1]
	delete(it.seen, last)

	return last
}

// markAllVisited puts a re-entered directory into its finished state: every
// current child visited, in listing order. It reports false when the
// directory cannot be read.
func (it *Iterator) markAllVisited() bool {
	if !it.refresh() {
		return false
	}

	for _, entry := range it.children {
		it.markVisited(entry.Name())
	}

	return true
}
