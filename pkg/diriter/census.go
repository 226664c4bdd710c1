package diriter

import (
	"os"
	"sort"

	"github.com/hashicorp/go-multierror"
	krfs "github.com/kr/fs"

	"github.com/joe/dir-iter/pkg/filesystem"
)

// Census walks the whole tree without ordering or caching and returns the
// sorted paths of every file an Iterator would emit. It is the reference an
// ordered traversal can be checked against.
//
// Unreadable directories are skipped and reported together in the returned
// error; the paths found elsewhere are still returned.
func (f *Finder) Census() ([]string, error) {
	var (
		paths []string
		errs  *multierror.Error
	)

	f.census(f.root, &paths, &errs)
	sort.Strings(paths)

	return paths, errs.ErrorOrNil()
}

func (f *Finder) census(root string, paths *[]string, errs **multierror.Error) {
	walker := krfs.WalkFS(root, linkedRoot{FileSystem: f.fsys, root: root})

	for walker.Step() {
		if err := walker.Err(); err != nil {
			if walker.Path() == root && filesystem.IsNotExist(err) {
				// A missing root is an empty tree, as for an Iterator.
				return
			}
			*errs = multierror.Append(*errs, err)
			continue
		}

		path := walker.Path()
		if path == root {
			continue
		}

		// The walker reports Lstat results; resolve links the way the
		// iterator does.
		info, err := f.fsys.Stat(path)
		if err != nil {
			if walker.Stat().IsDir() {
				walker.SkipDir()
			}
			continue
		}

		entry := Entry{Path: path, Info: info}
		if !f.Viable(entry) {
			if walker.Stat().IsDir() {
				walker.SkipDir()
			}
			continue
		}

		switch {
		case !entry.IsDir():
			*paths = append(*paths, path)
		case !walker.Stat().IsDir():
			// A link to a directory: the walker will not descend, so walk
			// its target under the link's own path.
			f.census(path, paths, errs)
		}
	}
}

// linkedRoot makes the walker resolve its root, so a link to a directory is
// walked like the directory itself.
type linkedRoot struct {
	filesystem.FileSystem

	root string
}

func (l linkedRoot) Lstat(name string) (os.FileInfo, error) {
	if name == l.root {
		return l.Stat(name)
	}

	return l.FileSystem.Lstat(name)
}
