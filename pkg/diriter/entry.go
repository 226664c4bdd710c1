package diriter

import (
	"os"
	"time"
)

// Entry is a file or directory met during traversal.
type Entry struct {
	// Path is the absolute path of the entry.
	Path string

	// Info is the entry's metadata, following symbolic links.
	Info os.FileInfo
}

// Name returns the entry's identity key.
func (e Entry) Name() string {
	return Identity(e.Path)
}

// IsDir reports whether the entry is a directory (or a link to one).
func (e Entry) IsDir() bool {
	return e.Info != nil && e.Info.IsDir()
}

// ModTime returns the entry's modification time.
func (e Entry) ModTime() time.Time {
	if e.Info == nil {
		return time.Time{}
	}

	return e.Info.ModTime()
}

func (e Entry) String() string {
	return e.Path
}
