// Package filesystem provides an abstraction layer for the read-only filesystem
// operations directory iteration needs, so traversal can run against the local
// disk, a remote SFTP server, or an in-memory tree in tests.
package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	krfs "github.com/kr/fs"
	"github.com/pkg/sftp"
)

// FileSystem is the set of operations the iterator performs.
// It extends the kr/fs FileSystem (ReadDir, Lstat, Join) with Stat, which
// follows symbolic links. *sftp.Client satisfies it as-is.
type FileSystem interface {
	krfs.FileSystem

	// Stat returns file information, following symbolic links.
	Stat(name string) (os.FileInfo, error)
}

var (
	_ FileSystem = (*RealFileSystem)(nil)
	_ FileSystem = (*MockFileSystem)(nil)
	_ FileSystem = (*SFTPFileSystem)(nil)
	_ FileSystem = (*sftp.Client)(nil)
)

// IsNotExist reports whether err says a path is gone, through any wrapping.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// RealFileSystem implements FileSystem using the os package.
type RealFileSystem struct{}

// NewRealFileSystem creates a new RealFileSystem instance.
func NewRealFileSystem() *RealFileSystem {
	return &RealFileSystem{}
}

// Join joins path elements with the host separator.
func (fs *RealFileSystem) Join(elem ...string) string {
	return filepath.Join(elem...)
}

// Lstat returns file information without following symbolic links.
func (fs *RealFileSystem) Lstat(name string) (os.FileInfo, error) {
	info, err := os.Lstat(name)
	if err != nil {
		return nil, fmt.Errorf("failed to lstat %s: %w", name, err)
	}

	return info, nil
}

// ReadDir lists the immediate children of dirname, sorted by name.
// Entries removed between listing and stat are left out.
func (fs *RealFileSystem) ReadDir(dirname string) ([]os.FileInfo, error) {
	entries, err := os.ReadDir(dirname)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dirname, err)
	}

	infos := make([]os.FileInfo, 0, len(entries))
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			continue
		}
		infos = append(infos, info)
	}

	return infos, nil
}

// Stat returns file information, following symbolic links.
func (fs *RealFileSystem) Stat(name string) (os.FileInfo, error) {
	info, err := os.Stat(name)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", name, err)
	}

	return info, nil
}
