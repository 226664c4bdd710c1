package filesystem

import (
	"fmt"
	"os"
	"path"
	"sort"
	"strings"
	"sync"
	"time"
)

// MockFileSystem is an in-memory filesystem implementation for testing.
//
// Paths are slash-separated and absolute. Every mutation advances a logical
// clock and stamps the parent directory with it, the way a real filesystem
// bumps a directory's mtime when its entries change. This lets tests drive
// cache invalidation without sleeping or touching the disk.
type MockFileSystem struct {
	mu    sync.RWMutex
	files map[string]*mockFile
	clock time.Time
}

// mockEpoch is the logical clock's starting point.
var mockEpoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC) //nolint:gochecknoglobals // fixed test epoch

// mockFile represents a file or directory in the mock filesystem.
type mockFile struct {
	size    int64
	modTime time.Time
	isDir   bool
	perm    os.FileMode
}

// mockFileInfo implements os.FileInfo for mock files.
type mockFileInfo struct {
	name    string
	size    int64
	modTime time.Time
	isDir   bool
	perm    os.FileMode
}

func (fi *mockFileInfo) Name() string       { return fi.name }
func (fi *mockFileInfo) Size() int64        { return fi.size }
func (fi *mockFileInfo) ModTime() time.Time { return fi.modTime }
func (fi *mockFileInfo) IsDir() bool        { return fi.isDir }
func (fi *mockFileInfo) Sys() interface{}   { return nil }

func (fi *mockFileInfo) Mode() os.FileMode {
	if fi.isDir {
		return fi.perm | os.ModeDir
	}

	return fi.perm
}

// NewMockFileSystem creates a new in-memory filesystem containing only "/".
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		files: map[string]*mockFile{
			"/": {modTime: mockEpoch, isDir: true, perm: 0o755},
		},
		clock: mockEpoch,
	}
}

// Join joins path elements with forward slashes.
func (fs *MockFileSystem) Join(elem ...string) string {
	return path.Join(elem...)
}

// Lstat returns file information. The mock has no symbolic links.
func (fs *MockFileSystem) Lstat(name string) (os.FileInfo, error) {
	return fs.stat("lstat", name)
}

// Stat returns file information.
func (fs *MockFileSystem) Stat(name string) (os.FileInfo, error) {
	return fs.stat("stat", name)
}

// ReadDir lists the immediate children of dirname, sorted by name.
func (fs *MockFileSystem) ReadDir(dirname string) ([]os.FileInfo, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	dirname = path.Clean(dirname)

	dir, exists := fs.files[dirname]
	if !exists {
		return nil, &os.PathError{Op: "readdir", Path: dirname, Err: os.ErrNotExist}
	}
	if !dir.isDir {
		return nil, &os.PathError{Op: "readdir", Path: dirname, Err: fmt.Errorf("not a directory")} //nolint:err113 // mirrors ENOTDIR
	}

	infos := make([]os.FileInfo, 0)
	for p, file := range fs.files {
		if p == dirname || path.Dir(p) != dirname {
			continue
		}
		infos = append(infos, infoFor(p, file))
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Name() < infos[j].Name()
	})

	return infos, nil
}

func (fs *MockFileSystem) stat(op, name string) (os.FileInfo, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	name = path.Clean(name)

	file, exists := fs.files[name]
	if !exists {
		return nil, &os.PathError{Op: op, Path: name, Err: os.ErrNotExist}
	}

	return infoFor(name, file), nil
}

func infoFor(p string, file *mockFile) os.FileInfo {
	return &mockFileInfo{
		name:    path.Base(p),
		size:    file.size,
		modTime: file.modTime,
		isDir:   file.isDir,
		perm:    file.perm,
	}
}

// Helper methods for testing

// AddFile adds a file with the given content and modtime, creating parent
// directories as needed. The parent directory's mtime advances.
func (fs *MockFileSystem) AddFile(name string, content []byte, modTime time.Time) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	name = path.Clean(name)
	fs.mkdirAllLocked(path.Dir(name))

	fs.files[name] = &mockFile{
		size:    int64(len(content)),
		modTime: modTime,
		perm:    0o644,
	}
	fs.touchLocked(path.Dir(name))
}

// AddDir adds a directory with the given modtime, creating parents as needed.
func (fs *MockFileSystem) AddDir(name string, modTime time.Time) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	name = path.Clean(name)
	fs.mkdirAllLocked(path.Dir(name))

	if file, exists := fs.files[name]; exists && file.isDir {
		file.modTime = modTime
		return
	}

	fs.files[name] = &mockFile{
		modTime: modTime,
		isDir:   true,
		perm:    0o755,
	}
	fs.touchLocked(path.Dir(name))
}

// Chtimes changes the modification time of a path without touching its parent.
func (fs *MockFileSystem) Chtimes(name string, _, mtime time.Time) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	file, exists := fs.files[path.Clean(name)]
	if !exists {
		return &os.PathError{Op: "chtimes", Path: name, Err: os.ErrNotExist}
	}

	file.modTime = mtime

	return nil
}

// Exists checks if a path exists in the mock filesystem.
func (fs *MockFileSystem) Exists(name string) bool {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	_, exists := fs.files[path.Clean(name)]

	return exists
}

// ListFiles returns all paths in the mock filesystem, sorted.
func (fs *MockFileSystem) ListFiles() []string {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	paths := make([]string, 0, len(fs.files))
	for p := range fs.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	return paths
}

// Now returns the current value of the logical clock.
func (fs *MockFileSystem) Now() time.Time {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	return fs.clock
}

// Remove removes a file or empty directory.
func (fs *MockFileSystem) Remove(name string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	name = path.Clean(name)

	file, exists := fs.files[name]
	if !exists {
		return &os.PathError{Op: "remove", Path: name, Err: os.ErrNotExist}
	}

	if file.isDir {
		for p := range fs.files {
			if strings.HasPrefix(p, name+"/") {
				return &os.PathError{Op: "remove", Path: name, Err: fmt.Errorf("directory not empty")} //nolint:err113 // mirrors ENOTEMPTY
			}
		}
	}

	delete(fs.files, name)
	fs.touchLocked(path.Dir(name))

	return nil
}

// RemoveAll removes a path and everything below it.
func (fs *MockFileSystem) RemoveAll(name string) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	name = path.Clean(name)
	if _, exists := fs.files[name]; !exists {
		return
	}

	for p := range fs.files {
		if p == name || strings.HasPrefix(p, name+"/") {
			delete(fs.files, p)
		}
	}
	fs.touchLocked(path.Dir(name))
}

// Touch advances the clock and stamps name with it, as if its metadata changed.
func (fs *MockFileSystem) Touch(name string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	name = path.Clean(name)
	if _, exists := fs.files[name]; !exists {
		return &os.PathError{Op: "touch", Path: name, Err: os.ErrNotExist}
	}

	fs.touchLocked(name)

	return nil
}

// mkdirAllLocked creates dir and its parents. Assumes the lock is held.
func (fs *MockFileSystem) mkdirAllLocked(dir string) {
	if dir == "/" || dir == "." {
		return
	}

	if _, exists := fs.files[dir]; exists {
		return
	}

	fs.mkdirAllLocked(path.Dir(dir))

	fs.files[dir] = &mockFile{
		modTime: fs.clock,
		isDir:   true,
		perm:    0o755,
	}
	fs.touchLocked(path.Dir(dir))
}

// touchLocked ticks the clock and stamps name. Assumes the lock is held.
func (fs *MockFileSystem) touchLocked(name string) {
	fs.clock = fs.clock.Add(time.Second)

	if file, exists := fs.files[name]; exists {
		file.modTime = fs.clock
	}
}
