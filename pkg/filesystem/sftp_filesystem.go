package filesystem

import (
	"fmt"
	"os"
)

// SFTPFileSystem implements FileSystem over an SFTP connection.
// Iteration is single-threaded, so one client serves every call.
type SFTPFileSystem struct {
	conn *SFTPConnection
}

// NewSFTPFileSystem creates a new SFTP filesystem using an established connection.
func NewSFTPFileSystem(conn *SFTPConnection) *SFTPFileSystem {
	return &SFTPFileSystem{conn: conn}
}

// Close closes the underlying connection.
func (fs *SFTPFileSystem) Close() error {
	if fs.conn == nil {
		return nil
	}

	return fs.conn.Close()
}

// Join joins remote path elements with forward slashes.
func (fs *SFTPFileSystem) Join(elem ...string) string {
	return fs.conn.Client().Join(elem...)
}

// Lstat returns remote file information without following symbolic links.
func (fs *SFTPFileSystem) Lstat(name string) (os.FileInfo, error) {
	info, err := fs.conn.Client().Lstat(name)
	if err != nil {
		return nil, fmt.Errorf("failed to lstat remote file %s: %w", name, err)
	}

	return info, nil
}

// ReadDir lists the immediate children of a remote directory.
func (fs *SFTPFileSystem) ReadDir(dirname string) ([]os.FileInfo, error) {
	infos, err := fs.conn.Client().ReadDir(dirname)
	if err != nil {
		return nil, fmt.Errorf("failed to read remote directory %s: %w", dirname, err)
	}

	return infos, nil
}

// RealPath resolves a remote path (possibly relative to the login
// directory) to an absolute one.
func (fs *SFTPFileSystem) RealPath(name string) (string, error) {
	resolved, err := fs.conn.Client().RealPath(name)
	if err != nil {
		return "", fmt.Errorf("failed to resolve remote path %s: %w", name, err)
	}

	return resolved, nil
}

// Stat returns remote file information, following symbolic links.
func (fs *SFTPFileSystem) Stat(name string) (os.FileInfo, error) {
	info, err := fs.conn.Client().Stat(name)
	if err != nil {
		return nil, fmt.Errorf("failed to stat remote file %s: %w", name, err)
	}

	return info, nil
}
