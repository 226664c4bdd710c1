package filesystem

import (
	"fmt"
)

// Open creates a FileSystem for the given location string.
// Returns (filesystem, root, closer, error).
//   - filesystem: the FileSystem to iterate with
//   - root: the directory to start from, stripped of any URL prefix; remote
//     roots are resolved to absolute paths
//   - closer: releases the SFTP connection, or nil for local paths
func Open(location string) (FileSystem, string, func(), error) {
	loc, err := ParseLocation(location)
	if err != nil {
		return nil, "", nil, err
	}

	if !loc.IsRemote {
		return NewRealFileSystem(), loc.Path, nil, nil
	}

	conn, err := Connect(loc.Host, loc.Port, loc.User)
	if err != nil {
		return nil, "", nil, fmt.Errorf("failed to connect to %s@%s:%d: %w",
			loc.User, loc.Host, loc.Port, err)
	}

	fs := NewSFTPFileSystem(conn)
	closer := func() {
		_ = fs.Close()
	}

	root, err := fs.RealPath(loc.Path)
	if err != nil {
		closer()
		return nil, "", nil, err
	}

	return fs, root, closer, nil
}
