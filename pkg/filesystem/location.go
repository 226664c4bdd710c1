package filesystem

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// DefaultSFTPPort is used when an sftp:// location names no port.
const DefaultSFTPPort = 22

// Location is either a local path or a directory on an SFTP server.
type Location struct {
	IsRemote bool

	// Path is the local path, or the remote path for SFTP locations.
	Path string

	// SFTP only
	Host string
	Port int
	User string
}

// String renders the location the way a user would type it.
func (l Location) String() string {
	if !l.IsRemote {
		return l.Path
	}

	return fmt.Sprintf("sftp://%s@%s:%d/%s", l.User, l.Host, l.Port, l.Path)
}

// ParseLocation detects whether s is a local path or an SFTP URL.
// SFTP URLs have the format: sftp://user@host[:port]/path
// Examples:
//   - sftp://joe@myserver.com/notes       (notes under the login directory)
//   - sftp://joe@myserver.com//srv/notes  (absolute /srv/notes)
//   - ~/notes                             (local path)
func ParseLocation(s string) (Location, error) {
	if strings.HasPrefix(s, "sftp://") {
		return parseSFTPURL(s)
	}

	return Location{Path: s}, nil
}

func parseSFTPURL(raw string) (Location, error) {
	u, err := url.Parse(raw) //nolint:varnamelen // u is idiomatic for URL
	if err != nil {
		return Location{}, fmt.Errorf("invalid SFTP URL: %w", err)
	}

	if u.User == nil || u.User.Username() == "" {
		return Location{}, fmt.Errorf("SFTP URL must include username (sftp://user@host/path)") //nolint:err113,perfsprint // format guidance
	}

	host := u.Hostname()
	if host == "" {
		return Location{}, fmt.Errorf("SFTP URL must include host") //nolint:err113,perfsprint // URL validation error
	}

	port := DefaultSFTPPort
	if portStr := u.Port(); portStr != "" {
		port, err = strconv.Atoi(portStr)
		if err != nil {
			return Location{}, fmt.Errorf("invalid port number: %w", err)
		}
	}

	// sftp://user@host/path  → relative to the login directory
	// sftp://user@host//path → absolute /path
	// sftp://user@host       → the login directory itself
	remotePath := u.Path
	switch {
	case remotePath == "" || remotePath == "/":
		remotePath = "."
	case strings.HasPrefix(remotePath, "//"):
		remotePath = remotePath[1:]
	default:
		remotePath = strings.TrimPrefix(remotePath, "/")
	}

	return Location{
		IsRemote: true,
		Path:     remotePath,
		Host:     host,
		Port:     port,
		User:     u.User.Username(),
	}, nil
}
