//nolint:varnamelen // Test files use idiomatic short variable names (t, etc.)
package filesystem_test

import (
	"testing"

	"github.com/joe/dir-iter/pkg/filesystem"
)

// TestParseLocation_Local tests ParseLocation with local filesystem paths.
func TestParseLocation_Local(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"/local/path", "relative/dir", "~/notes", "."} {
		result, err := filesystem.ParseLocation(input)
		if err != nil {
			t.Fatalf("ParseLocation(%q) unexpected error: %v", input, err)
		}

		if result.IsRemote {
			t.Errorf("ParseLocation(%q) IsRemote should be false", input)
		}
		if result.Path != input {
			t.Errorf("ParseLocation(%q) Path = %q", input, result.Path)
		}
		if result.String() != input {
			t.Errorf("ParseLocation(%q) String() = %q", input, result.String())
		}
	}
}

// TestParseLocation_SFTP tests ParseLocation with SFTP URLs.
//
//nolint:funlen // Comprehensive table-driven test with many SFTP URL parsing cases
func TestParseLocation_SFTP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		wantErr  bool
		wantUser string
		wantHost string
		wantPort int
		wantPath string
	}{
		{
			name:     "basic SFTP URL",
			input:    "sftp://user@host/path",
			wantUser: "user",
			wantHost: "host",
			wantPort: 22,
			wantPath: "path",
		},
		{
			name:     "SFTP URL with custom port",
			input:    "sftp://admin@server.com:2222/home/data",
			wantUser: "admin",
			wantHost: "server.com",
			wantPort: 2222,
			wantPath: "home/data",
		},
		{
			name:     "absolute remote path",
			input:    "sftp://joe@myserver.com//srv/notes",
			wantUser: "joe",
			wantHost: "myserver.com",
			wantPort: 22,
			wantPath: "/srv/notes",
		},
		{
			name:     "login directory",
			input:    "sftp://joe@myserver.com",
			wantUser: "joe",
			wantHost: "myserver.com",
			wantPort: 22,
			wantPath: ".",
		},
		{
			name:     "login directory with trailing slash",
			input:    "sftp://joe@myserver.com/",
			wantUser: "joe",
			wantHost: "myserver.com",
			wantPort: 22,
			wantPath: ".",
		},
		{
			name:    "missing username",
			input:   "sftp://host/path",
			wantErr: true,
		},
		{
			name:    "missing host",
			input:   "sftp://user@/path",
			wantErr: true,
		},
		{
			name:    "invalid port",
			input:   "sftp://user@host:notaport/path",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := filesystem.ParseLocation(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseLocation(%q) expected error, got %+v", tt.input, result)
				}
				return
			}

			if err != nil {
				t.Fatalf("ParseLocation(%q) unexpected error: %v", tt.input, err)
			}

			if !result.IsRemote {
				t.Error("IsRemote should be true for SFTP URL")
			}
			if result.User != tt.wantUser {
				t.Errorf("User = %q, want %q", result.User, tt.wantUser)
			}
			if result.Host != tt.wantHost {
				t.Errorf("Host = %q, want %q", result.Host, tt.wantHost)
			}
			if result.Port != tt.wantPort {
				t.Errorf("Port = %d, want %d", result.Port, tt.wantPort)
			}
			if result.Path != tt.wantPath {
				t.Errorf("Path = %q, want %q", result.Path, tt.wantPath)
			}
		})
	}
}

func TestLocationString_Remote(t *testing.T) {
	t.Parallel()

	loc := filesystem.Location{IsRemote: true, User: "joe", Host: "box", Port: 2222, Path: "notes"}

	if got, want := loc.String(), "sftp://joe@box:2222/notes"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestOpen_Local(t *testing.T) {
	t.Parallel()

	fsys, root, closer, err := filesystem.Open("some/dir")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	if _, ok := fsys.(*filesystem.RealFileSystem); !ok {
		t.Errorf("Open returned %T, want *filesystem.RealFileSystem", fsys)
	}
	if root != "some/dir" {
		t.Errorf("root = %q, want %q", root, "some/dir")
	}
	if closer != nil {
		t.Error("closer should be nil for local paths")
	}
}

func TestOpen_BadURL(t *testing.T) {
	t.Parallel()

	if _, _, _, err := filesystem.Open("sftp://host-without-user/x"); err == nil {
		t.Error("Open should reject an SFTP URL without a user")
	}
}
