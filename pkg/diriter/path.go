package diriter

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
)

// HiddenMarker is the leading character that marks an entry as hidden.
const HiddenMarker = "."

// Clean returns the absolute, expanded form of path. A leading "~" is
// expanded to the user's home directory. Clean is idempotent.
func Clean(path string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("failed to expand %s: %w", path, err)
	}

	if filepath.IsAbs(expanded) {
		return filepath.Clean(expanded), nil
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf("failed to make %s absolute: %w", path, err)
	}

	return abs, nil
}

// Identity returns the key used to recognise the same entry across rescans:
// the final path segment.
func Identity(path string) string {
	return filepath.Base(path)
}

// IsHidden reports whether the final segment of path starts with HiddenMarker.
func IsHidden(path string) bool {
	return strings.HasPrefix(Identity(path), HiddenMarker)
}
