// Package pathutil resolves user-supplied key and file paths.
package pathutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ExpandTilde expands a leading ~/ to the home directory.
// Returns the path unchanged if it doesn't start with ~/.
func ExpandTilde(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("expand home dir: %w", err)
	}

	return filepath.Join(home, path[2:]), nil
}

// ResolvePath resolves a path read from a settings file.
//   - ~/... paths are expanded to the home directory
//   - absolute paths are returned as-is
//   - relative paths are resolved from baseDir, the settings file's directory
func ResolvePath(path, baseDir string) (string, error) {
	if path == "" {
		return "", errors.New("path cannot be empty")
	}

	if strings.HasPrefix(path, "~/") {
		return ExpandTilde(path)
	}

	if filepath.IsAbs(path) {
		return path, nil
	}

	return filepath.Join(baseDir, path), nil
}
