// Package filex holds small filesystem helpers for local backups.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureDir creates dir (relative paths resolve against the working
// directory) and returns its absolute path.
func EnsureDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", dir, err)
	}

	if err := os.MkdirAll(abs, 0o700); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", abs, err)
	}

	return abs, nil
}

// WriteFile writes data to path with owner-only permissions, creating the
// parent directory first.
func WriteFile(path string, data []byte) (string, error) {
	dir, err := EnsureDir(filepath.Dir(path))
	if err != nil {
		return "", err
	}

	full := filepath.Join(dir, filepath.Base(path))
	if err := os.WriteFile(full, data, 0o600); err != nil {
		return "", fmt.Errorf("write %s: %w", full, err)
	}
	return full, nil
}
