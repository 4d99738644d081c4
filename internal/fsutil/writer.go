// Package fsutil provides file system utility functions.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteFile creates or truncates the file at dir/name and writes content to
// it exactly, closing the file before returning. An existing file is fully
// replaced, never appended to.
func WriteFile(dir, name, content string) (string, error) {
	if name == "" {
		panic("name must not be empty")
	}

	path := filepath.Join(dir, name)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return path, fmt.Errorf("failed to open %s: %w", path, err)
	}

	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return path, fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return path, fmt.Errorf("failed to close %s: %w", path, err)
	}
	return path, nil
}
