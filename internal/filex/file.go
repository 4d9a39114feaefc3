// Package filex has filesystem helpers for on-disk session databases.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// MemoryDSN is the SQLite DSN of a private in-memory database.
const MemoryDSN = ":memory:"

// IsFilePath reports whether dsn names a plain file on disk, as opposed to
// an in-memory database or a "file:" URI.
func IsFilePath(dsn string) bool {
	return dsn != "" && dsn != MemoryDSN && !strings.HasPrefix(dsn, "file:")
}

// EnsureParentDir creates the directory that will hold path, if needed,
// and returns its absolute form.
func EnsureParentDir(path string) (string, error) {
	dir := filepath.Dir(path)
	if !filepath.IsAbs(dir) {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getwd: %w", err)
		}
		dir = filepath.Join(cwd, dir)
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}
