// Package fileutil provides file permission constants and directory
// helpers shared by the sink and the document writer.
package fileutil

import (
	"os"
	"path/filepath"
)

// OwnerReadWrite is the file permission mode for collected spec files
// containing potentially sensitive API data (owner read/write only).
const OwnerReadWrite os.FileMode = 0o600

// ReadableByAll is the file permission mode for generated documents
// intended to be read by documentation tooling and other users.
const ReadableByAll os.FileMode = 0o644

// dirMode is the permission mode for created parent directories.
const dirMode os.FileMode = 0o755

// EnsureParentDir creates the parent directory of path, including any
// missing ancestors.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, dirMode)
}
