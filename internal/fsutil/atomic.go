// Package fsutil provides filesystem helpers for the CLI.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultFileMode is the permission mode for newly created output files.
const DefaultFileMode os.FileMode = 0o644

// WriteAtomic writes content to path via a temp file and rename, so a
// rendered document is never left half-written on disk. If mode is 0,
// DefaultFileMode is used.
func WriteAtomic(path string, content []byte, mode os.FileMode) error {
	if mode == 0 {
		mode = DefaultFileMode
	}

	dir := filepath.Dir(path)
	base := filepath.Base(path)

	// The temp file must live in the target directory: rename is only
	// atomic within one filesystem.
	tmp, err := os.CreateTemp(dir, base+".tmp.*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	success = true
	return nil
}
