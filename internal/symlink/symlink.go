// Package symlink creates the filesystem links consumed by the site generator.
package symlink

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/83bytes/bloggy/internal/apperr"
)

// LinkAs creates destDir/name as a symlink to the absolute path of source,
// creating destDir if needed. An existing link to the same source is a
// no-op, so re-running a batch is safe. A destination occupied by anything
// else is reported as apperr.ErrConflict and never overwritten; a missing
// source is reported as apperr.ErrMissingSource so batch callers can skip it.
func LinkAs(source, destDir, name string) error {
	abs, err := filepath.Abs(source)
	if err != nil {
		return fmt.Errorf("symlink: resolve source: %w", err)
	}
	if _, err := os.Stat(abs); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", apperr.ErrMissingSource, abs)
		}
		return fmt.Errorf("symlink: stat source: %w", err)
	}
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return fmt.Errorf("symlink: create dest dir: %w", err)
	}

	dest := filepath.Join(destDir, name)
	if fi, err := os.Lstat(dest); err == nil {
		if fi.Mode()&os.ModeSymlink != 0 {
			target, err := os.Readlink(dest)
			if err == nil && target == abs {
				return nil
			}
			return fmt.Errorf("%w: %s points at %s", apperr.ErrConflict, dest, target)
		}
		return fmt.Errorf("%w: %s exists and is not a symlink", apperr.ErrConflict, dest)
	}

	if err := os.Symlink(abs, dest); err != nil {
		return fmt.Errorf("symlink: link %s: %w", dest, err)
	}
	return nil
}

// Link creates a symlink named after source's base name inside destDir.
func Link(source, destDir string) error {
	return LinkAs(source, destDir, filepath.Base(source))
}
