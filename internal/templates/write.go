package templates

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
)

// WriteFile writes data to path, replacing any existing file without
// confirmation. The parent directory must exist.
//
// New files are created with 0644 permissions; an existing file keeps its mode.
func WriteFile(path string, data []byte) error {
	return writeAtomic(path, bytes.NewReader(data), 0o644)
}

// CopyFile copies name from src into dstDir verbatim, without templating.
// It returns the destination path and the number of bytes copied.
// A missing source file is an error wrapping fs.ErrNotExist.
func CopyFile(src Source, name, dstDir string) (string, int64, error) {
	info, err := fs.Stat(src.fsys, name)
	if err != nil {
		return "", 0, fmt.Errorf("%s not found in %s: %w", name, src.origin, err)
	}
	if info.IsDir() {
		return "", 0, fmt.Errorf("%s in %s is a directory", name, src.origin)
	}

	in, err := src.fsys.Open(name)
	if err != nil {
		return "", 0, fmt.Errorf("failed to open source file %s: %w", name, err)
	}
	defer func() { _ = in.Close() }()

	// Embedded files report read-only modes; keep the source's permission
	// bits but always let the owner write the copy.
	perm := info.Mode().Perm() | 0o200

	dst := filepath.Join(dstDir, filepath.Base(name))
	if err := writeAtomic(dst, in, perm); err != nil {
		return "", 0, err
	}
	return dst, info.Size(), nil
}

// writeAtomic streams r into path through a temp file in the same directory
// and renames it into place.
//
// Readers of path see either the old contents or the new ones, never a
// partial write. When the write fails the existing file is untouched and the
// temp file is removed by atomic.WriteFile.
//
// perm applies only to files that did not exist before. An existing file
// keeps its mode, because atomic.WriteFile copies the old file's permissions
// onto the replacement.
func writeAtomic(path string, r io.Reader, perm fs.FileMode) error {
	// Remember whether this is a create or a replace before the rename
	// makes the two indistinguishable.
	_, statErr := os.Stat(path)
	existed := statErr == nil

	if err := atomic.WriteFile(path, r); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	// atomic.WriteFile creates brand new files through os.CreateTemp (0600).
	if !existed {
		if err := os.Chmod(path, perm); err != nil {
			return fmt.Errorf("failed to set permissions on %s: %w", path, err)
		}
	}
	return nil
}
