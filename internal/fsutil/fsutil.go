// Package fsutil holds the small filesystem helpers shared by the scan and
// copy stages.
package fsutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ResolvePath returns the fully resolved absolute form of path: relative
// segments cleaned and symlinks resolved where possible. Resolution is
// best-effort; when symlink evaluation fails the cleaned absolute path is
// returned so a dangling link along the way never aborts a scan.
func ResolvePath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved, nil
	}
	return abs, nil
}

// EnsureDir creates dir and any missing parents
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}

// CopyFilePreserving copies src to dst, carrying over the source file's
// permission bits and modification time. dst must not exist; callers decide
// the overwrite policy before calling.
func CopyFilePreserving(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_EXCL, srcInfo.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return err
	}

	// Timestamp preservation is best-effort; the copied bytes are already
	// durable at this point.
	if err := os.Chtimes(dst, srcInfo.ModTime(), srcInfo.ModTime()); err != nil {
		return err
	}
	return nil
}
