// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrEmptyPath  = errors.New("path cannot be empty")
	ErrSamePath   = errors.New("source and destination are the same file")
	ErrNotRegular = errors.New("not a regular file")
)

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists returns true if the path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "fa2tex" -> false (name)
//   - "./fa2tex.yaml" -> true (relative path)
//   - "/absolute/fa2tex.yaml" -> true (absolute)
//   - "C:\config\fa2tex.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// IsURL returns true if the string looks like a URL.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// WriteAtomic streams r into a temporary file next to path and renames it
// into place once fully written. On failure the temporary file is removed
// and path is left untouched. Returns the number of bytes written.
func WriteAtomic(path string, r io.Reader, perm os.FileMode) (int64, error) {
	if path == "" {
		return 0, ErrEmptyPath
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.part")
	if err != nil {
		return 0, fmt.Errorf("creating temp file: %w", err)
	}

	tmpPath := tmpFile.Name()
	cleanup := func() { _ = os.Remove(tmpPath) }

	n, copyErr := io.Copy(tmpFile, r)
	if copyErr != nil {
		_ = tmpFile.Close()
		cleanup()
		return n, fmt.Errorf("writing temp file: %w", copyErr)
	}

	if closeErr := tmpFile.Close(); closeErr != nil {
		cleanup()
		return n, fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Chmod(tmpPath, perm); err != nil {
		cleanup()
		return n, fmt.Errorf("setting permissions: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		cleanup()
		return n, fmt.Errorf("renaming temp file: %w", err)
	}

	return n, nil
}

// CopyFile copies a regular file from src to dst, replacing dst if present.
func CopyFile(src, dst string, perm os.FileMode) error {
	if src == "" || dst == "" {
		return ErrEmptyPath
	}

	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}
	if !srcInfo.Mode().IsRegular() {
		return fmt.Errorf("%w: %s", ErrNotRegular, src)
	}
	if dstInfo, err := os.Stat(dst); err == nil && os.SameFile(srcInfo, dstInfo) {
		return fmt.Errorf("%w: %s", ErrSamePath, dst)
	}

	in, err := os.Open(src) // #nosec G304 -- path comes from the extracted archive tree
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm) // #nosec G304 -- output path built by caller
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
