package fa2tex

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alnah/go-fa2tex/internal/fileutil"
)

// maxEntrySize caps a single decompressed archive member.
const maxEntrySize = 512 << 20

// Extraction permissions.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

var (
	errUnsafePath    = errors.New("entry escapes the target directory")
	errEntryTooLarge = errors.New("entry exceeds the size limit")
)

// Extraction is the outcome of unpacking an archive.
type Extraction struct {
	Dir   string // target directory
	Root  string // single top-level directory of the archive, or Dir
	Files int    // regular files written
}

// ValidateArchive checks that path is a readable, well-formed zip file.
func ValidateArchive(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return &ExtractionError{Path: path, Err: err}
	}
	if info.IsDir() {
		return &ExtractionError{Path: path, Err: errors.New("is a directory, not a zip archive")}
	}
	r, err := zip.OpenReader(path)
	if err != nil {
		return &ExtractionError{Path: path, Err: err}
	}
	return r.Close()
}

// ExtractionDir returns the default extraction directory for an archive:
// the archive name without its extension, inside workDir.
func ExtractionDir(workDir, archivePath string) string {
	name := filepath.Base(archivePath)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	return filepath.Join(workDir, name)
}

// Extract unpacks a zip archive into dir. Files are rewritten in place and
// stamped with the archive's modification times, so extracting the same
// archive twice gives the same tree.
func Extract(archivePath, dir string, logger *slog.Logger) (*Extraction, error) {
	return ExtractWithProgress(archivePath, dir, nil, logger)
}

// ExtractWithProgress is Extract with an entry counter drawn to out.
// A nil out draws nothing.
func ExtractWithProgress(archivePath, dir string, out io.Writer, logger *slog.Logger) (*Extraction, error) {
	logger = orDiscard(logger)

	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, &ExtractionError{Path: archivePath, Err: err}
	}
	defer func() { _ = r.Close() }()

	var bar *progress
	if out != nil {
		bar = newCountProgress(out, "extracting "+filepath.Base(archivePath), "entries", int64(len(r.File)))
		defer bar.Finish()
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, &ExtractionError{Path: archivePath, Err: err}
	}
	if err := os.MkdirAll(absDir, dirPermissions); err != nil {
		return nil, &ExtractionError{Path: archivePath, Err: err}
	}

	result := &Extraction{Dir: absDir, Root: absDir}
	var dirs []*zip.File
	tops := make(map[string]struct{})

	for _, f := range r.File {
		target, err := safeJoin(absDir, f.Name)
		if err != nil {
			return nil, &ExtractionError{Path: archivePath, Err: fmt.Errorf("%s: %w", f.Name, err)}
		}
		if rel := strings.TrimPrefix(filepath.ToSlash(f.Name), "./"); rel != "" {
			tops[strings.SplitN(rel, "/", 2)[0]] = struct{}{}
		}

		switch mode := f.Mode(); {
		case mode.IsDir():
			if err := os.MkdirAll(target, dirPermissions); err != nil {
				return nil, &ExtractionError{Path: archivePath, Err: err}
			}
			dirs = append(dirs, f)
		case mode&os.ModeSymlink != 0:
			logger.Debug("skipping symlink in archive", "entry", f.Name)
		default:
			if err := extractFile(f, target); err != nil {
				return nil, &ExtractionError{Path: archivePath, Err: fmt.Errorf("%s: %w", f.Name, err)}
			}
			result.Files++
		}
		if bar != nil {
			bar.Add(1)
		}
	}

	// Directory times last, writing files touches them. Deepest first.
	sort.Slice(dirs, func(i, j int) bool { return len(dirs[i].Name) > len(dirs[j].Name) })
	for _, f := range dirs {
		target, _ := safeJoin(absDir, f.Name)
		_ = os.Chtimes(target, f.Modified, f.Modified)
	}

	if len(tops) == 1 {
		for top := range tops {
			if candidate := filepath.Join(absDir, top); fileutil.DirExists(candidate) {
				result.Root = candidate
			}
		}
	}

	logger.Debug("extracted archive", "archive", archivePath, "dir", absDir, "files", result.Files)
	return result, nil
}

func extractFile(f *zip.File, target string) error {
	if f.UncompressedSize64 > maxEntrySize {
		return errEntryTooLarge
	}
	if err := os.MkdirAll(filepath.Dir(target), dirPermissions); err != nil {
		return err
	}

	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()

	out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePermissions) // #nosec G304 -- target checked by safeJoin
	if err != nil {
		return err
	}

	n, err := io.Copy(out, io.LimitReader(rc, maxEntrySize+1))
	if err != nil {
		_ = out.Close()
		return err
	}
	if n > maxEntrySize {
		_ = out.Close()
		return errEntryTooLarge
	}
	if err := out.Close(); err != nil {
		return err
	}

	return os.Chtimes(target, f.Modified, f.Modified)
}

// safeJoin resolves an archive member name inside dir, rejecting absolute
// names and names that climb out of dir.
func safeJoin(dir, name string) (string, error) {
	if name == "" || strings.HasPrefix(name, "/") || strings.HasPrefix(name, `\`) || filepath.IsAbs(name) || filepath.VolumeName(name) != "" {
		return "", errUnsafePath
	}
	target := filepath.Join(dir, filepath.FromSlash(name))
	if target != dir && !strings.HasPrefix(target, dir+string(filepath.Separator)) {
		return "", errUnsafePath
	}
	return target, nil
}
