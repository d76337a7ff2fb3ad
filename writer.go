package fa2tex

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/alnah/go-fa2tex/internal/fileutil"
)

// Output permissions.
const (
	outputDirPermissions  = 0o755 // rwxr-xr-x: the tree is meant to be shared
	outputFilePermissions = 0o644
)

// WriteOptions control how fonts land in the output tree.
type WriteOptions struct {
	FontDir   string // relative to the output directory, default "fonts"
	LinkFonts bool   // symlink fonts instead of copying them
}

// WriteOutput writes docs into dir and places every font under
// dir/FontDir. Existing files are replaced, so writing twice is safe.
// It returns the written paths in write order.
func WriteOutput(dir string, docs []Document, fonts map[Style]FontAsset, opts WriteOptions, logger *slog.Logger) ([]string, error) {
	logger = orDiscard(logger)
	if opts.FontDir == "" {
		opts.FontDir = DefaultFontDir
	}

	if err := os.MkdirAll(dir, outputDirPermissions); err != nil {
		return nil, &WriteError{Path: dir, Err: err}
	}

	written := make([]string, 0, len(docs)+len(fonts))
	for _, doc := range docs {
		path := filepath.Join(dir, doc.Name)
		if err := os.WriteFile(path, doc.Content, outputFilePermissions); err != nil {
			return written, &WriteError{Path: path, Err: err}
		}
		logger.Debug("wrote document", "path", path, "bytes", len(doc.Content))
		written = append(written, path)
	}

	if len(fonts) == 0 {
		return written, nil
	}

	fontDir := filepath.Join(dir, filepath.FromSlash(opts.FontDir))
	if err := os.MkdirAll(fontDir, outputDirPermissions); err != nil {
		return written, &WriteError{Path: fontDir, Err: err}
	}

	styles := make([]Style, 0, len(fonts))
	for s := range fonts {
		styles = append(styles, s)
	}
	sort.Slice(styles, func(i, j int) bool { return styles[i] < styles[j] })

	for _, s := range styles {
		font := fonts[s]
		dst := filepath.Join(fontDir, font.Name)
		if err := placeFont(font.Path, dst, opts.LinkFonts); err != nil {
			return written, &WriteError{Path: dst, Err: err}
		}
		logger.Debug("placed font", "style", s, "path", dst, "linked", opts.LinkFonts)
		written = append(written, dst)
	}

	return written, nil
}

// placeFont copies or links src to dst. An existing dst is removed first:
// copying through a previous run's symlink would overwrite the source.
func placeFont(src, dst string, link bool) error {
	if err := os.Remove(dst); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if !link {
		return fileutil.CopyFile(src, dst, outputFilePermissions)
	}
	abs, err := filepath.Abs(src)
	if err != nil {
		return err
	}
	return os.Symlink(abs, dst)
}
