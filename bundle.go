package fa2tex

import (
	"archive/zip"
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/alnah/go-fa2tex/internal/fileutil"
)

// bundleTime stamps every bundle entry, the zip epoch.
var bundleTime = time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC)

// Bundle zips the output directory dir into dest. Entries sit under a
// top-level directory named after dir, sorted, with fixed timestamps and
// permissions: the same tree always gives the same bytes. Symlinked fonts
// are stored as regular files.
func Bundle(dir, dest string) error {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return &WriteError{Path: dest, Err: err}
	}
	absDest, err := filepath.Abs(dest)
	if err != nil {
		return &WriteError{Path: dest, Err: err}
	}

	var names []string
	err = filepath.WalkDir(absDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path == absDest {
			return nil
		}
		names = append(names, path)
		return nil
	})
	if err != nil {
		return &WriteError{Path: dest, Err: err}
	}
	sort.Strings(names)

	top := filepath.Base(absDir)
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, path := range names {
		rel, err := filepath.Rel(absDir, path)
		if err != nil {
			return &WriteError{Path: dest, Err: err}
		}
		data, err := os.ReadFile(path) // #nosec G304 -- walked from the output directory
		if err != nil {
			return &WriteError{Path: dest, Err: err}
		}

		header := &zip.FileHeader{
			Name:     top + "/" + filepath.ToSlash(rel),
			Method:   zip.Deflate,
			Modified: bundleTime,
		}
		header.SetMode(outputFilePermissions)
		w, err := zw.CreateHeader(header)
		if err != nil {
			return &WriteError{Path: dest, Err: err}
		}
		if _, err := w.Write(data); err != nil {
			return &WriteError{Path: dest, Err: err}
		}
	}
	if err := zw.Close(); err != nil {
		return &WriteError{Path: dest, Err: err}
	}

	if err := os.MkdirAll(filepath.Dir(absDest), outputDirPermissions); err != nil {
		return &WriteError{Path: dest, Err: err}
	}
	if _, err := fileutil.WriteAtomic(absDest, &buf, outputFilePermissions); err != nil {
		return &WriteError{Path: dest, Err: err}
	}
	return nil
}
