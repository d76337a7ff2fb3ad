package fa2tex

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"golang.org/x/image/font/gofont/goregular"
)

// fixtureDescriptor is a trimmed Font Awesome 5 icons.yml.
const fixtureDescriptor = `thumbs-up:
  changes: ['1', '5.0.0']
  label: Thumbs Up
  unicode: f164
  styles:
    - solid
    - regular
  free:
    - solid
    - regular
github:
  label: GitHub
  unicode: f09b
  styles:
    - brands
  free:
    - brands
abacus:
  label: Abacus
  unicode: f640
  styles:
    - light
  free: []
500px:
  label: 500px
  unicode: f26e
  styles:
    - brands
  free:
    - brands
`

// fixtureFreeTree lists the files of a minimal Free desktop release.
// Font entries are nil and get a real font at write time.
func fixtureFreeTree(version string) map[string][]byte {
	top := "fontawesome-free-" + version + "-desktop/"
	return map[string][]byte{
		top + "metadata/icons.yml":                         []byte(fixtureDescriptor),
		top + "otfs/Font Awesome 5 Free-Regular-400.otf":   nil,
		top + "otfs/Font Awesome 5 Free-Solid-900.otf":     nil,
		top + "otfs/Font Awesome 5 Brands-Regular-400.otf": nil,
		top + "LICENSE.txt":                                []byte("license"),
	}
}

// fixtureProTree adds the light weight and renames the release directory.
func fixtureProTree(version string) map[string][]byte {
	top := "fontawesome-pro-" + version + "-desktop/"
	return map[string][]byte{
		top + "metadata/icons.yml":                         []byte(fixtureDescriptor),
		top + "otfs/Font Awesome 5 Pro-Regular-400.otf":    nil,
		top + "otfs/Font Awesome 5 Pro-Solid-900.otf":      nil,
		top + "otfs/Font Awesome 5 Pro-Light-300.otf":      nil,
		top + "otfs/Font Awesome 5 Brands-Regular-400.otf": nil,
	}
}

var fixtureTime = time.Date(2021, 8, 4, 12, 0, 0, 0, time.UTC)

// buildZip returns a zip archive holding files. nil contents become a font.
func buildZip(t *testing.T, files map[string][]byte) []byte {
	t.Helper()

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range names {
		content := files[name]
		if content == nil {
			content = goregular.TTF
		}
		w, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate, Modified: fixtureTime})
		if err != nil {
			t.Fatalf("creating zip entry %s: %v", name, err)
		}
		if _, err := w.Write(content); err != nil {
			t.Fatalf("writing zip entry %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("closing zip: %v", err)
	}
	return buf.Bytes()
}

// writeZip writes a zip archive holding files to path.
func writeZip(t *testing.T, path string, files map[string][]byte) {
	t.Helper()

	if err := os.WriteFile(path, buildZip(t, files), 0o600); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// writeTree writes files under dir. nil contents become a font.
func writeTree(t *testing.T, dir string, files map[string][]byte) {
	t.Helper()

	for name, content := range files {
		if content == nil {
			content = goregular.TTF
		}
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			t.Fatalf("creating %s: %v", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, content, 0o600); err != nil {
			t.Fatalf("writing %s: %v", path, err)
		}
	}
}

// snapshot reads every regular file under dir, keyed by slash path.
func snapshot(t *testing.T, dir string) map[string]string {
	t.Helper()

	out := make(map[string]string)
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		out[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	if err != nil {
		t.Fatalf("reading tree %s: %v", dir, err)
	}
	return out
}
