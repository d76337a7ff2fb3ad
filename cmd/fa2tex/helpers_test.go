package main

import (
	"archive/zip"
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

const testDescriptor = `thumbs-up:
  label: Thumbs Up
  unicode: f164
  styles: [solid, regular]
  free: [solid, regular]
github:
  label: GitHub
  unicode: f09b
  styles: [brands]
  free: [brands]
`

// testRelease lists the files of a minimal Free desktop release.
// nil contents become a font.
func testRelease() map[string][]byte {
	top := "fontawesome-free-5.15.4-desktop/"
	return map[string][]byte{
		top + "metadata/icons.yml":                         []byte(testDescriptor),
		top + "otfs/Font Awesome 5 Free-Regular-400.otf":   nil,
		top + "otfs/Font Awesome 5 Free-Solid-900.otf":     nil,
		top + "otfs/Font Awesome 5 Brands-Regular-400.otf": nil,
	}
}

// writeRelease writes the test release under dir and returns its root.
func writeRelease(t *testing.T, dir string) string {
	t.Helper()

	for name, content := range testRelease() {
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
	return filepath.Join(dir, "fontawesome-free-5.15.4-desktop")
}

// releaseZip returns the test release as a zip archive.
func releaseZip(t *testing.T) []byte {
	t.Helper()

	files := testRelease()
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
		w, err := zw.Create(name)
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

// releaseServer serves the release API for 5.15.4 and its archive.
// Unknown tags answer 404 like GitHub.
func releaseServer(t *testing.T) *httptest.Server {
	t.Helper()

	archive := releaseZip(t)
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/releases/latest", "/releases/tags/5.15.4":
			_, _ = fmt.Fprintf(w, `{"tag_name":"5.15.4","assets":[{"name":"fontawesome-free-5.15.4-desktop.zip","browser_download_url":"%s/download/desktop.zip"}]}`, srv.URL)
		case "/download/desktop.zip":
			_, _ = w.Write(archive)
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"Not Found"}`))
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

// testEnv returns an Environment capturing output, with vars as its only
// variables.
func testEnv(vars map[string]string) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	if vars == nil {
		vars = map[string]string{}
	}
	return &Environment{Stdout: &stdout, Stderr: &stderr, Vars: vars}, &stdout, &stderr
}
