package fontfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("reads naming table", func(t *testing.T) {
		t.Parallel()

		info, err := Parse(goregular.TTF)
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		if info.Family != "Go" {
			t.Errorf("Family = %q, want %q", info.Family, "Go")
		}
		if info.Subfamily != "Regular" {
			t.Errorf("Subfamily = %q, want %q", info.Subfamily, "Regular")
		}
		if info.Glyphs == 0 {
			t.Error("Glyphs = 0, want > 0")
		}
	})

	t.Run("rejects non-font data", func(t *testing.T) {
		t.Parallel()

		_, err := Parse([]byte("PK\x03\x04 definitely not a font"))
		if !errors.Is(err, ErrNotFont) {
			t.Errorf("Parse() error = %v, want ErrNotFont", err)
		}
	})
}

func TestInspect(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "fa-solid-900.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	info, err := Inspect(path)
	if err != nil {
		t.Fatalf("Inspect() error = %v", err)
	}
	if info.Family != "Go" {
		t.Errorf("Family = %q, want %q", info.Family, "Go")
	}

	if _, err := Inspect(filepath.Join(dir, "missing.otf")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Inspect(missing) error = %v, want os.ErrNotExist", err)
	}
}

func TestExtensionRank(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path   string
		want   int
		isFont bool
	}{
		{path: "otfs/Font Awesome 5 Free-Solid-900.otf", want: 0, isFont: true},
		{path: "webfonts/fa-solid-900.TTF", want: 1, isFont: true},
		{path: "webfonts/fa-solid-900.woff2", want: 2, isFont: false},
		{path: "LICENSE.txt", want: 2, isFont: false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			if got := ExtensionRank(tt.path); got != tt.want {
				t.Errorf("ExtensionRank(%q) = %d, want %d", tt.path, got, tt.want)
			}
			if got := IsFontFile(tt.path); got != tt.isFont {
				t.Errorf("IsFontFile(%q) = %v, want %v", tt.path, got, tt.isFont)
			}
		})
	}
}
