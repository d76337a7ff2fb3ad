// Package fontfile inspects OpenType and TrueType font files.
package fontfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font/sfnt"
)

// ErrNotFont indicates the file is not a parsable sfnt font.
var ErrNotFont = errors.New("not an OpenType/TrueType font")

// Extensions lists the font file extensions understood, in preference order.
var Extensions = []string{".otf", ".ttf"}

// Info describes a parsed font file.
type Info struct {
	Family    string
	Subfamily string
	Glyphs    int
}

// Inspect parses the font at path and reads its naming table.
func Inspect(path string) (*Info, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- font paths come from the extracted tree
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse parses font bytes and reads its naming table.
func Parse(data []byte) (*Info, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFont, err)
	}

	var buf sfnt.Buffer
	info := &Info{Glyphs: f.NumGlyphs()}
	if family, err := f.Name(&buf, sfnt.NameIDFamily); err == nil {
		info.Family = family
	}
	if sub, err := f.Name(&buf, sfnt.NameIDSubfamily); err == nil {
		info.Subfamily = sub
	}
	return info, nil
}

// ExtensionRank orders font files by preference; unknown extensions rank last.
func ExtensionRank(path string) int {
	ext := strings.ToLower(filepath.Ext(path))
	for i, e := range Extensions {
		if e == ext {
			return i
		}
	}
	return len(Extensions)
}

// IsFontFile reports whether path has a supported font extension.
func IsFontFile(path string) bool {
	return ExtensionRank(path) < len(Extensions)
}
