package fa2tex

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/alnah/go-fa2tex/internal/fontfile"
)

// Font file name patterns per style, matching both the desktop naming
// ("Font Awesome 5 Free-Solid-900.otf") and the web naming ("fa-solid-900.ttf").
var (
	brandsFontPattern  = regexp.MustCompile(`(?i)brands`)
	lightFontPattern   = regexp.MustCompile(`(?i)light-300`)
	solidFontPattern   = regexp.MustCompile(`(?i)solid-900`)
	regularFontPattern = regexp.MustCompile(`(?i)regular-400`)
	// Variant families sharing weights with the base styles.
	variantFontPattern = regexp.MustCompile(`(?i)(duotone|sharp|thin|kit)`)
)

// FontStyle maps a font file name to the style it provides.
func FontStyle(name string) (Style, bool) {
	base := filepath.Base(name)
	if !fontfile.IsFontFile(base) || variantFontPattern.MatchString(base) {
		return 0, false
	}
	switch {
	case brandsFontPattern.MatchString(base):
		return StyleBrands, true
	case lightFontPattern.MatchString(base):
		return StyleLight, true
	case solidFontPattern.MatchString(base):
		return StyleSolid, true
	case regularFontPattern.MatchString(base):
		return StyleRegular, true
	}
	return 0, false
}

// FontFileName is the name a style's font gets in the output tree. Release
// file names contain spaces, which TeX font loaders handle poorly.
func FontFileName(style Style, sourcePath string) string {
	return "fa-" + style.String() + strings.ToLower(filepath.Ext(sourcePath))
}

// LocateFonts finds one font file per style under root. OpenType files are
// preferred over TrueType; within a kind the lexically first path wins.
// Files that do not parse as fonts are skipped with a warning.
func LocateFonts(root string, logger *slog.Logger) (map[Style]FontAsset, error) {
	logger = orDiscard(logger)

	candidates := make(map[Style][]string)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if style, ok := FontStyle(d.Name()); ok {
			candidates[style] = append(candidates[style], path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("searching fonts in %s: %w", root, err)
	}

	fonts := make(map[Style]FontAsset, len(candidates))
	for _, style := range AllStyles() {
		paths := candidates[style]
		sort.SliceStable(paths, func(i, j int) bool {
			ri, rj := fontfile.ExtensionRank(paths[i]), fontfile.ExtensionRank(paths[j])
			if ri != rj {
				return ri < rj
			}
			return paths[i] < paths[j]
		})

		for _, path := range paths {
			info, err := fontfile.Inspect(path)
			if err != nil {
				logger.Warn("skipping unreadable font", "path", path, "error", err)
				continue
			}
			fonts[style] = FontAsset{
				Style:  style,
				Path:   path,
				Name:   FontFileName(style, path),
				Family: info.Family,
			}
			logger.Debug("located font", "style", style, "path", path, "family", info.Family)
			break
		}
	}

	return fonts, nil
}
