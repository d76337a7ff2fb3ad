package fa2tex

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"regexp"
	"strings"
)

// proMarker matches path components that only exist in Pro releases:
// the release directory ("fontawesome-pro-5.15.4-desktop"), the Pro font
// family ("Font Awesome 5 Pro-Solid-900.otf") and the light weight.
var proMarker = regexp.MustCompile(`(?i)(fontawesome-pro|font awesome \d+ pro|fa-light-300|light-300\.(otf|ttf|woff2?))`)

// ClassifyDistribution decides whether an extracted tree is a Free or a
// Pro release. It is the only place where that decision is made.
func ClassifyDistribution(root string) (Distribution, error) {
	result := DistributionFree
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if IsProMarker(d.Name()) {
			result = DistributionPro
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		return DistributionFree, &ExtractionError{Path: root, Err: fmt.Errorf("classifying distribution: %w", err)}
	}
	return result, nil
}

// IsProMarker reports whether a file or directory name only occurs in Pro releases.
func IsProMarker(name string) bool {
	return proMarker.MatchString(strings.TrimSpace(name))
}
