package assets

import (
	"fmt"
	"strings"
)

// ValidateAssetName rejects names that are not a single path element
// without an extension, e.g. "xelatex" or "catalog". Binding and style
// names come from user flags and config files and end up in file paths.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.") {
		return fmt.Errorf("%w: %q must not contain a path separator or dot", ErrInvalidAssetName, name)
	}
	return nil
}
