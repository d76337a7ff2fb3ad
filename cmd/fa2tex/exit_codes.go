package main

import (
	"errors"
	"os"

	fa2tex "github.com/alnah/go-fa2tex"
	"github.com/alnah/go-fa2tex/internal/config"
)

// Exit codes for fa2tex CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // Extraction, missing metadata, unwritable output
	ExitNetwork = 4 // Release lookup or download failed
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Network errors (exit 4)
	if errors.Is(err, fa2tex.ErrDownload) {
		return ExitNetwork
	}

	// I/O errors (exit 3)
	if errors.Is(err, fa2tex.ErrExtraction) ||
		errors.Is(err, fa2tex.ErrMetadataNotFound) ||
		errors.Is(err, fa2tex.ErrMetadataParse) ||
		errors.Is(err, fa2tex.ErrWrite) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrInvalidEnv) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, fa2tex.ErrUnsupportedBinding) ||
		errors.Is(err, fa2tex.ErrUnknownBinding) ||
		errors.Is(err, fa2tex.ErrInvalidPackage) ||
		errors.Is(err, fa2tex.ErrInvalidFontDir) ||
		errors.Is(err, fa2tex.ErrNoSource) ||
		errors.Is(err, fa2tex.ErrStyleNotFound) ||
		errors.Is(err, fa2tex.ErrTemplateNotFound) ||
		errors.Is(err, fa2tex.ErrTemplateSetNotFound) ||
		errors.Is(err, fa2tex.ErrIncompleteTemplateSet) ||
		errors.Is(err, fa2tex.ErrTemplateRender) ||
		errors.Is(err, fa2tex.ErrInvalidAssetPath) {
		return ExitUsage
	}

	return ExitGeneral
}
