package fa2tex

import (
	"errors"
	"fmt"
)

// Sentinel errors for library operations.
// The typed errors below match them through errors.Is.
var (
	ErrDownload           = errors.New("download failed")
	ErrExtraction         = errors.New("extraction failed")
	ErrMetadataNotFound   = errors.New("icon metadata not found")
	ErrMetadataParse      = errors.New("icon metadata is malformed")
	ErrFontNotFound       = errors.New("font file not found")
	ErrUnsupportedBinding = errors.New("unsupported binding")
	ErrWrite              = errors.New("writing output failed")

	// Input validation errors.
	ErrUnknownBinding = errors.New("unknown binding")
	ErrInvalidCatalog = errors.New("invalid icon catalog")
	ErrNoSource       = errors.New("no archive source")
	ErrReleaseAsset   = errors.New("release has no zip archive")
	ErrInvalidPackage = errors.New("invalid package name")
	ErrInvalidFontDir = errors.New("font directory must be relative to the output directory")

	// Asset loading errors.
	ErrStyleNotFound         = errors.New("style not found")
	ErrTemplateNotFound      = errors.New("template not found")
	ErrTemplateSetNotFound   = errors.New("template set not found")
	ErrIncompleteTemplateSet = errors.New("template set missing required template")
	ErrTemplateRender        = errors.New("template rendering failed")
	ErrInvalidAssetPath      = errors.New("invalid asset path")
)

// DownloadError reports a failed release lookup or archive download.
// StatusCode is zero for connection failures.
type DownloadError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *DownloadError) Error() string {
	msg := "download " + e.URL
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(": HTTP %d", e.StatusCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DownloadError) Unwrap() error        { return e.Err }
func (e *DownloadError) Is(target error) bool { return target == ErrDownload }

// ExtractionError reports an archive that cannot be opened or unpacked.
type ExtractionError struct {
	Path string
	Err  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract %s: %v", e.Path, e.Err)
}

func (e *ExtractionError) Unwrap() error        { return e.Err }
func (e *ExtractionError) Is(target error) bool { return target == ErrExtraction }

// MetadataNotFoundError reports a missing icon descriptor.
type MetadataNotFoundError struct {
	Path string // where the descriptor was expected
}

func (e *MetadataNotFoundError) Error() string {
	return fmt.Sprintf("icon metadata not found: %s", e.Path)
}

func (e *MetadataNotFoundError) Is(target error) bool { return target == ErrMetadataNotFound }

// MetadataParseError reports a malformed icon descriptor.
// Key names the offending icon when the document itself parsed.
type MetadataParseError struct {
	Path string
	Key  string
	Err  error
}

func (e *MetadataParseError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("parse %s: icon %q: %v", e.Path, e.Key, e.Err)
	}
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *MetadataParseError) Unwrap() error        { return e.Err }
func (e *MetadataParseError) Is(target error) bool { return target == ErrMetadataParse }

// UnsupportedBindingError reports a binding without a complete template set.
type UnsupportedBindingError struct {
	Binding Binding
}

func (e *UnsupportedBindingError) Error() string {
	return fmt.Sprintf("binding %s is not supported (only xelatex has templates)", e.Binding)
}

func (e *UnsupportedBindingError) Is(target error) bool { return target == ErrUnsupportedBinding }

// WriteError reports a failure to write into the output directory.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error        { return e.Err }
func (e *WriteError) Is(target error) bool { return target == ErrWrite }
