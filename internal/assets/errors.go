package assets

import "errors"

// Sentinel errors returned by the loaders. The root package maps them to
// its public errors in convertAssetError.
var (
	// ErrStyleNotFound means no catalog stylesheet has the requested name.
	ErrStyleNotFound = errors.New("catalog style not found")

	// ErrTemplateNotFound means no catalog Markdown template has the requested name.
	ErrTemplateNotFound = errors.New("catalog template not found")

	// ErrTemplateSetNotFound means the binding has no TeX template directory.
	ErrTemplateSetNotFound = errors.New("binding templates not found")

	// ErrIncompleteTemplateSet means a binding directory lacks the package
	// or the icons template.
	ErrIncompleteTemplateSet = errors.New("binding templates incomplete")

	// ErrInvalidAssetName means a binding or style name is not a bare word.
	ErrInvalidAssetName = errors.New("invalid template or style name")

	// ErrInvalidBasePath means the template directory is missing or unreadable.
	ErrInvalidBasePath = errors.New("invalid template directory")

	ErrAssetRead = errors.New("reading template file failed")

	// ErrPathTraversal means a template resolves outside the template
	// directory, usually through a symlink.
	ErrPathTraversal = errors.New("template path escapes template directory")
)
