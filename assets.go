package fa2tex

import (
	"errors"

	"github.com/alnah/go-fa2tex/internal/assets"
)

// Asset name constants for built-in styles and templates.
const (
	// DefaultCatalogStyle is the name of the built-in catalog stylesheet.
	DefaultCatalogStyle = assets.DefaultStyleName

	// DefaultCatalogTemplate is the name of the built-in catalog template.
	DefaultCatalogTemplate = assets.DefaultCatalogTemplate

	templateLeftDelim  = assets.LeftDelim
	templateRightDelim = assets.RightDelim
)

// AssetLoader defines the contract for loading TeX templates and catalog
// styles. Template sets are named after the binding they render.
//
// The library provides NewAssetLoader() for filesystem-based loading with
// fallback to embedded defaults. Implement this interface for custom backends.
type AssetLoader interface {
	// LoadStyle loads a CSS style by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	LoadStyle(name string) (string, error)

	// LoadTemplate loads a document template by name (without .md.tmpl extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	LoadTemplate(name string) (string, error)

	// LoadTemplateSet loads the templates of a binding.
	// Returns ErrTemplateSetNotFound if the template set doesn't exist.
	// Returns ErrIncompleteTemplateSet if required templates are missing.
	LoadTemplateSet(name string) (*TemplateSet, error)
}

// TemplateSet holds the text/template sources of one binding. Both use
// "<<" and ">>" as delimiters.
type TemplateSet struct {
	Name    string // binding name or directory path
	Package string // style package template
	Icons   string // icon macro definitions template
}

// NewAssetLoader creates an AssetLoader for the given base path.
// If basePath is empty, returns a loader using only embedded assets.
// If basePath is set, custom assets take precedence with fallback to embedded.
//
// The basePath directory may contain:
//   - styles/{name}.css for catalog styles
//   - templates/{name}.md.tmpl for catalog templates
//   - templates/{binding}/package.sty.tmpl and icons.tex.tmpl for template sets
//
// Returns ErrInvalidAssetPath if basePath is set but not a valid, readable directory.
func NewAssetLoader(basePath string) (AssetLoader, error) {
	resolver, err := assets.NewAssetResolver(basePath)
	if err != nil {
		return nil, convertAssetError(err)
	}
	return &assetLoaderAdapter{resolver: resolver}, nil
}

// assetLoaderAdapter wraps internal AssetResolver to return public types.
type assetLoaderAdapter struct {
	resolver *assets.AssetResolver
}

func (a *assetLoaderAdapter) LoadStyle(name string) (string, error) {
	content, err := a.resolver.LoadStyle(name)
	if err != nil {
		return "", convertAssetError(err)
	}
	return content, nil
}

func (a *assetLoaderAdapter) LoadTemplate(name string) (string, error) {
	content, err := a.resolver.LoadTemplate(name)
	if err != nil {
		return "", convertAssetError(err)
	}
	return content, nil
}

func (a *assetLoaderAdapter) LoadTemplateSet(name string) (*TemplateSet, error) {
	ts, err := a.resolver.LoadTemplateSet(name)
	if err != nil {
		return nil, convertAssetError(err)
	}
	return &TemplateSet{
		Name:    ts.Name,
		Package: ts.Package,
		Icons:   ts.Icons,
	}, nil
}

// convertAssetError maps internal asset errors to public errors.
func convertAssetError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, assets.ErrStyleNotFound):
		return wrapError(ErrStyleNotFound, err)
	case errors.Is(err, assets.ErrTemplateNotFound):
		return wrapError(ErrTemplateNotFound, err)
	case errors.Is(err, assets.ErrTemplateSetNotFound):
		return wrapError(ErrTemplateSetNotFound, err)
	case errors.Is(err, assets.ErrIncompleteTemplateSet):
		return wrapError(ErrIncompleteTemplateSet, err)
	case errors.Is(err, assets.ErrInvalidBasePath):
		return wrapError(ErrInvalidAssetPath, err)
	case errors.Is(err, assets.ErrPathTraversal):
		return wrapError(ErrInvalidAssetPath, err)
	case errors.Is(err, assets.ErrInvalidAssetName):
		return wrapError(ErrTemplateNotFound, err) // Invalid name means not found
	default:
		return err
	}
}

// wrapError creates a new error that wraps the original with a public sentinel.
// The resulting error preserves the original message via Error() and supports
// errors.Is() matching against the public sentinel via Unwrap().
func wrapError(sentinel, original error) error {
	return &wrappedAssetError{sentinel: sentinel, original: original}
}

type wrappedAssetError struct {
	sentinel error
	original error
}

func (e *wrappedAssetError) Error() string {
	return e.original.Error()
}

// Unwrap returns the public sentinel for errors.Is() matching.
// Internal errors are not exposed since they're in internal/ packages.
func (e *wrappedAssetError) Unwrap() error {
	return e.sentinel
}
