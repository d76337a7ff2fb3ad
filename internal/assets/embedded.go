package assets

import (
	"embed"
	"fmt"
	"path"
)

//go:embed styles/*
var styles embed.FS

//go:embed templates/*
var templates embed.FS

// EmbeddedLoader loads assets from embedded filesystem.
// Implements AssetLoader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadStyle loads a CSS style from embedded assets by name.
// The name should not include the .css extension.
func (e *EmbeddedLoader) LoadStyle(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := styles.ReadFile("styles/" + name + ".css")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}

	return string(content), nil
}

// LoadTemplate loads a document template from embedded assets by name.
// The name should not include the .md.tmpl extension.
func (e *EmbeddedLoader) LoadTemplate(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := templates.ReadFile("templates/" + name + ".md.tmpl")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}

	return string(content), nil
}

// LoadTemplateSet loads the embedded templates of a binding.
func (e *EmbeddedLoader) LoadTemplateSet(name string) (*TemplateSet, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}

	dir := path.Join("templates", name)
	pkg, pkgErr := templates.ReadFile(path.Join(dir, PackageTemplateFile))
	icons, iconsErr := templates.ReadFile(path.Join(dir, IconsTemplateFile))

	switch {
	case pkgErr != nil && iconsErr != nil:
		return nil, fmt.Errorf("%w: %q", ErrTemplateSetNotFound, name)
	case pkgErr != nil:
		return nil, fmt.Errorf("%w: %q missing %s", ErrIncompleteTemplateSet, name, PackageTemplateFile)
	case iconsErr != nil:
		return nil, fmt.Errorf("%w: %q missing %s", ErrIncompleteTemplateSet, name, IconsTemplateFile)
	}

	return &TemplateSet{
		Name:    name,
		Package: string(pkg),
		Icons:   string(icons),
	}, nil
}

// Compile-time interface check.
var _ AssetLoader = (*EmbeddedLoader)(nil)
