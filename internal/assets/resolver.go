package assets

import (
	"errors"
)

// AssetResolver serves binding templates and catalog styles from a user
// template directory when one is configured, and from the embedded copies
// otherwise. A template missing from the user directory falls back to the
// embedded one, so a directory may override only templates/xelatex.
type AssetResolver struct {
	custom   AssetLoader // nil without --template-dir
	embedded AssetLoader
}

// NewAssetResolver builds a resolver over templateDir. An empty templateDir
// serves embedded assets only; a templateDir that is not a readable
// directory fails with ErrInvalidBasePath.
func NewAssetResolver(templateDir string) (*AssetResolver, error) {
	resolver := &AssetResolver{
		embedded: NewEmbeddedLoader(),
	}

	if templateDir != "" {
		fsLoader, err := NewFilesystemLoader(templateDir)
		if err != nil {
			return nil, err
		}
		resolver.custom = fsLoader
	}

	return resolver, nil
}

// LoadStyle returns the catalog stylesheet called name.
func (r *AssetResolver) LoadStyle(name string) (string, error) {
	return withFallback(r, func(loader AssetLoader) (string, error) {
		return loader.LoadStyle(name)
	})
}

// LoadTemplate returns the catalog Markdown template called name.
func (r *AssetResolver) LoadTemplate(name string) (string, error) {
	return withFallback(r, func(loader AssetLoader) (string, error) {
		return loader.LoadTemplate(name)
	})
}

// LoadTemplateSet returns the package and icons templates of a binding.
// An incomplete user set is an error, not a fallback.
func (r *AssetResolver) LoadTemplateSet(binding string) (*TemplateSet, error) {
	return withFallback(r, func(loader AssetLoader) (*TemplateSet, error) {
		return loader.LoadTemplateSet(binding)
	})
}

// withFallback tries the user directory, then the embedded assets. Only
// not-found errors fall through; a bad name or an unreadable file in the
// user directory is reported as is.
func withFallback[T any](r *AssetResolver, load func(AssetLoader) (T, error)) (T, error) {
	if r.custom == nil {
		return load(r.embedded)
	}

	v, err := load(r.custom)
	if err == nil || !isNotFoundError(err) {
		return v, err
	}
	return load(r.embedded)
}

// isNotFoundError reports whether err means the user directory lacks the asset.
func isNotFoundError(err error) bool {
	return errors.Is(err, ErrStyleNotFound) ||
		errors.Is(err, ErrTemplateNotFound) ||
		errors.Is(err, ErrTemplateSetNotFound)
}

// HasCustomLoader reports whether a template directory is configured.
func (r *AssetResolver) HasCustomLoader() bool {
	return r.custom != nil
}

var _ AssetLoader = (*AssetResolver)(nil)
