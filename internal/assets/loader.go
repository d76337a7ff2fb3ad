package assets

// AssetLoader defines the contract for loading stylesheets and templates.
type AssetLoader interface {
	// LoadStyle loads a CSS style by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadStyle(name string) (string, error)

	// LoadTemplate loads a document template by name (without .md.tmpl extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadTemplate(name string) (string, error)

	// LoadTemplateSet loads the templates of one binding.
	// Returns ErrTemplateSetNotFound if no template of the set exists.
	// Returns ErrIncompleteTemplateSet if only part of the set exists.
	LoadTemplateSet(name string) (*TemplateSet, error)
}
