// Package assets provides the TeX templates and catalog styles used to
// render Font Awesome bindings.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in templates)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// EmbeddedLoader provides the built-in xelatex template set, the icon
// catalog template and its stylesheet, embedded at compile time.
//
// FilesystemLoader allows users to provide custom templates from a
// directory, with path traversal protection and symlink resolution.
//
// AssetResolver is the loader used by the renderer. It tries the custom
// FilesystemLoader first, falling back to EmbeddedLoader if the asset is
// not found. This enables overriding a single template set while keeping
// the defaults for the rest.
//
// # Directory Structure
//
// Assets are organized by type:
//
//	{basePath}/
//	├── styles/
//	│   └── {name}.css              # catalog stylesheets (e.g., catalog.css)
//	└── templates/
//	    ├── {name}.md.tmpl          # catalog document templates
//	    └── {binding}/
//	        ├── package.sty.tmpl    # style package
//	        └── icons.tex.tmpl      # icon macro definitions
//
// Templates use text/template with "<<" and ">>" delimiters, which never
// occur in TeX sources.
//
// # Security
//
// Asset names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
