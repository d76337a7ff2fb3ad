// Package fa2tex turns a Font Awesome release into TeX sources: one macro per
// icon and style, a style package loading the release fonts, and the fonts
// themselves.
//
// # Quick Start
//
// Create a converter and run it against the latest release:
//
//	conv, err := fa2tex.NewConverter(fa2tex.WithLogger(slog.Default()))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Run(ctx, fa2tex.Request{
//	    OutputDir: "fontawesome-latex",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Files)
//
// The output directory holds fontawesome.sty, fontawesome-icons.tex and a
// fonts/ directory. A document then uses:
//
//	\usepackage{fontawesome}
//	\fasThumbsUp{} \farThumbsUp{} \faThumbsUp{}
//
// # Pipeline
//
//  1. Fetch: resolve the release through the GitHub API and download its
//     archive into the work directory, or use a local archive (Fetcher)
//  2. Extract: unpack the archive and classify it as Free or Pro (Extract,
//     ClassifyDistribution)
//  3. Load: parse metadata/icons.yml and locate one font per style
//     (LoadCatalog, LocateFonts)
//  4. Render: produce the documents of each binding (Renderer)
//  5. Write: place documents and fonts in the output directory, optionally
//     zip it (WriteOutput, Bundle)
//
// Nothing is written to the output directory unless every earlier stage
// succeeded.
//
// # Macro Names
//
// A macro is the style prefix (far, fas, fal, fab) followed by the icon
// identifier in PascalCase, digits spelled out since TeX control words only
// hold letters: "thumbs-up" in solid is \fasThumbsUp, "500px" in brands is
// \fabFiveZeroZeroPx. Each icon also gets \fa<Name>, bound to its first
// style in the order regular, solid, light, brands.
//
// A Free release only gets macros for the free styles of each icon, never
// for light. Converter.Run fails with ErrFontNotFound when one of those
// styles has no font in the release.
//
// # Errors
//
// Every failure is terminal and matches one sentinel through errors.Is:
//
//	ErrDownload            *DownloadError
//	ErrExtraction          *ExtractionError
//	ErrMetadataNotFound    *MetadataNotFoundError
//	ErrMetadataParse       *MetadataParseError
//	ErrUnsupportedBinding  *UnsupportedBindingError
//	ErrWrite               *WriteError
//
// A missing style font is an *ExtractionError that also matches ErrFontNotFound.
//
// # Custom Templates
//
// Override the built-in templates using WithAssetPath or AssetLoader:
//
//	conv, err := fa2tex.NewConverter(fa2tex.WithAssetPath("/path/to/assets"))
//
// Asset directory structure:
//
//	assets/
//	├── styles/
//	│   └── catalog.css
//	└── templates/
//	    ├── catalog.md.tmpl
//	    └── xelatex/
//	        ├── package.sty.tmpl
//	        └── icons.tex.tmpl
//
// Templates use text/template with "<<" and ">>" as delimiters, leaving
// TeX braces alone. They receive:
//
//	.Title          "Font Awesome 5.15.4 Free"
//	.Package        package name, .PackageFile and .IconsFile its file names
//	.Version        release version, may be empty
//	.Distribution   "free" or "pro"
//	.FontDir        font directory with a trailing slash
//	.Fonts          []{Style, Prefix, File, Family}
//	.StyleList      "regular, solid, brands"
//	.Icons          []{ID, Label, Code, Macros []{Name, Style, Code}, Alias {Name, Target}}
//	.IconCount      icons with at least one macro
//	.MacroCount     style macros, aliases excluded
//	.Example        {Macro, Style, Code} of the first macro
//
// and the functions comment (flatten to one line) and cell (escape for a
// Markdown table cell). Missing fields fail the render.
package fa2tex
