package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: fa2tex [flags] [version]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a Font Awesome release into TeX macros, a style package and fonts.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  version    Release tag, e.g. 5.15.4 (default: latest release)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Source:")
	fmt.Fprintln(w, "      --local-file <path>   Local archive path or URL instead of a release lookup")
	fmt.Fprintln(w, "      --zipped-dir <dir>    Already extracted release directory")
	fmt.Fprintln(w, "      --work-dir <dir>      Archive cache and extraction directory")
	fmt.Fprintln(w, "  -t, --timeout <dur>       Download timeout (default: 5m)")
	fmt.Fprintln(w, "      --force               Download even when the archive is cached")
	fmt.Fprintln(w, "      --fallback-latest     Use the latest release when the tag does not exist")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Metadata:")
	fmt.Fprintln(w, "      --metadata-dir <s>    Descriptor directory name (default: metadata)")
	fmt.Fprintln(w, "      --metadata-file <s>   Descriptor file name (default: icons.yml)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output-dir <dir>    Output directory (default: fontawesome-latex)")
	fmt.Fprintln(w, "  -b, --binding <name>      xelatex, lualatex, pdflatex; repeatable (default: xelatex)")
	fmt.Fprintln(w, "      --package <name>      TeX package name (default: fontawesome)")
	fmt.Fprintln(w, "      --font-dir <dir>      Font directory inside the output (default: fonts)")
	fmt.Fprintln(w, "      --template-dir <dir>  Custom templates, embedded ones fill the gaps")
	fmt.Fprintln(w, "      --link-fonts          Symlink fonts instead of copying")
	fmt.Fprintln(w, "      --catalog             Also write the icon catalog (md and html)")
	fmt.Fprintln(w, "      --bundle <path>       Zip the output directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "General:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "      --debug               Show debug logs")
	fmt.Fprintln(w, "      --version             Show version information")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  FA2TEX_CONFIG, FA2TEX_VERSION, FA2TEX_LOCAL_FILE, FA2TEX_ZIPPED_DIR,")
	fmt.Fprintln(w, "  FA2TEX_WORK_DIR, FA2TEX_OUTPUT_DIR, FA2TEX_BINDINGS, FA2TEX_PACKAGE,")
	fmt.Fprintln(w, "  FA2TEX_FONT_DIR, FA2TEX_METADATA_DIR, FA2TEX_METADATA_FILE,")
	fmt.Fprintln(w, "  FA2TEX_TEMPLATE_DIR, FA2TEX_TIMEOUT, FA2TEX_FORCE, FA2TEX_FALLBACK_LATEST,")
	fmt.Fprintln(w, "  FA2TEX_LINK_FONTS, FA2TEX_CATALOG, FA2TEX_BUNDLE, FA2TEX_RELEASE_API")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Precedence: flags > environment > config file > defaults.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes:")
	fmt.Fprintln(w, "  0  success")
	fmt.Fprintln(w, "  1  general error")
	fmt.Fprintln(w, "  2  usage, config or unsupported binding")
	fmt.Fprintln(w, "  3  extraction, missing font, missing or malformed metadata, unwritable output")
	fmt.Fprintln(w, "  4  release lookup or download failed")
}

// printVersion prints version information.
func printVersion(w io.Writer) {
	fmt.Fprintf(w, "fa2tex %s\n", Version)
}
