package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags controlling the CLI itself.
type commonFlags struct {
	config  string
	quiet   bool
	debug   bool
	version bool
	help    bool
}

// sourceFlags select the release archive.
type sourceFlags struct {
	localFile      string
	zippedDir      string
	workDir        string
	timeout        string
	force          bool
	fallbackLatest bool
}

// metadataFlags locate the icon descriptor.
type metadataFlags struct {
	dir  string
	file string
}

// outputFlags define the generated tree.
type outputFlags struct {
	dir         string
	bindings    []string
	packageName string
	fontDir     string
	templateDir string
	linkFonts   bool
	catalog     bool
	bundle      string
}

// cliFlags holds every flag of fa2tex.
type cliFlags struct {
	common   commonFlags
	source   sourceFlags
	metadata metadataFlags
	output   outputFlags

	// set records the flags given explicitly, so zero values
	// (e.g. --force=false) still override the config file.
	set map[string]bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVar(&f.debug, "debug", false, "show debug logs")
	fs.BoolVar(&f.version, "version", false, "show version information")
	fs.BoolVarP(&f.help, "help", "h", false, "show help")
}

// addSourceFlags adds archive selection flags to a FlagSet.
func addSourceFlags(fs *flag.FlagSet, f *sourceFlags) {
	fs.StringVar(&f.localFile, "local-file", "", "local archive path or URL")
	fs.StringVar(&f.zippedDir, "zipped-dir", "", "already extracted release directory")
	fs.StringVar(&f.workDir, "work-dir", "", "archive cache and extraction directory")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "download timeout (e.g., 30s, 2m)")
	fs.BoolVar(&f.force, "force", false, "download even when the archive is cached")
	fs.BoolVar(&f.fallbackLatest, "fallback-latest", false, "use the latest release when the tag does not exist")
}

// addMetadataFlags adds descriptor location flags to a FlagSet.
func addMetadataFlags(fs *flag.FlagSet, f *metadataFlags) {
	fs.StringVar(&f.dir, "metadata-dir", "", "descriptor directory name (default: metadata)")
	fs.StringVar(&f.file, "metadata-file", "", "descriptor file name (default: icons.yml)")
}

// addOutputFlags adds output flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.StringVarP(&f.dir, "output-dir", "o", "", "output directory")
	fs.StringArrayVarP(&f.bindings, "binding", "b", nil, "TeX binding, repeatable (default: xelatex)")
	fs.StringVar(&f.packageName, "package", "", "TeX package name (default: fontawesome)")
	fs.StringVar(&f.fontDir, "font-dir", "", "font directory inside the output (default: fonts)")
	fs.StringVar(&f.templateDir, "template-dir", "", "custom asset directory")
	fs.BoolVar(&f.linkFonts, "link-fonts", false, "symlink fonts instead of copying")
	fs.BoolVar(&f.catalog, "catalog", false, "also write the icon catalog (md and html)")
	fs.StringVar(&f.bundle, "bundle", "", "zip the output directory into this file")
}

// parseFlags parses the arguments following the program name and returns
// the positional arguments.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("fa2tex", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	f := &cliFlags{set: make(map[string]bool)}
	addCommonFlags(fs, &f.common)
	addSourceFlags(fs, &f.source)
	addMetadataFlags(fs, &f.metadata)
	addOutputFlags(fs, &f.output)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	fs.Visit(func(fl *flag.Flag) { f.set[fl.Name] = true })

	return f, fs.Args(), nil
}
