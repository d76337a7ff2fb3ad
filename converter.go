package fa2tex

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/alnah/go-fa2tex/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.CommonMarkPreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.CSSInjector          = (*pipeline.CSSInjection)(nil)
)

// DefaultOutputDir is used when a Request names no output directory.
const DefaultOutputDir = "fontawesome-latex"

var (
	packageNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9-]*$`)
	versionPattern     = regexp.MustCompile(`\d+\.\d+\.\d+`)
)

// Request describes one conversion run.
type Request struct {
	Version   string // release tag, empty for the latest release
	LocalFile string // local archive or archive URL instead of a release lookup
	ZippedDir string // already extracted release, skips fetch and extraction
	WorkDir   string // archive cache and extraction directory, DefaultWorkDir when empty
	OutputDir string // DefaultOutputDir when empty

	Bindings    []Binding // BindingXelatex when empty
	PackageName string    // DefaultPackageName when empty
	FontDir     string    // DefaultFontDir when empty
	Metadata    MetadataOptions

	Force          bool // download even when a cached archive exists
	FallbackLatest bool // use the latest release when Version does not exist
	LinkFonts      bool // symlink fonts instead of copying them
	Catalog        bool // also write the Markdown and HTML icon catalog
	BundlePath     string
}

// Result summarizes a successful run.
type Result struct {
	OutputDir    string
	Version      string // empty when it could not be determined
	Distribution Distribution
	Icons        int
	Files        []string // written files, in write order
	Bundle       string   // bundle path when requested
}

// Converter runs the fetch, extract, load, render and write pipeline.
// Create with NewConverter. A Converter holds no per-run state and may be
// reused.
type Converter struct {
	timeout    time.Duration
	client     *http.Client
	logger     *slog.Logger
	assetPath  string
	assets     AssetLoader
	releaseAPI string
	progress   io.Writer
}

// NewConverter creates a Converter with default configuration.
// Returns ErrInvalidAssetPath if WithAssetPath names an unusable directory.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		timeout: DefaultTimeout,
		logger:  orDiscard(nil),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.assets == nil {
		loader, err := NewAssetLoader(c.assetPath)
		if err != nil {
			return nil, err
		}
		c.assets = loader
	}

	return c, nil
}

// DefaultWorkDir is the archive cache directory used when a Request names
// none: the user cache directory, or the temporary directory without one.
func DefaultWorkDir() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "fa2tex")
	}
	return filepath.Join(os.TempDir(), "fa2tex")
}

// ValidatePackageName checks that name can serve as a TeX package name and
// file stem.
func ValidatePackageName(name string) error {
	if !packageNamePattern.MatchString(name) {
		return fmt.Errorf("%w: %q (letters, digits and hyphens, starting with a letter)", ErrInvalidPackage, name)
	}
	return nil
}

// Run converts the release described by req. The output directory is only
// touched once fetching, extraction, metadata loading and rendering all
// succeeded. Recovers from internal panics to prevent crashes from
// propagating to callers.
func (c *Converter) Run(ctx context.Context, req Request) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	req, err = c.prepare(req)
	if err != nil {
		return nil, err
	}

	root, version, err := c.source(ctx, req)
	if err != nil {
		return nil, err
	}

	dist, err := ClassifyDistribution(root)
	if err != nil {
		return nil, err
	}
	c.logger.Info("detected distribution", "distribution", dist, "root", root)

	catalog, err := LoadCatalog(root, req.Metadata, c.logger)
	if err != nil {
		return nil, err
	}
	fonts, err := LocateFonts(root, c.logger)
	if err != nil {
		return nil, &ExtractionError{Path: root, Err: err}
	}
	if missing := missingFonts(catalog, dist, fonts); len(missing) > 0 {
		return nil, &ExtractionError{Path: root, Err: fmt.Errorf("%w for style %s", ErrFontNotFound, strings.Join(missing, ", "))}
	}

	rc := RenderContext{
		Catalog:      catalog,
		Distribution: dist,
		Fonts:        fonts,
		Options: RenderOptions{
			PackageName: req.PackageName,
			FontDir:     req.FontDir,
			Version:     version,
		},
	}
	renderer := &Renderer{Assets: c.assets, Logger: c.logger}

	var docs []Document
	for _, b := range req.Bindings {
		rc.Binding = b
		out, err := renderer.Render(rc)
		if err != nil {
			return nil, err
		}
		docs = append(docs, out...)
	}
	if req.Catalog {
		out, err := renderer.RenderCatalog(ctx, rc)
		if err != nil {
			return nil, err
		}
		docs = append(docs, out...)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	files, err := WriteOutput(req.OutputDir, docs, fonts, WriteOptions{FontDir: req.FontDir, LinkFonts: req.LinkFonts}, c.logger)
	if err != nil {
		return nil, err
	}

	result = &Result{
		OutputDir:    req.OutputDir,
		Version:      version,
		Distribution: dist,
		Icons:        catalog.Len(),
		Files:        files,
	}

	if req.BundlePath != "" {
		if err := Bundle(req.OutputDir, req.BundlePath); err != nil {
			return nil, err
		}
		result.Bundle = req.BundlePath
	}

	return result, nil
}

// prepare fills in defaults and rejects requests that cannot succeed
// before anything is downloaded.
func (c *Converter) prepare(req Request) (Request, error) {
	if req.OutputDir == "" {
		req.OutputDir = DefaultOutputDir
	}
	if req.PackageName == "" {
		req.PackageName = DefaultPackageName
	}
	if err := ValidatePackageName(req.PackageName); err != nil {
		return req, err
	}
	if req.FontDir == "" {
		req.FontDir = DefaultFontDir
	}
	if !filepath.IsLocal(filepath.FromSlash(req.FontDir)) {
		return req, fmt.Errorf("%w: %q", ErrInvalidFontDir, req.FontDir)
	}

	if len(req.Bindings) == 0 {
		req.Bindings = []Binding{BindingXelatex}
	}
	seen := make(map[Binding]bool, len(req.Bindings))
	bindings := make([]Binding, 0, len(req.Bindings))
	for _, b := range req.Bindings {
		if !b.Supported() {
			return req, &UnsupportedBindingError{Binding: b}
		}
		if !seen[b] {
			seen[b] = true
			bindings = append(bindings, b)
		}
	}
	req.Bindings = bindings

	if req.ZippedDir == "" && req.WorkDir == "" {
		req.WorkDir = DefaultWorkDir()
	}
	return req, nil
}

// source returns the extracted release root and its version.
func (c *Converter) source(ctx context.Context, req Request) (string, string, error) {
	if req.ZippedDir != "" {
		info, err := os.Stat(req.ZippedDir)
		if err != nil {
			return "", "", &ExtractionError{Path: req.ZippedDir, Err: err}
		}
		if !info.IsDir() {
			return "", "", &ExtractionError{Path: req.ZippedDir, Err: errors.New("not a directory")}
		}
		return req.ZippedDir, c.version(req.Version, req.ZippedDir), nil
	}

	fetchCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	fetcher := &Fetcher{
		Client:   c.client,
		API:      c.releaseAPI,
		Logger:   c.logger,
		Progress: c.progress,
	}
	archive, err := fetcher.Fetch(fetchCtx, FetchRequest{
		Version:        req.Version,
		LocalFile:      req.LocalFile,
		WorkDir:        req.WorkDir,
		Force:          req.Force,
		FallbackLatest: req.FallbackLatest,
	})
	if err != nil {
		return "", "", err
	}

	extraction, err := ExtractWithProgress(archive.Path, ExtractionDir(req.WorkDir, archive.Path), c.progress, c.logger)
	if err != nil {
		return "", "", err
	}

	version := archive.Version
	if version == "" {
		version = c.version(req.Version, extraction.Root)
	}
	return extraction.Root, NormalizeVersion(version), nil
}

// version prefers the requested version and falls back to the one in the
// release directory name ("fontawesome-free-5.15.4-desktop").
func (c *Converter) version(requested, root string) string {
	if requested != "" {
		return NormalizeVersion(requested)
	}
	return versionPattern.FindString(filepath.Base(root))
}

// missingFonts lists the styles some icon is rendered in that have no
// located font file.
func missingFonts(catalog *IconCatalog, dist Distribution, fonts map[Style]FontAsset) []string {
	var needed StyleSet
	for _, e := range catalog.Entries() {
		needed = needed.Union(AllowedStyles(e, dist))
	}
	var missing []string
	for _, s := range needed.Styles() {
		if _, ok := fonts[s]; !ok {
			missing = append(missing, s.String())
		}
	}
	return missing
}
