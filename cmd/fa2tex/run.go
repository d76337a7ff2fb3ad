package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	fa2tex "github.com/alnah/go-fa2tex"
	"github.com/alnah/go-fa2tex/internal/config"
	"github.com/alnah/go-fa2tex/internal/hints"
)

// ErrUsage reports invalid command line arguments.
var ErrUsage = errors.New("invalid usage")

// runMain runs the CLI and returns the process exit code.
// args includes the program name.
func runMain(args []string, env *Environment) int {
	ctx, stop := notifyContext(context.Background())
	defer stop()
	return runWithContext(ctx, args, env)
}

func runWithContext(ctx context.Context, args []string, env *Environment) int {
	if len(args) > 0 {
		args = args[1:]
	}

	flags, positional, err := parseFlags(args)
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n\n", err)
		printUsage(env.Stderr)
		return ExitUsage
	}
	if flags.common.help {
		printUsage(env.Stdout)
		return ExitSuccess
	}
	if flags.common.version {
		printVersion(env.Stdout)
		return ExitSuccess
	}

	logger := newLogger(env.Stderr, flags.common)

	result, err := runConvert(ctx, flags, positional, env, logger)
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err))
		return exitCodeFor(err)
	}

	if !flags.common.quiet {
		for _, path := range result.Files {
			fmt.Fprintf(env.Stdout, "Created %s\n", path)
		}
		if result.Bundle != "" {
			fmt.Fprintf(env.Stdout, "Created %s\n", result.Bundle)
		}
	}
	return ExitSuccess
}

// newLogger returns a text logger on w: --debug shows debug records,
// --quiet only errors.
func newLogger(w io.Writer, f commonFlags) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case f.debug:
		level = slog.LevelDebug
	case f.quiet:
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// runConvert resolves the configuration and runs one conversion.
func runConvert(ctx context.Context, flags *cliFlags, positional []string, env *Environment, logger *slog.Logger) (*fa2tex.Result, error) {
	if len(positional) > 1 {
		return nil, fmt.Errorf("%w: expected at most one version argument, got %d", ErrUsage, len(positional))
	}

	warnUnknownEnvVars(env, logger)
	envCfg, err := loadEnvConfig(env)
	if err != nil {
		return nil, err
	}

	cfg, err := loadConfig(flags.common.config, envCfg.ConfigPath)
	if err != nil {
		return nil, err
	}
	applyEnvConfig(envCfg, cfg)
	if err := mergeFlags(flags, positional, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	timeout, err := resolveTimeoutWithEnv(flags.source.timeout, envCfg.Timeout, cfg.Release.Timeout)
	if err != nil {
		return nil, err
	}

	req, err := buildRequest(cfg)
	if err != nil {
		return nil, err
	}

	opts := []fa2tex.Option{
		fa2tex.WithLogger(logger),
		fa2tex.WithAssetPath(cfg.Assets.BasePath),
		fa2tex.WithProgress(env.Progress),
	}
	if timeout > 0 {
		opts = append(opts, fa2tex.WithTimeout(timeout))
	}
	if env.HTTPClient != nil {
		opts = append(opts, fa2tex.WithHTTPClient(env.HTTPClient))
	}
	if envCfg.ReleaseAPI != "" {
		opts = append(opts, fa2tex.WithReleaseAPI(envCfg.ReleaseAPI))
	}

	conv, err := fa2tex.NewConverter(opts...)
	if err != nil {
		return nil, err
	}

	result, err := conv.Run(ctx, req)
	if err != nil {
		return nil, err
	}
	logger.Info("conversion complete",
		"version", result.Version,
		"distribution", result.Distribution,
		"icons", result.Icons,
		"output", result.OutputDir)
	return result, nil
}

// loadConfig loads the config named by the flag, else by FA2TEX_CONFIG.
// Without either, every value comes from the environment, flags and defaults.
func loadConfig(flagValue, envValue string) (*config.Config, error) {
	name := flagValue
	if name == "" {
		name = envValue
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}
	return config.LoadConfig(name)
}

// mergeFlags applies explicitly set flags over cfg.
func mergeFlags(f *cliFlags, positional []string, cfg *config.Config) error {
	if len(positional) == 1 {
		cfg.Release.Version = positional[0]
	}

	if f.set["local-file"] && f.set["zipped-dir"] {
		return fmt.Errorf("%w: --local-file and --zipped-dir are mutually exclusive", ErrUsage)
	}
	// A source given on the command line replaces the configured one.
	if f.set["local-file"] {
		cfg.Release.LocalFile = f.source.localFile
		cfg.Release.ZippedDir = ""
	}
	if f.set["zipped-dir"] {
		cfg.Release.ZippedDir = f.source.zippedDir
		cfg.Release.LocalFile = ""
	}

	stringFlags := []struct {
		flag string
		dst  *string
		val  string
	}{
		{"work-dir", &cfg.Release.WorkDir, f.source.workDir},
		{"metadata-dir", &cfg.Metadata.Dir, f.metadata.dir},
		{"metadata-file", &cfg.Metadata.File, f.metadata.file},
		{"output-dir", &cfg.Output.Dir, f.output.dir},
		{"package", &cfg.Output.Package, f.output.packageName},
		{"font-dir", &cfg.Output.FontDir, f.output.fontDir},
		{"template-dir", &cfg.Assets.BasePath, f.output.templateDir},
		{"bundle", &cfg.Output.Bundle, f.output.bundle},
	}
	for _, s := range stringFlags {
		if f.set[s.flag] {
			*s.dst = s.val
		}
	}

	boolFlags := []struct {
		flag string
		dst  *bool
		val  bool
	}{
		{"force", &cfg.Release.Force, f.source.force},
		{"fallback-latest", &cfg.Release.FallbackLatest, f.source.fallbackLatest},
		{"link-fonts", &cfg.Output.LinkFonts, f.output.linkFonts},
		{"catalog", &cfg.Output.Catalog, f.output.catalog},
	}
	for _, b := range boolFlags {
		if f.set[b.flag] {
			*b.dst = b.val
		}
	}

	if f.set["binding"] {
		cfg.Output.Bindings = f.output.bindings
	}
	return nil
}

// resolveTimeoutWithEnv picks the download timeout: flag, then
// FA2TEX_TIMEOUT, then the config file. Zero leaves the library default.
func resolveTimeoutWithEnv(flagValue string, envValue time.Duration, cfgValue string) (time.Duration, error) {
	if flagValue != "" {
		d, err := time.ParseDuration(flagValue)
		if err != nil {
			return 0, fmt.Errorf("%w: invalid timeout %q: %v", ErrUsage, flagValue, err)
		}
		if d <= 0 {
			return 0, fmt.Errorf("%w: timeout must be positive, got %s", ErrUsage, flagValue)
		}
		return d, nil
	}
	if envValue > 0 {
		return envValue, nil
	}
	if cfgValue != "" {
		cfg := config.Config{Release: config.ReleaseConfig{Timeout: cfgValue}}
		return cfg.TimeoutDuration()
	}
	return 0, nil
}

// buildRequest maps the resolved configuration onto a library request.
func buildRequest(cfg *config.Config) (fa2tex.Request, error) {
	req := fa2tex.Request{
		Version:        cfg.Release.Version,
		LocalFile:      cfg.Release.LocalFile,
		ZippedDir:      cfg.Release.ZippedDir,
		WorkDir:        cfg.Release.WorkDir,
		OutputDir:      cfg.Output.Dir,
		PackageName:    cfg.Output.Package,
		FontDir:        cfg.Output.FontDir,
		Force:          cfg.Release.Force,
		FallbackLatest: cfg.Release.FallbackLatest,
		LinkFonts:      cfg.Output.LinkFonts,
		Catalog:        cfg.Output.Catalog,
		BundlePath:     cfg.Output.Bundle,
		Metadata: fa2tex.MetadataOptions{
			Dir:  cfg.Metadata.Dir,
			File: cfg.Metadata.File,
		},
	}
	for _, name := range cfg.Output.Bindings {
		b, err := fa2tex.ParseBinding(name)
		if err != nil {
			return fa2tex.Request{}, err
		}
		req.Bindings = append(req.Bindings, b)
	}
	return req, nil
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error) string {
	var dlErr *fa2tex.DownloadError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.As(err, &dlErr):
		if dlErr.StatusCode == 404 {
			return hints.ForReleaseNotFound()
		}
		return hints.ForNetwork(dlErr.StatusCode)
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(configSearchPaths())
	case errors.Is(err, fa2tex.ErrMetadataNotFound):
		return hints.ForMetadataNotFound()
	case errors.Is(err, fa2tex.ErrExtraction):
		return hints.ForExtraction()
	case errors.Is(err, fa2tex.ErrUnsupportedBinding):
		return hints.ForUnsupportedBinding(supportedBindings())
	case errors.Is(err, fa2tex.ErrWrite):
		return hints.ForOutputDirectory()
	}
	return ""
}

// configSearchPaths lists the user config directory candidates.
func configSearchPaths() []string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil
	}
	return []string{filepath.Join(dir, "fa2tex", "config.yaml")}
}

// supportedBindings names the bindings with templates.
func supportedBindings() []string {
	var names []string
	for _, b := range []fa2tex.Binding{fa2tex.BindingXelatex, fa2tex.BindingLualatex, fa2tex.BindingPDFLatex} {
		if b.Supported() {
			names = append(names, b.String())
		}
	}
	return names
}
