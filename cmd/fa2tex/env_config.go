package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/alnah/go-fa2tex/internal/config"
)

// ErrInvalidEnv is returned when an FA2TEX_* variable cannot be parsed.
var ErrInvalidEnv = errors.New("invalid environment variable")

// envPrefix namespaces every variable read by fa2tex.
const envPrefix = "FA2TEX_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath     string        `env:"FA2TEX_CONFIG"`
	Version        string        `env:"FA2TEX_VERSION"`
	LocalFile      string        `env:"FA2TEX_LOCAL_FILE"`
	ZippedDir      string        `env:"FA2TEX_ZIPPED_DIR"`
	WorkDir        string        `env:"FA2TEX_WORK_DIR"`
	OutputDir      string        `env:"FA2TEX_OUTPUT_DIR"`
	Bindings       []string      `env:"FA2TEX_BINDINGS" envSeparator:","`
	Package        string        `env:"FA2TEX_PACKAGE"`
	FontDir        string        `env:"FA2TEX_FONT_DIR"`
	MetadataDir    string        `env:"FA2TEX_METADATA_DIR"`
	MetadataFile   string        `env:"FA2TEX_METADATA_FILE"`
	TemplateDir    string        `env:"FA2TEX_TEMPLATE_DIR"`
	Timeout        time.Duration `env:"FA2TEX_TIMEOUT"`
	Force          bool          `env:"FA2TEX_FORCE"`
	FallbackLatest bool          `env:"FA2TEX_FALLBACK_LATEST"`
	LinkFonts      bool          `env:"FA2TEX_LINK_FONTS"`
	Catalog        bool          `env:"FA2TEX_CATALOG"`
	Bundle         string        `env:"FA2TEX_BUNDLE"`
	ReleaseAPI     string        `env:"FA2TEX_RELEASE_API"`

	// present records which variables were set, so FA2TEX_FORCE=false
	// overrides a config file enabling it.
	present map[string]bool
}

// knownEnvVars lists the FA2TEX_* variables read from envConfig tags.
var knownEnvVars = func() map[string]bool {
	known := make(map[string]bool)
	t := reflect.TypeOf(envConfig{})
	for i := range t.NumField() {
		if name := t.Field(i).Tag.Get("env"); name != "" {
			known[name] = true
		}
	}
	return known
}()

// environ returns the variables of e, or of the process when e has none.
func (e *Environment) environ() map[string]string {
	if e.Vars != nil {
		return e.Vars
	}
	vars := make(map[string]string)
	for _, kv := range os.Environ() {
		if name, value, ok := strings.Cut(kv, "="); ok {
			vars[name] = value
		}
	}
	return vars
}

// loadEnvConfig reads the FA2TEX_* variables of e.
func loadEnvConfig(e *Environment) (*envConfig, error) {
	vars := e.environ()

	cfg := &envConfig{present: make(map[string]bool)}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: vars}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEnv, err)
	}
	if cfg.Timeout < 0 {
		return nil, fmt.Errorf("%w: FA2TEX_TIMEOUT must be positive, got %s", ErrInvalidEnv, cfg.Timeout)
	}
	for name := range knownEnvVars {
		if _, ok := vars[name]; ok {
			cfg.present[name] = true
		}
	}
	return cfg, nil
}

// warnUnknownEnvVars logs warnings for unrecognized FA2TEX_* variables.
// Helps catch typos like FA2TEX_OUTPUTDIR instead of FA2TEX_OUTPUT_DIR.
func warnUnknownEnvVars(e *Environment, logger *slog.Logger) {
	for _, name := range e.varNames() {
		if strings.HasPrefix(name, envPrefix) && !knownEnvVars[name] {
			logger.Warn("unknown environment variable (typo?)", "name", name)
		}
	}
}

// applyEnvConfig overrides config values with the variables that are set.
// Flags are applied afterwards by mergeFlags, giving:
// CLI flags > env vars > config file > defaults.
func applyEnvConfig(e *envConfig, cfg *config.Config) {
	setString := func(dst *string, value string) {
		if value != "" {
			*dst = value
		}
	}

	setString(&cfg.Release.Version, e.Version)
	setString(&cfg.Release.LocalFile, e.LocalFile)
	setString(&cfg.Release.ZippedDir, e.ZippedDir)
	setString(&cfg.Release.WorkDir, e.WorkDir)
	setString(&cfg.Output.Dir, e.OutputDir)
	setString(&cfg.Output.Package, e.Package)
	setString(&cfg.Output.FontDir, e.FontDir)
	setString(&cfg.Output.Bundle, e.Bundle)
	setString(&cfg.Metadata.Dir, e.MetadataDir)
	setString(&cfg.Metadata.File, e.MetadataFile)
	setString(&cfg.Assets.BasePath, e.TemplateDir)

	// A source given by the environment replaces the one of the file.
	if e.LocalFile != "" {
		cfg.Release.ZippedDir = e.ZippedDir
	}
	if e.ZippedDir != "" {
		cfg.Release.LocalFile = e.LocalFile
	}

	if len(e.Bindings) > 0 {
		cfg.Output.Bindings = e.Bindings
	}
	if e.Timeout > 0 {
		cfg.Release.Timeout = e.Timeout.String()
	}

	if e.present["FA2TEX_FORCE"] {
		cfg.Release.Force = e.Force
	}
	if e.present["FA2TEX_FALLBACK_LATEST"] {
		cfg.Release.FallbackLatest = e.FallbackLatest
	}
	if e.present["FA2TEX_LINK_FONTS"] {
		cfg.Output.LinkFonts = e.LinkFonts
	}
	if e.present["FA2TEX_CATALOG"] {
		cfg.Output.Catalog = e.Catalog
	}
}
