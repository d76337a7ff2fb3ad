package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/alnah/go-fa2tex/internal/fileutil"
	"github.com/alnah/go-fa2tex/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxVersionLength = 50   // "v5.15.4", "6.0.0-beta3"
	MaxPathLength    = 4096 // PATH_MAX on Linux
	MaxPackageLength = 64   // TeX package names stay short
	MaxNameLength    = 255  // single file name
)

// configDirName is the directory searched under os.UserConfigDir.
const configDirName = "fa2tex"

// Known binding names, matched case-insensitively.
var bindingNames = []string{"xelatex", "lualatex", "pdflatex"}

var packagePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9-]*$`)

// Config holds all file configuration of a conversion run.
type Config struct {
	Release  ReleaseConfig  `yaml:"release"`
	Metadata MetadataConfig `yaml:"metadata"`
	Output   OutputConfig   `yaml:"output"`
	Assets   AssetsConfig   `yaml:"assets"`
}

// ReleaseConfig selects the release archive.
type ReleaseConfig struct {
	Version        string `yaml:"version"`        // Empty = latest release
	LocalFile      string `yaml:"localFile"`      // Local archive path or URL
	ZippedDir      string `yaml:"zippedDir"`      // Already extracted release
	WorkDir        string `yaml:"workDir"`        // Empty = user cache directory
	Timeout        string `yaml:"timeout"`        // Go duration, e.g. "2m30s"
	Force          bool   `yaml:"force"`          // Re-download cached archives
	FallbackLatest bool   `yaml:"fallbackLatest"` // Use latest when the tag is missing
}

// MetadataConfig locates the icon descriptor.
type MetadataConfig struct {
	Dir  string `yaml:"dir"`  // Default "metadata"
	File string `yaml:"file"` // Default "icons.yml"
}

// OutputConfig defines the generated tree.
type OutputConfig struct {
	Dir       string   `yaml:"dir"`
	Package   string   `yaml:"package"`
	FontDir   string   `yaml:"fontDir"`
	Bindings  []string `yaml:"bindings"`
	LinkFonts bool     `yaml:"linkFonts"`
	Catalog   bool     `yaml:"catalog"`
	Bundle    string   `yaml:"bundle"` // Zip path, empty = no bundle
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// TimeoutDuration parses Release.Timeout. Zero means unset.
func (c *Config) TimeoutDuration() (time.Duration, error) {
	if c.Release.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Release.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: release.timeout: %v", ErrInvalidValue, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: release.timeout: must be positive, got %s", ErrInvalidValue, c.Release.Timeout)
	}
	return d, nil
}

// Validate checks field lengths and values.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("release.version", c.Release.Version, MaxVersionLength); err != nil {
		return err
	}
	for field, value := range map[string]string{
		"release.localFile": c.Release.LocalFile,
		"release.zippedDir": c.Release.ZippedDir,
		"release.workDir":   c.Release.WorkDir,
		"output.dir":        c.Output.Dir,
		"output.fontDir":    c.Output.FontDir,
		"output.bundle":     c.Output.Bundle,
		"assets.basePath":   c.Assets.BasePath,
	} {
		if err := validateFieldLength(field, value, MaxPathLength); err != nil {
			return err
		}
	}
	if err := validateFieldLength("metadata.dir", c.Metadata.Dir, MaxNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("metadata.file", c.Metadata.File, MaxNameLength); err != nil {
		return err
	}

	if c.Release.LocalFile != "" && c.Release.ZippedDir != "" {
		return fmt.Errorf("%w: release.localFile and release.zippedDir are mutually exclusive", ErrInvalidValue)
	}
	if _, err := c.TimeoutDuration(); err != nil {
		return err
	}

	for field, name := range map[string]string{"metadata.dir": c.Metadata.Dir, "metadata.file": c.Metadata.File} {
		if strings.ContainsAny(name, `/\`) {
			return fmt.Errorf("%w: %s: %q must be a plain name", ErrInvalidValue, field, name)
		}
	}

	if c.Output.Package != "" {
		if err := validateFieldLength("output.package", c.Output.Package, MaxPackageLength); err != nil {
			return err
		}
		if !packagePattern.MatchString(c.Output.Package) {
			return fmt.Errorf("%w: output.package: %q (letters, digits and hyphens, starting with a letter)", ErrInvalidValue, c.Output.Package)
		}
	}
	if c.Output.FontDir != "" && !filepath.IsLocal(filepath.FromSlash(c.Output.FontDir)) {
		return fmt.Errorf("%w: output.fontDir: %q must be relative to output.dir", ErrInvalidValue, c.Output.FontDir)
	}
	for i, b := range c.Output.Bindings {
		if !isBindingName(b) {
			return fmt.Errorf("%w: output.bindings[%d]: unknown binding %q (must be one of %s)",
				ErrInvalidValue, i, b, strings.Join(bindingNames, ", "))
		}
	}

	if c.Assets.BasePath != "" {
		info, err := os.Stat(c.Assets.BasePath)
		if err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("%w: assets.basePath: directory does not exist: %s", ErrInvalidValue, c.Assets.BasePath)
			}
			return fmt.Errorf("assets.basePath: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("%w: assets.basePath: not a directory: %s", ErrInvalidValue, c.Assets.BasePath)
		}
	}

	return nil
}

func isBindingName(name string) bool {
	for _, known := range bindingNames {
		if strings.EqualFold(strings.TrimSpace(name), known) {
			return true
		}
	}
	return false
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a configuration leaving every choice to the
// library defaults.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, <user config dir>/fa2tex/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, configDirName, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
