package fa2tex

import (
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Option configures a Converter.
type Option func(*Converter)

// DefaultTimeout bounds the release lookup and download.
const DefaultTimeout = 5 * time.Minute

// WithTimeout sets the release lookup and download timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("fa2tex: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.timeout = d
	}
}

// WithHTTPClient sets the client used for the release API and downloads.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Converter) {
		c.client = client
	}
}

// WithLogger sets the logger for warnings and progress messages.
// A nil logger discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter) {
		c.logger = orDiscard(logger)
	}
}

// WithAssetPath loads templates and styles from dir, falling back to the
// embedded ones for anything dir does not provide.
func WithAssetPath(dir string) Option {
	return func(c *Converter) {
		c.assetPath = dir
	}
}

// WithAssetLoader sets a custom asset loader. It takes precedence over
// WithAssetPath.
func WithAssetLoader(loader AssetLoader) Option {
	return func(c *Converter) {
		c.assets = loader
	}
}

// WithReleaseAPI sets the release API root, DefaultReleaseAPI by default.
func WithReleaseAPI(api string) Option {
	return func(c *Converter) {
		c.releaseAPI = api
	}
}

// WithProgress draws download and extraction progress to w. See TerminalProgress.
func WithProgress(w io.Writer) Option {
	return func(c *Converter) {
		c.progress = w
	}
}
