// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-fa2tex/internal/fileutil"
)

// releasesPage lists every published Font Awesome release.
const releasesPage = "https://github.com/FortAwesome/Font-Awesome/releases"

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForNetwork returns hints for failed release lookups and downloads.
// Detects CI/Docker environment and suggests proxy settings there.
func ForNetwork(statusCode int) string {
	var hints []string

	switch statusCode {
	case http.StatusForbidden, http.StatusTooManyRequests:
		hints = append(hints, "the GitHub API rate limit may be exhausted, retry later")
	case 0:
		inCI := os.Getenv("CI") != "" ||
			os.Getenv("GITHUB_ACTIONS") != "" ||
			os.Getenv("GITLAB_CI") != "" ||
			os.Getenv("JENKINS_URL") != ""
		if (inCI || IsInContainer()) && os.Getenv("HTTPS_PROXY") == "" && os.Getenv("https_proxy") == "" {
			hints = append(hints, "set HTTPS_PROXY if the network requires a proxy")
		}
	}

	hints = append(hints, "download the archive from "+releasesPage+" and pass --local-file")
	return formatHints(hints)
}

// ForReleaseNotFound returns a hint for an unknown release tag.
func ForReleaseNotFound() string {
	return format("check the tag at " + releasesPage + " or use --fallback-latest")
}

// ForTimeout returns a hint about increasing timeout for slow operations.
func ForTimeout() string {
	return format("for slow connections, use --timeout flag")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in the fa2tex user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), "/fa2tex/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForMetadataNotFound returns a hint for a release without icon descriptor.
func ForMetadataNotFound() string {
	return format("use --metadata-dir and --metadata-file if the release renamed metadata/icons.yml")
}

// ForExtraction returns a hint for corrupt or partial archives.
func ForExtraction() string {
	return format("use --force to download the archive again")
}

// ForUnsupportedBinding returns hints listing the bindings with templates.
func ForUnsupportedBinding(supported []string) string {
	if len(supported) == 0 {
		return ""
	}
	return format("supported: " + strings.Join(supported, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
