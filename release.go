package fa2tex

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path"
	"strings"

	"github.com/tidwall/gjson"
)

// DefaultReleaseAPI is the GitHub API root of the Font Awesome repository.
const DefaultReleaseAPI = "https://api.github.com/repos/FortAwesome/Font-Awesome"

// maxReleaseSize caps a release index response.
const maxReleaseSize = 4 << 20

var errReleaseNotFound = errors.New("release not found")

// Release is a published release and the archive chosen for download.
type Release struct {
	Tag       string
	AssetName string
	URL       string
}

// ReleaseURL returns the API endpoint describing a release.
// An empty version means the latest release.
func ReleaseURL(api, version string) string {
	api = strings.TrimRight(api, "/")
	if version == "" {
		return api + "/releases/latest"
	}
	return api + "/releases/tags/" + version
}

// NormalizeVersion strips surrounding space and a leading "v"; Font Awesome
// tags are bare version numbers.
func NormalizeVersion(version string) string {
	version = strings.TrimSpace(version)
	if len(version) > 1 && (version[0] == 'v' || version[0] == 'V') && version[1] >= '0' && version[1] <= '9' {
		return version[1:]
	}
	return version
}

// ParseRelease reads a GitHub release object. The archive is the first zip
// asset whose name mentions "desktop", else the first zip asset, else the
// source zipball.
func ParseRelease(data []byte) (*Release, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("release index is not valid JSON")
	}
	doc := gjson.ParseBytes(data)

	rel := &Release{Tag: doc.Get("tag_name").String()}
	if rel.Tag == "" {
		return nil, errors.New("release index has no tag_name")
	}

	var first *gjson.Result
	var desktop *gjson.Result
	for _, asset := range doc.Get("assets").Array() {
		name := asset.Get("name").String()
		if !strings.HasSuffix(strings.ToLower(name), ".zip") || asset.Get("browser_download_url").String() == "" {
			continue
		}
		if first == nil {
			first = &asset
		}
		if desktop == nil && strings.Contains(strings.ToLower(name), "desktop") {
			desktop = &asset
		}
	}

	switch {
	case desktop != nil:
		rel.AssetName = desktop.Get("name").String()
		rel.URL = desktop.Get("browser_download_url").String()
	case first != nil:
		rel.AssetName = first.Get("name").String()
		rel.URL = first.Get("browser_download_url").String()
	case doc.Get("zipball_url").String() != "":
		rel.AssetName = "Font-Awesome-" + rel.Tag + ".zip"
		rel.URL = doc.Get("zipball_url").String()
	default:
		return nil, fmt.Errorf("%w: %s", ErrReleaseAsset, rel.Tag)
	}

	rel.AssetName = path.Base(rel.AssetName)
	return rel, nil
}

// ResolveRelease looks a version up through the release API. When the tag
// does not exist and fallbackLatest is set, the latest release is used.
func (f *Fetcher) ResolveRelease(ctx context.Context, version string, fallbackLatest bool) (*Release, error) {
	version = NormalizeVersion(version)

	rel, err := f.lookupRelease(ctx, version)
	if err == nil {
		return rel, nil
	}
	if version == "" || !fallbackLatest || !errors.Is(err, errReleaseNotFound) {
		return nil, err
	}

	f.logger().Warn("release not found, falling back to the latest release", "version", version)
	return f.lookupRelease(ctx, "")
}

func (f *Fetcher) lookupRelease(ctx context.Context, version string) (*Release, error) {
	url := ReleaseURL(f.api(), version)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &DownloadError{URL: url, Err: err}
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", userAgent)

	f.logger().Debug("resolving release", "url", url)
	resp, err := f.client().Do(req)
	if err != nil {
		return nil, &DownloadError{URL: url, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxReleaseSize))
	if err != nil {
		return nil, &DownloadError{URL: url, StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode == http.StatusNotFound {
		msg := gjson.GetBytes(data, "message").String()
		if msg == "" {
			msg = "Not Found"
		}
		return nil, &DownloadError{URL: url, StatusCode: resp.StatusCode, Err: fmt.Errorf("%w: %s", errReleaseNotFound, msg)}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err := errors.New(http.StatusText(resp.StatusCode))
		if msg := gjson.GetBytes(data, "message").String(); msg != "" {
			err = errors.New(msg)
		}
		return nil, &DownloadError{URL: url, StatusCode: resp.StatusCode, Err: err}
	}

	rel, err := ParseRelease(data)
	if err != nil {
		return nil, &DownloadError{URL: url, StatusCode: resp.StatusCode, Err: err}
	}

	f.logger().Debug("resolved release", "tag", rel.Tag, "asset", rel.AssetName)
	return rel, nil
}

func (f *Fetcher) logger() *slog.Logger {
	return orDiscard(f.Logger)
}
