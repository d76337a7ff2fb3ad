package fa2tex

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/alnah/go-fa2tex/internal/fileutil"
)

const userAgent = "fa2tex"

// archivePermissions for downloaded archives.
const archivePermissions = 0o644

// FetchRequest selects the release archive to obtain.
type FetchRequest struct {
	Version        string // release tag, empty for the latest release
	LocalFile      string // local archive path or http(s) URL, skips the release lookup
	WorkDir        string // download cache directory
	Force          bool   // download even when a cached archive exists
	FallbackLatest bool   // use the latest release when Version does not exist
}

// Archive is a release archive on local disk.
type Archive struct {
	Path    string
	Version string // resolved release tag, empty for local files
	Cached  bool   // reused from the work directory
}

// Fetcher obtains release archives. The zero value uses http.DefaultClient,
// the public release API, no logging and no progress output.
type Fetcher struct {
	Client   *http.Client
	API      string       // release API root, DefaultReleaseAPI when empty
	Logger   *slog.Logger // nil discards
	Progress io.Writer    // download progress, nil disables it
}

// Fetch returns a local archive for req: the local file itself, a cached
// download, or a fresh download into req.WorkDir.
func (f *Fetcher) Fetch(ctx context.Context, req FetchRequest) (*Archive, error) {
	if req.LocalFile != "" && !fileutil.IsURL(req.LocalFile) {
		if err := ValidateArchive(req.LocalFile); err != nil {
			return nil, err
		}
		return &Archive{Path: req.LocalFile}, nil
	}

	if req.WorkDir == "" {
		return nil, fmt.Errorf("%w: no work directory for downloads", ErrNoSource)
	}

	var (
		downloadURL string
		name        string
		version     string
	)
	if req.LocalFile != "" {
		downloadURL = req.LocalFile
		name = archiveNameFromURL(req.LocalFile)
	} else {
		rel, err := f.ResolveRelease(ctx, req.Version, req.FallbackLatest)
		if err != nil {
			return nil, err
		}
		downloadURL, name, version = rel.URL, rel.AssetName, rel.Tag
	}

	dest := filepath.Join(req.WorkDir, name)
	if !req.Force && fileutil.FileExists(dest) {
		if err := ValidateArchive(dest); err == nil {
			f.logger().Info("using cached archive", "path", dest)
			return &Archive{Path: dest, Version: version, Cached: true}, nil
		}
		f.logger().Warn("cached archive is invalid, downloading again", "path", dest)
	}

	if err := f.Download(ctx, downloadURL, dest); err != nil {
		return nil, err
	}
	if err := ValidateArchive(dest); err != nil {
		_ = os.Remove(dest)
		return nil, err
	}

	return &Archive{Path: dest, Version: version}, nil
}

// Download streams rawURL into dest. The file only appears once the body
// was read completely.
func (f *Fetcher) Download(ctx context.Context, rawURL, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return &DownloadError{URL: rawURL, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)

	f.logger().Info("downloading", "url", rawURL)
	resp, err := f.client().Do(req)
	if err != nil {
		return &DownloadError{URL: rawURL, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &DownloadError{URL: rawURL, StatusCode: resp.StatusCode, Err: errors.New(http.StatusText(resp.StatusCode))}
	}

	if err := os.MkdirAll(filepath.Dir(dest), dirPermissions); err != nil {
		return &WriteError{Path: filepath.Dir(dest), Err: err}
	}

	body := &trackingReader{r: resp.Body}
	var src io.Reader = body
	if f.Progress != nil {
		bar := newProgress(f.Progress, filepath.Base(dest), resp.ContentLength)
		defer bar.Finish()
		src = io.TeeReader(body, bar)
	}

	n, err := fileutil.WriteAtomic(dest, src, archivePermissions)
	if err != nil {
		if body.err != nil {
			return &DownloadError{URL: rawURL, StatusCode: resp.StatusCode, Err: body.err}
		}
		return &WriteError{Path: dest, Err: err}
	}
	if resp.ContentLength > 0 && n != resp.ContentLength {
		_ = os.Remove(dest)
		return &DownloadError{URL: rawURL, StatusCode: resp.StatusCode, Err: fmt.Errorf("short body: got %d of %d bytes", n, resp.ContentLength)}
	}

	f.logger().Debug("downloaded", "path", dest, "bytes", n)
	return nil
}

func (f *Fetcher) client() *http.Client {
	if f.Client == nil {
		return http.DefaultClient
	}
	return f.Client
}

func (f *Fetcher) api() string {
	if f.API == "" {
		return DefaultReleaseAPI
	}
	return f.API
}

// archiveNameFromURL derives a cache file name from a download URL.
func archiveNameFromURL(rawURL string) string {
	name := "download.zip"
	if u, err := url.Parse(rawURL); err == nil {
		if base := path.Base(u.Path); base != "." && base != "/" && base != "" {
			name = base
		}
	}
	if !strings.HasSuffix(strings.ToLower(name), ".zip") {
		name += ".zip"
	}
	return name
}

// trackingReader remembers the first read error, telling network failures
// apart from disk failures.
type trackingReader struct {
	r   io.Reader
	err error
}

func (t *trackingReader) Read(p []byte) (int, error) {
	n, err := t.r.Read(p)
	if err != nil && err != io.EOF && t.err == nil {
		t.err = err
	}
	return n, err
}
