package sdkman

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"go.trai.ch/toolup/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	brokerAPIBase     = "https://api.sdkman.io/2"
	httpClientTimeout = 30 * time.Second

	// maxVersionListBytes bounds the broker response; version lists are small.
	maxVersionListBytes = 1 << 20
)

// Resolver implements ports.CandidateResolver against the SDKMAN broker API,
// with an on-disk cache of per-candidate version lists. A version missing
// from the cached list triggers a fresh broker query before the resolution
// is declared a failure, so a stale cache never rejects a newly published
// version.
type Resolver struct {
	cacheDir   string
	apiBase    string
	platform   string
	httpClient *http.Client
}

// NewResolver creates a CandidateResolver backed by the public broker API.
func NewResolver() (*Resolver, error) {
	return newResolverWithClient(
		domain.DefaultCandidateCachePath(),
		brokerAPIBase,
		&http.Client{Timeout: httpClientTimeout},
	)
}

// newResolverWithClient creates a Resolver with a custom cache path, API base
// and http client (used for testing).
func newResolverWithClient(cacheDir, apiBase string, client *http.Client) (*Resolver, error) {
	cleanPath := filepath.Clean(cacheDir)
	if err := os.MkdirAll(cleanPath, domain.DirPerm); err != nil {
		return nil, zerr.Wrap(err, "failed to create candidate cache directory")
	}

	return &Resolver{
		cacheDir:   cleanPath,
		apiBase:    apiBase,
		platform:   currentPlatform(),
		httpClient: client,
	}, nil
}

// Resolve returns nil when the version is published for the current platform.
func (r *Resolver) Resolve(ctx context.Context, tool, version string) error {
	if entry, err := r.loadFromCache(tool); err == nil && entry.contains(version) {
		return nil
	}

	entry, err := r.queryBroker(ctx, tool)
	if err != nil {
		return err
	}

	if err := r.saveToCache(entry); err != nil {
		// Cache write failure is not critical for resolution.
		_ = err
	}

	if !entry.contains(version) {
		unavailable := zerr.With(domain.ErrVersionUnavailable, "tool", tool)
		unavailable = zerr.With(unavailable, "version", version)
		return zerr.With(unavailable, "platform", r.platform)
	}

	return nil
}

// queryBroker fetches the candidate's full version list for the platform.
func (r *Resolver) queryBroker(ctx context.Context, tool string) (*cacheEntry, error) {
	url := fmt.Sprintf("%s/candidates/%s/%s/versions/all", r.apiBase, tool, r.platform)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to build candidate list request")
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to query candidate broker")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNotFound {
		unknown := zerr.With(domain.ErrVersionUnavailable, "tool", tool)
		return nil, zerr.With(unknown, "reason", "unknown candidate")
	}
	if resp.StatusCode != http.StatusOK {
		brokerErr := zerr.With(zerr.New("candidate broker returned unexpected status"), "tool", tool)
		return nil, zerr.With(brokerErr, "status", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxVersionListBytes))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read candidate list response")
	}

	return &cacheEntry{
		Tool:      tool,
		Platform:  r.platform,
		Versions:  parseVersionList(string(body)),
		Timestamp: time.Now(),
	}, nil
}

// parseVersionList splits the broker's comma-separated version list.
func parseVersionList(body string) []string {
	fields := strings.FieldsFunc(body, func(r rune) bool {
		return r == ',' || r == '\n'
	})

	versions := make([]string, 0, len(fields))
	for _, f := range fields {
		if v := strings.TrimSpace(f); v != "" {
			versions = append(versions, v)
		}
	}
	return versions
}

func (r *Resolver) cachePath(tool string) string {
	return filepath.Join(r.cacheDir, tool+"-"+r.platform+".json")
}

func (r *Resolver) loadFromCache(tool string) (*cacheEntry, error) {
	//nolint:gosec // path is constructed from the trusted cache directory
	data, err := os.ReadFile(r.cachePath(tool))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		return nil, zerr.Wrap(err, "failed to read candidate cache")
	}

	var entry cacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, zerr.Wrap(err, "failed to unmarshal candidate cache")
	}

	return &entry, nil
}

func (r *Resolver) saveToCache(entry *cacheEntry) error {
	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal candidate cache")
	}

	if err := atomicWriteFile(r.cachePath(entry.Tool), data); err != nil {
		return zerr.Wrap(err, "failed to write candidate cache")
	}

	return nil
}

// atomicWriteFile writes data to a file atomically by writing to a temp file
// and renaming it.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(dir, "candidate-cache-*.json")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}
	if err := tmpFile.Close(); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}

// currentPlatform maps the Go runtime to the broker's platform identifiers.
func currentPlatform() string {
	switch runtime.GOOS + "/" + runtime.GOARCH {
	case "linux/amd64":
		return "linuxx64"
	case "linux/arm64":
		return "linuxarm64"
	case "darwin/amd64":
		return "darwinx64"
	case "darwin/arm64":
		return "darwinarm64"
	case "windows/amd64":
		return "windowsx64"
	default:
		return runtime.GOOS + runtime.GOARCH
	}
}
