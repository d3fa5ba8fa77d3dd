// Package readme retrieves a skill's README for the info command. It
// derives a raw-content base URL from the repository URL and probes a
// small fixed set of README filename variants, returning the first that
// responds successfully.
package readme

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// variants are probed in order at the derived raw-content base URL.
var variants = []string{"README.md", "README.rst", "README", "Readme.md", "readme.md"}

// Fetcher probes README variants over HTTP.
type Fetcher struct {
	http     *http.Client
	mainline string
}

// New returns a Fetcher probing the given mainline branch.
func New(mainline string) *Fetcher {
	return &Fetcher{
		http:     &http.Client{Timeout: 15 * time.Second},
		mainline: mainline,
	}
}

// WithHTTPClient overrides the HTTP client (useful for testing).
func (f *Fetcher) WithHTTPClient(h *http.Client) *Fetcher {
	f.http = h
	return f
}

// Fetch returns the README contents for the repository at repoURL, trying
// each filename variant until one responds with success.
func (f *Fetcher) Fetch(ctx context.Context, repoURL string) (string, error) {
	base, err := RawBase(repoURL, f.mainline)
	if err != nil {
		return "", err
	}

	for _, name := range variants {
		body, err := f.get(ctx, base+"/"+name)
		if err == nil {
			return body, nil
		}
	}
	return "", fmt.Errorf("no README found for %s", repoURL)
}

func (f *Fetcher) get(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := f.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("GET %s returned %d", url, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// RawBase derives the raw-content base URL for a repository. GitHub URLs
// map to raw.githubusercontent.com; other hosts use the common
// /raw/<branch> convention.
func RawBase(repoURL, branch string) (string, error) {
	trimmed := strings.TrimSuffix(strings.TrimRight(repoURL, "/"), ".git")

	u, err := url.Parse(trimmed)
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("cannot derive raw URL from %q", repoURL)
	}

	if u.Host == "github.com" {
		return "https://raw.githubusercontent.com" + u.Path + "/" + branch, nil
	}
	return u.Scheme + "://" + u.Host + u.Path + "/raw/" + branch, nil
}
