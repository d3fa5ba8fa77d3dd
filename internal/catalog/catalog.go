package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"gopkg.in/ini.v1"

	"github.com/skillman-io/skillman/internal/status"
)

// Sentinel errors for the two distinct fetch failure paths.
var (
	// ErrUnavailable covers transport failures and non-2xx responses.
	ErrUnavailable = errors.New("catalog unavailable")
	// ErrEmpty covers a successful response with an empty body.
	ErrEmpty = errors.New("catalog response empty")
)

// Entry is one skill in the catalog snapshot. Name and Path are unique
// within a snapshot; URL is the clone source.
type Entry struct {
	Name string
	Path string
	URL  string
}

// Client fetches the manifest once and serves the memoized snapshot for
// the remainder of the process.
type Client struct {
	url  string
	http *http.Client

	once    sync.Once
	entries []Entry
	err     error
}

// NewClient returns a Client for the given manifest URL.
func NewClient(url string) *Client {
	return &Client{
		url:  url,
		http: &http.Client{Timeout: 30 * time.Second},
	}
}

// WithHTTPClient overrides the HTTP client (useful for testing).
func (c *Client) WithHTTPClient(h *http.Client) *Client {
	c.http = h
	return c
}

// Fetch returns the catalog snapshot, fetching it on first call. A failed
// fetch is memoized too: the snapshot is consistent for the whole
// invocation, never silently replaced by a later retry.
func (c *Client) Fetch(ctx context.Context) ([]Entry, error) {
	c.once.Do(func() {
		c.entries, c.err = c.fetch(ctx)
	})
	return c.entries, c.err
}

func (c *Client) fetch(ctx context.Context) ([]Entry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, status.E(status.CatalogUnavailable, fmt.Errorf("%w: building request: %v", ErrUnavailable, err))
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, status.E(status.CatalogUnavailable, fmt.Errorf("%w: %v", ErrUnavailable, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, status.E(status.CatalogUnavailable, fmt.Errorf("%w: GET %s returned %d", ErrUnavailable, c.url, resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, status.E(status.CatalogUnavailable, fmt.Errorf("%w: reading body: %v", ErrUnavailable, err))
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil, status.E(status.CatalogEmpty, fmt.Errorf("%w: GET %s", ErrEmpty, c.url))
	}

	entries, err := Parse(body)
	if err != nil {
		return nil, status.E(status.CatalogUnavailable, fmt.Errorf("parsing manifest: %w", err))
	}
	return entries, nil
}

// Parse decodes a gitmodules-style document into ordered entries.
// Blocks without a url are skipped, not fatal; block order is preserved.
func Parse(data []byte) ([]Entry, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{SkipUnrecognizableLines: true}, data)
	if err != nil {
		return nil, fmt.Errorf("loading document: %w", err)
	}

	var entries []Entry
	for _, section := range cfg.Sections() {
		name, ok := submoduleName(section.Name())
		if !ok {
			continue
		}
		url := strings.TrimSpace(section.Key("url").String())
		if url == "" {
			// Malformed block: header without a url.
			continue
		}
		path := strings.TrimSpace(section.Key("path").String())
		if path == "" {
			path = name
		}
		entries = append(entries, Entry{Name: name, Path: path, URL: url})
	}
	return entries, nil
}

// submoduleName extracts the quoted skill name from a section header like
// `submodule "skill-name"`.
func submoduleName(section string) (string, bool) {
	const prefix = `submodule "`
	if !strings.HasPrefix(section, prefix) || !strings.HasSuffix(section, `"`) {
		return "", false
	}
	name := strings.TrimSuffix(strings.TrimPrefix(section, prefix), `"`)
	if name == "" {
		return "", false
	}
	return name, true
}
