// Package remote loads translation bundles over HTTP(S), for example from a
// CDN or a translation management service export endpoint.
//
//	ldr, err := remote.New("https://cdn.example.com/i18n/")
//	chain := loader.MustNewChain(loader.WithLoader(loader.Origins("web"), ldr, loader.Options{}))
//
// The naming policy output is resolved against the base URL. 404 and 410 are
// loader.ErrNotFound; any other non-2xx status is a failure.
package remote

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/l10n/core/loader"
	"github.com/dmitrymomot/l10n/core/resource"
)

// Compile-time check that Loader implements loader.Loader interface
var _ loader.Loader = (*Loader)(nil)

const (
	// DefaultTimeout bounds one request when no client is supplied.
	DefaultTimeout = 10 * time.Second
	// DefaultMaxBodySize caps how much of a response body is read.
	DefaultMaxBodySize int64 = 4 << 20
)

var (
	ErrInvalidBaseURL  = errors.New("remote: invalid base URL")
	ErrUnexpectedReply = errors.New("remote: unexpected response status")
	ErrBodyTooLarge    = errors.New("remote: response body too large")
)

// Loader fetches bundles with GET requests.
type Loader struct {
	base        *url.URL
	client      *http.Client
	header      http.Header
	maxBodySize int64
}

// Option configures a Loader.
type Option func(*Loader)

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(c *http.Client) Option {
	return func(l *Loader) {
		if c != nil {
			l.client = c
		}
	}
}

// WithHeader adds a header sent with every request, such as an API token.
func WithHeader(key, value string) Option {
	return func(l *Loader) {
		l.header.Add(key, value)
	}
}

// WithMaxBodySize overrides DefaultMaxBodySize.
func WithMaxBodySize(n int64) Option {
	return func(l *Loader) {
		if n > 0 {
			l.maxBodySize = n
		}
	}
}

// New creates a Loader rooted at baseURL.
func New(baseURL string, opts ...Option) (*Loader, error) {
	base, err := url.Parse(baseURL)
	if err != nil || (base.Scheme != "http" && base.Scheme != "https") || base.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, baseURL)
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}

	l := &Loader{
		base:        base,
		client:      &http.Client{Timeout: DefaultTimeout},
		header:      make(http.Header),
		maxBodySize: DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Name implements loader.Loader.
func (l *Loader) Name() string {
	return "remote:" + l.base.Host
}

// URL returns the address a bundle is fetched from.
func (l *Loader) URL(opts loader.Options, id resource.Identity, tag language.Tag) string {
	rel := &url.URL{Path: strings.TrimPrefix(opts.Locate(id, tag), "/")}
	return l.base.ResolveReference(rel).String()
}

// TryLoad implements loader.Loader.
func (l *Loader) TryLoad(ctx context.Context, opts loader.Options, id resource.Identity, tag language.Tag) (*loader.Map, error) {
	target := l.URL(opts, id, tag)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("build request %s: %w", target, err)
	}
	for k, v := range l.header {
		req.Header[k] = v
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", target, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return nil, fmt.Errorf("%w: %s", loader.ErrNotFound, target)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, fmt.Errorf("%w: %s returned %d", ErrUnexpectedReply, target, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, l.maxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", target, err)
	}
	if int64(len(data)) > l.maxBodySize {
		return nil, fmt.Errorf("%w: %s", ErrBodyTooLarge, target)
	}

	return opts.DataFormat().Parse(data)
}
