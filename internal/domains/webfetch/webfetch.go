// Package webfetch performs the single HTTP GET behind the dashboard's HTTP
// tool. There are no retries: the caller sees the status code and a
// truncated body, or the underlying error.
package webfetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"toolbox/go-backend/internal/domains/contracts"
	"toolbox/go-backend/pkg/models"
)

const (
	DefaultTimeout      = 10 * time.Second
	DefaultPreviewChars = 5000
)

type Options struct {
	Timeout      time.Duration
	PreviewChars int
	Client       *http.Client
}

type Fetcher struct {
	client       *http.Client
	timeout      time.Duration
	previewChars int
}

func NewFetcher(opts Options) *Fetcher {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	previewChars := opts.PreviewChars
	if previewChars <= 0 {
		previewChars = DefaultPreviewChars
	}
	client := opts.Client
	if client == nil {
		client = &http.Client{}
	}
	return &Fetcher{client: client, timeout: timeout, previewChars: previewChars}
}

// ResolveTarget accepts an http(s) URL or a multiaddr and returns the URL to fetch.
func ResolveTarget(target string) (*url.URL, error) {
	target = strings.TrimSpace(target)
	if target == "" {
		return nil, contracts.InvalidInput("URL is required")
	}
	if strings.HasPrefix(target, "/") {
		converted, err := MultiaddrToURL(target)
		if err != nil {
			return nil, err
		}
		target = converted
	}
	u, err := url.Parse(target)
	if err != nil {
		return nil, contracts.InvalidInputf("invalid URL: %v", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, contracts.InvalidInputf("unsupported URL scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return nil, contracts.InvalidInput("URL host is required")
	}
	return u, nil
}

// Get issues one GET bounded by the fetcher timeout and ctx.
func (f *Fetcher) Get(ctx context.Context, target string) (models.HTTPResponse, error) {
	u, err := ResolveTarget(target)
	if err != nil {
		return models.HTTPResponse{}, err
	}
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return models.HTTPResponse{}, contracts.InvalidInputf("invalid URL: %v", err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			err = fmt.Errorf("request timed out after %s: %w", f.timeout, err)
		}
		return models.HTTPResponse{}, contracts.WrapCategorizedError(contracts.ErrorCategoryNetwork, err)
	}
	defer func() { _ = resp.Body.Close() }()

	// Each character takes at most utf8.UTFMax bytes.
	limit := int64(f.previewChars*utf8.UTFMax + 1)
	raw, err := io.ReadAll(io.LimitReader(resp.Body, limit))
	if err != nil {
		return models.HTTPResponse{}, contracts.WrapCategorizedError(contracts.ErrorCategoryNetwork, fmt.Errorf("read body: %w", err))
	}
	body, truncated := truncateChars(strings.ToValidUTF8(string(raw), "\uFFFD"), f.previewChars)
	if int64(len(raw)) == limit {
		truncated = true
	}
	return models.HTTPResponse{
		URL:        u.String(),
		StatusCode: resp.StatusCode,
		Body:       body,
		Truncated:  truncated,
	}, nil
}

func truncateChars(s string, n int) (string, bool) {
	count := 0
	for i := range s {
		if count == n {
			return s[:i], true
		}
		count++
	}
	return s, false
}
