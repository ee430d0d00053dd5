package webfetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"toolbox/go-backend/internal/domains/contracts"
)

func TestGet_ReturnsStatusAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("unexpected method %s", r.Method)
		}
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))
	defer srv.Close()

	got, err := NewFetcher(Options{}).Get(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.StatusCode != http.StatusTeapot || got.Body != "short and stout" || got.Truncated {
		t.Fatalf("unexpected response %+v", got)
	}
}

func TestGet_TruncatesBodyByCharacters(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("é", 20)))
	}))
	defer srv.Close()

	got, err := NewFetcher(Options{PreviewChars: 5}).Get(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Body != "ééééé" || !got.Truncated {
		t.Fatalf("unexpected truncation %q truncated=%v", got.Body, got.Truncated)
	}
}

func TestGet_TimeoutIsNetworkError(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	_, err := NewFetcher(Options{Timeout: 50 * time.Millisecond}).Get(context.Background(), srv.URL)
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if got := contracts.ErrorCategory(err); got != contracts.ErrorCategoryNetwork {
		t.Fatalf("expected network category, got %q (%v)", got, err)
	}
}

func TestResolveTarget_RejectsUnsupportedSchemes(t *testing.T) {
	for _, target := range []string{"", "ftp://example.com", "file:///etc/passwd", "example.com", "http://"} {
		if _, err := ResolveTarget(target); !errors.Is(err, contracts.ErrInvalidInput) {
			t.Fatalf("target %q: expected invalid input, got %v", target, err)
		}
	}
}

func TestMultiaddrToURL(t *testing.T) {
	cases := map[string]string{
		"/dns4/example.com/tcp/443/https":  "https://example.com/",
		"/dns4/example.com/tcp/443":        "https://example.com/",
		"/ip4/127.0.0.1/tcp/8080/http":     "http://127.0.0.1:8080/",
		"/ip4/127.0.0.1/tcp/8443/tls/http": "https://127.0.0.1:8443/",
		"/ip6/::1/tcp/80":                  "http://[::1]/",
		"/ip6/::1/tcp/8080":                "http://[::1]:8080/",
	}
	for in, want := range cases {
		got, err := MultiaddrToURL(in)
		if err != nil {
			t.Fatalf("%s: %v", in, err)
		}
		if got != want {
			t.Fatalf("%s -> %s, want %s", in, got, want)
		}
	}
}

func TestMultiaddrToURL_RequiresHost(t *testing.T) {
	if _, err := MultiaddrToURL("/tcp/443"); !errors.Is(err, contracts.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if _, err := MultiaddrToURL("/nonsense"); !errors.Is(err, contracts.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}
