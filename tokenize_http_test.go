package mdtok

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestTokenizeURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("+++\ntitle = \"x\"\n+++\n> fetched\n"))
	}))
	defer srv.Close()

	tokens, err := TokenizeURL(context.Background(), HTTPTokenizeRequest{URL: srv.URL, StripFrontMatter: true})
	if err != nil {
		t.Fatalf("tokenize url: %v", err)
	}
	if got := Reconstruct(tokens); got != "> fetched\n" {
		t.Fatalf("unexpected tokens: %q", got)
	}

	if _, err := TokenizeURL(context.Background(), HTTPTokenizeRequest{URL: srv.URL + "/missing"}); err == nil || !strings.Contains(err.Error(), "404") {
		t.Fatalf("expected status error, got %v", err)
	}
	if _, err := TokenizeURL(context.Background(), HTTPTokenizeRequest{URL: "ftp://example.com/x.md"}); err == nil || !strings.Contains(err.Error(), "unsupported scheme") {
		t.Fatalf("expected scheme error, got %v", err)
	}
	if _, err := TokenizeURL(context.Background(), HTTPTokenizeRequest{}); err == nil {
		t.Fatalf("expected error for empty URL")
	}
}

func TestFetchURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("# body"))
	}))
	defer srv.Close()

	body, err := FetchURL(context.Background(), srv.Client(), srv.URL)
	if err != nil || string(body) != "# body" {
		t.Fatalf("unexpected fetch result %q (%v)", body, err)
	}
	if _, err := FetchURL(context.Background(), nil, "file:///tmp/x.md"); err == nil || !strings.Contains(err.Error(), "unsupported scheme") {
		t.Fatalf("expected scheme error, got %v", err)
	}
}
