package mdtok

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
)

// HTTPTokenizeRequest configures TokenizeURL.
type HTTPTokenizeRequest struct {
	URL              string
	Client           *http.Client
	StripFrontMatter bool
	Validate         bool
	Options          []Option
}

// TokenizeURL fetches Markdown over HTTP(S) and scans it.
func TokenizeURL(ctx context.Context, req HTTPTokenizeRequest) ([]Token, error) {
	src, err := FetchURL(ctx, req.Client, req.URL)
	if err != nil {
		return nil, fmt.Errorf("tokenize http: %w", err)
	}
	return Tokenize(TokenizeRequest{
		Reader:           bytes.NewReader(src),
		StripFrontMatter: req.StripFrontMatter,
		Validate:         req.Validate,
		Options:          req.Options,
	})
}

// FetchURL GETs an http or https URL and returns the body. A nil client
// means http.DefaultClient; any status outside 2xx is an error.
func FetchURL(ctx context.Context, client *http.Client, rawURL string) ([]byte, error) {
	if rawURL == "" {
		return nil, fmt.Errorf("URL is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if req.URL.Scheme != "http" && req.URL.Scheme != "https" {
		return nil, fmt.Errorf("unsupported scheme %q", req.URL.Scheme)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%s: status %s", rawURL, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", rawURL, err)
	}
	return body, nil
}
