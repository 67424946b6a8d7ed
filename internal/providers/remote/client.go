// Package remote fetches view documents over HTTP.
package remote

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/preston-bernstein/dailypicks-service/internal/domain/picks"
	"github.com/preston-bernstein/dailypicks-service/internal/providers"
)

const (
	defaultBaseURL   = "http://localhost:8000/data"
	maxErrorBodySize = 512
	maxDocumentSize  = 8 << 20
)

// Config controls how the client reaches the document host.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// Client fetches {BaseURL}/{view}.json documents.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
}

// NewClient constructs a remote client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// Name identifies the provider in logs and metrics.
func (c *Client) Name() string {
	return "remote"
}

// FetchDocument performs a single GET for the view's document.
func (c *Client) FetchDocument(ctx context.Context, view picks.View) ([]byte, error) {
	if !view.Valid() {
		return nil, &providers.FetchError{Source: c.Name(), View: view, Err: fmt.Errorf("unknown view %q", view)}
	}
	req, err := c.buildRequest(ctx, view)
	if err != nil {
		return nil, &providers.FetchError{Source: c.Name(), View: view, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &providers.FetchError{Source: c.Name(), View: view, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		cause := fmt.Errorf("unexpected status: %s", strings.TrimSpace(string(body)))
		if resp.StatusCode == http.StatusNotFound {
			cause = providers.ErrDocumentNotFound
		}
		return nil, &providers.FetchError{Source: c.Name(), View: view, StatusCode: resp.StatusCode, Err: cause}
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if err != nil {
		return nil, &providers.FetchError{Source: c.Name(), View: view, StatusCode: resp.StatusCode, Err: err}
	}
	return raw, nil
}

func (c *Client) buildRequest(ctx context.Context, view picks.View) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+string(view)+".json", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	return req, nil
}
