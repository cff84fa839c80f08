// Package github fetches account and repository records from the GitHub REST API.
package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/go-github/v62/github"
	"github.com/yourusername/ghlookup/internal/domain"
	"github.com/yourusername/ghlookup/internal/logging"
)

// Fetcher retrieves the raw record behind a lookup target.
type Fetcher interface {
	FetchAccount(ctx context.Context, handle string) (*domain.Record, error)
	FetchRepository(ctx context.Context, repoPath string) (*domain.Record, error)
}

// Client is the REST implementation of Fetcher.
type Client struct {
	client *github.Client
}

// NewClient creates an unauthenticated client rooted at baseURL.
// An empty baseURL selects the public API. httpClient may be nil.
func NewClient(baseURL string, httpClient *http.Client) (*Client, error) {
	client := github.NewClient(httpClient)

	if baseURL != "" && baseURL != domain.DefaultAPIBaseURL {
		parsedURL, err := url.Parse(baseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid github api url: %w", err)
		}
		if parsedURL.Path == "" || parsedURL.Path[len(parsedURL.Path)-1] != '/' {
			parsedURL.Path += "/"
		}
		client.BaseURL = parsedURL
	}

	return &Client{client: client}, nil
}

// BaseURL returns the API root requests are sent to.
func (c *Client) BaseURL() string {
	return c.client.BaseURL.String()
}

// FetchAccount reads GET users/{handle}.
func (c *Client) FetchAccount(ctx context.Context, handle string) (*domain.Record, error) {
	return c.get(ctx, "users/"+handle)
}

// FetchRepository reads GET repos/{owner}/{repo}. repoPath is used verbatim.
func (c *Client) FetchRepository(ctx context.Context, repoPath string) (*domain.Record, error) {
	return c.get(ctx, "repos/"+repoPath)
}

// get issues one GET and decodes the body into a Record.
func (c *Client) get(ctx context.Context, path string) (*domain.Record, error) {
	req, err := c.client.NewRequest(http.MethodGet, path, nil)
	if err != nil {
		return nil, &domain.FetchError{Op: "build request " + path, Err: err}
	}

	started := time.Now()
	rec := &domain.Record{}
	resp, err := c.client.Do(ctx, req, rec)
	elapsed := time.Since(started)

	if resp != nil && (resp.StatusCode < 200 || resp.StatusCode > 299) {
		logging.Warn("github request failed",
			"path", path,
			"status_code", resp.StatusCode,
			"duration", elapsed)
		return nil, &domain.HTTPError{
			StatusCode: resp.StatusCode,
			URL:        req.URL.String(),
			Err:        err,
		}
	}
	if err != nil {
		logging.Warn("github request error",
			"path", path,
			"error", err,
			"duration", elapsed)
		return nil, &domain.FetchError{Op: "get " + path, Err: err}
	}

	logging.Debug("github request complete",
		"path", path,
		"status_code", resp.StatusCode,
		"duration", elapsed)
	return rec, nil
}
