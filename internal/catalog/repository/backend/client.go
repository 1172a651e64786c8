package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"wardrobe-catalog/internal/catalog/repository"
)

const (
	wardrobePath = "/api/items/wardrobe/"
	listingsPath = "/api/listings/"

	// maxBodyBytes caps a single catalog response.
	maxBodyBytes = 32 << 20
)

// Config holds the backend connection and cache settings.
type Config struct {
	URL           string
	Timeout       time.Duration
	AccessToken   string
	Email         string
	Password      string
	TokenLifetime time.Duration

	CacheEnabled bool
	CacheSize    int
	CacheTTL     time.Duration
}

// Client is the HTTP wrapper for the marketplace REST API.
type Client struct {
	baseURL string
	base    http.RoundTripper
	timeout time.Duration
	service oauth2.TokenSource
}

// NewClient creates a backend client. ctx bounds the service login calls.
func NewClient(ctx context.Context, cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	base := http.DefaultTransport
	c := &Client{
		baseURL: cfg.URL,
		base:    base,
		timeout: timeout,
	}
	c.service = newServiceTokenSource(ctx, &http.Client{Transport: base, Timeout: timeout}, cfg)
	return c
}

// httpClient picks the caller's token when present, else the service identity.
func (c *Client) httpClient(token string) *http.Client {
	var src oauth2.TokenSource
	switch {
	case token != "":
		src = oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"})
	case c.service != nil:
		src = c.service
	}
	if src == nil {
		return &http.Client{Transport: c.base, Timeout: c.timeout}
	}
	return &http.Client{
		Transport: &oauth2.Transport{Source: src, Base: c.base},
		Timeout:   c.timeout,
	}
}

// GetWardrobe fetches the raw wardrobe item list for the token owner.
func (c *Client) GetWardrobe(ctx context.Context, token string) ([]rawRecord, error) {
	return c.getList(ctx, wardrobePath, token)
}

// GetListings fetches the raw resale listing list.
func (c *Client) GetListings(ctx context.Context, token string) ([]rawRecord, error) {
	return c.getList(ctx, listingsPath, token)
}

func (c *Client) getList(ctx context.Context, path, token string) ([]rawRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", repository.ErrFailedToFetch, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient(token).Do(req)
	if err != nil {
		// Keeps token source errors such as ErrUnauthorized visible.
		return nil, fmt.Errorf("%w: %w", repository.ErrFailedToFetch, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("%w: status %d", repository.ErrUnauthorized, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: %s status %d: %s", repository.ErrFailedToFetch, path, resp.StatusCode, msg)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", repository.ErrFailedToFetch, err)
	}
	return decodeList(body)
}

// decodeList accepts a bare array or an envelope such as a paginated
// {"results": [...]} response.
func decodeList(body []byte) ([]rawRecord, error) {
	var list []rawRecord
	if err := json.Unmarshal(body, &list); err == nil {
		return list, nil
	}

	var env struct {
		Results  *[]rawRecord `json:"results"`
		Items    *[]rawRecord `json:"items"`
		Listings *[]rawRecord `json:"listings"`
		Data     *[]rawRecord `json:"data"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToDecode, err)
	}
	for _, l := range []*[]rawRecord{env.Results, env.Items, env.Listings, env.Data} {
		if l != nil {
			return *l, nil
		}
	}
	return nil, fmt.Errorf("%w: no record list in response", repository.ErrFailedToDecode)
}
