package bynder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// ErrNotFound is returned when the requested asset does not exist.
var ErrNotFound = errors.New("bynder: asset not found")

// Client defines the asset provider operations consumed by the engine.
type Client interface {
	// AssetByID fetches a single asset snapshot. Returns ErrNotFound when
	// the id is unknown to the DAM.
	AssetByID(ctx context.Context, id string) (*Asset, error)
	// Assets fetches one page of the media collection matching the raw
	// filter query (e.g. "type=image&tags=PIM"). Pages are 1-based.
	Assets(ctx context.Context, query string, page, limit int) (*AssetCollection, error)
}

// NewClient creates an HTTP client for the Bynder media API.
func NewClient(cfg Config) (Client, error) {
	base, err := url.Parse(strings.TrimSuffix(cfg.BaseURL, "/"))
	if err != nil || base.Host == "" {
		return nil, fmt.Errorf("invalid bynder base url %q", cfg.BaseURL)
	}

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	// Strict transport timeouts; the token client reuses the same transport.
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	creds := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     base.String() + "/v6/authentication/oauth2/token",
		Scopes:       strings.Fields(cfg.Scopes),
	}

	// Route token requests through the configured transport as well.
	tokenCtx := context.WithValue(context.Background(), oauth2.HTTPClient, &http.Client{
		Transport: transport,
		Timeout:   timeoutDuration,
	})

	return &httpClient{
		base: base,
		http: creds.Client(tokenCtx),
	}, nil
}

type httpClient struct {
	base *url.URL
	http *http.Client
}

func (c *httpClient) AssetByID(ctx context.Context, id string) (*Asset, error) {
	endpoint := fmt.Sprintf("%s/api/v4/media/%s/", c.base, url.PathEscape(id))

	var asset Asset
	if err := c.getJSON(ctx, endpoint, &asset); err != nil {
		return nil, err
	}
	return &asset, nil
}

func (c *httpClient) Assets(ctx context.Context, query string, page, limit int) (*AssetCollection, error) {
	values, err := url.ParseQuery(query)
	if err != nil {
		return nil, fmt.Errorf("invalid asset query %q: %w", query, err)
	}
	if page < 1 {
		page = 1
	}
	values.Set("page", strconv.Itoa(page))
	values.Set("limit", strconv.Itoa(limit))
	values.Set("total", "1")

	endpoint := fmt.Sprintf("%s/api/v4/media/?%s", c.base, values.Encode())

	var collection AssetCollection
	if err := c.getJSON(ctx, endpoint, &collection); err != nil {
		return nil, err
	}
	collection.Page = page
	collection.Limit = limit
	return &collection, nil
}

func (c *httpClient) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("bynder request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("bynder request failed: %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("bynder response decode failed: %w", err)
	}
	return nil
}
