package inriver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

// NewClient creates a REST client for the inRiver API.
func NewClient(cfg Config) (Service, error) {
	base, err := url.Parse(strings.TrimSuffix(cfg.BaseURL, "/"))
	if err != nil || base.Host == "" {
		return nil, fmt.Errorf("invalid inriver base url %q", cfg.BaseURL)
	}

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

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

	return &restClient{
		base:   base,
		apiKey: cfg.ApiKey,
		http: &http.Client{
			Transport: transport,
			Timeout:   timeoutDuration,
		},
	}, nil
}

type restClient struct {
	base   *url.URL
	apiKey string
	http   *http.Client
}

func (c *restClient) FindByUniqueValue(ctx context.Context, fieldTypeID, value string) (*Entity, error) {
	values := url.Values{}
	values.Set("fieldTypeId", fieldTypeID)
	values.Set("value", value)
	endpoint := fmt.Sprintf("%s/api/v1.0.0/entities:getbyuniquevalue?%s", c.base, values.Encode())

	var entity Entity
	found, err := c.do(ctx, http.MethodGet, endpoint, nil, &entity)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &entity, nil
}

func (c *restClient) CreateEntity(ctx context.Context, entity *Entity) (*Entity, error) {
	endpoint := fmt.Sprintf("%s/api/v1.0.0/entities", c.base)

	var created Entity
	if _, err := c.do(ctx, http.MethodPost, endpoint, entity, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *restClient) UpdateEntity(ctx context.Context, entity *Entity) (*Entity, error) {
	endpoint := fmt.Sprintf("%s/api/v1.0.0/entities/%d", c.base, entity.ID)

	var updated Entity
	if _, err := c.do(ctx, http.MethodPut, endpoint, entity, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *restClient) LinkTypesFor(ctx context.Context, entityTypeID string) ([]LinkType, error) {
	values := url.Values{}
	values.Set("entityTypeId", entityTypeID)
	endpoint := fmt.Sprintf("%s/api/v1.0.0/model/linktypes?%s", c.base, values.Encode())

	var linkTypes []LinkType
	if _, err := c.do(ctx, http.MethodGet, endpoint, nil, &linkTypes); err != nil {
		return nil, err
	}
	sort.SliceStable(linkTypes, func(i, j int) bool {
		return linkTypes[i].Index < linkTypes[j].Index
	})
	return linkTypes, nil
}

func (c *restClient) LinkExists(ctx context.Context, sourceID, targetID int, linkTypeID string) (bool, error) {
	values := url.Values{}
	values.Set("sourceEntityId", strconv.Itoa(sourceID))
	values.Set("targetEntityId", strconv.Itoa(targetID))
	values.Set("linkTypeId", linkTypeID)
	endpoint := fmt.Sprintf("%s/api/v1.0.0/links:exists?%s", c.base, values.Encode())

	var result struct {
		Exists bool `json:"exists"`
	}
	if _, err := c.do(ctx, http.MethodGet, endpoint, nil, &result); err != nil {
		return false, err
	}
	return result.Exists, nil
}

func (c *restClient) AddLink(ctx context.Context, link Link) error {
	endpoint := fmt.Sprintf("%s/api/v1.0.0/links", c.base)
	_, err := c.do(ctx, http.MethodPost, endpoint, link, nil)
	return err
}

// do performs one API call. The boolean return is false when the platform
// answered 404 (a miss on lookups, not an error).
func (c *restClient) do(ctx context.Context, method, endpoint string, in, out any) (bool, error) {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return false, err
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return false, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-inRiver-APIKey", c.apiKey)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return false, fmt.Errorf("inriver request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return false, nil
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return false, fmt.Errorf("inriver request failed: %s: %s", resp.Status, strings.TrimSpace(string(msg)))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return false, fmt.Errorf("inriver response decode failed: %w", err)
		}
	}
	return true, nil
}
