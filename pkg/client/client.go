// Package client is a typed client for a remote inventory API instance. The
// search and export calls build their query strings through pkg/params, so an
// export always covers exactly the result set a search with the same state
// returns.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"golang.org/x/oauth2/clientcredentials"

	"github.com/sunrise-ims/inventory-finder/pkg/index"
	"github.com/sunrise-ims/inventory-finder/pkg/params"
	"github.com/sunrise-ims/inventory-finder/pkg/types"
)

type Client struct {
	baseURL string
	http    *http.Client
}

// New builds a client against baseURL (scheme://host, no trailing slash).
// When creds is non-nil, requests carry bearer tokens from the client
// credentials flow; otherwise the transport is unauthenticated.
func New(baseURL string, creds *clientcredentials.Config) *Client {
	httpClient := http.DefaultClient
	if creds != nil {
		httpClient = creds.Client(context.Background())
	}
	return &Client{baseURL: baseURL, http: httpClient}
}

// SearchResult is the unwrapped page envelope of the list endpoint.
type SearchResult struct {
	Records       []*types.InventoryRecord
	TotalPages    int
	TotalElements int
}

type pageEnvelope struct {
	Data struct {
		Content []*types.InventoryRecord `json:"content"`
		Page    index.PageMeta           `json:"page"`
	} `json:"data"`
}

// Search fetches one page of filtered, sorted results.
func (c *Client) Search(ctx context.Context, state types.FilterState, sort string, page, size int) (*SearchResult, error) {
	query := params.Build(state, sort)
	query.Set("page", strconv.Itoa(page))
	query.Set("size", strconv.Itoa(size))

	var envelope pageEnvelope
	if err := c.getJSON(ctx, "/api/inventory", query, &envelope); err != nil {
		return nil, err
	}
	return &SearchResult{
		Records:       envelope.Data.Content,
		TotalPages:    envelope.Data.Page.TotalPages,
		TotalElements: envelope.Data.Page.TotalElements,
	}, nil
}

// Export downloads the export file for the same filter state and sort. The
// caller owns closing the returned body.
func (c *Client) Export(ctx context.Context, state types.FilterState, sort string) (io.ReadCloser, error) {
	query := params.Build(state, sort)
	resp, err := c.get(ctx, "/api/inventory/export", query)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// GetByPan fetches a single record; the optional disambiguators narrow a pan
// shared by several lots.
func (c *Client) GetByPan(ctx context.Context, panID int64, polymer, form, folder, lot string) (*types.InventoryRecord, error) {
	query := url.Values{}
	setNonEmpty(query, "polymer", polymer)
	setNonEmpty(query, "form", form)
	setNonEmpty(query, "folder", folder)
	setNonEmpty(query, "lot", lot)

	var record types.InventoryRecord
	path := fmt.Sprintf("/api/inventory/%d", panID)
	if err := c.getJSON(ctx, path, query, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// FilterOptions fetches the categorical values and ranges bounding the UI
// controls.
func (c *Client) FilterOptions(ctx context.Context) (*index.FilterOptions, error) {
	var opts index.FilterOptions
	if err := c.getJSON(ctx, "/api/inventory/filters", nil, &opts); err != nil {
		return nil, err
	}
	return &opts, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (*http.Response, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("inventory api: %s returned %d", path, resp.StatusCode)
	}
	return resp, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	resp, err := c.get(ctx, path, query)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}

func setNonEmpty(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}
