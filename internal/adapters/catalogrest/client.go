package catalogrest

// Package catalogrest implements core.CatalogAPI against the remote catalog
// REST backend: GET/POST /pizzas, PUT/DELETE /pizzas/{id}. No auth header is
// sent; trust is purely client-side.

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	jmespath "github.com/jmespath-community/go-jmespath"

	"github.com/ovenside/storefront-api/internal/domain/model"
)

const itemsResource = "/pizzas"

// Config captures the subset of catalog backend behaviour we need.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	RetryLimit int
	// ItemsPath is an optional JMESPath expression that extracts the item
	// array from the list response body. Empty means the body is the array.
	ItemsPath string
	Client    *http.Client
}

// Client talks to the remote catalog backend.
type Client struct {
	baseURL    string
	retryLimit int
	itemsPath  string
	client     *http.Client
}

// NewClient builds a catalog client. Callers should pass a sanitized config.
func NewClient(cfg Config) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("catalog base url is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	retries := cfg.RetryLimit
	if retries < 0 {
		retries = 0
	}

	itemsPath := strings.TrimSpace(cfg.ItemsPath)
	if itemsPath != "" {
		if _, err := jmespath.Compile(itemsPath); err != nil {
			return nil, fmt.Errorf("compile items path %q: %w", itemsPath, err)
		}
	}

	hc := cfg.Client
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL:    baseURL,
		retryLimit: retries,
		itemsPath:  itemsPath,
		client:     hc,
	}, nil
}

// List fetches all catalog items.
func (c *Client) List(ctx context.Context) ([]model.CatalogItem, error) {
	body, err := c.do(ctx, http.MethodGet, c.baseURL+itemsResource, nil)
	if err != nil {
		return nil, fmt.Errorf("list catalog items: %w", err)
	}

	raw := body
	if c.itemsPath != "" {
		extracted, extractErr := c.extractItems(body)
		if extractErr != nil {
			return nil, fmt.Errorf("list catalog items: %w", extractErr)
		}
		raw = extracted
	}

	var items []model.CatalogItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode catalog list: %w", err)
	}
	return items, nil
}

// Create posts a new item (sans ID) and returns the created record with the
// backend-assigned ID.
func (c *Client) Create(ctx context.Context, item model.CatalogItem) (*model.CatalogItem, error) {
	payload, err := json.Marshal(item)
	if err != nil {
		return nil, fmt.Errorf("encode catalog item: %w", err)
	}

	body, err := c.do(ctx, http.MethodPost, c.baseURL+itemsResource, payload)
	if err != nil {
		return nil, fmt.Errorf("create catalog item: %w", err)
	}

	var created model.CatalogItem
	if err := json.Unmarshal(body, &created); err != nil {
		return nil, fmt.Errorf("decode created catalog item: %w", err)
	}
	return &created, nil
}

// Update replaces the full record for item.ID.
func (c *Client) Update(ctx context.Context, item model.CatalogItem) (*model.CatalogItem, error) {
	payload, err := json.Marshal(item)
	if err != nil {
		return nil, fmt.Errorf("encode catalog item: %w", err)
	}

	url := c.baseURL + itemsResource + "/" + strconv.Itoa(item.ID)
	body, err := c.do(ctx, http.MethodPut, url, payload)
	if err != nil {
		return nil, fmt.Errorf("update catalog item %d: %w", item.ID, err)
	}

	// Some backends reply with the updated record, others with an empty
	// confirmation; fall back to the request payload in the latter case.
	updated := item
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, &updated); err != nil {
			return nil, fmt.Errorf("decode updated catalog item: %w", err)
		}
	}
	return &updated, nil
}

// Delete removes the record by ID.
func (c *Client) Delete(ctx context.Context, id int) error {
	url := c.baseURL + itemsResource + "/" + strconv.Itoa(id)
	if _, err := c.do(ctx, http.MethodDelete, url, nil); err != nil {
		return fmt.Errorf("delete catalog item %d: %w", id, err)
	}
	return nil
}

func (c *Client) extractItems(body []byte) ([]byte, error) {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog response: %w", err)
	}
	result, err := jmespath.Search(c.itemsPath, doc)
	if err != nil {
		return nil, fmt.Errorf("extract items: %w", err)
	}
	raw, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("re-encode extracted items: %w", err)
	}
	return raw, nil
}

// do performs one request with linear retry backoff and returns the response body.
func (c *Client) do(ctx context.Context, method, url string, payload []byte) ([]byte, error) {
	attempts := c.retryLimit + 1
	var lastErr error
	for attempt := range attempts {
		body, err := c.doOnce(ctx, method, url, payload)
		if err == nil {
			return body, nil
		}
		lastErr = err
		if attempt < attempts-1 {
			// Simple linear backoff to avoid thundering retries.
			delay := time.Duration(attempt+1) * 200 * time.Millisecond
			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				if !timer.Stop() {
					<-timer.C
				}
				return nil, ctx.Err()
			case <-timer.C:
			}
		}
	}
	return nil, lastErr
}

func (c *Client) doOnce(ctx context.Context, method, url string, payload []byte) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("read catalog response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("catalog responded %d: %s", resp.StatusCode, truncate(body, 200))
	}
	return body, nil
}

func truncate(b []byte, n int) string {
	s := strings.TrimSpace(string(b))
	if len(s) > n {
		return s[:n] + "..."
	}
	return s
}
