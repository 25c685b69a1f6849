// Package client is a typed HTTP client for the property catalog API.
// Reads go through a keyed cache with in-flight request deduplication, so
// concurrent callers asking for the same collection share one request.
// Mutations invalidate exactly the keys they affect.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/karlseguin/ccache/v3"
	"golang.org/x/sync/singleflight"

	"github.com/bledarhoxha/prona/internal/catalog"
	"github.com/bledarhoxha/prona/internal/model"
)

// CacheTTL bounds how stale a cached read can get when no mutation goes
// through this client. Mutations from the same client drop entries
// immediately.
const CacheTTL = 5 * time.Minute

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.StatusCode)
}

// Client talks to a catalog API server.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	token string

	collections *ccache.Cache[[]model.Property]
	items       *ccache.Cache[*model.Property]
	group       singleflight.Group
}

// New creates a client for the API at baseURL.
func New(baseURL string) *Client {
	return &Client{
		BaseURL:     baseURL,
		HTTPClient:  &http.Client{Timeout: 30 * time.Second},
		collections: ccache.New(ccache.Configure[[]model.Property]().MaxSize(16)),
		items:       ccache.New(ccache.Configure[*model.Property]().MaxSize(256)),
	}
}

// SetToken sets the bearer token sent on subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Token returns the bearer token currently held by the client.
func (c *Client) Token() string {
	return c.token
}

// Login authenticates and stores the returned token on the client.
func (c *Client) Login(ctx context.Context, email, password string) error {
	var resp struct {
		Token string `json:"token"`
		Admin bool   `json:"admin"`
	}
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &resp); err != nil {
		return err
	}
	c.token = resp.Token
	return nil
}

// Properties returns all listings, newest first.
func (c *Client) Properties(ctx context.Context) ([]model.Property, error) {
	return c.collection(ctx, catalog.CollectionKey, "/api/properties")
}

// Featured returns the promoted listings.
func (c *Client) Featured(ctx context.Context) ([]model.Property, error) {
	return c.collection(ctx, catalog.FeaturedKey, "/api/properties/featured")
}

// Property returns one listing by ID. An empty ID is a guarded no-op that
// fetches nothing and returns nothing.
func (c *Client) Property(ctx context.Context, id string) (*model.Property, error) {
	if id == "" {
		return nil, nil
	}

	if item := c.items.Get(id); item != nil && !item.Expired() {
		return item.Value(), nil
	}

	v, err, _ := c.group.Do(id, func() (any, error) {
		var p model.Property
		if err := c.do(ctx, http.MethodGet, "/api/properties/"+id, nil, &p); err != nil {
			return nil, err
		}
		c.items.Set(id, &p, CacheTTL)
		return &p, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*model.Property), nil
}

// Create adds a listing and invalidates the collection caches.
func (c *Client) Create(ctx context.Context, p *model.Property) (*model.Property, error) {
	var created model.Property
	if err := c.do(ctx, http.MethodPost, "/api/properties", p, &created); err != nil {
		return nil, err
	}
	c.Invalidate(catalog.CollectionKey)
	c.Invalidate(catalog.FeaturedKey)
	return &created, nil
}

// Update applies a partial update and invalidates affected caches.
func (c *Client) Update(ctx context.Context, id string, patch *model.PropertyPatch) (*model.Property, error) {
	var updated model.Property
	if err := c.do(ctx, http.MethodPut, "/api/properties/"+id, patch, &updated); err != nil {
		return nil, err
	}
	c.items.Delete(id)
	c.Invalidate(catalog.CollectionKey)
	c.Invalidate(catalog.FeaturedKey)
	return &updated, nil
}

// Delete removes a listing and invalidates affected caches.
func (c *Client) Delete(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/properties/"+id, nil, nil); err != nil {
		return err
	}
	c.items.Delete(id)
	c.Invalidate(catalog.CollectionKey)
	c.Invalidate(catalog.FeaturedKey)
	return nil
}

// Invalidate drops the cached collection stored under key, forcing the
// next read to hit the server.
func (c *Client) Invalidate(key string) {
	c.collections.Delete(key)
}

// collection serves a cached collection read. Concurrent misses for the
// same key collapse into a single request.
func (c *Client) collection(ctx context.Context, key, path string) ([]model.Property, error) {
	if item := c.collections.Get(key); item != nil && !item.Expired() {
		return item.Value(), nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		var props []model.Property
		if err := c.do(ctx, http.MethodGet, path, nil, &props); err != nil {
			return nil, err
		}
		if props == nil {
			props = []model.Property{}
		}
		c.collections.Set(key, props, CacheTTL)
		return props, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]model.Property), nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Error string `json:"error"`
		}
		json.NewDecoder(resp.Body).Decode(&apiErr)
		if apiErr.Error == "" {
			apiErr.Error = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: apiErr.Error}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}
