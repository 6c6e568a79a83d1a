package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
)

// Credentials holds the cookies the backend issued for one browser session.
// They are replayed on every request and refreshed from each response, the
// way a credentialed browser client would behave.
type Credentials struct {
	mu      sync.Mutex
	cookies map[string]*http.Cookie
}

func NewCredentials() *Credentials {
	return &Credentials{cookies: make(map[string]*http.Cookie)}
}

func (c *Credentials) Cookies() []*http.Cookie {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*http.Cookie, 0, len(c.cookies))
	for _, ck := range c.cookies {
		out = append(out, ck)
	}
	return out
}

func (c *Credentials) Store(cookies []*http.Cookie) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, ck := range cookies {
		if ck.MaxAge < 0 {
			delete(c.cookies, ck.Name)
			continue
		}
		c.cookies[ck.Name] = ck
	}
}

// Client is the single configured gateway through which every feature issues
// requests: fixed base URL, credential attachment, JSON bodies. No retry, no
// caching, and deliberately no timeout; a hung request only hangs the view
// that issued it.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) Get(ctx context.Context, path string, creds *Credentials, out any) error {
	return c.do(ctx, http.MethodGet, path, creds, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, creds *Credentials, body, out any) error {
	return c.do(ctx, http.MethodPost, path, creds, body, out)
}

func (c *Client) Patch(ctx context.Context, path string, creds *Credentials, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, creds, body, out)
}

func (c *Client) Delete(ctx context.Context, path string, creds *Credentials, out any) error {
	return c.do(ctx, http.MethodDelete, path, creds, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, creds *Credentials, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if creds != nil {
		for _, ck := range creds.Cookies() {
			req.AddCookie(ck)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if creds != nil {
		creds.Store(resp.Cookies())
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return newAPIError(resp.StatusCode, data)
	}

	if out != nil && len(data) > 0 {
		return json.Unmarshal(data, out)
	}
	return nil
}
