package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/viant/svcauth/client/auth"
)

const (
	// DefaultUserPath is the path of the default "auth" resource.
	DefaultUserPath = "/auth/user"
	// RequestIDHeader carries a unique id per call.
	RequestIDHeader = "X-Request-Id"
)

// Client calls one service's HTTP API.
type Client struct {
	service    string
	baseURL    string
	registry   *auth.Registry
	httpClient *http.Client
	header     http.Header
	resources  map[string]string
}

// StatusError is returned for non-2xx responses.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

// ServiceName returns the service this client talks to.
func (c *Client) ServiceName() string {
	return c.service
}

// Resource returns the identifier registered under name.
func (c *Client) Resource(name string) (auth.Identifier, bool) {
	path, ok := c.resources[name]
	if !ok {
		return nil, false
	}
	return &resource{client: c, path: path}, true
}

// Call prepares and sends a request, decoding a JSON response into out when not nil.
func (c *Client) Call(ctx context.Context, method, path string, params map[string]interface{}, out interface{}) error {
	aCall := newCall(c, params)
	c.registry.Prepare(ctx, aCall)
	req, err := c.newRequest(ctx, method, path, aCall)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read %v %v response: %w", method, path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(data))}
	}
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err = json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode %v %v response: %w", method, path, err)
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, aCall *call) (*http.Request, error) {
	URL, err := url.Parse(strings.TrimRight(c.baseURL, "/") + "/" + strings.TrimLeft(path, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid URL for %v: %w", path, err)
	}
	var body io.Reader
	switch method {
	case http.MethodGet, http.MethodDelete, http.MethodHead:
		if len(aCall.params) > 0 {
			query := URL.Query()
			for k, v := range aCall.params {
				query.Set(k, fmt.Sprint(v))
			}
			URL.RawQuery = query.Encode()
		}
	default:
		if aCall.params != nil {
			data, err := json.Marshal(aCall.params)
			if err != nil {
				return nil, fmt.Errorf("failed to encode params: %w", err)
			}
			body = bytes.NewReader(data)
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, URL.String(), body)
	if err != nil {
		return nil, err
	}
	for k, values := range aCall.header {
		req.Header[k] = append([]string(nil), values...)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, uuid.NewString())
	return req, nil
}

// New creates a client for service rooted at baseURL.
func New(service, baseURL string, registry *auth.Registry, options ...Option) *Client {
	ret := &Client{
		service:    service,
		baseURL:    baseURL,
		registry:   registry,
		httpClient: http.DefaultClient,
		header:     http.Header{},
		resources:  map[string]string{auth.DefaultAuthAPI: DefaultUserPath},
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}
