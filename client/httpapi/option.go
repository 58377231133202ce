package httpapi

import "net/http"

type Option func(*Client)

// WithHTTPClient sets the underlying http client
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithHeader adds a header sent with every call
func WithHeader(key, value string) Option {
	return func(c *Client) {
		c.header.Add(key, value)
	}
}

// WithResource maps an identify resource name to the path returning the current user
func WithResource(name, path string) Option {
	return func(c *Client) {
		c.resources[name] = path
	}
}
