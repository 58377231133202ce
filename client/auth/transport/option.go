package transport

import (
	"net/http"

	"github.com/viant/svcauth/client/auth"
)

type Option func(*RoundTripper)

// WithService sets the service requests are prepared for
func WithService(name string) Option {
	return func(t *RoundTripper) {
		t.service = name
	}
}

// WithTransport sets the wrapped transport
func WithTransport(transport http.RoundTripper) Option {
	return func(t *RoundTripper) {
		t.transport = transport
	}
}

// WithIdentifier registers identifier under resource
func WithIdentifier(resource string, identifier auth.Identifier) Option {
	return func(t *RoundTripper) {
		t.identifiers[resource] = identifier
	}
}

// WithUserURL registers a resource identifying the user with GET URL
func WithUserURL(resource, URL string) Option {
	return func(t *RoundTripper) {
		t.identifiers[resource] = &userEndpoint{roundTripper: t, URL: URL}
	}
}
