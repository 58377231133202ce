package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/viant/svcauth/client/auth"
)

type RoundTripper struct {
	registry    *auth.Registry
	service     string
	identifiers map[string]auth.Identifier
	transport   http.RoundTripper
}

func New(registry *auth.Registry, options ...Option) (*RoundTripper, error) {
	if registry == nil {
		return nil, errors.New("registry was nil")
	}
	ret := &RoundTripper{
		registry:    registry,
		service:     auth.DefaultService,
		identifiers: map[string]auth.Identifier{},
		transport:   http.DefaultTransport,
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret, nil
}

func (r *RoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	prepared := clone(req)
	service := getService(req.Context())
	if service == "" {
		service = r.service
	}
	call := newRequest(service, prepared, r.identifiers)
	r.registry.Prepare(req.Context(), call)
	call.apply()
	return r.transport.RoundTrip(prepared)
}

// userEndpoint identifies the user with a GET request sent through the RoundTripper.
type userEndpoint struct {
	roundTripper *RoundTripper
	URL          string
}

func (u *userEndpoint) GetUser() auth.Request {
	return userRequest{endpoint: u}
}

type userRequest struct {
	endpoint *userEndpoint
}

func (u userRequest) Send(ctx context.Context) (*auth.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.endpoint.URL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := u.endpoint.roundTripper.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("identify %v: unexpected status %v", u.endpoint.URL, resp.StatusCode)
	}
	response := &auth.Response{}
	if err = json.NewDecoder(resp.Body).Decode(response); err != nil {
		return nil, fmt.Errorf("identify %v: %w", u.endpoint.URL, err)
	}
	return response, nil
}
