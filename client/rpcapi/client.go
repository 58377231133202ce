package rpcapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/viant/jsonrpc"
	"github.com/viant/svcauth/client/auth"
)

// DefaultUserMethod is the method of the default "auth" resource.
const DefaultUserMethod = "auth.getUser"

// Sender sends a JSON-RPC request; every jsonrpc client transport satisfies it.
type Sender interface {
	Send(ctx context.Context, request *jsonrpc.Request) (*jsonrpc.Response, error)
}

// Client calls one service's JSON-RPC API.
type Client struct {
	service   string
	sender    Sender
	registry  *auth.Registry
	resources map[string]string
}

type Option func(*Client)

// WithResource maps an identify resource name to the method returning the current user
func WithResource(name, method string) Option {
	return func(c *Client) {
		c.resources[name] = method
	}
}

// ServiceName returns the service this client talks to.
func (c *Client) ServiceName() string {
	return c.service
}

// Resource returns the identifier registered under name.
func (c *Client) Resource(name string) (auth.Identifier, bool) {
	method, ok := c.resources[name]
	if !ok {
		return nil, false
	}
	return &resource{client: c, method: method}, true
}

// Call prepares and sends method, decoding the result into out when not nil.
func (c *Client) Call(ctx context.Context, method string, params map[string]interface{}, out interface{}) error {
	aCall := newCall(c, params)
	c.registry.Prepare(ctx, aCall)
	payload := aCall.payload(c.registry.HeaderKey())
	req, err := jsonrpc.NewRequest(method, payload)
	if err != nil {
		return fmt.Errorf("failed to create %v request: %w", method, err)
	}
	response, err := c.sender.Send(ctx, req)
	if err != nil {
		return err
	}
	if response == nil {
		return errors.New("empty response for " + method)
	}
	if response.Error != nil {
		return fmt.Errorf("%v failed: %v (code: %v)", method, response.Error.Message, response.Error.Code)
	}
	if out == nil || len(response.Result) == 0 {
		return nil
	}
	if err = json.Unmarshal(response.Result, out); err != nil {
		return fmt.Errorf("failed to decode %v result: %w", method, err)
	}
	return nil
}

// New creates a client for service sending through sender.
func New(service string, sender Sender, registry *auth.Registry, options ...Option) *Client {
	ret := &Client{
		service:   service,
		sender:    sender,
		registry:  registry,
		resources: map[string]string{auth.DefaultAuthAPI: DefaultUserMethod},
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

type resource struct {
	client *Client
	method string
}

func (r *resource) GetUser() auth.Request {
	return userRequest{resource: r}
}

type userRequest struct {
	resource *resource
}

func (u userRequest) Send(ctx context.Context) (*auth.Response, error) {
	var user auth.User
	if err := u.resource.client.Call(ctx, u.resource.method, nil, &user); err != nil {
		return nil, err
	}
	return &auth.Response{Result: user}, nil
}
