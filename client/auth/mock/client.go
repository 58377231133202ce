package mock

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/viant/svcauth/client/auth"
)

// Client is an in-memory auth.Client.
type Client struct {
	Service       string
	Identifiers   map[string]auth.Identifier
	RequestParams map[string]interface{}
	RequestHeader http.Header
}

func (c *Client) ServiceName() string { return c.Service }

func (c *Client) Identifier(resource string) (auth.Identifier, bool) {
	identifier, ok := c.Identifiers[resource]
	return identifier, ok
}

func (c *Client) Params() map[string]interface{} { return c.RequestParams }

func (c *Client) SetParams(params map[string]interface{}) { c.RequestParams = params }

func (c *Client) Header() http.Header {
	if c.RequestHeader == nil {
		c.RequestHeader = http.Header{}
	}
	return c.RequestHeader
}

// NewClient creates a client for service whose "auth" resource is identifier.
func NewClient(service string, identifier auth.Identifier) *Client {
	ret := &Client{Service: service, Identifiers: map[string]auth.Identifier{}}
	if identifier != nil {
		ret.Identifiers[auth.DefaultAuthAPI] = identifier
	}
	return ret
}

// ErrUnauthorized is returned by a failing Identifier.
var ErrUnauthorized = errors.New("unauthorized")

// Identifier returns a scripted user, or Err when set.
type Identifier struct {
	mu    sync.Mutex
	User  auth.User
	Err   error
	calls int
}

func (i *Identifier) GetUser() auth.Request {
	return request(func(ctx context.Context) (*auth.Response, error) {
		i.mu.Lock()
		defer i.mu.Unlock()
		i.calls++
		if i.Err != nil {
			return nil, i.Err
		}
		return &auth.Response{Result: i.User}, nil
	})
}

// Calls returns how many identify requests were sent.
func (i *Identifier) Calls() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.calls
}

// NewIdentifier returns an identifier yielding user.
func NewIdentifier(user auth.User) *Identifier {
	return &Identifier{User: user}
}

// NewFailingIdentifier returns an identifier failing with ErrUnauthorized.
func NewFailingIdentifier() *Identifier {
	return &Identifier{Err: ErrUnauthorized}
}

type request func(ctx context.Context) (*auth.Response, error)

func (r request) Send(ctx context.Context) (*auth.Response, error) { return r(ctx) }
