package httpapi

import (
	"context"
	"net/http"

	"github.com/viant/svcauth/client/auth"
)

// call is the in-flight request state handed to the registry.
type call struct {
	client *Client
	params map[string]interface{}
	header http.Header
}

func (c *call) ServiceName() string { return c.client.service }

func (c *call) Identifier(resource string) (auth.Identifier, bool) {
	return c.client.Resource(resource)
}

func (c *call) Params() map[string]interface{} { return c.params }

func (c *call) SetParams(params map[string]interface{}) { c.params = params }

func (c *call) Header() http.Header { return c.header }

func newCall(client *Client, params map[string]interface{}) *call {
	ret := &call{client: client, header: client.header.Clone()}
	if params != nil {
		ret.params = make(map[string]interface{}, len(params))
		for k, v := range params {
			ret.params[k] = v
		}
	}
	return ret
}

// resource identifies the current user with GET path.
type resource struct {
	client *Client
	path   string
}

func (r *resource) GetUser() auth.Request {
	return userRequest{resource: r}
}

type userRequest struct {
	resource *resource
}

func (u userRequest) Send(ctx context.Context) (*auth.Response, error) {
	response := &auth.Response{}
	if err := u.resource.client.Call(ctx, http.MethodGet, u.resource.path, nil, response); err != nil {
		return nil, err
	}
	return response, nil
}
