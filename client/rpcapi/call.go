package rpcapi

import (
	"net/http"
	"strings"

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

// payload returns the params to send, moving a header token into _meta.authorization.token.
func (c *call) payload(headerKey string) map[string]interface{} {
	token := c.header.Get(headerKey)
	if token == "" {
		return c.params
	}
	if strings.EqualFold(headerKey, auth.AuthorizationHeader) {
		if _, value, ok := strings.Cut(token, " "); ok {
			token = value
		}
	}
	params := c.params
	if params == nil {
		params = map[string]interface{}{}
	}
	paramMeta := copyMap(params["_meta"])
	params["_meta"] = paramMeta
	authorizationMetadata := copyMap(paramMeta["authorization"])
	paramMeta["authorization"] = authorizationMetadata
	authorizationMetadata["token"] = token
	return params
}

// copyMap returns a copy of value when it is a map, an empty map otherwise.
func copyMap(value interface{}) map[string]interface{} {
	source, _ := value.(map[string]interface{})
	ret := make(map[string]interface{}, len(source)+1)
	for k, v := range source {
		ret[k] = v
	}
	return ret
}

func newCall(client *Client, params map[string]interface{}) *call {
	ret := &call{client: client, header: http.Header{}}
	if params != nil {
		ret.params = make(map[string]interface{}, len(params))
		for k, v := range params {
			ret.params[k] = v
		}
	}
	return ret
}
