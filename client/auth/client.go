package auth

import (
	"context"
	"net/http"
)

type (
	// Client is an API client about to dispatch a request for a service.
	Client interface {
		// ServiceName returns the service the request targets.
		ServiceName() string
		// Identifier looks up the resource able to identify the current user.
		Identifier(resource string) (Identifier, bool)
		// Params returns the request params bag, nil when unset.
		Params() map[string]interface{}
		SetParams(params map[string]interface{})
		// Header returns the mutable request header.
		Header() http.Header
	}

	// Identifier builds "get current user" requests.
	Identifier interface {
		GetUser() Request
	}

	// Request is a built request awaiting dispatch.
	Request interface {
		Send(ctx context.Context) (*Response, error)
	}

	// Response carries an identify result.
	Response struct {
		Result User `json:"result"`
	}
)
