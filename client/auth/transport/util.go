package transport

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/viant/svcauth/client/auth"
)

func clone(r *http.Request) *http.Request {
	cloned := r.Clone(r.Context())
	// deep-copy body so the caller's request stays readable
	if r.Body != nil && r.Body != http.NoBody {
		buf, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewBuffer(buf))
		cloned.Body = io.NopCloser(bytes.NewBuffer(buf))
	}
	return cloned
}

// request adapts an outgoing *http.Request to auth.Client.
type request struct {
	service     string
	req         *http.Request
	identifiers map[string]auth.Identifier
	params      map[string]interface{}
}

func (r *request) ServiceName() string { return r.service }

func (r *request) Identifier(resource string) (auth.Identifier, bool) {
	identifier, ok := r.identifiers[resource]
	return identifier, ok
}

func (r *request) Params() map[string]interface{} { return r.params }

func (r *request) SetParams(params map[string]interface{}) { r.params = params }

func (r *request) Header() http.Header { return r.req.Header }

// apply writes params that differ from the query back into the request URL.
func (r *request) apply() {
	if len(r.params) == 0 {
		return
	}
	query := r.req.URL.Query()
	changed := false
	for k, v := range r.params {
		value := fmt.Sprint(v)
		if existing, ok := query[k]; ok && len(existing) > 0 && existing[0] == value {
			continue
		}
		query.Set(k, value)
		changed = true
	}
	if changed {
		r.req.URL.RawQuery = query.Encode()
	}
}

func newRequest(service string, req *http.Request, identifiers map[string]auth.Identifier) *request {
	ret := &request{service: service, req: req, identifiers: identifiers}
	if query := req.URL.Query(); len(query) > 0 {
		ret.params = make(map[string]interface{}, len(query))
		for k, values := range query {
			if len(values) > 0 {
				ret.params[k] = values[0]
			}
		}
	}
	return ret
}
