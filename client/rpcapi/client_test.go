package rpcapi_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/jsonrpc"
	"github.com/viant/svcauth/client/auth"
	"github.com/viant/svcauth/client/rpcapi"
)

// fakeSender answers user methods with User and echoes params for every other method.
type fakeSender struct {
	mu       sync.Mutex
	User     auth.User
	FailUser bool
	requests []*jsonrpc.Request
}

func (f *fakeSender) Send(ctx context.Context, request *jsonrpc.Request) (*jsonrpc.Response, error) {
	f.mu.Lock()
	f.requests = append(f.requests, request)
	f.mu.Unlock()
	if request.Method == rpcapi.DefaultUserMethod {
		if f.FailUser {
			return &jsonrpc.Response{Error: jsonrpc.NewInternalError("unauthorized", nil)}, nil
		}
		data, _ := json.Marshal(f.User)
		return &jsonrpc.Response{Result: data}, nil
	}
	return &jsonrpc.Response{Result: []byte(request.Params)}, nil
}

func (f *fakeSender) count(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, request := range f.requests {
		if request.Method == method {
			count++
		}
	}
	return count
}

func TestClient_ParamsMode(t *testing.T) {
	ctx := context.Background()
	sender := &fakeSender{User: auth.User{"access_token": "abc", "id": 7}}
	registry := auth.New()
	registry.Register("billing")
	client := rpcapi.New("billing", sender, registry)

	var echoed map[string]interface{}
	require.NoError(t, client.Call(ctx, "invoices.list", map[string]interface{}{"page": 1}, &echoed))
	assert.Equal(t, map[string]interface{}{"page": float64(1), "token": "abc"}, echoed)

	require.NoError(t, client.Call(ctx, "invoices.list", map[string]interface{}{"token": "mine"}, &echoed))
	assert.Equal(t, "mine", echoed["token"])

	assert.Equal(t, 1, sender.count(rpcapi.DefaultUserMethod))
	assert.Equal(t, auth.User{"access_token": "abc", "id": float64(7)}, registry.User("billing"))
}

func TestClient_HeaderModeUsesMeta(t *testing.T) {
	ctx := context.Background()
	sender := &fakeSender{}
	registry := auth.New(auth.WithTokenInHeaders(true), auth.WithHeaderKey(auth.AuthorizationHeader))
	registry.Register("svc", auth.WithToken("T"), auth.WithAutoIdentify(false))
	client := rpcapi.New("svc", sender, registry)

	params := map[string]interface{}{"_meta": map[string]interface{}{"trace": "t1"}}
	var echoed map[string]interface{}
	require.NoError(t, client.Call(ctx, "tools.call", params, &echoed))

	meta, ok := echoed["_meta"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "t1", meta["trace"])
	assert.Equal(t, map[string]interface{}{"token": "T"}, meta["authorization"])
	_, hasToken := echoed["token"]
	assert.False(t, hasToken)
	assert.Equal(t, map[string]interface{}{"trace": "t1"}, params["_meta"], "caller params must stay untouched")
}

func TestClient_FailedIdentify(t *testing.T) {
	ctx := context.Background()
	sender := &fakeSender{FailUser: true}
	registry := auth.New()
	registry.Register("svc")
	client := rpcapi.New("svc", sender, registry)

	var echoed map[string]interface{}
	require.NoError(t, client.Call(ctx, "ping", map[string]interface{}{}, &echoed))
	assert.Empty(t, echoed)
	assert.Nil(t, registry.User("svc"))
	assert.Equal(t, 1, registry.IdentifyTries("svc"))

	identifier, ok := client.Resource(auth.DefaultAuthAPI)
	require.True(t, ok)
	_, err := identifier.GetUser().Send(ctx)
	assert.Error(t, err)
	_, ok = client.Resource("missing")
	assert.False(t, ok)
}
