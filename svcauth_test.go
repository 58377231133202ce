package svcauth_test

import (
	"context"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/svcauth"
	"github.com/viant/svcauth/client/auth"
	"github.com/viant/svcauth/client/auth/store"
	"github.com/zalando/go-keyring"
)

const optionsYAML = `
tokenInHeaders: true
headerKey: X-Token
logLevel: info
store:
  type: file
  url: mem://localhost/svcauth/tokens.json
services:
  - name: billing
    token: T1
    autoIdentify: false
  - name: reports
    authApi: identity
    prepareParams: false
    user:
      name: ann
`

func TestLoadOptions(t *testing.T) {
	ctx := context.Background()
	URL := "mem://localhost/svcauth/options.yaml"
	require.NoError(t, afs.New().Upload(ctx, URL, 0o644, strings.NewReader(optionsYAML)))

	options, err := svcauth.LoadOptions(ctx, URL)
	require.NoError(t, err)
	assert.True(t, options.TokenInHeaders)
	assert.Equal(t, "X-Token", options.HeaderKey)
	assert.Equal(t, svcauth.StoreFile, options.Store.Type)
	require.Len(t, options.Services, 2)
	require.NotNil(t, options.Services[0].AutoIdentify)
	assert.False(t, *options.Services[0].AutoIdentify)
	assert.Nil(t, options.Services[0].PrepareParams)
	assert.Equal(t, "identity", options.Services[1].AuthAPI)
	assert.Equal(t, "ann", options.Services[1].User["name"])

	registry, err := svcauth.New(ctx, options)
	require.NoError(t, err)
	assert.Equal(t, []string{"billing", "default", "reports"}, registry.Services())

	billing, _ := registry.Resolve("billing")
	assert.Equal(t, "T1", billing.Token)
	assert.False(t, billing.AutoIdentify)
	assert.True(t, billing.PrepareParams)

	reports, _ := registry.Resolve("reports")
	assert.Equal(t, "identity", reports.AuthAPI)
	assert.False(t, reports.PrepareParams)
	assert.Equal(t, auth.User{"name": "ann"}, reports.User)
	assert.Equal(t, "X-Token", registry.HeaderKey())

	require.NoError(t, registry.SetToken(ctx, "unknown", "R1", true))
	restarted, err := svcauth.New(ctx, options)
	require.NoError(t, err)
	token, ok := restarted.ResolveToken(ctx, auth.DefaultService)
	assert.True(t, ok)
	assert.Equal(t, "R1", token)
}

func TestLoadOptions_Missing(t *testing.T) {
	_, err := svcauth.LoadOptions(context.Background(), "mem://localhost/svcauth/missing.yaml")
	assert.Error(t, err)
}

func TestOptions_ApplyEnv(t *testing.T) {
	t.Setenv("SVCAUTH_TOKEN_IN_HEADERS", "true")
	t.Setenv("SVCAUTH_HEADER_KEY", "X-Env-Token")
	t.Setenv("SVCAUTH_STORE_TYPE", "redis")
	t.Setenv("SVCAUTH_REDIS_DB", "3")

	options := &svcauth.Options{HeaderKey: "X-Token"}
	require.NoError(t, options.ApplyEnv())
	assert.True(t, options.TokenInHeaders)
	assert.Equal(t, "X-Env-Token", options.HeaderKey)
	assert.Equal(t, svcauth.StoreRedis, options.Store.Type)
	assert.Equal(t, 3, options.Store.RedisDB)
}

func TestOptions_ParseArgs(t *testing.T) {
	options := &svcauth.Options{}
	rest, err := options.ParseArgs([]string{"--token-in-headers", "--header-key", "Authorization", "--token-type", "Bearer", "--store-type", "keyring", "-l", "debug", "run"})
	require.NoError(t, err)
	assert.Equal(t, []string{"run"}, rest)
	assert.True(t, options.TokenInHeaders)
	assert.Equal(t, "Authorization", options.HeaderKey)
	assert.Equal(t, "Bearer", options.TokenType)
	assert.Equal(t, svcauth.StoreKeyring, options.Store.Type)
	assert.Equal(t, "debug", options.LogLevel)

	_, err = (&svcauth.Options{}).ParseArgs([]string{"--store-type", "floppy"})
	assert.Error(t, err)
}

func TestNew_Defaults(t *testing.T) {
	registry, err := svcauth.New(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{auth.DefaultService}, registry.Services())
	assert.Equal(t, auth.DefaultHeaderKey, registry.HeaderKey())
}

func TestNew_InvalidOptions(t *testing.T) {
	ctx := context.Background()
	_, err := svcauth.New(ctx, &svcauth.Options{Services: []*svcauth.ServiceOptions{{Token: "T"}}})
	assert.Error(t, err)

	_, err = svcauth.New(ctx, &svcauth.Options{LogLevel: "loud"})
	assert.Error(t, err)
}

func TestNewStore(t *testing.T) {
	ctx := context.Background()
	keyring.MockInit()
	server := miniredis.RunT(t)

	var testCases = []struct {
		description string
		options     svcauth.StoreOptions
		expectError bool
	}{
		{description: "memory", options: svcauth.StoreOptions{Type: svcauth.StoreMemory}},
		{description: "default memory", options: svcauth.StoreOptions{}},
		{description: "file", options: svcauth.StoreOptions{Type: svcauth.StoreFile, URL: "mem://localhost/svcauth/store/tokens.json"}},
		{description: "file without url", options: svcauth.StoreOptions{Type: svcauth.StoreFile}, expectError: true},
		{description: "secret", options: svcauth.StoreOptions{Type: svcauth.StoreSecret, URL: "mem://localhost/svcauth/secrets"}},
		{description: "secret without url", options: svcauth.StoreOptions{Type: svcauth.StoreSecret}, expectError: true},
		{description: "redis", options: svcauth.StoreOptions{Type: svcauth.StoreRedis, RedisAddr: server.Addr(), RedisPrefix: "test:"}},
		{description: "redis without address", options: svcauth.StoreOptions{Type: svcauth.StoreRedis}, expectError: true},
		{description: "keyring", options: svcauth.StoreOptions{Type: svcauth.StoreKeyring, KeyringService: "svcauth-test"}},
		{description: "unsupported", options: svcauth.StoreOptions{Type: "floppy"}, expectError: true},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			tokens, err := svcauth.NewStore(ctx, &testCase.options)
			if testCase.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			key := store.Key("billing")
			require.NoError(t, tokens.Set(ctx, key, "T1"))
			value, ok := tokens.Get(ctx, key)
			assert.True(t, ok)
			assert.Equal(t, "T1", value)
			require.NoError(t, tokens.Remove(ctx, key))
			_, ok = tokens.Get(ctx, key)
			assert.False(t, ok)
		})
	}
	assert.False(t, server.Exists("test:"+store.Key("billing")))
}
