package store

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "github.com/viant/scy/kms/blowfish"
	"github.com/zalando/go-keyring"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "svc_access_token", Key("svc"))
	assert.Equal(t, "default_access_token", Key("default"))
}

// exerciseStore runs the get/set/remove contract shared by every backend.
func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	_, ok := s.Get(ctx, Key("billing"))
	assert.False(t, ok, "fresh store should be empty")

	require.NoError(t, s.Set(ctx, Key("billing"), "X"))
	value, ok := s.Get(ctx, Key("billing"))
	assert.True(t, ok)
	assert.Equal(t, "X", value)

	require.NoError(t, s.Set(ctx, Key("billing"), "Y"))
	value, _ = s.Get(ctx, Key("billing"))
	assert.Equal(t, "Y", value)

	require.NoError(t, s.Remove(ctx, Key("billing")))
	_, ok = s.Get(ctx, Key("billing"))
	assert.False(t, ok)

	assert.NoError(t, s.Remove(ctx, Key("missing")), "removing an absent key is not an error")
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())

	seeded := NewMemoryStore(map[string]string{Key("svc"): "P"})
	value, ok := seeded.Get(context.Background(), Key("svc"))
	assert.True(t, ok)
	assert.Equal(t, "P", value)
}

func TestFileStore(t *testing.T) {
	URL := "mem://localhost/svcauth/file_store_test/tokens.json"
	exerciseStore(t, NewFileStore(URL))
}

func TestFileStore_SurvivesRestart(t *testing.T) {
	ctx := context.Background()
	URL := "mem://localhost/svcauth/file_store_restart/tokens.json"

	first := NewFileStore(URL)
	require.NoError(t, first.Set(ctx, Key("svc"), "X"))

	second := NewFileStore(URL)
	value, ok := second.Get(ctx, Key("svc"))
	assert.True(t, ok)
	assert.Equal(t, "X", value)
}

func TestRedisStore(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	s := NewRedisStore(client, "svcauth:")
	exerciseStore(t, s)

	require.NoError(t, s.Set(context.Background(), Key("svc"), "R"))
	raw, err := mr.Get("svcauth:svc_access_token")
	require.NoError(t, err)
	assert.Equal(t, "R", raw)
}

func TestRedisStore_Unavailable(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer client.Close()
	mr.Close()

	s := NewRedisStore(client, "")
	_, ok := s.Get(context.Background(), Key("svc"))
	assert.False(t, ok, "read failure should degrade to absent")
	assert.Error(t, s.Set(context.Background(), Key("svc"), "X"))
}

func TestKeyringStore(t *testing.T) {
	keyring.MockInit()
	exerciseStore(t, NewKeyringStore("svcauth-test"))
}

func TestSecretStore(t *testing.T) {
	s := NewSecretStore("mem://localhost/svcauth/secrets", "")
	exerciseStore(t, s)
}
