package store

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/afs/url"
	"github.com/viant/scy"
)

// DefaultSecretKey is the scy key used when none is configured.
const DefaultSecretKey = "blowfish://default"

// SecretStore keeps every token in its own encrypted scy secret under baseURL.
// The key's cipher has to be registered by the caller (e.g. importing
// github.com/viant/scy/kms/blowfish).
type SecretStore struct {
	baseURL string
	key     string
	secrets *scy.Service
	fs      afs.Service
}

func (s *SecretStore) resource(key string) *scy.Resource {
	return scy.NewResource("", url.Join(s.baseURL, key+".edc"), s.key)
}

func (s *SecretStore) Get(ctx context.Context, key string) (string, bool) {
	resource := s.resource(key)
	if ok, _ := s.fs.Exists(ctx, resource.URL); !ok {
		return "", false
	}
	secret, err := s.secrets.Load(ctx, resource)
	if err != nil {
		return "", false
	}
	return secret.String(), true
}

func (s *SecretStore) Set(ctx context.Context, key, value string) error {
	secret := scy.NewSecret(value, s.resource(key))
	if err := s.secrets.Store(ctx, secret); err != nil {
		return fmt.Errorf("failed to store secret %v: %w", key, err)
	}
	return nil
}

func (s *SecretStore) Remove(ctx context.Context, key string) error {
	URL := s.resource(key).URL
	if ok, _ := s.fs.Exists(ctx, URL); !ok {
		return nil
	}
	if err := s.fs.Delete(ctx, URL); err != nil {
		return fmt.Errorf("failed to remove secret %v: %w", key, err)
	}
	return nil
}

// NewSecretStore creates an encrypted Store rooted at baseURL; an empty key
// selects DefaultSecretKey.
func NewSecretStore(baseURL, key string) *SecretStore {
	if key == "" {
		key = DefaultSecretKey
	}
	return &SecretStore{baseURL: baseURL, key: key, secrets: scy.New(), fs: afs.New()}
}
