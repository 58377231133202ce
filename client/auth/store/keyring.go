package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

// KeyringStore keeps tokens in the OS keyring, one entry per key under service.
type KeyringStore struct {
	service string
}

func (k *KeyringStore) Get(_ context.Context, key string) (string, bool) {
	value, err := keyring.Get(k.service, key)
	if err != nil {
		return "", false
	}
	return value, true
}

func (k *KeyringStore) Set(_ context.Context, key, value string) error {
	if err := keyring.Set(k.service, key, value); err != nil {
		return fmt.Errorf("failed to store token %v in keyring: %w", key, err)
	}
	return nil
}

func (k *KeyringStore) Remove(_ context.Context, key string) error {
	err := keyring.Delete(k.service, key)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("failed to remove token %v from keyring: %w", key, err)
	}
	return nil
}

// NewKeyringStore creates a Store using the OS keyring service name.
func NewKeyringStore(service string) *KeyringStore {
	return &KeyringStore{service: service}
}
