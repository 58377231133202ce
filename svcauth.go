package svcauth

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	_ "github.com/viant/scy/kms/blowfish"
	"github.com/viant/svcauth/client/auth"
	"github.com/viant/svcauth/client/auth/store"
	"github.com/viant/svcauth/internal/logging"
)

// New creates a Registry configured by options, registering every configured service.
func New(ctx context.Context, options *Options) (*auth.Registry, error) {
	if options == nil {
		options = &Options{}
	}
	options.Init()
	if err := logging.SetLevel(options.LogLevel); err != nil {
		return nil, err
	}
	tokens, err := NewStore(ctx, &options.Store)
	if err != nil {
		return nil, err
	}
	registry := auth.New(
		auth.WithStore(tokens),
		auth.WithLogger(logging.L),
		auth.WithTokenInHeaders(options.TokenInHeaders),
		auth.WithHeaderKey(options.HeaderKey),
		auth.WithTokenType(options.TokenType),
		auth.WithRearmOnLogout(options.RearmOnLogout),
	)
	for _, service := range options.Services {
		if service == nil {
			continue
		}
		if service.Name == "" {
			return nil, errors.New("service name was empty")
		}
		registry.Register(service.Name, service.Options()...)
	}
	logging.Debugf("created registry with %v store, services: %v", options.Store.Type, registry.Services())
	return registry, nil
}

// NewStore creates the durable token store selected by options.
func NewStore(ctx context.Context, options *StoreOptions) (store.Store, error) {
	switch options.Type {
	case "", StoreMemory:
		return store.NewMemoryStore(), nil
	case StoreFile:
		if options.URL == "" {
			return nil, fmt.Errorf("url is required for %v store", options.Type)
		}
		return store.NewFileStore(options.URL), nil
	case StoreSecret:
		if options.URL == "" {
			return nil, fmt.Errorf("url is required for %v store", options.Type)
		}
		return store.NewSecretStore(options.URL, options.EncryptionKey), nil
	case StoreRedis:
		if options.RedisAddr == "" {
			return nil, fmt.Errorf("redis address is required for %v store", options.Type)
		}
		client := redis.NewClient(&redis.Options{
			Addr:     options.RedisAddr,
			Password: options.RedisPassword,
			DB:       options.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("failed to connect to redis %v: %w", options.RedisAddr, err)
		}
		return store.NewRedisStore(client, options.RedisPrefix), nil
	case StoreKeyring:
		return store.NewKeyringStore(options.KeyringService), nil
	default:
		return nil, fmt.Errorf("unsupported store type: %v", options.Type)
	}
}
