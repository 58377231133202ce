package svcauth

import (
	"context"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/jessevdk/go-flags"
	"github.com/viant/afs"
	"github.com/viant/svcauth/client/auth"
	"gopkg.in/yaml.v3"
)

// Options defines the process-wide auth configuration: injection mode, the
// durable token store and the services to register.
//
// Options can be loaded from a YAML/JSON document (LoadOptions), then
// overridden from SVCAUTH_* environment variables (ApplyEnv) and command line
// flags (ParseArgs).
type Options struct {
	TokenInHeaders bool              `yaml:"tokenInHeaders,omitempty" json:"tokenInHeaders,omitempty" env:"SVCAUTH_TOKEN_IN_HEADERS" long:"token-in-headers" description:"send token in request headers instead of params"`
	HeaderKey      string            `yaml:"headerKey,omitempty" json:"headerKey,omitempty" env:"SVCAUTH_HEADER_KEY" long:"header-key" description:"token header name"`
	TokenType      string            `yaml:"tokenType,omitempty" json:"tokenType,omitempty" env:"SVCAUTH_TOKEN_TYPE" long:"token-type" description:"token type used with the Authorization header"`
	RearmOnLogout  bool              `yaml:"rearmOnLogout,omitempty" json:"rearmOnLogout,omitempty" env:"SVCAUTH_REARM_ON_LOGOUT" long:"rearm-on-logout" description:"auto identify again after logout"`
	LogLevel       string            `yaml:"logLevel,omitempty" json:"logLevel,omitempty" env:"SVCAUTH_LOG_LEVEL" short:"l" long:"log-level" description:"log level" choice:"debug" choice:"info" choice:"warn" choice:"error"`
	Store          StoreOptions      `yaml:"store,omitempty" json:"store,omitempty"`
	Services       []*ServiceOptions `yaml:"services,omitempty" json:"services,omitempty" no-flag:"true"`
}

// StoreOptions selects and configures the durable token store.
type StoreOptions struct {
	Type           string `yaml:"type,omitempty" json:"type,omitempty" env:"SVCAUTH_STORE_TYPE" long:"store-type" description:"token store type" choice:"memory" choice:"file" choice:"redis" choice:"keyring" choice:"secret"`
	URL            string `yaml:"url,omitempty" json:"url,omitempty" env:"SVCAUTH_STORE_URL" long:"store-url" description:"token file URL (file) or secrets base URL (secret)"`
	EncryptionKey  string `yaml:"encryptionKey,omitempty" json:"encryptionKey,omitempty" env:"SVCAUTH_STORE_KEY" long:"store-key" description:"scy encryption key, e.g. blowfish://default"`
	RedisAddr      string `yaml:"redisAddr,omitempty" json:"redisAddr,omitempty" env:"SVCAUTH_REDIS_ADDR" long:"redis-addr" description:"redis address"`
	RedisPassword  string `yaml:"redisPassword,omitempty" json:"redisPassword,omitempty" env:"SVCAUTH_REDIS_PASSWORD" long:"redis-password" description:"redis password"`
	RedisDB        int    `yaml:"redisDB,omitempty" json:"redisDB,omitempty" env:"SVCAUTH_REDIS_DB" long:"redis-db" description:"redis database"`
	RedisPrefix    string `yaml:"redisPrefix,omitempty" json:"redisPrefix,omitempty" env:"SVCAUTH_REDIS_PREFIX" long:"redis-prefix" description:"redis key prefix"`
	KeyringService string `yaml:"keyringService,omitempty" json:"keyringService,omitempty" env:"SVCAUTH_KEYRING_SERVICE" long:"keyring-service" description:"OS keyring service name"`
}

// ServiceOptions describes a service to register.
type ServiceOptions struct {
	Name          string    `yaml:"name" json:"name"`
	Token         string    `yaml:"token,omitempty" json:"token,omitempty"`
	AutoIdentify  *bool     `yaml:"autoIdentify,omitempty" json:"autoIdentify,omitempty"`
	PrepareParams *bool     `yaml:"prepareParams,omitempty" json:"prepareParams,omitempty"`
	AuthAPI       string    `yaml:"authApi,omitempty" json:"authApi,omitempty"`
	User          auth.User `yaml:"user,omitempty" json:"user,omitempty"`
}

const (
	StoreMemory  = "memory"
	StoreFile    = "file"
	StoreRedis   = "redis"
	StoreKeyring = "keyring"
	StoreSecret  = "secret"

	defaultKeyringService = "svcauth"
	defaultRedisPrefix    = "svcauth:"
)

// Init sets defaults.
func (o *Options) Init() {
	if o.HeaderKey == "" {
		o.HeaderKey = auth.DefaultHeaderKey
	}
	if o.Store.Type == "" {
		o.Store.Type = StoreMemory
	}
	if o.Store.KeyringService == "" {
		o.Store.KeyringService = defaultKeyringService
	}
	if o.Store.RedisPrefix == "" {
		o.Store.RedisPrefix = defaultRedisPrefix
	}
}

// ApplyEnv overrides options from SVCAUTH_* environment variables.
func (o *Options) ApplyEnv() error {
	if err := env.Parse(o); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}
	return nil
}

// ParseArgs overrides options from command line flags, returning remaining args.
func (o *Options) ParseArgs(args []string) ([]string, error) {
	rest, err := flags.ParseArgs(o, args)
	if err != nil {
		return nil, err
	}
	return rest, nil
}

// Options returns the registry options of a configured service.
func (s *ServiceOptions) Options() []auth.ServiceOption {
	var result []auth.ServiceOption
	if s.Token != "" {
		result = append(result, auth.WithToken(s.Token))
	}
	if s.AutoIdentify != nil {
		result = append(result, auth.WithAutoIdentify(*s.AutoIdentify))
	}
	if s.PrepareParams != nil {
		result = append(result, auth.WithPrepareParams(*s.PrepareParams))
	}
	if s.AuthAPI != "" {
		result = append(result, auth.WithAuthAPI(s.AuthAPI))
	}
	if s.User != nil {
		result = append(result, auth.WithUser(s.User))
	}
	return result
}

// LoadOptions reads YAML (or JSON) options from an afs URL.
func LoadOptions(ctx context.Context, URL string) (*Options, error) {
	data, err := afs.New().DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load options %v: %w", URL, err)
	}
	ret := &Options{}
	if err = yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("invalid options %v: %w", URL, err)
	}
	return ret, nil
}
