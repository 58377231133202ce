package auth

import (
	"github.com/charmbracelet/log"
	"github.com/viant/svcauth/client/auth/store"
)

// Option configures a Registry.
type Option func(*Registry)

// WithStore sets durable token store
func WithStore(store store.Store) Option {
	return func(r *Registry) {
		r.store = store
	}
}

// WithLogger sets logger
func WithLogger(logger *log.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// WithTokenInHeaders selects header injection instead of params injection
func WithTokenInHeaders(enabled bool) Option {
	return func(r *Registry) {
		r.config.tokenInHeaders = enabled
	}
}

// WithHeaderKey sets the header used in header mode
func WithHeaderKey(key string) Option {
	return func(r *Registry) {
		r.config.headerKey = key
	}
}

// WithTokenType sets the token type used with the Authorization header
func WithTokenType(tokenType string) Option {
	return func(r *Registry) {
		r.config.tokenType = tokenType
	}
}

// WithRearmOnLogout resets the identify counter on logout so the next Prepare auto-identifies again
func WithRearmOnLogout(enabled bool) Option {
	return func(r *Registry) {
		r.config.rearmOnLogout = enabled
	}
}

// ServiceOption configures a registered service.
type ServiceOption func(*Settings)

// WithToken sets an explicit token
func WithToken(token string) ServiceOption {
	return func(s *Settings) {
		s.Token = token
	}
}

// WithAutoIdentify toggles auto identification
func WithAutoIdentify(enabled bool) ServiceOption {
	return func(s *Settings) {
		s.AutoIdentify = enabled
	}
}

// WithPrepareParams toggles token injection
func WithPrepareParams(enabled bool) ServiceOption {
	return func(s *Settings) {
		s.PrepareParams = enabled
	}
}

// WithUser sets a known user
func WithUser(user User) ServiceOption {
	return func(s *Settings) {
		s.User = user
	}
}

// WithAuthAPI sets the client resource used to identify the user
func WithAuthAPI(name string) ServiceOption {
	return func(s *Settings) {
		if name != "" {
			s.AuthAPI = name
		}
	}
}
