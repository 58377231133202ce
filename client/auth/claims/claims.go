// Package claims identifies the current user offline from the claims of the
// service's JWT access token, for backends that expose no user endpoint.
package claims

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/viant/svcauth/client/auth"
)

// ErrNoToken is returned when the service has no token to decode.
var ErrNoToken = errors.New("no token")

// Identifier decodes the user from the token the registry resolves for a service.
// Claims are not verified; the backend remains the authority on the token.
type Identifier struct {
	registry *auth.Registry
	service  string
	parser   *jwt.Parser
}

func (i *Identifier) GetUser() auth.Request {
	return request{identifier: i}
}

type request struct {
	identifier *Identifier
}

func (r request) Send(ctx context.Context) (*auth.Response, error) {
	token, ok := r.identifier.registry.ResolveToken(ctx, r.identifier.service)
	if !ok {
		return nil, fmt.Errorf("%w for %v", ErrNoToken, r.identifier.service)
	}
	user, err := r.identifier.Decode(token)
	if err != nil {
		return nil, err
	}
	return &auth.Response{Result: user}, nil
}

// Decode returns the token claims as a user carrying the token as access_token.
func (i *Identifier) Decode(token string) (auth.User, error) {
	claims := jwt.MapClaims{}
	if _, _, err := i.parser.ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("failed to parse token claims: %w", err)
	}
	user := make(auth.User, len(claims)+1)
	for k, v := range claims {
		user[k] = v
	}
	user[auth.UserAccessToken] = token
	return user, nil
}

// New creates an Identifier for service.
func New(registry *auth.Registry, service string) *Identifier {
	return &Identifier{registry: registry, service: service, parser: jwt.NewParser()}
}
