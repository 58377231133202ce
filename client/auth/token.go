package auth

import (
	"context"
	"fmt"

	"github.com/viant/svcauth/client/auth/store"
)

// SetToken sets the service token; with remember it is also persisted under
// the key of the name the service resolves to. An empty token clears it.
func (r *Registry) SetToken(ctx context.Context, name, token string, remember bool) error {
	svc, effective := r.lookup(name)
	svc.update(func(settings *Settings) {
		settings.Token = token
	})
	if !remember {
		return nil
	}
	key := store.Key(effective)
	var err error
	if token == "" {
		err = r.store.Remove(ctx, key)
	} else {
		err = r.store.Set(ctx, key, token)
	}
	if err != nil {
		r.logger.Warn("failed to persist token", "service", effective, "err", err)
		return fmt.Errorf("failed to persist token for %v: %w", effective, err)
	}
	return nil
}

// ResolveToken returns the token to send for the service: the explicit token,
// otherwise the persisted token while no user is known, otherwise the user's
// access_token.
func (r *Registry) ResolveToken(ctx context.Context, name string) (string, bool) {
	svc, effective := r.lookup(name)
	return r.resolveToken(ctx, svc.snapshot(), effective)
}

func (r *Registry) resolveToken(ctx context.Context, settings Settings, effective string) (string, bool) {
	if settings.Token != "" {
		return settings.Token, true
	}
	if settings.User == nil {
		token, ok := r.store.Get(ctx, store.Key(effective))
		if !ok || token == "" {
			return "", false
		}
		return token, true
	}
	return settings.User.AccessToken()
}

// ForgetToken removes the persisted and the in-memory token.
func (r *Registry) ForgetToken(ctx context.Context, name string) error {
	svc, effective := r.lookup(name)
	err := r.store.Remove(ctx, store.Key(effective))
	svc.update(func(settings *Settings) {
		settings.Token = ""
	})
	if err != nil {
		r.logger.Warn("failed to remove persisted token", "service", effective, "err", err)
		return fmt.Errorf("failed to remove token for %v: %w", effective, err)
	}
	return nil
}

// Logout forgets the token and the user. The identify counter is kept unless
// the registry was created WithRearmOnLogout.
func (r *Registry) Logout(ctx context.Context, name string) error {
	err := r.ForgetToken(ctx, name)
	r.ForgetUser(name)
	if r.currentConfig().rearmOnLogout {
		svc, _ := r.lookup(name)
		svc.update(func(settings *Settings) {
			settings.TriedToIdentify = 0
		})
	}
	return err
}
