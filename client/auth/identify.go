package auth

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrIdentifierNotFound is returned when the client has no resource for the service AuthAPI.
	ErrIdentifierNotFound = errors.New("identifier not found")
	// ErrIdentifyFailed is returned when the identify request fails.
	ErrIdentifyFailed = errors.New("identify failed")
)

// Identify requests the current user through the client's AuthAPI resource and
// stores it under the name the client's service resolves to. The identify
// counter is incremented whether or not the call succeeds.
func (r *Registry) Identify(ctx context.Context, client Client) (User, error) {
	svc, effective := r.lookup(client.ServiceName())
	var authAPI string
	svc.update(func(settings *Settings) {
		settings.TriedToIdentify++
		authAPI = settings.AuthAPI
	})
	return r.identify(ctx, client, effective, authAPI)
}

// claimAutoIdentify takes the one-shot auto identify slot of svc.
func (s *service) claimAutoIdentify() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.settings.AutoIdentify || s.settings.TriedToIdentify != 0 {
		return "", false
	}
	s.settings.TriedToIdentify++
	return s.settings.AuthAPI, true
}

func (r *Registry) identify(ctx context.Context, client Client, effective, authAPI string) (User, error) {
	identifier, ok := client.Identifier(authAPI)
	if !ok || identifier == nil {
		return nil, fmt.Errorf("%w: %v (service %v)", ErrIdentifierNotFound, authAPI, effective)
	}
	r.logger.Debug("identifying user", "service", effective, "authApi", authAPI)
	response, err := identifier.GetUser().Send(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v: %w", ErrIdentifyFailed, effective, err)
	}
	if response == nil {
		return nil, fmt.Errorf("%w: %v: empty response", ErrIdentifyFailed, effective)
	}
	r.SetUser(effective, response.Result)
	return response.Result, nil
}
