// Package auth keeps per-service authentication state for a group of named
// API clients sharing one process.
//
// A Registry maps a service name to its Settings: the identified user, an
// explicit access token, and whether requests for the service should be
// auto-identified and carry the token. Unregistered names resolve to the
// "default" service.
//
// Before dispatching a request an API client calls Registry.Prepare. Prepare
// identifies the current user at most once per registration, resolves the
// token (explicit token, then the persisted token while no user is known, then
// the user's access_token) and injects it into the request headers or params.
// Prepare never fails: every error path degrades to sending the request
// without authentication.
//
// Tokens set with remember are persisted in a store.Store under
// "<service>_access_token" so they survive process restarts.
package auth
