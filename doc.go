// Package svcauth wires per-service authentication state for a group of named
// API clients sharing one process.
//
// The package glues the registry defined in client/auth with a configurable
// durable token store and exposes a single constructor:
//
//	registry, err := svcauth.New(ctx, &svcauth.Options{
//		Store:    svcauth.StoreOptions{Type: svcauth.StoreFile, URL: "~/.svcauth/tokens.json"},
//		Services: []*svcauth.ServiceOptions{{Name: "billing"}},
//	})
//
// Options can be populated from a YAML file, SVCAUTH_* environment variables
// and command line flags. API clients (client/httpapi, client/rpcapi or any
// http.Client using client/auth/transport) then call registry.Prepare before
// every request.
package svcauth
