// Package store defines the durable token stores used by the service auth
// registry in the parent `auth` package.
//
// A Store is a plain string key-value store keyed by Key(service). The package
// ships an in-memory implementation for tests and short-lived processes, and
// persistent backends built on viant/afs (JSON snapshot file), viant/scy
// (encrypted secret per key), Redis and the OS keyring.
package store
