// Package mock provides scriptable stand-ins for the collaborators of the
// service auth registry: an in-memory API client, a counting identifier and
// an HTTP user service.
//
// The mocks allow tests to simulate identify round-trips without a real backend.
package mock
