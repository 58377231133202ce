// Package transport implements an http.RoundTripper that prepares every
// outgoing request through a service auth Registry before delegating it to the
// wrapped transport.
//
// The request query acts as the params bag and the request header as the
// header map, so the registry's token injection works unchanged for plain
// net/http clients. Identification is performed by GET requests to configured
// user URLs, sent through the same RoundTripper.
package transport
