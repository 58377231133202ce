// Package rpcapi is a JSON-RPC API client for one named service, sending
// through any github.com/viant/jsonrpc transport and preparing every call
// through a service auth Registry.
//
// In params mode the token travels as the "token" param. JSON-RPC has no
// request headers, so in header mode the token is carried in
// params._meta.authorization.token.
package rpcapi
