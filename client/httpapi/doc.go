// Package httpapi is a JSON-over-HTTP API client for one named service whose
// requests are prepared through a service auth Registry.
//
// Each Call gets its own params bag and header; the registry injects the
// resolved token into either before the request is built. Params travel in the
// query string for GET and DELETE and as a JSON body otherwise.
//
// Example:
//
//	registry := auth.New()
//	registry.Register("billing")
//	billing := httpapi.New("billing", "https://billing.example.com", registry)
//	var invoices []Invoice
//	err := billing.Call(ctx, http.MethodGet, "/invoices", map[string]interface{}{"page": 1}, &invoices)
package httpapi
