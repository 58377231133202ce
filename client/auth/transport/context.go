package transport

import "context"

type (
	contextServiceKey string
)

const (
	ContextServiceKey contextServiceKey = "authService"
)

// WithServiceContext returns ctx selecting the service a request is prepared for.
func WithServiceContext(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, ContextServiceKey, name)
}

func getService(ctx context.Context) string {
	if v := ctx.Value(ContextServiceKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
