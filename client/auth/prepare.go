package auth

import (
	"context"
	"strings"

	"golang.org/x/oauth2"
)

// Prepare readies the client's in-flight request: it auto-identifies the user
// once per registration, then injects the resolved token into the request
// header or params. Failures leave the request unauthenticated.
func (r *Registry) Prepare(ctx context.Context, client Client) {
	svc, effective := r.lookup(client.ServiceName())
	if authAPI, ok := svc.claimAutoIdentify(); ok {
		if _, err := r.identify(ctx, client, effective, authAPI); err != nil {
			r.logger.Warn("auto identify failed", "service", effective, "err", err)
		}
	}
	settings := svc.snapshot()
	if !settings.PrepareParams {
		return
	}
	token, ok := r.resolveToken(ctx, settings, effective)
	if !ok {
		r.logger.Debug("no token resolved", "service", effective)
		return
	}
	r.inject(client, token)
}

func (r *Registry) inject(client Client, token string) {
	cfg := r.currentConfig()
	if cfg.tokenInHeaders {
		header := client.Header()
		if header == nil {
			return
		}
		header.Set(cfg.headerKey, headerValue(cfg, token))
		return
	}
	client.SetParams(injectParam(client.Params(), token))
}

func headerValue(cfg config, token string) string {
	if !strings.EqualFold(cfg.headerKey, AuthorizationHeader) {
		return token
	}
	tok := &oauth2.Token{AccessToken: token, TokenType: cfg.tokenType}
	return tok.Type() + " " + tok.AccessToken
}

// injectParam sets the token param unless the caller already supplied a string one.
func injectParam(params map[string]interface{}, token string) map[string]interface{} {
	if params == nil {
		params = map[string]interface{}{}
	}
	if _, ok := params[ParamToken].(string); !ok {
		params[ParamToken] = token
	}
	return params
}
