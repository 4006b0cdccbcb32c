package backend

import "context"

type tokenKey struct{}

// WithToken attaches the backend bearer token for outbound calls made
// with this context. The session middleware sets it once per request.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFrom returns the bearer token attached to ctx, if any.
func TokenFrom(ctx context.Context) string {
	tok, _ := ctx.Value(tokenKey{}).(string)
	return tok
}
