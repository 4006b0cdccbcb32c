package session

import "context"

type idKey struct{}

// WithID attaches the session id to a request context so the global
// 401 handler can find which session to invalidate.
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, idKey{}, id)
}

// IDFrom returns the session id attached to ctx, if any.
func IDFrom(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(idKey{}).(string)
	return id, ok && id != ""
}
