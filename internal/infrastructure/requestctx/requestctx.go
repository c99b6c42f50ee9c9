// Package requestctx carries the request ID through a context.Context.
package requestctx

import "context"

// MaxIDLength is the longest request ID that is propagated and stored
const MaxIDLength = 64

type key struct{}

// WithID returns a copy of ctx carrying the request ID
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, key{}, id)
}

// ID returns the request ID stored in ctx, or "" when there is none
func ID(ctx context.Context) string {
	id, _ := ctx.Value(key{}).(string)
	return id
}
