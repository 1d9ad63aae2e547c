// Package authctx holds the request-context identity helpers. They live in
// their own package so that user-facing handlers can read the authenticated
// identity without importing the auth package, which itself depends on the
// user package.
package authctx

import "context"

type contextKey int

const (
	userIDKey contextKey = iota
	roleKey
)

// UserID extracts the authenticated user's id from the request context.
func UserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

// RoleFromContext extracts the authenticated user's role.
func RoleFromContext(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(roleKey).(string)
	return role, ok
}

// WithIdentity returns a context carrying the given identity, as the
// middleware would after verifying a token.
func WithIdentity(ctx context.Context, userID, role string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, roleKey, role)
}
