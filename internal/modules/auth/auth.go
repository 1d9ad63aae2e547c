package auth

import (
	"context"

	"github.com/dgrijalva/jwt-go"

	"github.com/tinytots/storefront/internal/modules/auth/authctx"
)

// Service defines the interface for authentication-related business logic.
type Service interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// Claims carries the user identity and role inside the session token.
type Claims struct {
	Role string `json:"role"`
	jwt.StandardClaims
}

// UserID extracts the authenticated user's id from the request context.
func UserID(ctx context.Context) (string, bool) {
	return authctx.UserID(ctx)
}

// RoleFromContext extracts the authenticated user's role.
func RoleFromContext(ctx context.Context) (string, bool) {
	return authctx.RoleFromContext(ctx)
}

// WithIdentity returns a context carrying the given identity, as the
// middleware would after verifying a token.
func WithIdentity(ctx context.Context, userID, role string) context.Context {
	return authctx.WithIdentity(ctx, userID, role)
}
