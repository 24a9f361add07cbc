// Package auth verifies caller identity tokens. The mobile app signs in with
// Firebase Auth; self-hosted deployments use HS256 JWTs instead.
package auth

import (
	"context"
	"errors"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Identity is the verified caller.
type Identity struct {
	UID   string
	Email string
	// Role is only populated when the token itself carries one; services
	// that authorize by role look it up in the users collection.
	Role string
}

type Verifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}

type contextKey struct{}

func ContextWithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(contextKey{}).(*Identity)
	return id, ok && id != nil
}
