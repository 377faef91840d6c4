package user

import (
	"context"

	"github.com/secmon-lab/rollcall/pkg/domain/model/auth"
)

type ctxIdentityKey struct{}

// With stores the verified identity of the caller.
func With(ctx context.Context, identity *auth.Identity) context.Context {
	return context.WithValue(ctx, ctxIdentityKey{}, identity)
}

// From returns the caller identity, or nil for unauthenticated contexts.
func From(ctx context.Context) *auth.Identity {
	if identity, ok := ctx.Value(ctxIdentityKey{}).(*auth.Identity); ok {
		return identity
	}
	return nil
}

// IDFrom returns the caller's ID or an empty string.
func IDFrom(ctx context.Context) string {
	if identity := From(ctx); identity != nil {
		return identity.ID
	}
	return ""
}
