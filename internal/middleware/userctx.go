package middleware

import (
	"context"

	"github.com/baharkarakas/credit-ledger/internal/auth"
)

type userKey struct{}

type UserCtx struct {
	UserID string
	Claims *auth.Claims // nil for dev tokens
}

func WithUser(ctx context.Context, u UserCtx) context.Context {
	return context.WithValue(ctx, userKey{}, u)
}

func FromCtx(ctx context.Context) (UserCtx, bool) {
	u, ok := ctx.Value(userKey{}).(UserCtx)
	return u, ok && u.UserID != ""
}

// UserID returns the authenticated owner id.
func UserID(ctx context.Context) (string, bool) {
	u, ok := FromCtx(ctx)
	return u.UserID, ok
}
