package api

import (
	"context"
)

type keyType string

const principalKey keyType = "principal"

// principal is whoever sent the bearer token. UserID is empty when the token
// carries no readable subject.
type principal struct {
	Token  string
	UserID string
}

func ctxWithPrincipal(ctx context.Context, p principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

func ctxGetPrincipal(ctx context.Context) (principal, bool) {
	p, ok := ctx.Value(principalKey).(principal)
	return p, ok
}

// ctxGetEditorID is the value written to the *_usr_id audit columns
func ctxGetEditorID(ctx context.Context) string {
	p, _ := ctxGetPrincipal(ctx)
	return p.UserID
}
