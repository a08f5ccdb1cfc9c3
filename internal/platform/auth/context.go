package auth

import "context"

// Principal is the identity an upstream middleware attached to the request.
// Role is kept as the raw claim; consumers parse it with ParseRole.
type Principal struct {
	UserID string
	Role   string
}

type ctxKeyPrincipal struct{}

// WithPrincipal injects p into ctx. RequireUser calls it; tests use it directly.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, ctxKeyPrincipal{}, p)
}

func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(ctxKeyPrincipal{}).(Principal)
	return p, ok
}

func UserIDFromContext(ctx context.Context) (string, bool) {
	p, ok := PrincipalFromContext(ctx)
	if !ok || p.UserID == "" {
		return "", false
	}
	return p.UserID, true
}

// WithUserID injects user_id into context, keeping any role already present.
func WithUserID(ctx context.Context, uid string) context.Context {
	p, _ := PrincipalFromContext(ctx)
	p.UserID = uid
	return WithPrincipal(ctx, p)
}

func RoleFromContext(ctx context.Context) (string, bool) {
	p, ok := PrincipalFromContext(ctx)
	if !ok || p.Role == "" {
		return "", false
	}
	return p.Role, true
}
