package auth

import "context"

type claimsKey struct{}

// ContextWithClaims stows verified token claims in the context. The
// HTTP middleware calls this; resolvers read it back.
func ContextWithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// ClaimsFromContext returns the caller's claims, or nil when the
// request carried no valid token.
func ClaimsFromContext(ctx context.Context) *Claims {
	claims, _ := ctx.Value(claimsKey{}).(*Claims)
	return claims
}
