package token

import (
	"context"
	"strings"
)

type accessTokenKey struct{}

// WithAccess stores the caller's bearer token so outbound calls to the venue
// API can forward it unchanged.
func WithAccess(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, accessTokenKey{}, token)
}

func AccessFrom(ctx context.Context) (string, bool) {
	t, ok := ctx.Value(accessTokenKey{}).(string)
	if !ok || t == "" {
		return "", false
	}
	return t, true
}

// FromAuthorizationHeader extracts the token from a "Bearer <token>" header.
func FromAuthorizationHeader(header string) (string, bool) {
	const prefix = "bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	t := strings.TrimSpace(header[len(prefix):])
	return t, t != ""
}
