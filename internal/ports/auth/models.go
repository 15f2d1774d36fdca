package auth

import "context"

// Claims representa la información extraída del token.
type Claims struct {
	UserID string
	Email  string

	// AccessToken es el bearer original; los adapters del backend hospedado
	// lo reenvían para que apliquen las políticas por usuario.
	AccessToken string
}

type ctxKey struct{}

func WithClaims(ctx context.Context, c Claims) context.Context {
	return context.WithValue(ctx, ctxKey{}, c)
}

func ClaimsFrom(ctx context.Context) (Claims, bool) {
	c, ok := ctx.Value(ctxKey{}).(Claims)
	return c, ok
}
