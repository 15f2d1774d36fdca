package jwtlocal

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"nutrisnap/internal/ports/auth"
)

// Audience que emite el backend hospedado para usuarios logueados.
const DefaultAudience = "authenticated"

var ErrNoSecret = errors.New("jwt secret not configured")

type accessClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// Verifier valida localmente access tokens HS256 firmados con el JWT secret
// del proyecto. No hace I/O.
type Verifier struct {
	secret   []byte
	audience string
	parser   *jwt.Parser
}

func NewVerifier(secret, audience string) (*Verifier, error) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return nil, ErrNoSecret
	}
	if strings.TrimSpace(audience) == "" {
		audience = DefaultAudience
	}
	return &Verifier{
		secret:   []byte(secret),
		audience: audience,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithAudience(audience),
			jwt.WithExpirationRequired(),
		),
	}, nil
}

func (v *Verifier) Verify(_ context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, auth.ErrUnauthorized
	}

	var c accessClaims
	_, err := v.parser.ParseWithClaims(token, &c, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return auth.Claims{}, fmt.Errorf("%w: %v", auth.ErrUnauthorized, err)
	}

	// sub es el id del usuario (uuid)
	if _, err := uuid.Parse(c.Subject); err != nil {
		return auth.Claims{}, fmt.Errorf("%w: invalid subject", auth.ErrUnauthorized)
	}

	return auth.Claims{
		UserID:      c.Subject,
		Email:       strings.TrimSpace(c.Email),
		AccessToken: token,
	}, nil
}

// Sign emite un token compatible; lo usan tests y el modo dev.
func (v *Verifier) Sign(userID, email string, claims jwt.RegisteredClaims) (string, error) {
	claims.Subject = userID
	if len(claims.Audience) == 0 {
		claims.Audience = jwt.ClaimStrings{v.audience}
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims{
		Email:            email,
		Role:             v.audience,
		RegisteredClaims: claims,
	})
	return t.SignedString(v.secret)
}
