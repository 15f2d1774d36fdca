package middleware

import (
	"context"
	"net/http"
	"strings"

	"nutrisnap/internal/platform/logger"
	"nutrisnap/internal/ports/auth"
)

// Headers del modo dev (sin verifier).
const (
	DebugUserHeader  = "X-Debug-User-ID"
	DebugEmailHeader = "X-Debug-User-Email"
)

// AuthContext resuelve los claims del request y, si hay, los deja en el
// contexto junto con un logger que ya lleva user_id.
//   - verifier != nil: solo cuenta el Bearer token.
//   - verifier == nil (modo dev): se confía en X-Debug-User-ID.
//
// Nunca corta el request: sin claims sigue igual y cada handler decide si
// responde 401 o trata al usuario como invitado. Un Bearer presentado pero
// rechazado queda marcado (ver AuthRejected) para no confundirlo con un
// invitado.
func AuthContext(verifier auth.AuthVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok, rejected := resolveClaims(r, verifier)
			if !ok {
				if rejected {
					r = r.WithContext(context.WithValue(r.Context(), rejectedKey{}, true))
				}
				next.ServeHTTP(w, r)
				return
			}

			ctx := auth.WithClaims(r.Context(), claims)
			ctx = logger.IntoContext(ctx, logger.FromContext(ctx, logger.Nop()).With(map[string]any{
				"user_id": claims.UserID,
			}))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

type rejectedKey struct{}

// resolveClaims devuelve rejected=true cuando vino un header Authorization
// que no se pudo validar.
func resolveClaims(r *http.Request, verifier auth.AuthVerifier) (claims auth.Claims, ok, rejected bool) {
	if verifier == nil {
		uid := strings.TrimSpace(r.Header.Get(DebugUserHeader))
		if uid == "" {
			return auth.Claims{}, false, false
		}
		return auth.Claims{
			UserID: uid,
			Email:  strings.TrimSpace(r.Header.Get(DebugEmailHeader)),
		}, true, false
	}

	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if header == "" {
		return auth.Claims{}, false, false
	}
	token := bearerToken(header)
	if token == "" {
		logger.FromContext(r.Context(), logger.Nop()).Debug("authorization header malformed", nil)
		return auth.Claims{}, false, true
	}

	claims, err := verifier.Verify(r.Context(), token)
	if err != nil || strings.TrimSpace(claims.UserID) == "" {
		logger.FromContext(r.Context(), logger.Nop()).Debug("bearer token rejected", map[string]any{"error": err})
		return auth.Claims{}, false, true
	}
	if claims.AccessToken == "" {
		claims.AccessToken = token
	}
	return claims, true, false
}

// AuthRejected indica que el request traía credenciales y el verifier las
// rechazó (token vencido, firma inválida, header mal formado).
func AuthRejected(ctx context.Context) bool {
	v, _ := ctx.Value(rejectedKey{}).(bool)
	return v
}

func GetClaims(ctx context.Context) (auth.Claims, bool) {
	c, ok := auth.ClaimsFrom(ctx)
	if !ok || strings.TrimSpace(c.UserID) == "" {
		return auth.Claims{}, false
	}
	return c, true
}

// bearerToken extrae el token de "Bearer <token>" (esquema case-insensitive).
func bearerToken(header string) string {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
