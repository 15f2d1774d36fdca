package session

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"nutrisnap/internal/domain/accounts"
	"nutrisnap/internal/middleware"
	"nutrisnap/internal/platform/logger"
)

// SignOuter revoca la sesión en el proveedor de auth. Opcional.
type SignOuter interface {
	SignOut(ctx context.Context, accessToken string) error
}

func RegisterRoutes(r chi.Router, svc *Service, notifier *Notifier, signOut SignOuter) {
	r.Get("/me/session", getSessionHandler(svc))
	r.Delete("/me/session", deleteSessionHandler(notifier, signOut))
}

type sessionResponse struct {
	IsLoggedIn             bool                    `json:"is_logged_in"`
	HasCompletedOnboarding bool                    `json:"has_completed_onboarding"`
	UserID                 string                  `json:"user_id,omitempty"`
	Email                  string                  `json:"email,omitempty"`
	Profile                *accounts.ProfileRecord `json:"profile"`
	UserData               *accounts.UserRecord    `json:"user_data"`
	Destination            Screen                  `json:"destination"`
}

// getSessionHandler godoc
// @Summary Estado de sesión
// @Description Devuelve el estado de auth del usuario (perfil, datos de onboarding) y el grupo de pantallas que corresponde mostrar. Sin credenciales responde is_logged_in=false y destination=login. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags session
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Success 200 {object} sessionResponse
// @Failure 502 {string} string "backend unavailable"
// @Router /me/session [get]
func getSessionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())

		st, err := svc.Resolve(r.Context(), claims, ok)
		if err != nil {
			http.Error(w, "backend unavailable", http.StatusBadGateway)
			return
		}

		writeJSON(w, http.StatusOK, toSessionResponse(st))
	}
}

// deleteSessionHandler godoc
// @Summary Cerrar sesión
// @Description Revoca el token en el proveedor (si hay) y notifica SIGNED_OUT para invalidar caches. Sin credenciales, o con un token inválido o vencido, responde 401.
// @Tags session
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Success 204
// @Failure 401 {string} string "unauthorized"
// @Router /me/session [delete]
func deleteSessionHandler(notifier *Notifier, signOut SignOuter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if signOut != nil && claims.AccessToken != "" {
			if err := signOut.SignOut(r.Context(), claims.AccessToken); err != nil {
				// El cliente igual descarta su sesión; solo dejamos rastro.
				logger.FromContext(r.Context(), logger.Nop()).Warn("sign out upstream failed", map[string]any{
					"user_id": claims.UserID,
					"error":   err,
				})
			}
		}

		notifier.Publish(Event{Type: EventSignedOut, UserID: claims.UserID, AccessToken: claims.AccessToken})
		w.WriteHeader(http.StatusNoContent)
	}
}

func toSessionResponse(st State) sessionResponse {
	out := sessionResponse{
		IsLoggedIn:             st.LoggedIn,
		HasCompletedOnboarding: st.HasCompletedOnboarding,
		UserID:                 st.UserID,
		Email:                  st.Email,
		Destination:            Destination(st),
	}
	if st.Profile != nil {
		p := accounts.EncodeProfile(*st.Profile)
		out.Profile = &p
	}
	if st.User != nil {
		u := accounts.EncodeUser(*st.User)
		out.UserData = &u
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
