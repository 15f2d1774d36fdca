package dashboard

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"
	_ "time/tzdata" // tz del cliente aunque la imagen no traiga zoneinfo

	"github.com/go-chi/chi/v5"

	"nutrisnap/internal/domain/session"
	"nutrisnap/internal/middleware"
)

func RegisterRoutes(r chi.Router, svc *Service, sessions *session.Service) {
	r.Get("/me/dashboard", todayHandler(svc, sessions, time.Now))
}

// todayHandler godoc
// @Summary Resumen del día
// @Description Saludo, progreso de calorías y macros contra las metas del usuario (o las metas por defecto) y comidas del día. `tz` es una zona IANA para calcular saludo y fecha en la hora local del cliente. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags dashboard
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param tz query string false "Zona horaria IANA, ej. America/Argentina/Buenos_Aires"
// @Success 200 {object} Summary
// @Failure 400 {string} string "invalid tz"
// @Failure 401 {string} string "unauthorized"
// @Failure 502 {string} string "backend unavailable"
// @Router /me/dashboard [get]
func todayHandler(svc *Service, sessions *session.Service, now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		t := now()
		if tz := strings.TrimSpace(r.URL.Query().Get("tz")); tz != "" {
			loc, err := time.LoadLocation(tz)
			if err != nil {
				http.Error(w, "invalid tz", http.StatusBadRequest)
				return
			}
			t = t.In(loc)
		}

		st, err := sessions.Resolve(r.Context(), claims, ok)
		if err != nil {
			http.Error(w, "backend unavailable", http.StatusBadGateway)
			return
		}

		writeJSON(w, http.StatusOK, svc.Today(r.Context(), st, t))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
