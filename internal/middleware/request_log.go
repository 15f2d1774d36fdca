package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"nutrisnap/internal/platform/logger"
	"nutrisnap/internal/platform/metrics"
)

// RequestLog deja un logger con request_id en el contexto y, al terminar,
// registra status/duración y alimenta las métricas HTTP por patrón de ruta.
// Debe ir después de chimw.RequestID.
func RequestLog(log logger.Logger, m *metrics.Metrics) func(http.Handler) http.Handler {
	if log == nil {
		log = logger.Nop()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			reqLog := log.With(map[string]any{"request_id": chimw.GetReqID(r.Context())})
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			if id := chimw.GetReqID(r.Context()); id != "" {
				ww.Header().Set("X-Request-Id", id)
			}

			next.ServeHTTP(ww, r.WithContext(logger.IntoContext(r.Context(), reqLog)))

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			d := time.Since(start)

			route := r.URL.Path
			if rc := chi.RouteContext(r.Context()); rc != nil {
				if p := rc.RoutePattern(); p != "" {
					route = p
				} else {
					route = "unmatched"
				}
			}
			m.ObserveHTTP(route, r.Method, status, d)

			fields := map[string]any{
				"method":      r.Method,
				"path":        r.URL.Path,
				"route":       route,
				"status":      status,
				"duration_ms": d.Milliseconds(),
				"bytes":       ww.BytesWritten(),
			}
			switch {
			case status >= 500:
				reqLog.Error("request", fields)
			case status >= 400:
				reqLog.Warn("request", fields)
			default:
				reqLog.Info("request", fields)
			}
		})
	}
}
