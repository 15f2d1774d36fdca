package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "nutrisnap/docs"
	mem "nutrisnap/internal/adapters/storage/memory"
	"nutrisnap/internal/domain/accounts"
	"nutrisnap/internal/domain/dashboard"
	"nutrisnap/internal/domain/onboarding"
	"nutrisnap/internal/domain/session"
	"nutrisnap/internal/middleware"
	"nutrisnap/internal/platform/logger"
	"nutrisnap/internal/platform/metrics"
	"nutrisnap/internal/ports/auth"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si no viene, in-memory.
	Accounts accounts.Repository
	// Opcional: revoca el token upstream en DELETE /me/session.
	SignOut session.SignOuter

	Notifier *session.Notifier
	Logger   logger.Logger
	Metrics  *metrics.Metrics

	AllowedOrigins  []string
	SessionCacheTTL time.Duration
}

func NewRouter(opts Options) http.Handler {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	if opts.Metrics == nil {
		opts.Metrics = metrics.New(nil)
	}
	if opts.Notifier == nil {
		opts.Notifier = session.NewNotifier()
	}
	if opts.Accounts == nil {
		opts.Accounts = mem.NewAccountsRepo()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(opts.Logger, opts.Metrics))
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS(opts.AllowedOrigins))

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", opts.Metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Services por módulo
	accountsSvc := accounts.NewService(opts.Accounts)
	sessionSvc := session.NewService(accountsSvc, opts.Notifier, session.Options{
		CacheTTL: opts.SessionCacheTTL,
		Logger:   opts.Logger,
	})
	onboardingSvc := onboarding.NewService(accountsSvc, onboarding.Options{
		Notifier: opts.Notifier,
		Metrics:  opts.Metrics,
		Logger:   opts.Logger,
	})
	dashboardSvc := dashboard.NewService()

	// Rutas por módulo
	session.RegisterRoutes(r, sessionSvc, opts.Notifier, opts.SignOut)
	onboarding.RegisterRoutes(r, onboardingSvc)
	dashboard.RegisterRoutes(r, dashboardSvc, sessionSvc)

	return r
}
