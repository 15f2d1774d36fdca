package router

import (
	"context"
	"fmt"

	"nutrisnap/internal/adapters/auth/jwtlocal"
	"nutrisnap/internal/adapters/backend/supabase"
	pg "nutrisnap/internal/adapters/storage/postgres"
	"nutrisnap/internal/config"
	"nutrisnap/internal/domain/session"
	"nutrisnap/internal/platform/logger"
	"nutrisnap/internal/platform/metrics"
)

// FromConfig elige los backends:
//   - cuentas: Supabase REST si hay SUPABASE_URL, si no Postgres si hay DB_DSN, si no in-memory.
//   - auth: JWT local si hay SUPABASE_JWT_SECRET, si no /auth/v1/user de Supabase,
//     si no modo dev (X-Debug-User-ID).
//
// closeFn libera lo abierto (pool de Postgres); siempre es no-nil.
func FromConfig(ctx context.Context, cfg config.Config, log logger.Logger, m *metrics.Metrics) (opts Options, closeFn func(), err error) {
	if log == nil {
		log = logger.Nop()
	}
	closeFn = func() {}

	opts = Options{
		Notifier:        session.NewNotifier(),
		Logger:          log,
		Metrics:         m,
		AllowedOrigins:  cfg.AllowedOrigins,
		SessionCacheTTL: cfg.SessionCacheTTL,
	}

	var client *supabase.Client
	switch {
	case cfg.Supabase.URL != "":
		client, err = supabase.NewClient(supabase.Config{
			URL:        cfg.Supabase.URL,
			AnonKey:    cfg.Supabase.AnonKey,
			ServiceKey: cfg.Supabase.ServiceKey,
			Timeout:    cfg.HTTPTimeout,
			Transport:  m.InstrumentTransport(nil),
		})
		if err != nil {
			return Options{}, closeFn, fmt.Errorf("supabase client: %w", err)
		}
		opts.Accounts = supabase.NewAccountsRepo(client)
		opts.SignOut = client
		log.Info("accounts backend", map[string]any{"backend": "supabase", "url": cfg.Supabase.URL})

	case cfg.DBDSN != "":
		db, err := pg.Open(ctx, cfg.DBDSN)
		if err != nil {
			return Options{}, closeFn, fmt.Errorf("postgres open: %w", err)
		}
		if err := pg.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return Options{}, closeFn, fmt.Errorf("postgres migrate: %w", err)
		}
		opts.Accounts = pg.NewAccountsRepo(db)
		closeFn = func() { _ = db.Close() }
		log.Info("accounts backend", map[string]any{"backend": "postgres"})

	default:
		log.Warn("accounts backend in-memory, data is lost on restart", nil)
	}

	switch {
	case cfg.Supabase.JWTSecret != "":
		v, err := jwtlocal.NewVerifier(cfg.Supabase.JWTSecret, jwtlocal.DefaultAudience)
		if err != nil {
			closeFn()
			return Options{}, func() {}, fmt.Errorf("jwt verifier: %w", err)
		}
		opts.AuthVerifier = v
		log.Info("auth verifier", map[string]any{"verifier": "jwt"})

	case client != nil:
		v := supabase.NewVerifier(client, supabase.VerifierOptions{
			CacheSize: cfg.TokenCacheSize,
			CacheTTL:  cfg.TokenCacheTTL,
		})
		opts.Notifier.Subscribe(func(e session.Event) {
			if e.Type != session.EventSignedOut {
				return
			}
			if e.AccessToken != "" {
				v.Forget(e.AccessToken)
			}
			v.ForgetUser(e.UserID)
		})
		opts.AuthVerifier = v
		log.Info("auth verifier", map[string]any{"verifier": "supabase"})

	default:
		log.Warn("no auth verifier configured, dev mode: X-Debug-User-ID is trusted", nil)
	}

	return opts, closeFn, nil
}
