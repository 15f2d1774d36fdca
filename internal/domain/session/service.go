package session

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/errgroup"

	"nutrisnap/internal/domain/accounts"
	"nutrisnap/internal/platform/logger"
	"nutrisnap/internal/ports/auth"
)

const (
	defaultCacheSize = 512
	defaultCacheTTL  = 30 * time.Second
)

type Options struct {
	CacheSize int
	CacheTTL  time.Duration
	Logger    logger.Logger
}

type Service struct {
	accounts *accounts.Service
	log      logger.Logger
	cache    *expirable.LRU[string, State]

	// gen cuenta invalidaciones por usuario; un Resolve que vio otra
	// generación al arrancar no escribe en el cache.
	mu  sync.Mutex
	gen map[string]uint64
}

// NewService se suscribe a notifier para invalidar el cache cuando cambia
// el usuario o se cierra la sesión.
func NewService(acc *accounts.Service, notifier *Notifier, opts Options) *Service {
	if opts.CacheSize <= 0 {
		opts.CacheSize = defaultCacheSize
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = defaultCacheTTL
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}

	s := &Service{
		accounts: acc,
		log:      opts.Logger.With(map[string]any{"component": "session"}),
		cache:    expirable.NewLRU[string, State](opts.CacheSize, nil, opts.CacheTTL),
		gen:      make(map[string]uint64),
	}

	if notifier != nil {
		notifier.Subscribe(func(e Event) {
			switch e.Type {
			case EventSignedOut, EventUserUpdated:
				s.invalidate(e.UserID)
			}
		})
	}
	return s
}

// Resolve arma el State para los claims del request. Sin claims => deslogueado.
// Perfil y usuario se buscan en paralelo; si no existen todavía no es error.
func (s *Service) Resolve(ctx context.Context, claims auth.Claims, ok bool) (State, error) {
	userID := strings.TrimSpace(claims.UserID)
	if !ok || userID == "" {
		return State{}, nil
	}

	if st, hit := s.cache.Get(userID); hit {
		return st, nil
	}

	gen := s.generation(userID)
	log := logger.FromContext(ctx, s.log).With(map[string]any{"user_id": userID})

	var (
		profile *accounts.Profile
		user    *accounts.User
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.accounts.GetProfile(gctx, userID)
		if errors.Is(err, accounts.ErrNotFound) {
			log.Debug("profile not found (may not exist yet)", nil)
			return nil
		}
		if err != nil {
			return err
		}
		profile = &p
		return nil
	})
	g.Go(func() error {
		u, err := s.accounts.GetUser(gctx, userID)
		if errors.Is(err, accounts.ErrNotFound) {
			log.Debug("user data not found (may not exist yet)", nil)
			return nil
		}
		if err != nil {
			return err
		}
		user = &u
		return nil
	})
	if err := g.Wait(); err != nil {
		log.Warn("resolve session failed", map[string]any{"error": err})
		return State{}, err
	}

	st := State{
		LoggedIn:               true,
		HasCompletedOnboarding: user != nil && user.OnboardingCompleted,
		UserID:                 userID,
		Email:                  claims.Email,
		Profile:                profile,
		User:                   user,
	}
	if !s.store(userID, gen, st) {
		log.Debug("session invalidated while resolving, not cached", nil)
	}

	log.Debug("session resolved", map[string]any{"onboarding_completed": st.HasCompletedOnboarding})
	return st, nil
}

func (s *Service) invalidate(userID string) {
	userID = strings.TrimSpace(userID)
	s.mu.Lock()
	s.gen[userID]++
	s.cache.Remove(userID)
	s.mu.Unlock()
}

func (s *Service) generation(userID string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen[userID]
}

// store cachea st solo si no hubo invalidación desde gen.
func (s *Service) store(userID string, gen uint64, st State) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen[userID] != gen {
		return false
	}
	s.cache.Add(userID, st)
	return true
}
