package supabase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"nutrisnap/internal/ports/auth"
)

const (
	defaultTokenCacheSize = 1024
	defaultTokenCacheTTL  = 1 * time.Minute
)

var ErrTokenEmpty = errors.New("token is empty")

type tokenEntry struct {
	claims   auth.Claims
	storedAt time.Time
}

// Verifier implementa auth.AuthVerifier validando contra /auth/v1/user.
// Cachea tokens verificados por TTL para no pegarle al backend en cada request.
type Verifier struct {
	client *Client
	ttl    time.Duration
	now    func() time.Time

	mu    sync.Mutex
	cache *lru.Cache[string, tokenEntry]
}

type VerifierOptions struct {
	CacheSize int
	CacheTTL  time.Duration
}

func NewVerifier(client *Client, opts VerifierOptions) *Verifier {
	if opts.CacheSize <= 0 {
		opts.CacheSize = defaultTokenCacheSize
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = defaultTokenCacheTTL
	}
	// lru.New solo falla con size <= 0, ya cubierto arriba.
	cache, _ := lru.New[string, tokenEntry](opts.CacheSize)

	return &Verifier{
		client: client,
		ttl:    opts.CacheTTL,
		now:    time.Now,
		cache:  cache,
	}
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if v == nil || v.client == nil {
		return auth.Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	if entry, ok := v.cache.Get(token); ok {
		if v.now().Sub(entry.storedAt) < v.ttl {
			return entry.claims, nil
		}
		v.cache.Remove(token)
	}

	u, err := v.client.GetUser(ctx, token)
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			return auth.Claims{}, fmt.Errorf("%w: %v", auth.ErrUnauthorized, err)
		}
		return auth.Claims{}, fmt.Errorf("supabase verify failed: %w", err)
	}

	claims := auth.Claims{
		UserID:      u.ID,
		Email:       strings.TrimSpace(u.Email),
		AccessToken: token,
	}
	v.cache.Add(token, tokenEntry{claims: claims, storedAt: v.now()})
	return claims, nil
}

// Forget saca un token del cache (sign-out).
func (v *Verifier) Forget(token string) {
	v.cache.Remove(strings.TrimSpace(token))
}

// ForgetUser saca todos los tokens cacheados de un usuario.
func (v *Verifier) ForgetUser(userID string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	for _, k := range v.cache.Keys() {
		if e, ok := v.cache.Peek(k); ok && e.claims.UserID == userID {
			v.cache.Remove(k)
		}
	}
}
