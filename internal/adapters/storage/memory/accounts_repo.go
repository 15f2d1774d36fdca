package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"nutrisnap/internal/domain/accounts"
)

type accountsRepo struct {
	mu       sync.RWMutex
	users    map[string]accounts.User
	profiles map[string]accounts.Profile
}

// AccountsRepo expone SeedProfile además del port: en modo dev no hay
// proveedor de identidad que cree la fila `profiles`.
type AccountsRepo interface {
	accounts.Repository
	SeedProfile(p accounts.Profile) error
}

func NewAccountsRepo() AccountsRepo {
	return &accountsRepo{
		users:    make(map[string]accounts.User),
		profiles: make(map[string]accounts.Profile),
	}
}

func (r *accountsRepo) CreateUser(ctx context.Context, u accounts.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(u.ID) == "" {
		return errors.New("user id required")
	}
	if _, exists := r.users[u.ID]; exists {
		return accounts.ErrAlreadyExists
	}
	r.users[u.ID] = u
	return nil
}

func (r *accountsRepo) GetUser(ctx context.Context, id string) (accounts.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return accounts.User{}, accounts.ErrNotFound
	}
	return u, nil
}

func (r *accountsRepo) GetProfile(ctx context.Context, id string) (accounts.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.profiles[id]
	if !ok {
		return accounts.Profile{}, accounts.ErrNotFound
	}
	return p, nil
}

func (r *accountsRepo) SeedProfile(p accounts.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("profile id required")
	}
	r.profiles[p.ID] = p
	return nil
}
