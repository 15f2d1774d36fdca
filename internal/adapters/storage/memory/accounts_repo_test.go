package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"

	"nutrisnap/internal/domain/accounts"
)

func TestAccountsRepo_CreateAndGet(t *testing.T) {
	repo := NewAccountsRepo()
	id := uuid.NewString()

	if err := repo.CreateUser(context.Background(), accounts.User{ID: id, Email: "a@b.c"}); err != nil {
		t.Fatalf("CreateUser error: %v", err)
	}
	u, err := repo.GetUser(context.Background(), id)
	if err != nil {
		t.Fatalf("GetUser error: %v", err)
	}
	if u.Email != "a@b.c" {
		t.Fatalf("unexpected email %q", u.Email)
	}

	if err := repo.CreateUser(context.Background(), accounts.User{ID: id}); !errors.Is(err, accounts.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
	if _, err := repo.GetProfile(context.Background(), id); !errors.Is(err, accounts.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for profile, got %v", err)
	}
}

func TestAccountsRepo_ConcurrentCreates(t *testing.T) {
	repo := NewAccountsRepo()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repo.CreateUser(context.Background(), accounts.User{ID: uuid.NewString()})
		}()
	}
	wg.Wait()

	r := repo.(*accountsRepo)
	if len(r.users) != 50 {
		t.Fatalf("expected 50 users, got %d", len(r.users))
	}
}
