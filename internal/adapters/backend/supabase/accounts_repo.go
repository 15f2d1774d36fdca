package supabase

import (
	"context"
	"errors"
	"net/http"

	"nutrisnap/internal/domain/accounts"
	"nutrisnap/internal/platform/httpclient"
)

const (
	tableUsers    = "users"
	tableProfiles = "profiles"
)

// AccountsRepo implementa accounts.Repository sobre las tablas del backend hospedado.
type AccountsRepo struct {
	client *Client
}

func NewAccountsRepo(client *Client) *AccountsRepo {
	return &AccountsRepo{client: client}
}

func (r *AccountsRepo) CreateUser(ctx context.Context, u accounts.User) error {
	err := r.client.Insert(ctx, tableUsers, accounts.EncodeUser(u))
	if httpclient.StatusCode(err) == http.StatusConflict {
		return accounts.ErrAlreadyExists
	}
	return err
}

func (r *AccountsRepo) GetUser(ctx context.Context, id string) (accounts.User, error) {
	var rec accounts.UserRecord
	if err := r.client.SelectSingle(ctx, tableUsers, "id", id, &rec); err != nil {
		if errors.Is(err, ErrNoRows) {
			return accounts.User{}, accounts.ErrNotFound
		}
		return accounts.User{}, err
	}
	return accounts.DecodeUser(rec)
}

func (r *AccountsRepo) GetProfile(ctx context.Context, id string) (accounts.Profile, error) {
	var rec accounts.ProfileRecord
	if err := r.client.SelectSingle(ctx, tableProfiles, "id", id, &rec); err != nil {
		if errors.Is(err, ErrNoRows) {
			return accounts.Profile{}, accounts.ErrNotFound
		}
		return accounts.Profile{}, err
	}
	return accounts.DecodeProfile(rec)
}
