package accounts

import "context"

type Repository interface {
	CreateUser(ctx context.Context, u User) error
	GetUser(ctx context.Context, id string) (User, error)
	GetProfile(ctx context.Context, id string) (Profile, error)
}
