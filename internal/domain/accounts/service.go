package accounts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"nutrisnap/internal/domain/nutrition"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidRecord = errors.New("invalid record")
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// CreateUser inserta la fila `users` del onboarding. Una fila por usuario:
// si ya existe devuelve ErrAlreadyExists sin tocar la existente.
func (s *Service) CreateUser(ctx context.Context, u User) (User, error) {
	u.ID = strings.TrimSpace(u.ID)
	u.Email = strings.TrimSpace(u.Email)
	if u.ID == "" {
		return User{}, ErrInvalidInput
	}
	if err := validateEnums(u); err != nil {
		return User{}, err
	}

	if _, err := s.repo.GetUser(ctx, u.ID); err == nil {
		return User{}, ErrAlreadyExists
	} else if !errors.Is(err, ErrNotFound) {
		return User{}, err
	}

	if u.CreatedAt.IsZero() {
		u.CreatedAt = s.now()
	}

	if err := s.repo.CreateUser(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

func (s *Service) GetUser(ctx context.Context, id string) (User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return User{}, ErrNotFound
	}
	return s.repo.GetUser(ctx, id)
}

func (s *Service) GetProfile(ctx context.Context, id string) (Profile, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Profile{}, ErrNotFound
	}
	return s.repo.GetProfile(ctx, id)
}

// validateEnums rechaza valores fuera del catálogo; nil significa "sin dato".
func validateEnums(u User) error {
	if u.Sex != nil {
		if _, err := nutrition.ParseSex(string(*u.Sex)); err != nil {
			return fmt.Errorf("%w: sex %q", ErrInvalidInput, *u.Sex)
		}
	}
	if u.ActivityLevel != nil {
		if _, err := nutrition.ParseActivityLevel(string(*u.ActivityLevel)); err != nil {
			return fmt.Errorf("%w: activity_level %q", ErrInvalidInput, *u.ActivityLevel)
		}
	}
	if u.Goal != nil {
		if _, err := nutrition.ParseGoal(string(*u.Goal)); err != nil {
			return fmt.Errorf("%w: goal %q", ErrInvalidInput, *u.Goal)
		}
	}
	return nil
}
