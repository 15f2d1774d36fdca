package onboarding

import (
	"context"
	"errors"
	"strings"

	"nutrisnap/internal/domain/accounts"
	"nutrisnap/internal/domain/nutrition"
	"nutrisnap/internal/domain/session"
	"nutrisnap/internal/platform/logger"
	"nutrisnap/internal/platform/metrics"
	"nutrisnap/internal/ports/auth"
)

type Service struct {
	accounts *accounts.Service
	notifier *session.Notifier
	metrics  *metrics.Metrics
	log      logger.Logger
}

type Options struct {
	Notifier *session.Notifier
	Metrics  *metrics.Metrics
	Logger   logger.Logger
}

func NewService(acc *accounts.Service, opts Options) *Service {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	return &Service{
		accounts: acc,
		notifier: opts.Notifier,
		metrics:  opts.Metrics,
		log:      opts.Logger.With(map[string]any{"component": "onboarding"}),
	}
}

// Preview es lo que muestra el paso de resumen antes de confirmar.
type Preview struct {
	Input Input
	Plan  nutrition.Plan
}

type Result struct {
	Plan      nutrition.Plan
	User      accounts.User
	Persisted bool // false para invitados
}

func (s *Service) Preview(ctx context.Context, f Form) (Preview, error) {
	in, err := Normalize(f)
	if err != nil {
		return Preview{}, err
	}

	plan := nutrition.ComputePlan(in.Biometrics, in.ActivityLevel, in.Goal)
	s.metrics.IncPlan(string(in.Goal))
	return Preview{Input: in, Plan: plan}, nil
}

// Complete calcula el plan y, si hay usuario autenticado, inserta su fila
// `users` con onboarding_completed=true. Un invitado recibe el plan sin guardar.
func (s *Service) Complete(ctx context.Context, claims auth.Claims, ok bool, f Form) (Result, error) {
	log := logger.FromContext(ctx, s.log)

	p, err := s.Preview(ctx, f)
	if err != nil {
		s.metrics.IncOnboarding(metrics.OutcomeInvalid)
		return Result{}, err
	}

	userID := strings.TrimSpace(claims.UserID)
	if !ok || userID == "" {
		log.Info("guest onboarding, data not persisted", map[string]any{"goal": string(p.Input.Goal)})
		s.metrics.IncOnboarding(metrics.OutcomeGuest)
		return Result{Plan: p.Plan}, nil
	}

	u, err := s.accounts.CreateUser(ctx, newUser(userID, claims.Email, p))
	if err != nil {
		log.Error("save onboarding data failed", map[string]any{"user_id": userID, "error": err})
		s.metrics.IncOnboarding(metrics.OutcomeFailed)
		return Result{}, err
	}

	s.notifier.Publish(session.Event{Type: session.EventUserUpdated, UserID: userID})
	s.metrics.IncOnboarding(metrics.OutcomePersisted)
	log.Info("onboarding completed", map[string]any{"user_id": userID, "daily_calories": p.Plan.DailyCalories})

	return Result{Plan: p.Plan, User: u, Persisted: true}, nil
}

func newUser(id, email string, p Preview) accounts.User {
	in := p.Input
	age := in.Biometrics.Age
	height := in.Biometrics.HeightCm
	weight := in.Biometrics.WeightKg
	sex := in.Biometrics.Sex
	level := in.ActivityLevel
	goal := in.Goal
	target := in.TargetWeightKg
	calories := p.Plan.DailyCalories
	protein := p.Plan.Macros.Protein
	carbs := p.Plan.Macros.Carbs
	fat := p.Plan.Macros.Fat

	return accounts.User{
		ID:                  id,
		Email:               email,
		Age:                 &age,
		Height:              &height,
		Weight:              &weight,
		Sex:                 &sex,
		ActivityLevel:       &level,
		Goal:                &goal,
		TargetWeight:        &target,
		DailyCalorieTarget:  &calories,
		DailyProteinTarget:  &protein,
		DailyCarbsTarget:    &carbs,
		DailyFatTarget:      &fat,
		OnboardingCompleted: true,
	}
}

// IsValidation indica si err es un error de datos del usuario (400).
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrUnknownStep)
}
