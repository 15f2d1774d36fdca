package accounts

import (
	"fmt"
	"strings"
	"time"

	"nutrisnap/internal/domain/nutrition"
)

// UserRecord es la forma JSON de `users` tal como la expone el backend hospedado
// (columnas snake_case). Se valida al decodificar: enums desconocidos => ErrInvalidRecord.
type UserRecord struct {
	ID                  string     `json:"id"`
	Email               string     `json:"email,omitempty"`
	Age                 *int       `json:"age,omitempty"`
	Height              *float64   `json:"height,omitempty"`
	Weight              *float64   `json:"weight,omitempty"`
	Sex                 *string    `json:"sex,omitempty"`
	ActivityLevel       *string    `json:"activity_level,omitempty"`
	Goal                *string    `json:"goal,omitempty"`
	TargetWeight        *float64   `json:"target_weight,omitempty"`
	DailyCalorieTarget  *int       `json:"daily_calorie_target,omitempty"`
	DailyProteinTarget  *int       `json:"daily_protein_target,omitempty"`
	DailyCarbsTarget    *int       `json:"daily_carbs_target,omitempty"`
	DailyFatTarget      *int       `json:"daily_fat_target,omitempty"`
	OnboardingCompleted bool       `json:"onboarding_completed"`
	CreatedAt           *time.Time `json:"created_at,omitempty"`
}

type ProfileRecord struct {
	ID        string     `json:"id"`
	FullName  *string    `json:"full_name,omitempty"`
	AvatarURL *string    `json:"avatar_url,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func DecodeUser(r UserRecord) (User, error) {
	id := strings.TrimSpace(r.ID)
	if id == "" {
		return User{}, fmt.Errorf("%w: missing id", ErrInvalidRecord)
	}

	u := User{
		ID:                  id,
		Email:               strings.TrimSpace(r.Email),
		Age:                 r.Age,
		Height:              r.Height,
		Weight:              r.Weight,
		TargetWeight:        r.TargetWeight,
		DailyCalorieTarget:  r.DailyCalorieTarget,
		DailyProteinTarget:  r.DailyProteinTarget,
		DailyCarbsTarget:    r.DailyCarbsTarget,
		DailyFatTarget:      r.DailyFatTarget,
		OnboardingCompleted: r.OnboardingCompleted,
	}
	if r.CreatedAt != nil {
		u.CreatedAt = *r.CreatedAt
	}

	if r.Sex != nil {
		s, err := nutrition.ParseSex(*r.Sex)
		if err != nil {
			return User{}, fmt.Errorf("%w: sex: %v", ErrInvalidRecord, err)
		}
		u.Sex = &s
	}
	if r.ActivityLevel != nil {
		l, err := nutrition.ParseActivityLevel(*r.ActivityLevel)
		if err != nil {
			return User{}, fmt.Errorf("%w: activity_level: %v", ErrInvalidRecord, err)
		}
		u.ActivityLevel = &l
	}
	if r.Goal != nil {
		g, err := nutrition.ParseGoal(*r.Goal)
		if err != nil {
			return User{}, fmt.Errorf("%w: goal: %v", ErrInvalidRecord, err)
		}
		u.Goal = &g
	}

	return u, nil
}

func EncodeUser(u User) UserRecord {
	r := UserRecord{
		ID:                  u.ID,
		Email:               u.Email,
		Age:                 u.Age,
		Height:              u.Height,
		Weight:              u.Weight,
		TargetWeight:        u.TargetWeight,
		DailyCalorieTarget:  u.DailyCalorieTarget,
		DailyProteinTarget:  u.DailyProteinTarget,
		DailyCarbsTarget:    u.DailyCarbsTarget,
		DailyFatTarget:      u.DailyFatTarget,
		OnboardingCompleted: u.OnboardingCompleted,
	}
	if u.Sex != nil {
		s := string(*u.Sex)
		r.Sex = &s
	}
	if u.ActivityLevel != nil {
		l := string(*u.ActivityLevel)
		r.ActivityLevel = &l
	}
	if u.Goal != nil {
		g := string(*u.Goal)
		r.Goal = &g
	}
	if !u.CreatedAt.IsZero() {
		t := u.CreatedAt
		r.CreatedAt = &t
	}
	return r
}

func DecodeProfile(r ProfileRecord) (Profile, error) {
	id := strings.TrimSpace(r.ID)
	if id == "" {
		return Profile{}, fmt.Errorf("%w: missing id", ErrInvalidRecord)
	}
	return Profile{
		ID:        id,
		FullName:  r.FullName,
		AvatarURL: r.AvatarURL,
		UpdatedAt: r.UpdatedAt,
	}, nil
}

func EncodeProfile(p Profile) ProfileRecord {
	return ProfileRecord{
		ID:        p.ID,
		FullName:  p.FullName,
		AvatarURL: p.AvatarURL,
		UpdatedAt: p.UpdatedAt,
	}
}
