package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"nutrisnap/internal/domain/accounts"
	"nutrisnap/internal/domain/nutrition"
)

// uniqueViolation es el SQLSTATE de Postgres para PK/unique duplicada.
const uniqueViolation = "23505"

type AccountsRepo struct {
	db *sql.DB
}

func NewAccountsRepo(db *sql.DB) *AccountsRepo {
	return &AccountsRepo{db: db}
}

func (r *AccountsRepo) CreateUser(ctx context.Context, u accounts.User) error {
	rec := accounts.EncodeUser(u)

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (
			id, email,
			age, height, weight,
			sex, activity_level, goal, target_weight,
			daily_calorie_target, daily_protein_target, daily_carbs_target, daily_fat_target,
			onboarding_completed, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
	`,
		rec.ID,
		rec.Email,
		rec.Age,
		rec.Height,
		rec.Weight,
		rec.Sex,
		rec.ActivityLevel,
		rec.Goal,
		rec.TargetWeight,
		rec.DailyCalorieTarget,
		rec.DailyProteinTarget,
		rec.DailyCarbsTarget,
		rec.DailyFatTarget,
		rec.OnboardingCompleted,
		u.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return accounts.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *AccountsRepo) GetUser(ctx context.Context, id string) (accounts.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return accounts.User{}, accounts.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, email,
			age, height, weight,
			sex, activity_level, goal, target_weight,
			daily_calorie_target, daily_protein_target, daily_carbs_target, daily_fat_target,
			onboarding_completed, created_at
		FROM users
		WHERE id = $1
	`, id)

	var (
		u                   accounts.User
		age                 sql.NullInt64
		height, weight      sql.NullFloat64
		target              sql.NullFloat64
		sex, level, goal    sql.NullString
		kcal, prot, carb, f sql.NullInt64
	)
	if err := row.Scan(
		&u.ID,
		&u.Email,
		&age,
		&height,
		&weight,
		&sex,
		&level,
		&goal,
		&target,
		&kcal,
		&prot,
		&carb,
		&f,
		&u.OnboardingCompleted,
		&u.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return accounts.User{}, accounts.ErrNotFound
		}
		return accounts.User{}, err
	}

	u.Age = intPtr(age)
	u.Height = floatPtr(height)
	u.Weight = floatPtr(weight)
	u.TargetWeight = floatPtr(target)
	u.DailyCalorieTarget = intPtr(kcal)
	u.DailyProteinTarget = intPtr(prot)
	u.DailyCarbsTarget = intPtr(carb)
	u.DailyFatTarget = intPtr(f)

	if sex.Valid {
		v, err := nutrition.ParseSex(sex.String)
		if err != nil {
			return accounts.User{}, errors.Join(accounts.ErrInvalidRecord, err)
		}
		u.Sex = &v
	}
	if level.Valid {
		v, err := nutrition.ParseActivityLevel(level.String)
		if err != nil {
			return accounts.User{}, errors.Join(accounts.ErrInvalidRecord, err)
		}
		u.ActivityLevel = &v
	}
	if goal.Valid {
		v, err := nutrition.ParseGoal(goal.String)
		if err != nil {
			return accounts.User{}, errors.Join(accounts.ErrInvalidRecord, err)
		}
		u.Goal = &v
	}

	return u, nil
}

func (r *AccountsRepo) GetProfile(ctx context.Context, id string) (accounts.Profile, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return accounts.Profile{}, accounts.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, full_name, avatar_url, updated_at
		FROM profiles
		WHERE id = $1
	`, id)

	var (
		p         accounts.Profile
		name, url sql.NullString
		updated   sql.NullTime
	)
	if err := row.Scan(&p.ID, &name, &url, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return accounts.Profile{}, accounts.ErrNotFound
		}
		return accounts.Profile{}, err
	}

	if name.Valid {
		p.FullName = &name.String
	}
	if url.Valid {
		p.AvatarURL = &url.String
	}
	if updated.Valid {
		t := updated.Time
		p.UpdatedAt = &t
	}
	return p, nil
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
