package userrepo

import (
	"context"
	"errors"
	"time"

	"github.com/fuelwatch/fuelwatch/internal/domain"
	"github.com/fuelwatch/fuelwatch/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const userColumns = "id, email, password_hash, display_name, role, lockout_until, failed_login_count, created_at"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := repo.db.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE email = $1", email)
	return scanUser(row)
}

func (repo *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	row := repo.db.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id)
	return scanUser(row)
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (email, password_hash, display_name, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := repo.db.QueryRow(ctx, query, user.Email, user.PasswordHash, user.DisplayName, user.Role).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) SetLockoutUntil(ctx context.Context, userID int, until *time.Time) error {
	_, err := repo.db.Exec(ctx, "UPDATE users SET lockout_until = $1 WHERE id = $2", until, userID)
	if err != nil {
		zap.L().Error("can't set lockout", zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) ResetFailedLoginCount(ctx context.Context, userID int) error {
	_, err := repo.db.Exec(ctx, "UPDATE users SET failed_login_count = 0 WHERE id = $1", userID)
	if err != nil {
		zap.L().Error("can't reset failed login count", zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) IncrementFailedLoginCount(ctx context.Context, userID int) error {
	_, err := repo.db.Exec(ctx, "UPDATE users SET failed_login_count = failed_login_count + 1 WHERE id = $1", userID)
	if err != nil {
		zap.L().Error("can't increment failed login count", zap.Error(err))
		return err
	}
	return nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.DisplayName, &user.Role, &user.LockoutUntil, &user.FailedLoginCount, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}
