package banrepo

import (
	"context"
	"errors"
	"time"

	"github.com/fuelwatch/fuelwatch/internal/domain"
	"github.com/fuelwatch/fuelwatch/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) FindActiveByUserID(ctx context.Context, userID int) (*domain.BanRecord, error) {
	query := `
        SELECT id, user_id, admin_id, reason, banned_at, banned_until, is_active, unbanned_at
        FROM ban_records
        WHERE user_id = $1 AND is_active = TRUE
    `
	row := r.db.QueryRow(ctx, query, userID)

	var record domain.BanRecord
	err := row.Scan(&record.ID, &record.UserID, &record.AdminID, &record.Reason, &record.BannedAt, &record.BannedUntil, &record.IsActive, &record.UnbannedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find active ban", zap.Error(err))
		return nil, err
	}
	return &record, nil
}

// FindExpired selects the active records whose term has passed. Permanent
// bans carry a far-future banned_until and are never selected.
func (r *Repository) FindExpired(ctx context.Context, now time.Time) ([]domain.BanRecord, error) {
	query := `
        SELECT id, user_id, admin_id, reason, banned_at, banned_until, is_active, unbanned_at
        FROM ban_records
        WHERE is_active = TRUE AND banned_until <= $1
        ORDER BY banned_until ASC
    `
	rows, err := r.db.Query(ctx, query, now)
	if err != nil {
		zap.L().Error("can't get expired bans", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var records []domain.BanRecord
	for rows.Next() {
		var record domain.BanRecord
		err := rows.Scan(&record.ID, &record.UserID, &record.AdminID, &record.Reason, &record.BannedAt, &record.BannedUntil, &record.IsActive, &record.UnbannedAt)
		if err != nil {
			zap.L().Error("can't scan ban row", zap.Error(err))
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func (r *Repository) Create(ctx context.Context, record *domain.BanRecord) (*domain.BanRecord, error) {
	query := `
        INSERT INTO ban_records (user_id, admin_id, reason, banned_at, banned_until, is_active)
        VALUES ($1, $2, $3, $4, $5, TRUE)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query, record.UserID, record.AdminID, record.Reason, record.BannedAt, record.BannedUntil).
		Scan(&record.ID)
	if err != nil {
		zap.L().Error("can't save ban record", zap.Error(err))
		return nil, err
	}
	record.IsActive = true
	return record, nil
}

func (r *Repository) Deactivate(ctx context.Context, recordID int, unbannedAt time.Time) error {
	query := `
        UPDATE ban_records
        SET is_active = FALSE, unbanned_at = $1
        WHERE id = $2 AND is_active = TRUE
    `
	_, err := r.db.Exec(ctx, query, unbannedAt, recordID)
	if err != nil {
		zap.L().Error("can't deactivate ban record", zap.Error(err))
		return err
	}
	return nil
}
