package banrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/fuelwatch/fuelwatch/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

var banColumns = []string{"id", "user_id", "admin_id", "reason", "banned_at", "banned_until", "is_active", "unbanned_at"}

func TestRepository_FindActiveByUserID(t *testing.T) {
	repo, mock := NewMock(t)

	bannedAt := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	bannedUntil := bannedAt.AddDate(0, 0, 7)

	tests := []struct {
		name      string
		userID    int
		mockSetup func()
		expectErr bool
		result    *domain.BanRecord
	}{
		{
			name:   "Active ban found",
			userID: 2,
			mockSetup: func() {
				rows := pgxmock.NewRows(banColumns).
					AddRow(10, 2, 1, "spam", bannedAt, bannedUntil, true, (*time.Time)(nil))
				mock.ExpectQuery(regexp.QuoteMeta("FROM ban_records")).
					WithArgs(2).
					WillReturnRows(rows)
			},
			result: &domain.BanRecord{
				ID:          10,
				UserID:      2,
				AdminID:     1,
				Reason:      "spam",
				BannedAt:    bannedAt,
				BannedUntil: bannedUntil,
				IsActive:    true,
			},
		},
		{
			name:   "No active ban",
			userID: 3,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM ban_records")).
					WithArgs(3).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:   "Database error",
			userID: 2,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM ban_records")).
					WithArgs(2).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindActiveByUserID(context.Background(), tt.userID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_FindExpired(t *testing.T) {
	repo, mock := NewMock(t)

	now := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	bannedAt := now.AddDate(0, 0, -8)

	rows := pgxmock.NewRows(banColumns).
		AddRow(10, 2, 1, "spam", bannedAt, bannedAt.AddDate(0, 0, 7), true, (*time.Time)(nil)).
		AddRow(11, 3, 1, "abuse", bannedAt, bannedAt.AddDate(0, 0, 3), true, (*time.Time)(nil))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE is_active = TRUE AND banned_until <= $1")).
		WithArgs(now).
		WillReturnRows(rows)

	records, err := repo.FindExpired(context.Background(), now)
	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, 10, records[0].ID)
	assert.Equal(t, 11, records[1].ID)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	bannedAt := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	record := &domain.BanRecord{
		UserID:      2,
		AdminID:     1,
		Reason:      "spam",
		BannedAt:    bannedAt,
		BannedUntil: domain.PermanentBanUntil,
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO ban_records")).
		WithArgs(2, 1, "spam", bannedAt, domain.PermanentBanUntil).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(42))

	created, err := repo.Create(context.Background(), record)
	assert.NoError(t, err)
	assert.Equal(t, 42, created.ID)
	assert.True(t, created.IsActive)
}

func TestRepository_Deactivate(t *testing.T) {
	repo, mock := NewMock(t)

	unbannedAt := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("SET is_active = FALSE, unbanned_at = $1")).
		WithArgs(unbannedAt, 42).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	assert.NoError(t, repo.Deactivate(context.Background(), 42, unbannedAt))

	mock.ExpectExec(regexp.QuoteMeta("SET is_active = FALSE, unbanned_at = $1")).
		WithArgs(unbannedAt, 42).
		WillReturnError(errors.New("database error"))
	assert.Error(t, repo.Deactivate(context.Background(), 42, unbannedAt))
}
