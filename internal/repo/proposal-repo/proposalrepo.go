package proposalrepo

import (
	"context"
	"errors"
	"time"

	"github.com/fuelwatch/fuelwatch/internal/domain"
	"github.com/fuelwatch/fuelwatch/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const proposalColumns = "id, token, user_id, station_id, fuel_type_id, price, status, created_at, reviewed_at, reviewed_by"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, proposal *domain.PriceProposal) (*domain.PriceProposal, error) {
	query := `
        INSERT INTO price_proposals (token, user_id, station_id, fuel_type_id, price, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query, proposal.Token, proposal.UserID, proposal.StationID, proposal.FuelTypeID, proposal.Price, proposal.Status, proposal.CreatedAt).
		Scan(&proposal.ID)
	if err != nil {
		zap.L().Error("can't save proposal", zap.Error(err))
		return nil, err
	}
	return proposal, nil
}

func (r *Repository) FindByToken(ctx context.Context, token string) (*domain.PriceProposal, error) {
	row := r.db.QueryRow(ctx, "SELECT "+proposalColumns+" FROM price_proposals WHERE token = $1", token)

	var proposal domain.PriceProposal
	err := row.Scan(&proposal.ID, &proposal.Token, &proposal.UserID, &proposal.StationID, &proposal.FuelTypeID, &proposal.Price, &proposal.Status, &proposal.CreatedAt, &proposal.ReviewedAt, &proposal.ReviewedBy)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find proposal", zap.Error(err))
		return nil, err
	}
	return &proposal, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.PriceProposal, error) {
	query := "SELECT " + proposalColumns + `
        FROM price_proposals
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get proposals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return scanProposals(rows)
}

// FindStalePending selects the pending proposals submitted before olderThan.
// Already-reviewed proposals never match, which keeps the expiration sweep
// idempotent.
func (r *Repository) FindStalePending(ctx context.Context, olderThan time.Time) ([]domain.PriceProposal, error) {
	query := "SELECT " + proposalColumns + `
        FROM price_proposals
        WHERE status = 'PENDING' AND created_at <= $1
        ORDER BY created_at ASC
    `
	rows, err := r.db.Query(ctx, query, olderThan)
	if err != nil {
		zap.L().Error("can't get stale proposals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return scanProposals(rows)
}

func (r *Repository) UpdateStatus(ctx context.Context, id int, status string, reviewedAt time.Time, reviewedBy *int) error {
	query := `
        UPDATE price_proposals
        SET status = $1, reviewed_at = $2, reviewed_by = $3
        WHERE id = $4
    `
	_, err := r.db.Exec(ctx, query, status, reviewedAt, reviewedBy, id)
	if err != nil {
		zap.L().Error("can't update proposal status", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) GetStatistic(ctx context.Context, userID int) (*domain.ProposalStatistic, error) {
	query := `
        SELECT user_id, total, approved, rejected, accepted_rate
        FROM proposal_statistics
        WHERE user_id = $1
    `
	row := r.db.QueryRow(ctx, query, userID)

	var stat domain.ProposalStatistic
	err := row.Scan(&stat.UserID, &stat.Total, &stat.Approved, &stat.Rejected, &stat.AcceptedRate)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get proposal statistic", zap.Error(err))
		return nil, err
	}
	return &stat, nil
}

func (r *Repository) UpsertStatistic(ctx context.Context, stat *domain.ProposalStatistic) error {
	query := `
        INSERT INTO proposal_statistics (user_id, total, approved, rejected, accepted_rate)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (user_id) DO UPDATE
        SET total = EXCLUDED.total, approved = EXCLUDED.approved, rejected = EXCLUDED.rejected, accepted_rate = EXCLUDED.accepted_rate
    `
	_, err := r.db.Exec(ctx, query, stat.UserID, stat.Total, stat.Approved, stat.Rejected, stat.AcceptedRate)
	if err != nil {
		zap.L().Error("can't upsert proposal statistic", zap.Error(err))
		return err
	}
	return nil
}

func scanProposals(rows pgx.Rows) ([]domain.PriceProposal, error) {
	var proposals []domain.PriceProposal
	for rows.Next() {
		var proposal domain.PriceProposal
		err := rows.Scan(&proposal.ID, &proposal.Token, &proposal.UserID, &proposal.StationID, &proposal.FuelTypeID, &proposal.Price, &proposal.Status, &proposal.CreatedAt, &proposal.ReviewedAt, &proposal.ReviewedBy)
		if err != nil {
			zap.L().Error("can't scan proposal row", zap.Error(err))
			return nil, err
		}
		proposals = append(proposals, proposal)
	}
	return proposals, nil
}
