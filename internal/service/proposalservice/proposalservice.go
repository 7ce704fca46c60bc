package proposalservice

import (
	"context"
	"fmt"
	"time"

	"github.com/fuelwatch/fuelwatch/internal/cache"
	"github.com/fuelwatch/fuelwatch/internal/domain"
	"github.com/fuelwatch/fuelwatch/internal/events"
	"github.com/fuelwatch/fuelwatch/internal/notify"
	"github.com/fuelwatch/fuelwatch/internal/pg"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// allowedPhotoTypes is the allow-list for receipt photo uploads.
var allowedPhotoTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
}

type Repo interface {
	Create(ctx context.Context, proposal *domain.PriceProposal) (*domain.PriceProposal, error)
	FindByToken(ctx context.Context, token string) (*domain.PriceProposal, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.PriceProposal, error)
	FindStalePending(ctx context.Context, olderThan time.Time) ([]domain.PriceProposal, error)
	UpdateStatus(ctx context.Context, id int, status string, reviewedAt time.Time, reviewedBy *int) error
	GetStatistic(ctx context.Context, userID int) (*domain.ProposalStatistic, error)
	UpsertStatistic(ctx context.Context, stat *domain.ProposalStatistic) error
}

// Catalog resolves stations and fuel types and applies accepted prices.
type Catalog interface {
	FindStationByID(ctx context.Context, id int) (*domain.Station, error)
	FindFuelTypeByCode(ctx context.Context, code string) (*domain.FuelType, error)
	UpdatePrice(ctx context.Context, stationID, fuelTypeID int, amount float64, updatedAt time.Time) error
}

type Accounts interface {
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	FindUserByID(ctx context.Context, id int) (*domain.User, error)
	IsInRole(user *domain.User, role string) bool
}

type Events interface {
	Publish(ctx context.Context, event events.Event)
}

// Photo is the declared metadata of an uploaded receipt photo. Storage of
// the bytes is handled elsewhere; only the declared type is validated here.
type Photo struct {
	Name        string
	ContentType string
}

type SubmitRequest struct {
	StationID    int
	FuelTypeCode string
	Price        float64
	Photo        Photo
}

type Service struct {
	repo      Repo
	catalog   Catalog
	accounts  Accounts
	notifier  notify.Sender
	events    Events
	cache     *cache.Cache
	txManager pg.TXManager
	ttl       time.Duration
	now       func() time.Time
}

func New(repo Repo, catalog Catalog, accounts Accounts, notifier notify.Sender, ev Events, c *cache.Cache, txManager pg.TXManager, ttl time.Duration) *Service {
	return &Service{
		repo:      repo,
		catalog:   catalog,
		accounts:  accounts,
		notifier:  notifier,
		events:    ev,
		cache:     c,
		txManager: txManager,
		ttl:       ttl,
		now:       time.Now,
	}
}

// Submit records a new price correction in PENDING state under a fresh
// opaque token.
func (s *Service) Submit(ctx context.Context, userEmail string, req SubmitRequest) (*domain.PriceProposal, error) {
	user, err := s.accounts.FindUserByEmail(ctx, userEmail)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if req.Price <= 0 {
		return nil, domain.ErrBadRequest
	}
	if _, ok := allowedPhotoTypes[req.Photo.ContentType]; !ok {
		zap.L().Info("rejected proposal photo type", zap.String("contentType", req.Photo.ContentType))
		return nil, domain.ErrBadRequest
	}
	fuelType, err := s.catalog.FindFuelTypeByCode(ctx, req.FuelTypeCode)
	if err != nil {
		return nil, err
	}
	if fuelType == nil {
		return nil, domain.ErrBadRequest
	}
	station, err := s.catalog.FindStationByID(ctx, req.StationID)
	if err != nil {
		return nil, err
	}
	if station == nil {
		return nil, domain.ErrNotFound
	}

	proposal := &domain.PriceProposal{
		Token:      uuid.NewString(),
		UserID:     user.ID,
		StationID:  station.ID,
		FuelTypeID: fuelType.ID,
		Price:      req.Price,
		Status:     domain.ProposalStatusPending,
		CreatedAt:  s.now(),
	}
	proposal, err = s.repo.Create(ctx, proposal)
	if err != nil {
		zap.L().Error("can't create proposal", zap.Error(err))
		return nil, err
	}

	s.cache.RemoveByPattern(ctx, "proposals:*")
	zap.L().Info("proposal submitted", zap.String("token", proposal.Token), zap.Int("stationID", station.ID))
	return proposal, nil
}

// ChangeStatus applies an admin decision to a pending proposal. The status,
// the submitter's statistics and (on accept) the station price are committed
// together; notification and event follow the commit. A proposal already in
// a terminal state is rejected with a conflict.
func (s *Service) ChangeStatus(ctx context.Context, adminEmail, token string, accepted bool) (*domain.PriceProposal, error) {
	admin, err := s.accounts.FindUserByEmail(ctx, adminEmail)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, domain.ErrUnauthorized
	}
	if !s.accounts.IsInRole(admin, domain.RoleAdmin) {
		return nil, domain.ErrForbidden
	}
	proposal, err := s.repo.FindByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if proposal == nil {
		return nil, domain.ErrNotFound
	}
	if proposal.Terminal() {
		return nil, domain.ErrConflict
	}

	now := s.now()
	status := domain.ProposalStatusRejected
	if accepted {
		status = domain.ProposalStatusAccepted
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.repo.UpdateStatus(ctx, proposal.ID, status, now, &admin.ID); err != nil {
			return err
		}
		stat, err := s.repo.GetStatistic(ctx, proposal.UserID)
		if err != nil {
			return err
		}
		if stat == nil {
			stat = &domain.ProposalStatistic{UserID: proposal.UserID}
		}
		stat.Total++
		if accepted {
			stat.Approved++
		} else {
			stat.Rejected++
		}
		stat.Recalculate()
		if err := s.repo.UpsertStatistic(ctx, stat); err != nil {
			return err
		}
		if accepted {
			return s.catalog.UpdatePrice(ctx, proposal.StationID, proposal.FuelTypeID, proposal.Price, now)
		}
		return nil
	})
	if err != nil {
		zap.L().Error("can't change proposal status", zap.String("token", token), zap.Error(err))
		return nil, err
	}

	proposal.Status = status
	proposal.ReviewedAt = &now
	proposal.ReviewedBy = &admin.ID

	s.cache.RemoveByPattern(ctx, "proposals:*")
	if accepted {
		s.cache.RemoveByPattern(ctx, "prices:*")
	}

	s.notifyStatus(ctx, proposal, accepted)
	s.events.Publish(ctx, events.PriceProposalEvaluated{Proposal: *proposal, Accepted: accepted, Admin: *admin})
	zap.L().Info("proposal evaluated", zap.String("token", token), zap.Bool("accepted", accepted))
	return proposal, nil
}

func (s *Service) notifyStatus(ctx context.Context, proposal *domain.PriceProposal, accepted bool) {
	submitter, err := s.accounts.FindUserByID(ctx, proposal.UserID)
	if err != nil || submitter == nil {
		zap.L().Warn("can't resolve submitter for proposal notification", zap.Int("userID", proposal.UserID), zap.Error(err))
		return
	}
	station, err := s.catalog.FindStationByID(ctx, proposal.StationID)
	if err != nil || station == nil {
		zap.L().Warn("can't resolve station for proposal notification", zap.Int("stationID", proposal.StationID), zap.Error(err))
		return
	}
	if err := s.notifier.SendProposalStatusNotification(ctx, *submitter, accepted, *station, proposal.Price); err != nil {
		zap.L().Warn("can't send proposal status notification", zap.String("email", submitter.Email), zap.Error(err))
	}
}

// GetProposals lists a user's own submissions.
func (s *Service) GetProposals(ctx context.Context, userEmail string) ([]domain.PriceProposal, error) {
	user, err := s.accounts.FindUserByEmail(ctx, userEmail)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	key := fmt.Sprintf("proposals:user:%d", user.ID)
	return cache.GetOrSet(ctx, s.cache, key, 0, func(ctx context.Context) ([]domain.PriceProposal, error) {
		return s.repo.FindByUserID(ctx, user.ID)
	})
}

// ExpireProposals rejects every proposal left PENDING longer than the
// configured TTL and returns how many it flipped. The sweep path is silent:
// it updates no statistics, sends no notification and publishes no event.
// Auto-rejection is not an admin evaluation, so the acceptance rate keeps
// measuring review outcomes only.
func (s *Service) ExpireProposals(ctx context.Context, now time.Time) (int, error) {
	stale, err := s.repo.FindStalePending(ctx, now.Add(-s.ttl))
	if err != nil {
		return 0, err
	}

	expired := 0
	for _, proposal := range stale {
		if err := s.repo.UpdateStatus(ctx, proposal.ID, domain.ProposalStatusRejected, now, nil); err != nil {
			zap.L().Error("can't expire proposal", zap.String("token", proposal.Token), zap.Error(err))
			continue
		}
		expired++
	}
	if expired > 0 {
		s.cache.RemoveByPattern(ctx, "proposals:*")
	}
	return expired, nil
}
