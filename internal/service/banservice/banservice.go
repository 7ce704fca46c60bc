package banservice

import (
	"context"
	"time"

	"github.com/fuelwatch/fuelwatch/internal/domain"
	"github.com/fuelwatch/fuelwatch/internal/events"
	"github.com/fuelwatch/fuelwatch/internal/notify"
	"github.com/fuelwatch/fuelwatch/internal/pg"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const expireConcurrency = 4

type Repo interface {
	FindActiveByUserID(ctx context.Context, userID int) (*domain.BanRecord, error)
	FindExpired(ctx context.Context, now time.Time) ([]domain.BanRecord, error)
	Create(ctx context.Context, record *domain.BanRecord) (*domain.BanRecord, error)
	Deactivate(ctx context.Context, recordID int, unbannedAt time.Time) error
}

// Accounts is the account subsystem view the ban lifecycle needs. The
// lockout written here and the BanRecord are committed in one transaction.
type Accounts interface {
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	FindUserByID(ctx context.Context, id int) (*domain.User, error)
	IsInRole(user *domain.User, role string) bool
	SetLockoutUntil(ctx context.Context, userID int, until *time.Time) error
	ResetFailedLoginCount(ctx context.Context, userID int) error
	IsLockedOut(ctx context.Context, userID int) (bool, error)
}

type Events interface {
	Publish(ctx context.Context, event events.Event)
}

type LockoutRequest struct {
	TargetEmail string
	Reason      string
	// Days is nil for a permanent ban.
	Days *int
}

type Service struct {
	repo      Repo
	accounts  Accounts
	notifier  notify.Sender
	events    Events
	txManager pg.TXManager
	now       func() time.Time
}

func New(repo Repo, accounts Accounts, notifier notify.Sender, ev Events, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		accounts:  accounts,
		notifier:  notifier,
		events:    ev,
		txManager: txManager,
		now:       time.Now,
	}
}

func (s *Service) resolveAdmin(ctx context.Context, adminEmail string) (*domain.User, error) {
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
	return admin, nil
}

// Lockout bans a user. Any previously active ban for the target is
// deactivated, the new record and the account lockout are committed
// together, and UserBanned is published once the store reflects the ban.
func (s *Service) Lockout(ctx context.Context, adminEmail string, req LockoutRequest) (*domain.BanRecord, error) {
	admin, err := s.resolveAdmin(ctx, adminEmail)
	if err != nil {
		return nil, err
	}
	if req.Reason == "" {
		return nil, domain.ErrBadRequest
	}
	if req.Days != nil && *req.Days <= 0 {
		return nil, domain.ErrBadRequest
	}
	target, err := s.accounts.FindUserByEmail(ctx, req.TargetEmail)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, domain.ErrNotFound
	}

	now := s.now()
	until := domain.PermanentBanUntil
	if req.Days != nil {
		until = now.Add(time.Duration(*req.Days) * 24 * time.Hour)
	}

	record := &domain.BanRecord{
		UserID:      target.ID,
		AdminID:     admin.ID,
		Reason:      req.Reason,
		BannedAt:    now,
		BannedUntil: until,
		IsActive:    true,
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		active, err := s.repo.FindActiveByUserID(ctx, target.ID)
		if err != nil {
			return err
		}
		if active != nil {
			if err := s.repo.Deactivate(ctx, active.ID, now); err != nil {
				return err
			}
		}
		record, err = s.repo.Create(ctx, record)
		if err != nil {
			return err
		}
		return s.accounts.SetLockoutUntil(ctx, target.ID, &until)
	})
	if err != nil {
		zap.L().Error("can't apply lockout", zap.String("target", req.TargetEmail), zap.Error(err))
		return nil, err
	}

	if err := s.notifier.SendBanNotification(ctx, *target, req.Reason, until); err != nil {
		zap.L().Warn("can't send ban notification", zap.String("email", target.Email), zap.Error(err))
	}
	s.events.Publish(ctx, events.UserBanned{User: *target, Admin: *admin, Reason: req.Reason, Until: until})
	zap.L().Info("user banned", zap.String("target", req.TargetEmail), zap.Time("until", until))
	return record, nil
}

// Unlock lifts an active ban by admin action. The target must currently be
// locked out according to the account subsystem.
func (s *Service) Unlock(ctx context.Context, adminEmail, targetEmail string) (*domain.BanRecord, error) {
	admin, err := s.resolveAdmin(ctx, adminEmail)
	if err != nil {
		return nil, err
	}
	target, err := s.accounts.FindUserByEmail(ctx, targetEmail)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, domain.ErrNotFound
	}
	locked, err := s.accounts.IsLockedOut(ctx, target.ID)
	if err != nil {
		return nil, err
	}
	if !locked {
		return nil, domain.ErrConflict
	}

	now := s.now()
	var record *domain.BanRecord
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.accounts.SetLockoutUntil(ctx, target.ID, nil); err != nil {
			return err
		}
		record, err = s.repo.FindActiveByUserID(ctx, target.ID)
		if err != nil {
			return err
		}
		if record == nil {
			// Lockout without a record means the two views diverged.
			zap.L().Warn("locked out user has no active ban record", zap.String("target", targetEmail))
			return nil
		}
		return s.repo.Deactivate(ctx, record.ID, now)
	})
	if err != nil {
		zap.L().Error("can't unlock user", zap.String("target", targetEmail), zap.Error(err))
		return nil, err
	}
	if record != nil {
		record.IsActive = false
		record.UnbannedAt = &now
	}

	s.events.Publish(ctx, events.UserUnlocked{User: *target, Admin: *admin})
	zap.L().Info("user unlocked", zap.String("target", targetEmail))
	return record, nil
}

// ExpireBans deactivates every active ban whose BannedUntil has passed and
// returns how many it flipped. Each record is handled independently: a
// failure on one never blocks the rest, and a record already flipped is not
// selected by the next sweep, which is the sole idempotency mechanism.
func (s *Service) ExpireBans(ctx context.Context, now time.Time) (int, error) {
	records, err := s.repo.FindExpired(ctx, now)
	if err != nil {
		return 0, err
	}

	var expired int
	var g errgroup.Group
	g.SetLimit(expireConcurrency)
	results := make([]bool, len(records))
	for i, record := range records {
		i, record := i, record
		g.Go(func() error {
			if err := s.expireOne(ctx, record, now); err != nil {
				zap.L().Error("can't expire ban", zap.Int("recordID", record.ID), zap.Error(err))
				return nil
			}
			results[i] = true
			return nil
		})
	}
	_ = g.Wait()

	for _, ok := range results {
		if ok {
			expired++
		}
	}
	return expired, nil
}

func (s *Service) expireOne(ctx context.Context, record domain.BanRecord, now time.Time) error {
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.accounts.SetLockoutUntil(ctx, record.UserID, nil); err != nil {
			return err
		}
		if err := s.accounts.ResetFailedLoginCount(ctx, record.UserID); err != nil {
			return err
		}
		return s.repo.Deactivate(ctx, record.ID, now)
	})
	if err != nil {
		return err
	}

	user, err := s.accounts.FindUserByID(ctx, record.UserID)
	if err != nil || user == nil {
		zap.L().Warn("can't resolve user for ban expiry notification", zap.Int("userID", record.UserID), zap.Error(err))
		return nil
	}
	if err := s.notifier.SendBanLiftedNotification(ctx, *user); err != nil {
		zap.L().Warn("can't send ban expiry notification", zap.String("email", user.Email), zap.Error(err))
	}
	zap.L().Info("ban expired", zap.String("email", user.Email), zap.Int("recordID", record.ID))
	return nil
}
