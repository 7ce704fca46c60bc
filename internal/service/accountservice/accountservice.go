package accountservice

import (
	"context"
	"time"

	"github.com/fuelwatch/fuelwatch/internal/domain"
	"github.com/fuelwatch/fuelwatch/pkg/auth"
	"go.uber.org/zap"
)

const tokenLifetime = 15 * time.Minute

type Repo interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	SetLockoutUntil(ctx context.Context, userID int, until *time.Time) error
	ResetFailedLoginCount(ctx context.Context, userID int) error
	IncrementFailedLoginCount(ctx context.Context, userID int) error
}

// Service is the account subsystem: registration, authentication and the
// lockout contract the ban lifecycle depends on.
type Service struct {
	repo        Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	now         func() time.Time
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		repo:        repo,
		hashService: hashService,
		jwtService:  jwtService,
		now:         time.Now,
	}
}

func (s *Service) Register(ctx context.Context, email, displayName, password string) (*domain.User, error) {
	existingUser, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists", zap.String("email", email))
		return nil, domain.ErrConflict
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	user := &domain.User{
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: hashedPassword,
		Role:         domain.RoleUser,
	}
	newUser, err := s.repo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("email", email))
	return newUser, nil
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil || user == nil {
		zap.L().Info("invalid credentials", zap.String("email", email))
		return nil, domain.ErrUnauthorized
	}
	if s.lockedOut(user) {
		zap.L().Info("login rejected, account locked out", zap.String("email", email))
		return nil, domain.ErrForbidden
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		if err := s.repo.IncrementFailedLoginCount(ctx, user.ID); err != nil {
			zap.L().Error("can't increment failed login count", zap.Error(err))
		}
		return nil, domain.ErrUnauthorized
	}
	if user.FailedLoginCount > 0 {
		if err := s.repo.ResetFailedLoginCount(ctx, user.ID); err != nil {
			zap.L().Error("can't reset failed login count", zap.Error(err))
		}
	}
	zap.L().Info("user successfully authenticated", zap.String("email", email))
	return user, nil
}

func (s *Service) GenerateToken(user *domain.User) (string, error) {
	token, err := s.jwtService.GenerateJWT(user.Email, user.Role, s.now().Add(tokenLifetime))
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}

// The methods below form the Accounts contract consumed by the ban and
// proposal lifecycles.

func (s *Service) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.repo.FindByEmail(ctx, email)
}

func (s *Service) FindUserByID(ctx context.Context, id int) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) IsInRole(user *domain.User, role string) bool {
	return user != nil && user.Role == role
}

func (s *Service) SetLockoutUntil(ctx context.Context, userID int, until *time.Time) error {
	return s.repo.SetLockoutUntil(ctx, userID, until)
}

func (s *Service) ResetFailedLoginCount(ctx context.Context, userID int) error {
	return s.repo.ResetFailedLoginCount(ctx, userID)
}

func (s *Service) IsLockedOut(ctx context.Context, userID int) (bool, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, domain.ErrNotFound
	}
	return s.lockedOut(user), nil
}

func (s *Service) lockedOut(user *domain.User) bool {
	return user.LockoutUntil != nil && user.LockoutUntil.After(s.now())
}
