package accountservice

import (
	"context"
	"testing"
	"time"

	"github.com/fuelwatch/fuelwatch/internal/domain"
	"github.com/fuelwatch/fuelwatch/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)
	service := New(repo, hashService, jwtService)
	return service, repo, hashService, jwtService
}

func TestRegister(t *testing.T) {
	service, repo, hashService, _ := NewMock(t)

	repo.EXPECT().FindByEmail(gomock.Any(), "new@example.com").Return(nil, nil)
	hashService.EXPECT().HashPassword("secret123").Return("hashed", nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, user *domain.User) (*domain.User, error) {
			user.ID = 1
			return user, nil
		})

	user, err := service.Register(context.Background(), "new@example.com", "New User", "secret123")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.Equal(t, "hashed", user.PasswordHash)
}

func TestRegister_ExistingEmail(t *testing.T) {
	service, repo, _, _ := NewMock(t)

	repo.EXPECT().FindByEmail(gomock.Any(), "taken@example.com").
		Return(&domain.User{ID: 1, Email: "taken@example.com"}, nil)

	_, err := service.Register(context.Background(), "taken@example.com", "Someone", "secret123")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestAuthenticate(t *testing.T) {
	now := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
	future := now.Add(time.Hour)
	past := now.Add(-time.Hour)

	tests := []struct {
		name        string
		user        *domain.User
		passwordOK  bool
		expectedErr error
		prepareMock func(repo *MockRepo, user *domain.User)
	}{
		{
			name:        "unknown user",
			user:        nil,
			expectedErr: domain.ErrUnauthorized,
		},
		{
			name:        "locked out account",
			user:        &domain.User{ID: 2, Email: "banned@example.com", LockoutUntil: &future},
			expectedErr: domain.ErrForbidden,
		},
		{
			name:       "expired lockout no longer blocks login",
			user:       &domain.User{ID: 3, Email: "user@example.com", PasswordHash: "hashed", LockoutUntil: &past},
			passwordOK: true,
		},
		{
			name:        "wrong password increments failed count",
			user:        &domain.User{ID: 4, Email: "user@example.com", PasswordHash: "hashed"},
			passwordOK:  false,
			expectedErr: domain.ErrUnauthorized,
			prepareMock: func(repo *MockRepo, user *domain.User) {
				repo.EXPECT().IncrementFailedLoginCount(gomock.Any(), user.ID).Return(nil)
			},
		},
		{
			name:       "successful login resets failed count",
			user:       &domain.User{ID: 5, Email: "user@example.com", PasswordHash: "hashed", FailedLoginCount: 2},
			passwordOK: true,
			prepareMock: func(repo *MockRepo, user *domain.User) {
				repo.EXPECT().ResetFailedLoginCount(gomock.Any(), user.ID).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, hashService, _ := NewMock(t)
			service.now = func() time.Time { return now }

			repo.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(tt.user, nil)
			if tt.user != nil && (tt.user.LockoutUntil == nil || tt.user.LockoutUntil.Before(now)) {
				hashService.EXPECT().ComparePassword(tt.user.PasswordHash, "secret123").Return(tt.passwordOK)
			}
			if tt.prepareMock != nil {
				tt.prepareMock(repo, tt.user)
			}

			user, err := service.Authenticate(context.Background(), "user@example.com", "secret123")
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, user)
		})
	}
}

func TestIsInRole(t *testing.T) {
	service, _, _, _ := NewMock(t)

	assert.True(t, service.IsInRole(&domain.User{Role: domain.RoleAdmin}, domain.RoleAdmin))
	assert.False(t, service.IsInRole(&domain.User{Role: domain.RoleUser}, domain.RoleAdmin))
	assert.False(t, service.IsInRole(nil, domain.RoleAdmin))
}

func TestIsLockedOut(t *testing.T) {
	now := time.Now()
	future := now.Add(time.Hour)

	service, repo, _, _ := NewMock(t)
	repo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, LockoutUntil: &future}, nil)
	locked, err := service.IsLockedOut(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, locked)

	repo.EXPECT().FindByID(gomock.Any(), 2).Return(&domain.User{ID: 2}, nil)
	locked, err = service.IsLockedOut(context.Background(), 2)
	require.NoError(t, err)
	assert.False(t, locked)

	repo.EXPECT().FindByID(gomock.Any(), 3).Return(nil, nil)
	_, err = service.IsLockedOut(context.Background(), 3)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGenerateToken(t *testing.T) {
	service, _, _, jwtService := NewMock(t)

	jwtService.EXPECT().GenerateJWT("user@example.com", domain.RoleUser, gomock.Any()).Return("token", nil)

	token, err := service.GenerateToken(&domain.User{Email: "user@example.com", Role: domain.RoleUser})
	require.NoError(t, err)
	assert.Equal(t, "token", token)
}
