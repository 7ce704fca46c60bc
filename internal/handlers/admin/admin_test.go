package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fuelwatch/fuelwatch/internal/domain"
	"github.com/fuelwatch/fuelwatch/internal/dto"
	"github.com/fuelwatch/fuelwatch/internal/service/banservice"
	"github.com/fuelwatch/fuelwatch/pkg/auth"
	"github.com/fuelwatch/fuelwatch/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

type mocks struct {
	bans      *MockBanService
	proposals *MockProposalService
	stations  *MockStationService
}

func NewMock(t *testing.T) (*AdminHandler, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		bans:      NewMockBanService(ctrl),
		proposals: NewMockProposalService(ctrl),
		stations:  NewMockStationService(ctrl),
	}
	handler := New(m.bans, m.proposals, m.stations)
	defer ctrl.Finish()
	return handler, m
}

func authedContext(email string) context.Context {
	return context.WithValue(context.Background(), auth.EmailKey, email)
}

func TestLockoutHandler(t *testing.T) {
	handler, m := NewMock(t)

	bannedAt := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	days := 7

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Temporary ban",
			body: `{"email":"driver@example.com","reason":"spam","days":7}`,
			prepareMock: func() {
				m.bans.EXPECT().Lockout(gomock.Any(), "admin@example.com", banservice.LockoutRequest{
					TargetEmail: "driver@example.com",
					Reason:      "spam",
					Days:        &days,
				}).Return(&domain.BanRecord{
					UserID:      2,
					Reason:      "spam",
					BannedAt:    bannedAt,
					BannedUntil: bannedAt.AddDate(0, 0, 7),
					IsActive:    true,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Permanent ban",
			body: `{"email":"driver@example.com","reason":"fraud"}`,
			prepareMock: func() {
				m.bans.EXPECT().Lockout(gomock.Any(), "admin@example.com", banservice.LockoutRequest{
					TargetEmail: "driver@example.com",
					Reason:      "fraud",
				}).Return(&domain.BanRecord{
					UserID:      2,
					Reason:      "fraud",
					BannedAt:    bannedAt,
					BannedUntil: domain.PermanentBanUntil,
					IsActive:    true,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Not an admin",
			body: `{"email":"driver@example.com","reason":"spam"}`,
			prepareMock: func() {
				m.bans.EXPECT().Lockout(gomock.Any(), "admin@example.com", gomock.Any()).Return(nil, domain.ErrForbidden)
			},
			expectedCode:  http.StatusForbidden,
			expectedError: "Admin role required",
		},
		{
			name: "Unknown target",
			body: `{"email":"nobody@example.com","reason":"spam"}`,
			prepareMock: func() {
				m.bans.EXPECT().Lockout(gomock.Any(), "admin@example.com", gomock.Any()).Return(nil, domain.ErrNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "Not found",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/admin/bans", bytes.NewReader([]byte(tt.body)))
			req = req.WithContext(authedContext("admin@example.com"))
			rr := httptest.NewRecorder()

			handler.Lockout(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestLockoutHandler_PermanentHidesUntil(t *testing.T) {
	handler, m := NewMock(t)

	m.bans.EXPECT().Lockout(gomock.Any(), "admin@example.com", gomock.Any()).Return(&domain.BanRecord{
		UserID:      2,
		Reason:      "fraud",
		BannedUntil: domain.PermanentBanUntil,
		IsActive:    true,
	}, nil)

	req := httptest.NewRequest("POST", "/api/admin/bans", bytes.NewReader([]byte(`{"email":"driver@example.com","reason":"fraud"}`)))
	req = req.WithContext(authedContext("admin@example.com"))
	rr := httptest.NewRecorder()

	handler.Lockout(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp dto.BanDTO
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Nil(t, resp.BannedUntil)
	assert.True(t, resp.Active)
}

func TestUnlockHandler(t *testing.T) {
	handler, m := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Unlocked",
			prepareMock: func() {
				unbannedAt := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
				m.bans.EXPECT().Unlock(gomock.Any(), "admin@example.com", "driver@example.com").Return(&domain.BanRecord{
					UserID:     2,
					Reason:     "spam",
					UnbannedAt: &unbannedAt,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Not locked",
			prepareMock: func() {
				m.bans.EXPECT().Unlock(gomock.Any(), "admin@example.com", "driver@example.com").Return(nil, domain.ErrConflict)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "Conflict",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/admin/bans/unlock", bytes.NewReader([]byte(`{"email":"driver@example.com"}`)))
			req = req.WithContext(authedContext("admin@example.com"))
			rr := httptest.NewRecorder()

			handler.Unlock(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestDecideProposalHandler(t *testing.T) {
	handler, m := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Accepted",
			body: `{"accepted":true}`,
			prepareMock: func() {
				m.proposals.EXPECT().ChangeStatus(gomock.Any(), "admin@example.com", "tok-1", true).
					Return(&domain.PriceProposal{Token: "tok-1", Status: domain.ProposalStatusAccepted}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Already reviewed",
			body: `{"accepted":false}`,
			prepareMock: func() {
				m.proposals.EXPECT().ChangeStatus(gomock.Any(), "admin@example.com", "tok-1", false).
					Return(nil, domain.ErrConflict)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "Conflict",
		},
		{
			name: "Unknown token",
			body: `{"accepted":true}`,
			prepareMock: func() {
				m.proposals.EXPECT().ChangeStatus(gomock.Any(), "admin@example.com", "tok-1", true).
					Return(nil, domain.ErrNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "Not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/admin/proposals/tok-1/decision", bytes.NewReader([]byte(tt.body)))
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("token", "tok-1")
			ctx := context.WithValue(authedContext("admin@example.com"), chi.RouteCtxKey, rctx)
			req = req.WithContext(ctx)
			rr := httptest.NewRecorder()

			handler.DecideProposal(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestStationAdminHandlers(t *testing.T) {
	handler, m := NewMock(t)

	m.stations.EXPECT().CreateStation(gomock.Any(), gomock.Any()).Return(&domain.Station{ID: 2, Name: "Shell Centrum"}, nil)

	req := httptest.NewRequest("POST", "/api/admin/stations", bytes.NewReader([]byte(`{"name":"Shell Centrum","brandId":3}`)))
	rr := httptest.NewRecorder()
	handler.CreateStation(rr, req)
	assert.Equal(t, http.StatusCreated, rr.Code)

	m.stations.EXPECT().DeleteStation(gomock.Any(), 2).Return(domain.ErrNotFound)

	req = httptest.NewRequest("DELETE", "/api/admin/stations/2", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", "2")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	rr = httptest.NewRecorder()
	handler.DeleteStation(rr, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
