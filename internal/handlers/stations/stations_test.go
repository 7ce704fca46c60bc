package stations

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fuelwatch/fuelwatch/internal/domain"
	"github.com/fuelwatch/fuelwatch/internal/dto"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*StationHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestGetStationsHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		url          string
		prepareMock  func()
		expectedCode int
		expectedLen  int
	}{
		{
			name: "All stations",
			url:  "/api/stations",
			prepareMock: func() {
				service.EXPECT().GetStations(gomock.Any(), 0).Return([]domain.Station{{ID: 1}, {ID: 2}}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name: "Filtered by brand",
			url:  "/api/stations?brandId=3",
			prepareMock: func() {
				service.EXPECT().GetStations(gomock.Any(), 3).Return([]domain.Station{{ID: 2, BrandID: 3}}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  1,
		},
		{
			name:         "Invalid brand filter",
			url:          "/api/stations?brandId=abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Service error",
			url:  "/api/stations",
			prepareMock: func() {
				service.EXPECT().GetStations(gomock.Any(), 0).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("GET", tt.url, nil)
			rr := httptest.NewRecorder()

			handler.GetStations(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusOK {
				var resp []dto.StationDTO
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Len(t, resp, tt.expectedLen)
			}
		})
	}
}

func TestGetStationHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		id           string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Found",
			id:   "2",
			prepareMock: func() {
				service.EXPECT().GetStation(gomock.Any(), 2).Return(&domain.Station{ID: 2, Name: "Shell Centrum"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Not found",
			id:   "99",
			prepareMock: func() {
				service.EXPECT().GetStation(gomock.Any(), 99).Return(nil, domain.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Invalid id",
			id:           "abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("GET", "/api/stations/"+tt.id, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
			rr := httptest.NewRecorder()

			handler.GetStation(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestGetStationPricesHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().GetStationPrices(gomock.Any(), 2).Return([]domain.Price{
		{FuelTypeID: 3, Amount: 6.49},
	}, nil)

	req := httptest.NewRequest("GET", "/api/stations/2/prices", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", "2")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	rr := httptest.NewRecorder()

	handler.GetStationPrices(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp []dto.PriceDTO
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Len(t, resp, 1)
	assert.Equal(t, 6.49, resp[0].Amount)
}

func TestGetBrandsAndFuelTypesHandlers(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().GetBrands(gomock.Any()).Return([]domain.Brand{{ID: 3, Name: "Shell"}}, nil)

	req := httptest.NewRequest("GET", "/api/brands", nil)
	rr := httptest.NewRecorder()
	handler.GetBrands(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)

	service.EXPECT().GetFuelTypes(gomock.Any()).Return([]domain.FuelType{{ID: 3, Code: "ON", Name: "Diesel"}}, nil)

	req = httptest.NewRequest("GET", "/api/fuel-types", nil)
	rr = httptest.NewRecorder()
	handler.GetFuelTypes(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp []dto.FuelTypeDTO
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "ON", resp[0].Code)
}
