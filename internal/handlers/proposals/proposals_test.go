package proposals

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/fuelwatch/fuelwatch/internal/domain"
	"github.com/fuelwatch/fuelwatch/internal/dto"
	"github.com/fuelwatch/fuelwatch/internal/service/proposalservice"
	"github.com/fuelwatch/fuelwatch/pkg/auth"
	"github.com/fuelwatch/fuelwatch/pkg/utils"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*ProposalHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authedContext(email string) context.Context {
	return context.WithValue(context.Background(), auth.EmailKey, email)
}

func submitForm(t *testing.T, stationID, price, fuelType, contentType string) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	assert.NoError(t, writer.WriteField("stationId", stationID))
	assert.NoError(t, writer.WriteField("price", price))
	assert.NoError(t, writer.WriteField("fuelType", fuelType))

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="photo"; filename="receipt.jpg"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	assert.NoError(t, err)
	_, err = part.Write([]byte("fake image bytes"))
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestSubmitHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		stationID     string
		price         string
		expectedCode  int
		expectedError string
	}{
		{
			name:      "Accepted",
			stationID: "1",
			price:     "6.49",
			prepareMock: func() {
				service.EXPECT().Submit(gomock.Any(), "driver@example.com", proposalservice.SubmitRequest{
					StationID:    1,
					FuelTypeCode: "ON",
					Price:        6.49,
					Photo:        proposalservice.Photo{Name: "receipt.jpg", ContentType: "image/jpeg"},
				}).Return(&domain.PriceProposal{Token: "tok-1", Status: domain.ProposalStatusPending}, nil)
			},
			expectedCode: http.StatusAccepted,
		},
		{
			name:          "Invalid station id",
			stationID:     "abc",
			price:         "6.49",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid station id",
		},
		{
			name:          "Invalid price",
			stationID:     "1",
			price:         "cheap",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid price",
		},
		{
			name:      "Unknown station",
			stationID: "99",
			price:     "6.49",
			prepareMock: func() {
				service.EXPECT().Submit(gomock.Any(), "driver@example.com", gomock.Any()).Return(nil, domain.ErrNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "Station not found",
		},
		{
			name:      "Rejected photo type",
			stationID: "1",
			price:     "6.49",
			prepareMock: func() {
				service.EXPECT().Submit(gomock.Any(), "driver@example.com", gomock.Any()).Return(nil, domain.ErrBadRequest)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid proposal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			body, contentType := submitForm(t, tt.stationID, tt.price, "ON", "image/jpeg")
			req := httptest.NewRequest("POST", "/api/proposals", body)
			req.Header.Set("Content-Type", contentType)
			req = req.WithContext(authedContext("driver@example.com"))
			rr := httptest.NewRecorder()

			handler.Submit(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				var resp dto.SubmitProposalResponseDTO
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, "tok-1", resp.Token)
			}
		})
	}
}

func TestSubmitHandler_Unauthenticated(t *testing.T) {
	handler, _ := NewMock(t)

	body, contentType := submitForm(t, "1", "6.49", "ON", "image/jpeg")
	req := httptest.NewRequest("POST", "/api/proposals", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()

	handler.Submit(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestGetProposalsHandler(t *testing.T) {
	handler, service := NewMock(t)

	createdAt := time.Date(2024, time.April, 1, 9, 0, 0, 0, time.UTC)
	service.EXPECT().GetProposals(gomock.Any(), "driver@example.com").Return([]domain.PriceProposal{
		{Token: "tok-1", StationID: 1, FuelTypeID: 3, Price: 6.49, Status: domain.ProposalStatusPending, CreatedAt: createdAt},
	}, nil)

	req := httptest.NewRequest("GET", "/api/proposals", nil)
	req = req.WithContext(authedContext("driver@example.com"))
	rr := httptest.NewRecorder()

	handler.GetProposals(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp []dto.ProposalDTO
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Len(t, resp, 1)
	assert.Equal(t, "tok-1", resp[0].Token)
	assert.Equal(t, domain.ProposalStatusPending, resp[0].Status)
}
