package stationrepo

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

var stationCols = []string{"id", "name", "brand_id", "address", "latitude", "longitude", "created_at"}

func TestRepository_ListStations(t *testing.T) {
	repo, mock := NewMock(t)

	createdAt := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	// All stations.
	mock.ExpectQuery(regexp.QuoteMeta("FROM stations ORDER BY name ASC")).
		WillReturnRows(pgxmock.NewRows(stationCols).
			AddRow(1, "Orlen Wschodnia", 2, "Wschodnia 12", 51.75, 19.47, createdAt).
			AddRow(2, "Shell Centrum", 3, "Piotrkowska 1", 51.77, 19.45, createdAt))

	stations, err := repo.ListStations(context.Background(), 0)
	assert.NoError(t, err)
	assert.Len(t, stations, 2)

	// Filtered by brand.
	mock.ExpectQuery(regexp.QuoteMeta("WHERE brand_id = $1")).
		WithArgs(3).
		WillReturnRows(pgxmock.NewRows(stationCols).
			AddRow(2, "Shell Centrum", 3, "Piotrkowska 1", 51.77, 19.45, createdAt))

	stations, err = repo.ListStations(context.Background(), 3)
	assert.NoError(t, err)
	assert.Len(t, stations, 1)
	assert.Equal(t, "Shell Centrum", stations[0].Name)
}

func TestRepository_FindStationByID(t *testing.T) {
	repo, mock := NewMock(t)

	createdAt := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM stations WHERE id = $1")).
		WithArgs(2).
		WillReturnRows(pgxmock.NewRows(stationCols).
			AddRow(2, "Shell Centrum", 3, "Piotrkowska 1", 51.77, 19.45, createdAt))

	station, err := repo.FindStationByID(context.Background(), 2)
	assert.NoError(t, err)
	assert.Equal(t, "Shell Centrum", station.Name)

	mock.ExpectQuery(regexp.QuoteMeta("FROM stations WHERE id = $1")).
		WithArgs(99).
		WillReturnError(pgx.ErrNoRows)

	station, err = repo.FindStationByID(context.Background(), 99)
	assert.NoError(t, err)
	assert.Nil(t, station)
}

func TestRepository_CreateUpdateDeleteStation(t *testing.T) {
	repo, mock := NewMock(t)

	createdAt := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	station := &domain.Station{Name: "Shell Centrum", BrandID: 3, Address: "Piotrkowska 1", Latitude: 51.77, Longitude: 19.45}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO stations")).
		WithArgs("Shell Centrum", 3, "Piotrkowska 1", 51.77, 19.45).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(2, createdAt))

	created, err := repo.CreateStation(context.Background(), station)
	assert.NoError(t, err)
	assert.Equal(t, 2, created.ID)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE stations")).
		WithArgs("Shell Centrum", 3, "Piotrkowska 1", 51.77, 19.45, 2).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	assert.NoError(t, repo.UpdateStation(context.Background(), created))

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM stations WHERE id = $1")).
		WithArgs(2).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	assert.NoError(t, repo.DeleteStation(context.Background(), 2))
}

func TestRepository_ListBrandsAndFuelTypes(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM brands ORDER BY name ASC")).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name"}).AddRow(2, "Orlen").AddRow(3, "Shell"))

	brands, err := repo.ListBrands(context.Background())
	assert.NoError(t, err)
	assert.Len(t, brands, 2)

	mock.ExpectQuery(regexp.QuoteMeta("FROM fuel_types ORDER BY code ASC")).
		WillReturnRows(pgxmock.NewRows([]string{"id", "code", "name"}).AddRow(3, "ON", "Diesel").AddRow(4, "PB95", "Unleaded 95"))

	fuelTypes, err := repo.ListFuelTypes(context.Background())
	assert.NoError(t, err)
	assert.Len(t, fuelTypes, 2)

	mock.ExpectQuery(regexp.QuoteMeta("FROM fuel_types WHERE code = $1")).
		WithArgs("ON").
		WillReturnRows(pgxmock.NewRows([]string{"id", "code", "name"}).AddRow(3, "ON", "Diesel"))

	fuelType, err := repo.FindFuelTypeByCode(context.Background(), "ON")
	assert.NoError(t, err)
	assert.Equal(t, 3, fuelType.ID)

	mock.ExpectQuery(regexp.QuoteMeta("FROM fuel_types WHERE code = $1")).
		WithArgs("LPG").
		WillReturnError(pgx.ErrNoRows)

	fuelType, err = repo.FindFuelTypeByCode(context.Background(), "LPG")
	assert.NoError(t, err)
	assert.Nil(t, fuelType)
}

func TestRepository_Prices(t *testing.T) {
	repo, mock := NewMock(t)

	updatedAt := time.Date(2024, time.April, 2, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM prices")).
		WithArgs(2).
		WillReturnRows(pgxmock.NewRows([]string{"id", "station_id", "fuel_type_id", "amount", "updated_at"}).
			AddRow(1, 2, 3, 6.49, updatedAt))

	prices, err := repo.ListPricesByStation(context.Background(), 2)
	assert.NoError(t, err)
	assert.Len(t, prices, 1)
	assert.Equal(t, 6.49, prices[0].Amount)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO prices")).
		WithArgs(2, 3, 6.55, updatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	assert.NoError(t, repo.UpsertPrice(context.Background(), &domain.Price{StationID: 2, FuelTypeID: 3, Amount: 6.55, UpdatedAt: updatedAt}))

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO prices")).
		WithArgs(2, 3, 6.55, updatedAt).
		WillReturnError(errors.New("database error"))
	assert.Error(t, repo.UpsertPrice(context.Background(), &domain.Price{StationID: 2, FuelTypeID: 3, Amount: 6.55, UpdatedAt: updatedAt}))
}
