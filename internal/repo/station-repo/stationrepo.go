package stationrepo

import (
	"context"
	"errors"

	"github.com/fuelwatch/fuelwatch/internal/domain"
	"github.com/fuelwatch/fuelwatch/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const stationColumns = "id, name, brand_id, address, latitude, longitude, created_at"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// ListStations returns all stations, or only one brand's stations when
// brandID is non-zero.
func (r *Repository) ListStations(ctx context.Context, brandID int) ([]domain.Station, error) {
	query := "SELECT " + stationColumns + " FROM stations ORDER BY name ASC"
	args := []any{}
	if brandID != 0 {
		query = "SELECT " + stationColumns + " FROM stations WHERE brand_id = $1 ORDER BY name ASC"
		args = append(args, brandID)
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get stations", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var stations []domain.Station
	for rows.Next() {
		var station domain.Station
		err := rows.Scan(&station.ID, &station.Name, &station.BrandID, &station.Address, &station.Latitude, &station.Longitude, &station.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan station row", zap.Error(err))
			return nil, err
		}
		stations = append(stations, station)
	}
	return stations, nil
}

func (r *Repository) FindStationByID(ctx context.Context, id int) (*domain.Station, error) {
	row := r.db.QueryRow(ctx, "SELECT "+stationColumns+" FROM stations WHERE id = $1", id)

	var station domain.Station
	err := row.Scan(&station.ID, &station.Name, &station.BrandID, &station.Address, &station.Latitude, &station.Longitude, &station.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find station", zap.Error(err))
		return nil, err
	}
	return &station, nil
}

func (r *Repository) CreateStation(ctx context.Context, station *domain.Station) (*domain.Station, error) {
	query := `
        INSERT INTO stations (name, brand_id, address, latitude, longitude)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, station.Name, station.BrandID, station.Address, station.Latitude, station.Longitude).
		Scan(&station.ID, &station.CreatedAt)
	if err != nil {
		zap.L().Error("can't save station", zap.Error(err))
		return nil, err
	}
	return station, nil
}

func (r *Repository) UpdateStation(ctx context.Context, station *domain.Station) error {
	query := `
        UPDATE stations
        SET name = $1, brand_id = $2, address = $3, latitude = $4, longitude = $5
        WHERE id = $6
    `
	_, err := r.db.Exec(ctx, query, station.Name, station.BrandID, station.Address, station.Latitude, station.Longitude, station.ID)
	if err != nil {
		zap.L().Error("can't update station", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) DeleteStation(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, "DELETE FROM stations WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't delete station", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	rows, err := r.db.Query(ctx, "SELECT id, name FROM brands ORDER BY name ASC")
	if err != nil {
		zap.L().Error("can't get brands", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var brands []domain.Brand
	for rows.Next() {
		var brand domain.Brand
		if err := rows.Scan(&brand.ID, &brand.Name); err != nil {
			zap.L().Error("can't scan brand row", zap.Error(err))
			return nil, err
		}
		brands = append(brands, brand)
	}
	return brands, nil
}

func (r *Repository) ListFuelTypes(ctx context.Context) ([]domain.FuelType, error) {
	rows, err := r.db.Query(ctx, "SELECT id, code, name FROM fuel_types ORDER BY code ASC")
	if err != nil {
		zap.L().Error("can't get fuel types", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var fuelTypes []domain.FuelType
	for rows.Next() {
		var fuelType domain.FuelType
		if err := rows.Scan(&fuelType.ID, &fuelType.Code, &fuelType.Name); err != nil {
			zap.L().Error("can't scan fuel type row", zap.Error(err))
			return nil, err
		}
		fuelTypes = append(fuelTypes, fuelType)
	}
	return fuelTypes, nil
}

func (r *Repository) FindFuelTypeByCode(ctx context.Context, code string) (*domain.FuelType, error) {
	row := r.db.QueryRow(ctx, "SELECT id, code, name FROM fuel_types WHERE code = $1", code)

	var fuelType domain.FuelType
	err := row.Scan(&fuelType.ID, &fuelType.Code, &fuelType.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find fuel type", zap.Error(err))
		return nil, err
	}
	return &fuelType, nil
}

func (r *Repository) ListPricesByStation(ctx context.Context, stationID int) ([]domain.Price, error) {
	query := `
        SELECT id, station_id, fuel_type_id, amount, updated_at
        FROM prices
        WHERE station_id = $1
        ORDER BY fuel_type_id ASC
    `
	rows, err := r.db.Query(ctx, query, stationID)
	if err != nil {
		zap.L().Error("can't get prices", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var prices []domain.Price
	for rows.Next() {
		var price domain.Price
		err := rows.Scan(&price.ID, &price.StationID, &price.FuelTypeID, &price.Amount, &price.UpdatedAt)
		if err != nil {
			zap.L().Error("can't scan price row", zap.Error(err))
			return nil, err
		}
		prices = append(prices, price)
	}
	return prices, nil
}

func (r *Repository) UpsertPrice(ctx context.Context, price *domain.Price) error {
	query := `
        INSERT INTO prices (station_id, fuel_type_id, amount, updated_at)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (station_id, fuel_type_id) DO UPDATE
        SET amount = EXCLUDED.amount, updated_at = EXCLUDED.updated_at
    `
	_, err := r.db.Exec(ctx, query, price.StationID, price.FuelTypeID, price.Amount, price.UpdatedAt)
	if err != nil {
		zap.L().Error("can't upsert price", zap.Error(err))
		return err
	}
	return nil
}
