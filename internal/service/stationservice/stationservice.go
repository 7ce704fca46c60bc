package stationservice

import (
	"context"
	"fmt"
	"time"

	"github.com/fuelwatch/fuelwatch/internal/cache"
	"github.com/fuelwatch/fuelwatch/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	ListStations(ctx context.Context, brandID int) ([]domain.Station, error)
	FindStationByID(ctx context.Context, id int) (*domain.Station, error)
	CreateStation(ctx context.Context, station *domain.Station) (*domain.Station, error)
	UpdateStation(ctx context.Context, station *domain.Station) error
	DeleteStation(ctx context.Context, id int) error
	ListBrands(ctx context.Context) ([]domain.Brand, error)
	ListFuelTypes(ctx context.Context) ([]domain.FuelType, error)
	FindFuelTypeByCode(ctx context.Context, code string) (*domain.FuelType, error)
	ListPricesByStation(ctx context.Context, stationID int) ([]domain.Price, error)
	UpsertPrice(ctx context.Context, price *domain.Price) error
}

// Service serves the read-heavy catalog behind the cache and invalidates
// the affected key families after every write.
type Service struct {
	repo  Repo
	cache *cache.Cache
}

func New(repo Repo, c *cache.Cache) *Service {
	return &Service{repo: repo, cache: c}
}

// GetStations lists stations, optionally filtered by brand. Each filter
// variant is cached under its own key so pattern invalidation catches all
// of them.
func (s *Service) GetStations(ctx context.Context, brandID int) ([]domain.Station, error) {
	key := fmt.Sprintf("stations:list:%d", brandID)
	return cache.GetOrSet(ctx, s.cache, key, 0, func(ctx context.Context) ([]domain.Station, error) {
		return s.repo.ListStations(ctx, brandID)
	})
}

func (s *Service) GetStation(ctx context.Context, id int) (*domain.Station, error) {
	station, err := s.repo.FindStationByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if station == nil {
		return nil, domain.ErrNotFound
	}
	return station, nil
}

func (s *Service) GetStationPrices(ctx context.Context, stationID int) ([]domain.Price, error) {
	key := fmt.Sprintf("prices:station:%d", stationID)
	return cache.GetOrSet(ctx, s.cache, key, 0, func(ctx context.Context) ([]domain.Price, error) {
		return s.repo.ListPricesByStation(ctx, stationID)
	})
}

func (s *Service) GetBrands(ctx context.Context) ([]domain.Brand, error) {
	return cache.GetOrSet(ctx, s.cache, "brands:all", 0, func(ctx context.Context) ([]domain.Brand, error) {
		return s.repo.ListBrands(ctx)
	})
}

func (s *Service) GetFuelTypes(ctx context.Context) ([]domain.FuelType, error) {
	return cache.GetOrSet(ctx, s.cache, "fueltypes:all", 0, func(ctx context.Context) ([]domain.FuelType, error) {
		return s.repo.ListFuelTypes(ctx)
	})
}

func (s *Service) CreateStation(ctx context.Context, station *domain.Station) (*domain.Station, error) {
	if station.Name == "" {
		return nil, domain.ErrBadRequest
	}
	created, err := s.repo.CreateStation(ctx, station)
	if err != nil {
		zap.L().Error("can't create station", zap.Error(err))
		return nil, err
	}
	s.cache.RemoveByPattern(ctx, "stations:*")
	return created, nil
}

func (s *Service) UpdateStation(ctx context.Context, station *domain.Station) error {
	existing, err := s.repo.FindStationByID(ctx, station.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	if err := s.repo.UpdateStation(ctx, station); err != nil {
		zap.L().Error("can't update station", zap.Error(err))
		return err
	}
	s.cache.RemoveByPattern(ctx, "stations:*")
	return nil
}

func (s *Service) DeleteStation(ctx context.Context, id int) error {
	existing, err := s.repo.FindStationByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	if err := s.repo.DeleteStation(ctx, id); err != nil {
		zap.L().Error("can't delete station", zap.Error(err))
		return err
	}
	s.cache.RemoveByPattern(ctx, "stations:*")
	s.cache.RemoveByPattern(ctx, "prices:*")
	return nil
}

// The methods below serve the proposal lifecycle's catalog contract.

func (s *Service) FindStationByID(ctx context.Context, id int) (*domain.Station, error) {
	return s.repo.FindStationByID(ctx, id)
}

func (s *Service) FindFuelTypeByCode(ctx context.Context, code string) (*domain.FuelType, error) {
	return s.repo.FindFuelTypeByCode(ctx, code)
}

func (s *Service) UpdatePrice(ctx context.Context, stationID, fuelTypeID int, amount float64, updatedAt time.Time) error {
	return s.repo.UpsertPrice(ctx, &domain.Price{
		StationID:  stationID,
		FuelTypeID: fuelTypeID,
		Amount:     amount,
		UpdatedAt:  updatedAt,
	})
}
