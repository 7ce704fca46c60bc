package dto

import (
	"time"

	"github.com/fuelwatch/fuelwatch/internal/domain"
)

type StationDTO struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	BrandID   int     `json:"brandId"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type StationRequestDTO struct {
	Name      string  `json:"name" validate:"required,max=100"`
	BrandID   int     `json:"brandId"`
	Address   string  `json:"address" validate:"max=200"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type PriceDTO struct {
	FuelTypeID int       `json:"fuelTypeId"`
	Amount     float64   `json:"amount"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type BrandDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type FuelTypeDTO struct {
	ID   int    `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

func NewStationDTO(station *domain.Station) StationDTO {
	return StationDTO{
		ID:        station.ID,
		Name:      station.Name,
		BrandID:   station.BrandID,
		Address:   station.Address,
		Latitude:  station.Latitude,
		Longitude: station.Longitude,
	}
}

func NewStationListDTO(stations []domain.Station) []StationDTO {
	list := make([]StationDTO, 0, len(stations))
	for i := range stations {
		list = append(list, NewStationDTO(&stations[i]))
	}
	return list
}

func NewPriceListDTO(prices []domain.Price) []PriceDTO {
	list := make([]PriceDTO, 0, len(prices))
	for _, price := range prices {
		list = append(list, PriceDTO{
			FuelTypeID: price.FuelTypeID,
			Amount:     price.Amount,
			UpdatedAt:  price.UpdatedAt,
		})
	}
	return list
}
