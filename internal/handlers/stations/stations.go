package stations

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/fuelwatch/fuelwatch/internal/domain"
	"github.com/fuelwatch/fuelwatch/internal/dto"
	"github.com/fuelwatch/fuelwatch/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	GetStations(ctx context.Context, brandID int) ([]domain.Station, error)
	GetStation(ctx context.Context, id int) (*domain.Station, error)
	GetStationPrices(ctx context.Context, stationID int) ([]domain.Price, error)
	GetBrands(ctx context.Context) ([]domain.Brand, error)
	GetFuelTypes(ctx context.Context) ([]domain.FuelType, error)
}

type StationHandler struct {
	stationService Service
}

func New(stationService Service) *StationHandler {
	return &StationHandler{
		stationService: stationService,
	}
}

// GetStations godoc
//
//	@Summary		List fuel stations
//	@Description	List all stations, optionally filtered by brand
//	@Tags			Stations
//	@Produce		json
//	@Param			brandId	query		int	false	"Brand filter"
//	@Success		200		{array}		dto.StationDTO
//	@Failure		400		{object}	utils.Response	"Invalid brand filter"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/stations [get]
func (h *StationHandler) GetStations(w http.ResponseWriter, r *http.Request) {
	brandID := 0
	if raw := r.URL.Query().Get("brandId"); raw != "" {
		var err error
		brandID, err = strconv.Atoi(raw)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid brand filter")
			return
		}
	}
	stations, err := h.stationService.GetStations(r.Context(), brandID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewStationListDTO(stations))
}

// GetStation godoc
//
//	@Summary		Get one station
//	@Tags			Stations
//	@Produce		json
//	@Param			id	path		int	true	"Station ID"
//	@Success		200	{object}	dto.StationDTO
//	@Failure		404	{object}	utils.Response	"Station not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/stations/{id} [get]
func (h *StationHandler) GetStation(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid station id")
		return
	}
	station, err := h.stationService.GetStation(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Station not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewStationDTO(station))
}

// GetStationPrices godoc
//
//	@Summary		Current prices at a station
//	@Tags			Stations
//	@Produce		json
//	@Param			id	path		int	true	"Station ID"
//	@Success		200	{array}		dto.PriceDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/stations/{id}/prices [get]
func (h *StationHandler) GetStationPrices(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid station id")
		return
	}
	prices, err := h.stationService.GetStationPrices(r.Context(), id)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewPriceListDTO(prices))
}

// GetBrands godoc
//
//	@Summary		List brands
//	@Tags			Stations
//	@Produce		json
//	@Success		200	{array}		dto.BrandDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/brands [get]
func (h *StationHandler) GetBrands(w http.ResponseWriter, r *http.Request) {
	brands, err := h.stationService.GetBrands(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	list := make([]dto.BrandDTO, 0, len(brands))
	for _, brand := range brands {
		list = append(list, dto.BrandDTO{ID: brand.ID, Name: brand.Name})
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}

// GetFuelTypes godoc
//
//	@Summary		List fuel types
//	@Tags			Stations
//	@Produce		json
//	@Success		200	{array}		dto.FuelTypeDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/fuel-types [get]
func (h *StationHandler) GetFuelTypes(w http.ResponseWriter, r *http.Request) {
	fuelTypes, err := h.stationService.GetFuelTypes(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	list := make([]dto.FuelTypeDTO, 0, len(fuelTypes))
	for _, fuelType := range fuelTypes {
		list = append(list, dto.FuelTypeDTO{ID: fuelType.ID, Code: fuelType.Code, Name: fuelType.Name})
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}
