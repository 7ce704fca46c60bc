package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/fuelwatch/fuelwatch/internal/domain"
	"github.com/fuelwatch/fuelwatch/internal/dto"
	"github.com/fuelwatch/fuelwatch/internal/service/banservice"
	"github.com/fuelwatch/fuelwatch/pkg/auth"
	"github.com/fuelwatch/fuelwatch/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type BanService interface {
	Lockout(ctx context.Context, adminEmail string, req banservice.LockoutRequest) (*domain.BanRecord, error)
	Unlock(ctx context.Context, adminEmail, targetEmail string) (*domain.BanRecord, error)
}

type ProposalService interface {
	ChangeStatus(ctx context.Context, adminEmail, token string, accepted bool) (*domain.PriceProposal, error)
}

type StationService interface {
	CreateStation(ctx context.Context, station *domain.Station) (*domain.Station, error)
	UpdateStation(ctx context.Context, station *domain.Station) error
	DeleteStation(ctx context.Context, id int) error
}

type AdminHandler struct {
	banService      BanService
	proposalService ProposalService
	stationService  StationService
}

func New(banService BanService, proposalService ProposalService, stationService StationService) *AdminHandler {
	return &AdminHandler{
		banService:      banService,
		proposalService: proposalService,
		stationService:  stationService,
	}
}

// Lockout godoc
//
//	@Summary		Ban a user
//	@Description	Lock a user's account, permanently or for a number of days
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LockoutRequestDTO	true	"Lockout request body"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.BanDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin role required"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/bans [post]
func (h *AdminHandler) Lockout(w http.ResponseWriter, r *http.Request) {
	email, ok := auth.EmailFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req dto.LockoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	record, err := h.banService.Lockout(r.Context(), email, banservice.LockoutRequest{
		TargetEmail: req.Email,
		Reason:      req.Reason,
		Days:        req.Days,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewBanDTO(record))
}

// Unlock godoc
//
//	@Summary		Lift a user's ban
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.UnlockRequestDTO	true	"Unlock request body"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.BanDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin role required"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		409	{object}	utils.Response	"User is not locked"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/bans/unlock [post]
func (h *AdminHandler) Unlock(w http.ResponseWriter, r *http.Request) {
	email, ok := auth.EmailFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req dto.UnlockRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	record, err := h.banService.Unlock(r.Context(), email, req.Email)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewBanDTO(record))
}

// DecideProposal godoc
//
//	@Summary		Accept or reject a price proposal
//	@Description	Apply an admin decision to a pending proposal
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			token	path		string					true	"Proposal token"
//	@Param			request	body		dto.DecisionRequestDTO	true	"Decision request body"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ProposalDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin role required"
//	@Failure		404	{object}	utils.Response	"Proposal not found"
//	@Failure		409	{object}	utils.Response	"Proposal already reviewed"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/proposals/{token}/decision [post]
func (h *AdminHandler) DecideProposal(w http.ResponseWriter, r *http.Request) {
	email, ok := auth.EmailFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	token := chi.URLParam(r, "token")
	var req dto.DecisionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	proposal, err := h.proposalService.ChangeStatus(r.Context(), email, token, req.Accepted)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewProposalDTO(proposal))
}

// CreateStation godoc
//
//	@Summary		Create a station
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.StationRequestDTO	true	"Station body"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.StationDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/stations [post]
func (h *AdminHandler) CreateStation(w http.ResponseWriter, r *http.Request) {
	var req dto.StationRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	station, err := h.stationService.CreateStation(r.Context(), &domain.Station{
		Name:      req.Name,
		BrandID:   req.BrandID,
		Address:   req.Address,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewStationDTO(station))
}

// UpdateStation godoc
//
//	@Summary		Update a station
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Station ID"
//	@Param			request	body		dto.StationRequestDTO	true	"Station body"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		404	{object}	utils.Response	"Station not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/stations/{id} [put]
func (h *AdminHandler) UpdateStation(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid station id")
		return
	}
	var req dto.StationRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	err = h.stationService.UpdateStation(r.Context(), &domain.Station{
		ID:        id,
		Name:      req.Name,
		BrandID:   req.BrandID,
		Address:   req.Address,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Success: true, Message: "Station updated"})
}

// DeleteStation godoc
//
//	@Summary		Delete a station
//	@Tags			Admin
//	@Produce		json
//	@Param			id	path	int	true	"Station ID"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response
//	@Failure		404	{object}	utils.Response	"Station not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/stations/{id} [delete]
func (h *AdminHandler) DeleteStation(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid station id")
		return
	}
	if err := h.stationService.DeleteStation(r.Context(), id); err != nil {
		respondDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Success: true, Message: "Station deleted"})
}

func respondDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		utils.RespondWithError(w, http.StatusForbidden, "Admin role required")
	case errors.Is(err, domain.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, domain.ErrConflict):
		utils.RespondWithError(w, http.StatusConflict, "Conflict")
	case errors.Is(err, domain.ErrBadRequest):
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
