package proposals

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/fuelwatch/fuelwatch/internal/domain"
	"github.com/fuelwatch/fuelwatch/internal/dto"
	"github.com/fuelwatch/fuelwatch/internal/service/proposalservice"
	"github.com/fuelwatch/fuelwatch/pkg/auth"
	"github.com/fuelwatch/fuelwatch/pkg/utils"
)

// maxPhotoSize bounds the multipart form held in memory.
const maxPhotoSize = 10 << 20

type Service interface {
	Submit(ctx context.Context, userEmail string, req proposalservice.SubmitRequest) (*domain.PriceProposal, error)
	GetProposals(ctx context.Context, userEmail string) ([]domain.PriceProposal, error)
}

type ProposalHandler struct {
	proposalService Service
}

func New(proposalService Service) *ProposalHandler {
	return &ProposalHandler{
		proposalService: proposalService,
	}
}

// Submit godoc
//
//	@Summary		Submit a price correction
//	@Description	Report a new fuel price at a station with a receipt photo
//	@Tags			Proposals
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			stationId	formData	int		true	"Station ID"
//	@Param			fuelType	formData	string	true	"Fuel type code"
//	@Param			price		formData	number	true	"Observed price"
//	@Param			photo		formData	file	true	"Receipt photo"
//	@Security		BearerAuth
//	@Success		202	{object}	dto.SubmitProposalResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid form data"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Station not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/proposals [post]
func (h *ProposalHandler) Submit(w http.ResponseWriter, r *http.Request) {
	email, ok := auth.EmailFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	if err := r.ParseMultipartForm(maxPhotoSize); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid form data")
		return
	}
	stationID, err := strconv.Atoi(r.FormValue("stationId"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid station id")
		return
	}
	price, err := strconv.ParseFloat(r.FormValue("price"), 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid price")
		return
	}
	file, header, err := r.FormFile("photo")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Receipt photo is required")
		return
	}
	defer file.Close()

	proposal, err := h.proposalService.Submit(r.Context(), email, proposalservice.SubmitRequest{
		StationID:    stationID,
		FuelTypeCode: r.FormValue("fuelType"),
		Price:        price,
		Photo: proposalservice.Photo{
			Name:        header.Filename,
			ContentType: header.Header.Get("Content-Type"),
		},
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		case errors.Is(err, domain.ErrBadRequest):
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid proposal")
		case errors.Is(err, domain.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Station not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusAccepted, dto.SubmitProposalResponseDTO{
		Token:   proposal.Token,
		Message: "Proposal accepted for review",
	})
}

// GetProposals godoc
//
//	@Summary		List own proposals
//	@Tags			Proposals
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.ProposalDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/proposals [get]
func (h *ProposalHandler) GetProposals(w http.ResponseWriter, r *http.Request) {
	email, ok := auth.EmailFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	proposals, err := h.proposalService.GetProposals(r.Context(), email)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewProposalListDTO(proposals))
}
