package dto

import (
	"time"

	"github.com/fuelwatch/fuelwatch/internal/domain"
)

type ProposalDTO struct {
	Token      string     `json:"token"`
	StationID  int        `json:"stationId"`
	FuelTypeID int        `json:"fuelTypeId"`
	Price      float64    `json:"price"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"createdAt"`
	ReviewedAt *time.Time `json:"reviewedAt,omitempty"`
}

type SubmitProposalResponseDTO struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}

func NewProposalDTO(proposal *domain.PriceProposal) ProposalDTO {
	return ProposalDTO{
		Token:      proposal.Token,
		StationID:  proposal.StationID,
		FuelTypeID: proposal.FuelTypeID,
		Price:      proposal.Price,
		Status:     proposal.Status,
		CreatedAt:  proposal.CreatedAt,
		ReviewedAt: proposal.ReviewedAt,
	}
}

func NewProposalListDTO(proposals []domain.PriceProposal) []ProposalDTO {
	list := make([]ProposalDTO, 0, len(proposals))
	for i := range proposals {
		list = append(list, NewProposalDTO(&proposals[i]))
	}
	return list
}
