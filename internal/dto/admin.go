package dto

import (
	"time"

	"github.com/fuelwatch/fuelwatch/internal/domain"
)

type LockoutRequestDTO struct {
	Email  string `json:"email" validate:"required,email"`
	Reason string `json:"reason" validate:"required,max=500"`
	// Days is omitted for a permanent ban.
	Days *int `json:"days,omitempty"`
}

type UnlockRequestDTO struct {
	Email string `json:"email" validate:"required,email"`
}

type BanDTO struct {
	UserID      int        `json:"userId"`
	Reason      string     `json:"reason"`
	BannedAt    time.Time  `json:"bannedAt"`
	BannedUntil *time.Time `json:"bannedUntil,omitempty"`
	Active      bool       `json:"active"`
}

type DecisionRequestDTO struct {
	Accepted bool `json:"accepted"`
}

func NewBanDTO(record *domain.BanRecord) BanDTO {
	ban := BanDTO{
		UserID:   record.UserID,
		Reason:   record.Reason,
		BannedAt: record.BannedAt,
		Active:   record.IsActive,
	}
	if !record.Permanent() {
		until := record.BannedUntil
		ban.BannedUntil = &until
	}
	return ban
}
