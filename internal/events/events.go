package events

import (
	"time"

	"github.com/fuelwatch/fuelwatch/internal/domain"
)

// Event is inert data describing a state transition that already happened.
// The store reflects the transition before the event is published.
type Event interface {
	Name() string
}

const (
	UserBannedName             = "user.banned"
	UserUnlockedName           = "user.unlocked"
	PriceProposalEvaluatedName = "proposal.evaluated"
)

type UserBanned struct {
	User   domain.User
	Admin  domain.User
	Reason string
	Until  time.Time
}

func (UserBanned) Name() string { return UserBannedName }

type UserUnlocked struct {
	User  domain.User
	Admin domain.User
}

func (UserUnlocked) Name() string { return UserUnlockedName }

type PriceProposalEvaluated struct {
	Proposal domain.PriceProposal
	Accepted bool
	Admin    domain.User
}

func (PriceProposalEvaluated) Name() string { return PriceProposalEvaluatedName }
