package domain

import "time"

// PermanentBanUntil is the sentinel stored in BanRecord.BannedUntil for bans
// without an expiry. The expiration sweep never reaches it.
var PermanentBanUntil = time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC)

const (
	RoleUser  string = "user"
	RoleAdmin string = "admin"
)

type User struct {
	ID               int        `db:"id"`
	Email            string     `db:"email"`
	PasswordHash     string     `db:"password_hash"`
	DisplayName      string     `db:"display_name"`
	Role             string     `db:"role"`
	LockoutUntil     *time.Time `db:"lockout_until"`
	FailedLoginCount int        `db:"failed_login_count"`
	CreatedAt        time.Time  `db:"created_at"`
}

type Brand struct {
	ID   int    `db:"id"`
	Name string `db:"name"`
}

type FuelType struct {
	ID   int    `db:"id"`
	Code string `db:"code"`
	Name string `db:"name"`
}

type Station struct {
	ID        int       `db:"id"`
	Name      string    `db:"name"`
	BrandID   int       `db:"brand_id"`
	Address   string    `db:"address"`
	Latitude  float64   `db:"latitude"`
	Longitude float64   `db:"longitude"`
	CreatedAt time.Time `db:"created_at"`
}

// Price is the current price of one fuel type at one station. It is replaced
// when an admin accepts a price proposal for that (station, fuel type) pair.
type Price struct {
	ID         int       `db:"id"`
	StationID  int       `db:"station_id"`
	FuelTypeID int       `db:"fuel_type_id"`
	Amount     float64   `db:"amount"`
	UpdatedAt  time.Time `db:"updated_at"`
}

// BanRecord is one ban episode. At most one record per user has
// IsActive=true; UnbannedAt is set exactly when the record is deactivated.
type BanRecord struct {
	ID          int        `db:"id"`
	UserID      int        `db:"user_id"`
	AdminID     int        `db:"admin_id"`
	Reason      string     `db:"reason"`
	BannedAt    time.Time  `db:"banned_at"`
	BannedUntil time.Time  `db:"banned_until"`
	IsActive    bool       `db:"is_active"`
	UnbannedAt  *time.Time `db:"unbanned_at"`
}

// Permanent reports whether the record carries the no-expiry sentinel.
func (b *BanRecord) Permanent() bool {
	return !b.BannedUntil.Before(PermanentBanUntil)
}

const (
	// ProposalStatusPending awaits an admin decision or the expiration sweep.
	ProposalStatusPending string = "PENDING"
	// ProposalStatusAccepted is terminal; the proposed price has been applied.
	ProposalStatusAccepted string = "ACCEPTED"
	// ProposalStatusRejected is terminal.
	ProposalStatusRejected string = "REJECTED"
)

// PriceProposal is a user-submitted price correction, referenced externally
// by Token rather than ID.
type PriceProposal struct {
	ID         int        `db:"id"`
	Token      string     `db:"token"`
	UserID     int        `db:"user_id"`
	StationID  int        `db:"station_id"`
	FuelTypeID int        `db:"fuel_type_id"`
	Price      float64    `db:"price"`
	Status     string     `db:"status"`
	CreatedAt  time.Time  `db:"created_at"`
	ReviewedAt *time.Time `db:"reviewed_at"`
	ReviewedBy *int       `db:"reviewed_by"`
}

// Terminal reports whether the proposal has left PENDING.
func (p *PriceProposal) Terminal() bool {
	return p.Status != ProposalStatusPending
}

// ProposalStatistic aggregates per-user review outcomes.
type ProposalStatistic struct {
	UserID       int     `db:"user_id"`
	Total        int     `db:"total"`
	Approved     int     `db:"approved"`
	Rejected     int     `db:"rejected"`
	AcceptedRate float64 `db:"accepted_rate"`
}

// Recalculate updates AcceptedRate from the counters.
func (s *ProposalStatistic) Recalculate() {
	if s.Total == 0 {
		s.AcceptedRate = 0
		return
	}
	s.AcceptedRate = float64(s.Approved) / float64(s.Total)
}
