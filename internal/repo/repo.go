package repo

import (
	"github.com/fuelwatch/fuelwatch/internal/pg"
	banrepo "github.com/fuelwatch/fuelwatch/internal/repo/ban-repo"
	proposalrepo "github.com/fuelwatch/fuelwatch/internal/repo/proposal-repo"
	stationrepo "github.com/fuelwatch/fuelwatch/internal/repo/station-repo"
	userrepo "github.com/fuelwatch/fuelwatch/internal/repo/user-repo"
	"github.com/fuelwatch/fuelwatch/internal/service/accountservice"
	"github.com/fuelwatch/fuelwatch/internal/service/banservice"
	"github.com/fuelwatch/fuelwatch/internal/service/proposalservice"
	"github.com/fuelwatch/fuelwatch/internal/service/stationservice"
)

type Repositories struct {
	UserRepo     accountservice.Repo
	BanRepo      banservice.Repo
	ProposalRepo proposalservice.Repo
	StationRepo  stationservice.Repo
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:     userrepo.New(conn),
		BanRepo:      banrepo.New(conn),
		ProposalRepo: proposalrepo.New(conn),
		StationRepo:  stationrepo.New(conn),
	}
}
