package service

import (
	"github.com/fuelwatch/fuelwatch/internal/cache"
	"github.com/fuelwatch/fuelwatch/internal/config"
	"github.com/fuelwatch/fuelwatch/internal/notify"
	"github.com/fuelwatch/fuelwatch/internal/pg"
	"github.com/fuelwatch/fuelwatch/internal/repo"
	"github.com/fuelwatch/fuelwatch/internal/service/accountservice"
	"github.com/fuelwatch/fuelwatch/internal/service/banservice"
	"github.com/fuelwatch/fuelwatch/internal/service/proposalservice"
	"github.com/fuelwatch/fuelwatch/internal/service/stationservice"
	pkgauth "github.com/fuelwatch/fuelwatch/pkg/auth"
)

type Services struct {
	AccountService  *accountservice.Service
	StationService  *stationservice.Service
	ProposalService *proposalservice.Service
	BanService      *banservice.Service
}

// Deps carries the shared infrastructure the services are wired with.
type Deps struct {
	Cache     *cache.Cache
	Notifier  notify.Sender
	Events    banservice.Events
	TXManager pg.TXManager
}

func New(cfg *config.Config, repos *repo.Repositories, deps Deps) *Services {
	accountService := accountservice.New(repos.UserRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})
	stationService := stationservice.New(repos.StationRepo, deps.Cache)
	banService := banservice.New(repos.BanRepo, accountService, deps.Notifier, deps.Events, deps.TXManager)
	proposalService := proposalservice.New(repos.ProposalRepo, stationService, accountService, deps.Notifier, deps.Events, deps.Cache, deps.TXManager, cfg.ProposalTTL)

	return &Services{
		AccountService:  accountService,
		StationService:  stationService,
		ProposalService: proposalService,
		BanService:      banService,
	}
}
