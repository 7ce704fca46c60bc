package handlers

import (
	"net/http"

	_ "github.com/fuelwatch/fuelwatch/docs"
	adminhandlers "github.com/fuelwatch/fuelwatch/internal/handlers/admin"
	authhandlers "github.com/fuelwatch/fuelwatch/internal/handlers/auth"
	proposalhandlers "github.com/fuelwatch/fuelwatch/internal/handlers/proposals"
	stationhandlers "github.com/fuelwatch/fuelwatch/internal/handlers/stations"
	mw "github.com/fuelwatch/fuelwatch/internal/middleware"
	"github.com/fuelwatch/fuelwatch/internal/service"
	"github.com/fuelwatch/fuelwatch/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type StationHandler interface {
	GetStations(w http.ResponseWriter, r *http.Request)
	GetStation(w http.ResponseWriter, r *http.Request)
	GetStationPrices(w http.ResponseWriter, r *http.Request)
	GetBrands(w http.ResponseWriter, r *http.Request)
	GetFuelTypes(w http.ResponseWriter, r *http.Request)
}

type ProposalHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	GetProposals(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	Lockout(w http.ResponseWriter, r *http.Request)
	Unlock(w http.ResponseWriter, r *http.Request)
	DecideProposal(w http.ResponseWriter, r *http.Request)
	CreateStation(w http.ResponseWriter, r *http.Request)
	UpdateStation(w http.ResponseWriter, r *http.Request)
	DeleteStation(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler     AuthHandler
	StationHandler  StationHandler
	ProposalHandler ProposalHandler
	AdminHandler    AdminHandler

	metricsHandler http.Handler
	submitLimiter  *mw.RateLimiter
}

// submit rate: one proposal per 10s with a small burst, per user.
const (
	submitRate  = 0.1
	submitBurst = 3
)

func New(s *service.Services, metricsHandler http.Handler) *Handlers {
	return &Handlers{
		AuthHandler:     authhandlers.New(s.AccountService),
		StationHandler:  stationhandlers.New(s.StationService),
		ProposalHandler: proposalhandlers.New(s.ProposalService),
		AdminHandler:    adminhandlers.New(s.BanService, s.ProposalService, s.StationService),
		metricsHandler:  metricsHandler,
		submitLimiter:   mw.NewRateLimiter(submitRate, submitBurst),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	if h.metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", h.metricsHandler)
	}
	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
		})

		r.Get("/stations", h.StationHandler.GetStations)
		r.Get("/stations/{id}", h.StationHandler.GetStation)
		r.Get("/stations/{id}/prices", h.StationHandler.GetStationPrices)
		r.Get("/brands", h.StationHandler.GetBrands)
		r.Get("/fuel-types", h.StationHandler.GetFuelTypes)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/proposals", func(r chi.Router) {
				r.With(h.submitLimiter.Middleware).Post("/", h.ProposalHandler.Submit)
				r.Get("/", h.ProposalHandler.GetProposals)
			})
			r.Route("/admin", func(r chi.Router) {
				r.Post("/bans", h.AdminHandler.Lockout)
				r.Post("/bans/unlock", h.AdminHandler.Unlock)
				r.Post("/proposals/{token}/decision", h.AdminHandler.DecideProposal)
				r.Post("/stations", h.AdminHandler.CreateStation)
				r.Put("/stations/{id}", h.AdminHandler.UpdateStation)
				r.Delete("/stations/{id}", h.AdminHandler.DeleteStation)
			})
		})
	})

	return r
}
