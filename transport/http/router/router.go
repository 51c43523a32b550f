package router

import (
	"glamp/internal/handlers/admin"
	"glamp/internal/handlers/auth"
	"glamp/internal/handlers/booking"
	"glamp/internal/handlers/confirmation"
	"glamp/internal/handlers/finance"
	"glamp/internal/handlers/glamp"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth         auth.Handler
	Glamp        glamp.Handler
	Booking      booking.Handler
	Confirmation confirmation.Handler
	Finance      finance.Handler
	Admin        admin.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Glamp.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Confirmation.Router(routerGroup)
		r.DomainHandlers.Finance.Router(routerGroup)
		r.DomainHandlers.Admin.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
