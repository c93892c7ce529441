package router

import (
	"github.com/go-chi/chi/v5"

	"courtside/internal/handlers/feedback"
	"courtside/internal/handlers/geo"
	"courtside/internal/handlers/rating"
	"courtside/internal/handlers/tracking"
	"courtside/internal/handlers/venue"
)

type DomainHandlers struct {
	Venue    venue.Handler
	Tracking tracking.Handler
	Rating   rating.Handler
	Feedback feedback.Handler
	Geo      geo.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Venue.Router(routerGroup)
		r.DomainHandlers.Tracking.Router(routerGroup)
		r.DomainHandlers.Rating.Router(routerGroup)
		r.DomainHandlers.Feedback.Router(routerGroup)
		r.DomainHandlers.Geo.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
