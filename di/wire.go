//go:build wireinject
// +build wireinject

package di

import (
	"courtside/config"
	"courtside/infras/otel"
	"courtside/infras/push"
	"courtside/infras/redis"
	"courtside/infras/upstream"
	"courtside/internal/events"
	feedbackHandler "courtside/internal/handlers/feedback"
	geoHandler "courtside/internal/handlers/geo"
	ratingHandler "courtside/internal/handlers/rating"
	trackingHandler "courtside/internal/handlers/tracking"
	venueHandler "courtside/internal/handlers/venue"
	"courtside/shared/cache"
	"courtside/transport/http"
	"courtside/transport/http/middleware"
	"courtside/transport/http/router"

	feedbackService "courtside/internal/domains/feedback/service"
	ratingService "courtside/internal/domains/rating/service"
	trackingService "courtside/internal/domains/tracking/service"
	venueService "courtside/internal/domains/venue/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	upstream.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var venueDomain = wire.NewSet(
	venueService.New,
)

var trackingDomain = wire.NewSet(
	trackingService.New,
)

var ratingDomain = wire.NewSet(
	ratingService.New,
)

var feedbackDomain = wire.NewSet(
	feedbackService.New,
)

var domains = wire.NewSet(
	venueDomain,
	trackingDomain,
	ratingDomain,
	feedbackDomain,
)

var pushInvalidation = wire.NewSet(
	events.NewDispatcher,
	push.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	venueHandler.New,
	trackingHandler.New,
	ratingHandler.New,
	feedbackHandler.New,
	geoHandler.New,
	router.New,
)

func InitializeService() *App {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		pushInvalidation,
		routing,
		http.New,
		wire.Struct(new(App), "*"),
	)

	return &App{}
}
