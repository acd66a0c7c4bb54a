//go:build wireinject
// +build wireinject

package di

import (
	"resto/config"
	"resto/infras/kafka"
	"resto/infras/otel"
	"resto/infras/postgres"
	"resto/infras/redis"
	"resto/internal/domains/reservation/event"
	"resto/shared/cache"
	"resto/transport/http"
	"resto/transport/http/middleware"
	"resto/transport/http/router"

	"github.com/google/wire"

	reservationRepository "resto/internal/domains/reservation/repository"
	reservationService "resto/internal/domains/reservation/service"
	tableRepository "resto/internal/domains/table/repository"
	tableService "resto/internal/domains/table/service"
	healthHandler "resto/internal/handlers/health"
	reservationHandler "resto/internal/handlers/reservation"
	tableHandler "resto/internal/handlers/table"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	postgres.NewTransactor,
	otel.New,
	redis.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
	event.New,
)

var tableDomain = wire.NewSet(
	tableRepository.New,
	tableService.New,
)

var domains = wire.NewSet(
	reservationDomain,
	tableDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	healthHandler.NewState,
	healthHandler.New,
	tableHandler.New,
	reservationHandler.New,
	router.New,
)

func InitializeService() *App {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
		wire.Struct(new(App), "*"),
	)

	return &App{}
}
