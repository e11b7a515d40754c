//go:build wireinject
// +build wireinject

package di

import (
	"taskboard/config"
	"taskboard/infras/otel"
	"taskboard/infras/postgres"
	"taskboard/infras/redis"
	todoHandler "taskboard/internal/handlers/todo"
	"taskboard/shared/cache"
	"taskboard/transport/http"
	"taskboard/transport/http/middleware"
	"taskboard/transport/http/router"

	todoRepository "taskboard/internal/domains/todo/repository"
	todoService "taskboard/internal/domains/todo/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var todoDomain = wire.NewSet(
	todoRepository.New,
	todoService.New,
)

var domains = wire.NewSet(
	todoDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	todoHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
