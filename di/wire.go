//go:build wireinject
// +build wireinject

package di

import (
	"facilio/config"
	"facilio/infras/jwt"
	"facilio/infras/kafka"
	"facilio/infras/otel"
	"facilio/infras/postgres"
	"facilio/infras/redis"
	"facilio/infras/s3"
	"facilio/permissions"
	"facilio/shared/cache"
	"facilio/transport/http"
	"facilio/transport/http/middleware"
	"facilio/transport/http/router"

	"github.com/google/wire"

	authService "facilio/internal/domains/auth/service"
	facilityRepository "facilio/internal/domains/facility/repository"
	facilityService "facilio/internal/domains/facility/service"
	inventoryRepository "facilio/internal/domains/inventory/repository"
	inventoryService "facilio/internal/domains/inventory/service"
	rentalRepository "facilio/internal/domains/rental/repository"
	rentalService "facilio/internal/domains/rental/service"
	reservationRepository "facilio/internal/domains/reservation/repository"
	reservationService "facilio/internal/domains/reservation/service"
	userRepository "facilio/internal/domains/user/repository"
	userService "facilio/internal/domains/user/service"

	authHandler "facilio/internal/handlers/auth"
	facilityHandler "facilio/internal/handlers/facility"
	inventoryHandler "facilio/internal/handlers/inventory"
	rentalHandler "facilio/internal/handlers/rental"
	reservationHandler "facilio/internal/handlers/reservation"
	userHandler "facilio/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var facilityDomain = wire.NewSet(
	facilityRepository.New,
	facilityService.New,
)

var inventoryDomain = wire.NewSet(
	inventoryRepository.New,
	inventoryService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
)

var rentalDomain = wire.NewSet(
	rentalRepository.New,
	rentalService.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
	userService.New,
)

var domains = wire.NewSet(
	facilityDomain,
	inventoryDomain,
	reservationDomain,
	rentalDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	facilityHandler.New,
	inventoryHandler.New,
	rentalHandler.New,
	reservationHandler.New,
	userHandler.New,
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
