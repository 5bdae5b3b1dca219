//go:build wireinject
// +build wireinject

package di

import (
	"lotus/config"
	"lotus/infras/jwt"
	"lotus/infras/kafka"
	"lotus/infras/otel"
	"lotus/infras/postgres"
	"lotus/infras/redis"
	"lotus/infras/s3"
	"lotus/internal/scheduler"
	"lotus/permissions"
	"lotus/shared/cache"
	"lotus/transport/http"
	"lotus/transport/http/middleware"
	"lotus/transport/http/router"

	authService "lotus/internal/domains/auth/service"
	catalogRepository "lotus/internal/domains/catalog/repository"
	catalogService "lotus/internal/domains/catalog/service"
	clientRepository "lotus/internal/domains/client/repository"
	clientService "lotus/internal/domains/client/service"
	membershipRepository "lotus/internal/domains/membership/repository"
	membershipService "lotus/internal/domains/membership/service"
	referralRepository "lotus/internal/domains/referral/repository"
	referralService "lotus/internal/domains/referral/service"
	reservationRepository "lotus/internal/domains/reservation/repository"
	reservationService "lotus/internal/domains/reservation/service"
	staffRepository "lotus/internal/domains/staff/repository"
	staffService "lotus/internal/domains/staff/service"

	authHandler "lotus/internal/handlers/auth"
	catalogHandler "lotus/internal/handlers/catalog"
	clientHandler "lotus/internal/handlers/client"
	membershipHandler "lotus/internal/handlers/membership"
	referralHandler "lotus/internal/handlers/referral"
	reservationHandler "lotus/internal/handlers/reservation"
	staffHandler "lotus/internal/handlers/staff"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
	permissions.Get,
	wire.Bind(new(reservationService.Transactor), new(*postgres.Connection)),
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var staffDomain = wire.NewSet(
	staffRepository.New,
	staffService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var catalogDomain = wire.NewSet(
	catalogRepository.New,
	catalogService.New,
)

var clientDomain = wire.NewSet(
	clientRepository.New,
	clientService.New,
)

var referralDomain = wire.NewSet(
	referralRepository.New,
	referralService.New,
)

var membershipDomain = wire.NewSet(
	membershipRepository.New,
	membershipRepository.NewPlan,
	membershipService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationRepository.NewItem,
	reservationService.New,
)

var domains = wire.NewSet(
	staffDomain,
	authDomain,
	catalogDomain,
	clientDomain,
	referralDomain,
	membershipDomain,
	reservationDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	staffHandler.New,
	catalogHandler.New,
	clientHandler.New,
	referralHandler.New,
	membershipHandler.New,
	reservationHandler.New,
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

func InitializeScheduler() (*scheduler.Scheduler, error) {
	wire.Build(
		configurations,
		postgres.New,
		otel.New,
		redis.New,
		sharedHelpers,
		membershipDomain,
		scheduler.New,
	)

	return &scheduler.Scheduler{}, nil
}

func InitializeMembershipService() membershipService.Membership {
	wire.Build(
		configurations,
		postgres.New,
		otel.New,
		redis.New,
		sharedHelpers,
		membershipDomain,
	)

	return nil
}
