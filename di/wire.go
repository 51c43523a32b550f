//go:build wireinject
// +build wireinject

package di

import (
	"glamp/config"
	"glamp/infras/backend"
	"glamp/infras/easypaisa"
	"glamp/infras/jwt"
	"glamp/infras/otel"
	"glamp/infras/redis"
	"glamp/permissions"
	"glamp/shared/cache"
	"glamp/transport/http"
	"glamp/transport/http/middleware"
	"glamp/transport/http/router"

	adminService "glamp/internal/domains/admin/service"
	authRepository "glamp/internal/domains/auth/repository"
	authService "glamp/internal/domains/auth/service"
	bookingRepository "glamp/internal/domains/booking/repository"
	bookingService "glamp/internal/domains/booking/service"
	confirmationRepository "glamp/internal/domains/confirmation/repository"
	confirmationService "glamp/internal/domains/confirmation/service"
	financeRepository "glamp/internal/domains/finance/repository"
	financeService "glamp/internal/domains/finance/service"
	glampRepository "glamp/internal/domains/glamp/repository"
	glampService "glamp/internal/domains/glamp/service"

	adminHandler "glamp/internal/handlers/admin"
	authHandler "glamp/internal/handlers/auth"
	bookingHandler "glamp/internal/handlers/booking"
	confirmationHandler "glamp/internal/handlers/confirmation"
	financeHandler "glamp/internal/handlers/finance"
	glampHandler "glamp/internal/handlers/glamp"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	jwt.New,
	backend.New,
	easypaisa.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var glampDomain = wire.NewSet(
	glampRepository.New,
	glampService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingRepository.NewWizard,
	bookingService.New,
)

var confirmationDomain = wire.NewSet(
	confirmationRepository.New,
	confirmationService.New,
)

var financeDomain = wire.NewSet(
	financeRepository.New,
	financeService.New,
)

var authDomain = wire.NewSet(
	authRepository.New,
	authService.New,
)

var adminDomain = wire.NewSet(
	adminService.New,
)

var domains = wire.NewSet(
	glampDomain,
	bookingDomain,
	confirmationDomain,
	financeDomain,
	authDomain,
	adminDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	glampHandler.New,
	bookingHandler.New,
	confirmationHandler.New,
	financeHandler.New,
	adminHandler.New,
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
