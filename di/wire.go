//go:build wireinject
// +build wireinject

package di

import (
	"galerij/config"
	"galerij/infras/kafka"
	"galerij/infras/otel"
	"galerij/infras/postgres"
	"galerij/infras/redis"
	"galerij/infras/s3"
	"galerij/shared/cache"
	"galerij/transport/http"
	"galerij/transport/http/middleware"
	"galerij/transport/http/router"

	artworkRepository "galerij/internal/domains/artwork/repository"
	artworkService "galerij/internal/domains/artwork/service"
	commentRepository "galerij/internal/domains/comment/repository"
	commentService "galerij/internal/domains/comment/service"
	favoriteRepository "galerij/internal/domains/favorite/repository"
	favoriteService "galerij/internal/domains/favorite/service"
	imageRepository "galerij/internal/domains/image/repository"
	techniqueRepository "galerij/internal/domains/technique/repository"

	artworkHandler "galerij/internal/handlers/artwork"
	commentHandler "galerij/internal/handlers/comment"
	favoriteHandler "galerij/internal/handlers/favorite"
	staticHandler "galerij/internal/handlers/static"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	s3.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var artworkDomain = wire.NewSet(
	artworkRepository.New,
	imageRepository.New,
	techniqueRepository.New,
	artworkService.New,
)

var commentDomain = wire.NewSet(
	commentRepository.New,
	commentService.New,
)

var favoriteDomain = wire.NewSet(
	favoriteRepository.New,
	favoriteService.New,
)

var domains = wire.NewSet(
	artworkDomain,
	commentDomain,
	favoriteDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	artworkHandler.New,
	commentHandler.New,
	favoriteHandler.New,
	staticHandler.New,
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
