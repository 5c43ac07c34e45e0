package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Favorite=MockFavoriteService

import (
	"context"
	"fmt"

	"galerij/config"
	"galerij/infras/kafka"
	"galerij/infras/otel"
	artworkDto "galerij/internal/domains/artwork/model/dto"
	"galerij/internal/domains/favorite/model/dto"
	"galerij/internal/domains/favorite/repository"
	"galerij/shared"
	"galerij/shared/cache"
	"galerij/shared/constant"
	"galerij/shared/event"

	"github.com/rs/zerolog/log"
)

type Favorite interface {
	Add(ctx context.Context, req dto.AddFavoriteRequest) error
	GetByUser(ctx context.Context, userID int64) ([]artworkDto.ArtworkResponse, error)
}

type serviceImpl struct {
	repo  repository.Favorite
	cfg   *config.Config
	cache cache.RedisCache
	kafka kafka.Client
	otel  otel.Otel
}

func New(repo repository.Favorite, cfg *config.Config, cache cache.RedisCache, kafka kafka.Client, otel otel.Otel) Favorite {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		kafka: kafka,
		otel:  otel,
	}
}

// Add is idempotent. The user's cached favorites are retired before it returns.
func (s *serviceImpl) Add(ctx context.Context, req dto.AddFavoriteRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".favorite.Add")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.Add(ctx, req.ToModel()); err != nil {
		log.Error().Err(err).Int64("userID", req.UserID).Int64("artworkID", req.ArtworkID).Msg("failed to add favorite")

		return fmt.Errorf("failed to add favorite: %w", err)
	}

	shared.BumpGenerations(ctx, s.cache, shared.BuildCacheKey(constant.CacheKeyFavoriteGeneration, req.UserID))

	event.PublishAsync(ctx, s.kafka, event.New(ctx, constant.EventFavoriteAdded, req.UserID, map[string]any{
		"artwork_id": req.ArtworkID,
	}))

	return nil
}

func (s *serviceImpl) GetByUser(ctx context.Context, userID int64) (res []artworkDto.ArtworkResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".favorite.GetByUser")
	defer scope.End()
	defer scope.TraceIfError(err)

	// the list also shows artwork fields, so artwork writes retire it too
	generation, cacheable := shared.CacheGeneration(ctx, s.cache,
		shared.BuildCacheKey(constant.CacheKeyFavoriteGeneration, userID),
		constant.CacheKeyArtworkGeneration,
	)
	cacheKey := shared.BuildCacheKey(constant.CacheKeyFavoriteGetAll, userID, generation)

	if cacheable {
		if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
			log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for favorites")

			return res, nil
		}
	}

	artworks, err := s.repo.GetArtworksByUser(ctx, userID)
	if err != nil {
		log.Error().Err(err).Int64("userID", userID).Msg("failed to get favorites")

		return nil, fmt.Errorf("failed to get favorites: %w", err)
	}

	res = artworkDto.FromModels(artworks)

	if cacheable {
		if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save favorites to cache")
		}
	}

	return res, nil
}
