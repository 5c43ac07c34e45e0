package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Comment=MockCommentService

import (
	"context"
	"fmt"

	"galerij/config"
	"galerij/infras/kafka"
	"galerij/infras/otel"
	"galerij/internal/domains/comment/model/dto"
	"galerij/internal/domains/comment/repository"
	"galerij/shared"
	"galerij/shared/cache"
	"galerij/shared/constant"
	"galerij/shared/event"

	"github.com/rs/zerolog/log"
)

type Comment interface {
	Create(ctx context.Context, req dto.CreateCommentRequest) (int64, error)
}

type serviceImpl struct {
	repo  repository.Comment
	cfg   *config.Config
	cache cache.RedisCache
	kafka kafka.Client
	otel  otel.Otel
}

func New(repo repository.Comment, cfg *config.Config, cache cache.RedisCache, kafka kafka.Client, otel otel.Otel) Comment {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		kafka: kafka,
		otel:  otel,
	}
}

// Create stores a visible comment and drops the cached detail of its artwork.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateCommentRequest) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".comment.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	id, err = s.repo.Insert(ctx, req.ToModel())
	if err != nil {
		log.Error().Err(err).Int64("artworkID", req.ArtworkID).Msg("failed to create comment")

		return 0, fmt.Errorf("failed to create comment: %w", err)
	}

	scope.SetAttribute("comment.id", id)

	shared.BumpGenerations(ctx, s.cache, shared.BuildCacheKey(constant.CacheKeyArtworkGeneration, req.ArtworkID))

	event.PublishAsync(ctx, s.kafka, event.New(ctx, constant.EventCommentCreated, id, map[string]any{
		"artwork_id": req.ArtworkID,
	}))

	return id, nil
}
