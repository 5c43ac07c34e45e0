package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Artwork=MockArtworkService

import (
	"context"
	"fmt"

	"galerij/config"
	"galerij/infras/kafka"
	"galerij/infras/otel"
	"galerij/internal/domains/artwork/model"
	"galerij/internal/domains/artwork/model/dto"
	"galerij/internal/domains/artwork/repository"
	commentDto "galerij/internal/domains/comment/model/dto"
	commentRepo "galerij/internal/domains/comment/repository"
	imageDto "galerij/internal/domains/image/model/dto"
	imageRepo "galerij/internal/domains/image/repository"
	techniqueDto "galerij/internal/domains/technique/model/dto"
	techniqueRepo "galerij/internal/domains/technique/repository"
	"galerij/shared"
	"galerij/shared/cache"
	"galerij/shared/constant"
	gDto "galerij/shared/dto"
	"galerij/shared/event"
	"galerij/shared/failure"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type Artwork interface {
	GetAll(ctx context.Context, params gDto.QueryParams, term string) ([]dto.ArtworkListItem, error)
	Get(ctx context.Context, id int64) (dto.ArtworkDetailResponse, error)
	Create(ctx context.Context, req dto.CreateArtworkRequest) (int64, error)
	Update(ctx context.Context, req dto.UpdateArtworkRequest, id int64) error
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo       repository.Artwork
	images     imageRepo.Image
	techniques techniqueRepo.Technique
	comments   commentRepo.Comment
	cfg        *config.Config
	cache      cache.RedisCache
	kafka      kafka.Client
	otel       otel.Otel
}

func New(
	repo repository.Artwork,
	images imageRepo.Image,
	techniques techniqueRepo.Technique,
	comments commentRepo.Comment,
	cfg *config.Config,
	cache cache.RedisCache,
	kafka kafka.Client,
	otel otel.Otel,
) Artwork {
	return &serviceImpl{
		repo:       repo,
		images:     images,
		techniques: techniques,
		comments:   comments,
		cfg:        cfg,
		cache:      cache,
		kafka:      kafka,
		otel:       otel,
	}
}

func visibleFilter(filters ...any) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: append([]any{
			gDto.Filter{Field: model.FieldIsPublic, Value: true, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		}, filters...),
	}
}

// GetAll lists visible artworks by id, or by relevance when term is set. Each entry carries
// its primary image.
func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, term string) (res []dto.ArtworkListItem, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".artwork.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := visibleFilter()

	keyFilter := filter
	if term != "" {
		keyFilter = visibleFilter(gDto.Filter{
			ArgName:  model.ArgSearch,
			Value:    term,
			Operator: gDto.FilterOperatorMatch,
			Table:    model.TableName,
			Fields:   model.SearchFields,
		})
	}

	generation, cacheable := shared.CacheGeneration(ctx, s.cache, constant.CacheKeyArtworkGeneration)
	cacheKey := shared.BuildCacheKeyWithQuery(shared.BuildCacheKey(constant.CacheKeyArtworkGetAll, generation), params, keyFilter)

	if cacheable {
		if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
			log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for artworks")

			return res, nil
		}
	}

	var artworks []model.Artwork
	if term == "" {
		artworks, err = s.repo.GetAll(ctx, gDto.QueryParams{Page: params.Page, Limit: params.Limit}, filter)
	} else {
		artworks, err = s.repo.Search(ctx, params, filter, term)
	}

	if err != nil {
		log.Error().Err(err).Str("term", term).Msg("failed to get artworks")

		return nil, fmt.Errorf("failed to get artworks: %w", err)
	}

	ids := make([]int64, len(artworks))
	for i, artwork := range artworks {
		ids[i] = artwork.ID
	}

	primaries, err := s.images.GetPrimaryByArtworks(ctx, ids)
	if err != nil {
		log.Error().Err(err).Msg("failed to get primary images")

		return nil, fmt.Errorf("failed to get primary images: %w", err)
	}

	res = make([]dto.ArtworkListItem, len(artworks))
	for i, artwork := range artworks {
		res[i].FromModel(artwork)

		if image, ok := primaries[artwork.ID]; ok {
			res[i].Image = &imageDto.ImageResponse{}
			res[i].Image.FromModel(image)
		}
	}

	if cacheable {
		if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save artworks to cache")
		}
	}

	return res, nil
}

// Get returns a visible artwork with its images, techniques and visible comments.
func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.ArtworkDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".artwork.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("artwork.id", id)

	generation, cacheable := shared.CacheGeneration(ctx, s.cache, shared.BuildCacheKey(constant.CacheKeyArtworkGeneration, id))
	cacheKey := shared.BuildCacheKey(constant.CacheKeyArtworkGet, id, generation)

	if cacheable {
		if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
			log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for artwork")

			return res, nil
		}
	}

	artwork, err := s.repo.Get(ctx, visibleFilter(gDto.Filter{Field: model.FieldID, Value: id, Operator: gDto.FilterOperatorEq, Table: model.TableName}))
	if err != nil {
		log.Error().Err(err).Int64("artworkID", id).Msg("failed to get artwork")

		return res, fmt.Errorf("failed to get artwork: %w", err)
	}

	if artwork.ID == 0 {
		return res, failure.NotFound(constant.ResponseErrorArtworkNotFound) //nolint:wrapcheck
	}

	res.Artwork.FromModel(artwork)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		images, err := s.images.GetByArtwork(groupCtx, id)
		if err != nil {
			return fmt.Errorf("failed to get images: %w", err)
		}

		res.Images = imageDto.FromModels(images)

		return nil
	})

	group.Go(func() error {
		techniques, err := s.techniques.GetByArtwork(groupCtx, id)
		if err != nil {
			return fmt.Errorf("failed to get techniques: %w", err)
		}

		res.Techniques = techniqueDto.FromModels(techniques)

		return nil
	})

	group.Go(func() error {
		comments, err := s.comments.GetVisibleByArtwork(groupCtx, id)
		if err != nil {
			return fmt.Errorf("failed to get comments: %w", err)
		}

		res.Comments = commentDto.FromModels(comments)

		return nil
	})

	if err = group.Wait(); err != nil {
		log.Error().Err(err).Int64("artworkID", id).Msg("failed to get artwork details")

		return dto.ArtworkDetailResponse{}, err
	}

	if cacheable {
		if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save artwork to cache")
		}
	}

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateArtworkRequest) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".artwork.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	id, err = s.repo.Insert(ctx, req.ToModel())
	if err != nil {
		log.Error().Err(err).Msg("failed to create artwork")

		return 0, fmt.Errorf("failed to create artwork: %w", err)
	}

	s.afterWrite(ctx, constant.EventArtworkCreated, id, map[string]any{
		"title":     req.Title,
		"artist_id": req.ArtistID,
	})

	return id, nil
}

// Update overwrites every editable column of the artwork. Updating an id that does not exist
// succeeds without changing anything.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateArtworkRequest, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".artwork.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.Update(ctx, shared.TransformFields(req), shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Int64("artworkID", id).Msg("failed to update artwork")

		return fmt.Errorf("failed to update artwork: %w", err)
	}

	s.afterWrite(ctx, constant.EventArtworkUpdated, id, map[string]any{"title": req.Title})

	return nil
}

// Delete removes the artwork; images, techniques links, comments and favorites go with it
// through the schema's cascades.
func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".artwork.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Int64("artworkID", id).Msg("failed to delete artwork")

		return fmt.Errorf("failed to delete artwork: %w", err)
	}

	s.afterWrite(ctx, constant.EventArtworkDeleted, id, nil)

	return nil
}

// afterWrite runs once the write is committed. Cached listings, favorites and the artwork's
// detail become unreachable before the caller gets its response; only the event is sent in the
// background.
func (s *serviceImpl) afterWrite(ctx context.Context, eventType string, id int64, payload any) {
	shared.BumpGenerations(ctx, s.cache,
		constant.CacheKeyArtworkGeneration,
		shared.BuildCacheKey(constant.CacheKeyArtworkGeneration, id),
	)

	event.PublishAsync(ctx, s.kafka, event.New(ctx, eventType, id, payload))
}
