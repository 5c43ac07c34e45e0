package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"galerij/infras/otel"
	"galerij/infras/postgres"
	"galerij/internal/domains/image/model"
	"galerij/shared/constant"
	gDto "galerij/shared/dto"
	"galerij/shared/logger"
	gRepo "galerij/shared/repository"
)

type Image interface {
	GetByArtwork(ctx context.Context, artworkID int64) ([]model.Image, error)
	GetPrimaryByArtworks(ctx context.Context, artworkIDs []int64) (map[int64]model.Image, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Image]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Image {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Image](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetByArtwork returns the images of one artwork by ascending sort order.
func (r *repositoryImpl) GetByArtwork(ctx context.Context, artworkID int64) ([]model.Image, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".image.GetByArtwork")
	defer scope.End()

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldArtworkID, Value: artworkID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}

	return r.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldSortOrder, SortDir: gDto.SortDirAsc}, filter) //nolint:wrapcheck
}

// GetPrimaryByArtworks fetches the primary image of every given artwork in one round trip.
// Artworks without images are absent from the map.
func (r *repositoryImpl) GetPrimaryByArtworks(ctx context.Context, artworkIDs []int64) (map[int64]model.Image, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".image.GetPrimaryByArtworks")
	defer scope.End()

	res := make(map[int64]model.Image, len(artworkIDs))
	if len(artworkIDs) == 0 {
		return res, nil
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldArtworkID, Value: artworkIDs, Operator: gDto.FilterOperatorIn, Table: model.TableName},
		},
	}

	where, args := r.BuildWhereClause(ctx, filter)
	query := fmt.Sprintf("SELECT DISTINCT ON (%[1]s.artwork_id) %[2]s FROM %[1]s %[3]s ORDER BY %[1]s.artwork_id, %[1]s.sort_order, %[1]s.id",
		model.TableName, r.SelectColumns(ctx), where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	prepare, err := r.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	images := []model.Image{}
	if err = prepare.SelectContext(ctx, &images, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get primary images (%s): %w", model.EntityName, err)
	}

	for _, image := range images {
		res[image.ArtworkID] = image
	}

	return res, nil
}
